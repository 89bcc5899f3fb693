// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serializer

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
)

const world = `MAP
  NAME "World Map"
  STATUS ON
  SIZE 800 400
  UNITS DD
  EXTENT -180 -90 180 90
  IMAGECOLOR 255 255 255
  CONFIG "MS_ERRORFILE" "stderr"
  PROJECTION
    "init=epsg:4326"
  END
  WEB
    METADATA
      "wms_title" "World \"Map\""
    END
  END
  OUTPUTFORMAT
    NAME "GTiff"
    DRIVER "GDAL/GTiff"
    MIMETYPE "image/tiff"
    IMAGEMODE RGB
    EXTENSION "tif"
    FORMATOPTION "COMPRESS=DEFLATE"
  END
  LAYER
    NAME "world_raster"
    TYPE RASTER
    STATUS DEFAULT
    DATA "world.tif"
  END
  LAYER
    NAME "world_adm0"
    TYPE POLYGON
    STATUS ON
    MASK "world_raster"
    OPACITY 80
    MINSCALEDENOM 1000
    MAXSCALEDENOM 50000000
    CLASS
      NAME 'Countries'
      EXPRESSION ([POP] > 1000000)
      STYLE
        COLOR 200 200 200
      END
    END
  END
  LEGEND
    STATUS ON
  END
END
`

func TestSerializeCanonical(t *testing.T) {
	m, err := parser.ParseString(world)
	require.NoError(t, err)
	assert.Equal(t, world, string(Serialize(m)))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		world,
		"MAP END",
		"map name 'x' status off size 10 20 maxsize 4096 resolution 96 defresolution 96 debug on angle 15.5 end",
		"MAP\n  SHAPEPATH \"data\"\n  FONTSET 'fonts.txt'\n  SYMBOLSET symbols.sym\n  IMAGETYPE png\nEND",
		"MAP\n  SYMBOL\n    NAME \"circle\"\n    POINTS 1 1 END\n  END\n  FOO bar\nEND",
	}
	for _, input := range inputs {
		m1, err := parser.ParseString(input)
		require.NoError(t, err, input)
		m2, err := parser.ParseString(string(Serialize(m1)))
		require.NoError(t, err, input)
		assert.True(t, m1.Equal(m2), input)
		assert.Equal(t, string(Serialize(m1)), string(Serialize(m2)))
	}
}

func TestModifyPreservesOpaque(t *testing.T) {
	m, err := parser.ParseString(world)
	require.NoError(t, err)
	class := m.Layer("world_adm0").Extras()[0].Text
	require.NoError(t, m.Layer("world_adm0").SetOpacity(50))
	require.NoError(t, m.Layer("world_raster").SetName("raster"))
	text := string(Serialize(m))
	assert.Contains(t, text, class)
	assert.Contains(t, text, "    OPACITY 50\n")
	assert.Contains(t, text, "  LEGEND\n    STATUS ON\n  END\n")
}

func TestDefaultsOmitted(t *testing.T) {
	text := string(Serialize(mapfile.New()))
	assert.Equal(t, "MAP\n  NAME \"MS\"\n  STATUS ON\nEND\n", text)
}

func TestWriteTombstones(t *testing.T) {
	m, err := parser.ParseString(world)
	require.NoError(t, err)
	_, _, err = m.RemoveOutputFormat("GTiff")
	require.NoError(t, err)
	tombstones := make([]string, 0)
	buf := new(bytes.Buffer)
	err = Write(&WriteInput{
		Writer: buf,
		Map:    m,
		OnTombstone: func(f *mapfile.OutputFormat) {
			tombstones = append(tombstones, f.Name())
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"GTiff"}, tombstones)
	assert.NotContains(t, buf.String(), "OUTPUTFORMAT")
}

func TestWriteFile(t *testing.T) {
	m, err := parser.ParseString(world)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "a", "b", "world.map")
	assert.Error(t, WriteFile(&WriteFileInput{Uri: path, Map: m}))
	require.NoError(t, WriteFile(&WriteFileInput{Uri: path, Parents: true, Map: m}))
	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Serialize(m), b)
}

func TestRoundTripBlankValues(t *testing.T) {
	text := `MAP
  NAME "x"
  STATUS ON
  CONFIG "K" ""
  WEB
    METADATA
      "wms_title" ""
    END
  END
  OUTPUTFORMAT
    NAME "png"
    DRIVER "AGG/PNG"
    FORMATOPTION "K="
  END
  LAYER
    NAME "a"
    TYPE POLYGON
    STATUS OFF
    METADATA
      "k" ""
    END
  END
END
`
	m, err := parser.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, text, string(Serialize(m)))
}

func TestRoundTripStatementsOnOneLine(t *testing.T) {
	m, err := parser.ParseString("MAP NAME \"x\"\n  LAYER NAME \"a\" LABELITEM \"n\" STATUS ON TYPE POINT CLASSITEM \"k\" CLASS NAME \"c\" END END\nEND")
	require.NoError(t, err)
	out := Serialize(m)
	assert.Contains(t, string(out), "    TYPE POINT\n    STATUS ON\n")
	assert.Contains(t, string(out), "    LABELITEM \"n\"\n")
	assert.Contains(t, string(out), "    CLASS NAME \"c\" END\n")

	again, err := parser.Parse("x.map", out)
	require.NoError(t, err)
	assert.True(t, m.Equal(again))
}
