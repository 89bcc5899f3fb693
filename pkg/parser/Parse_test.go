// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

func TestParseFileWorld(t *testing.T) {
	m, err := ParseFile(filepath.Join("testdata", "world.map"))
	require.NoError(t, err)
	assert.Equal(t, "World Map", m.Name())
	assert.True(t, m.Status())
	assert.Equal(t, 800, m.Width())
	assert.Equal(t, 400, m.Height())
	assert.Equal(t, 2048, m.MaxSize())
	assert.Equal(t, mapfile.UnitsDD, m.Units())
	assert.Equal(t, mapfile.Extent{MinX: -180, MinY: -90, MaxX: 180, MaxY: 90}, m.Extent())
	assert.Equal(t, "4326", m.Projection().EPSG())
	assert.Equal(t, &mapfile.Color{Red: 255, Green: 255, Blue: 255}, m.ImageColor())
	assert.Equal(t, "stderr", m.ConfigOption("MS_ERRORFILE"))
	assert.Equal(t, "/tmp/ms_tmp/", m.Web().ImagePath)
	assert.Equal(t, []string{"wms_title", "wms_srs"}, m.Metadata().Keys())

	assert.Equal(t, []string{"world_raster", "world_adm0"}, m.LayerNames())
	raster := m.Layer("world_raster")
	assert.Equal(t, mapfile.LayerTypeRaster, raster.Type())
	assert.Equal(t, mapfile.StatusDefault, raster.Status())
	assert.Equal(t, []string{"BANDS=1,2,3"}, raster.Processing())

	adm0 := m.Layer("world_adm0")
	assert.Equal(t, 80, adm0.Opacity())
	assert.Equal(t, "world_raster", adm0.Mask())
	assert.Equal(t, 50000000.0, adm0.MaxScaleDenom())
	assert.Equal(t, "Countries", adm0.Metadata().Value("wms_title"))
	require.Len(t, adm0.Extras(), 1)
	assert.Equal(t, "CLASS", adm0.Extras()[0].Keyword)
	assert.Contains(t, adm0.Extras()[0].Text, "EXPRESSION ([POP] > 1000000)")
	assert.Contains(t, adm0.Extras()[0].Text, "TEXT '[NAME]'")

	require.Len(t, m.OutputFormats(), 2)
	png := m.OutputFormat("png")
	assert.Equal(t, mapfile.StateUnchanged, png.State())
	assert.Equal(t, "png", png.OriginalName())
	assert.Equal(t, "AGG/PNG", png.Driver())
	assert.Equal(t, "0.75", png.FormatOption("GAMMA"))
	tiff := m.OutputFormat("GTiff")
	assert.Equal(t, "GDAL", tiff.Driver())
	assert.Equal(t, "GTiff", tiff.GdalDriver())

	extras := m.Extras()
	require.Len(t, extras, 2)
	assert.Equal(t, "SYMBOL", extras[0].Keyword)
	assert.Equal(t, "SYMBOL\n    NAME \"circle\"\n    TYPE ELLIPSE\n    FILLED TRUE\n    POINTS 1 1 END\n  END", extras[0].Text)
	assert.Equal(t, "LEGEND", extras[1].Keyword)
	assert.Equal(t, 43, extras[1].Line)
	assert.Equal(t, 3, extras[1].Column)

	assert.Empty(t, m.DanglingReferences())
}

func TestParseCaseInsensitive(t *testing.T) {
	m, err := ParseString("map name 'x' layer name \"a\" type point status on end end")
	require.NoError(t, err)
	assert.Equal(t, "x", m.Name())
	assert.Equal(t, mapfile.StatusOn, m.Layer("a").Status())
	assert.Equal(t, mapfile.LayerTypePoint, m.Layer("a").Type())
}

func TestParseDefaults(t *testing.T) {
	m, err := ParseString("MAP\nEND\n")
	require.NoError(t, err)
	assert.True(t, mapfile.New().Equal(m))
}

func TestParseOpaqueStatement(t *testing.T) {
	m, err := ParseString("MAP\n  FOO bar 1 2\n  NAME \"x\"\n  INCLUDE \"other.map\"\nEND")
	require.NoError(t, err)
	assert.Equal(t, "x", m.Name())
	extras := m.Extras()
	require.Len(t, extras, 2)
	assert.Equal(t, "FOO bar 1 2", extras[0].Text)
	assert.Equal(t, "INCLUDE \"other.map\"", extras[1].Text)
}

func TestParseStyleInteger(t *testing.T) {
	m, err := ParseString("MAP\n  SCALEBAR\n    STYLE 1\n    STATUS ON\n  END\nEND")
	require.NoError(t, err)
	require.Len(t, m.Extras(), 1)
	assert.Equal(t, "SCALEBAR\n    STYLE 1\n    STATUS ON\n  END", m.Extras()[0].Text)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		line int
	}{
		{"empty", "", 1},
		{"comment only", "# nothing\n", 2},
		{"outside", "NAME \"x\"\nMAP END", 1},
		{"duplicate map", "MAP\nEND\nMAP\nEND", 3},
		{"trailing", "MAP\nEND\nLAYER", 3},
		{"unterminated map", "MAP\n  NAME \"x\"\n", 1},
		{"unterminated layer", "MAP\n  LAYER\n    NAME \"a\"\n", 2},
		{"unterminated class", "MAP\n  LAYER\n    NAME \"a\"\n    CLASS\n      NAME \"b\"\n", 4},
		{"missing value", "MAP\n  NAME\nEND", 2},
		{"malformed size", "MAP\n  SIZE 10 abc\nEND", 2},
		{"malformed float", "MAP\n  EXTENT 0 0 x 1\nEND", 2},
		{"invalid units", "MAP\n  UNITS FURLONGS\nEND", 2},
		{"invalid status", "MAP\n  LAYER\n    NAME \"a\"\n    STATUS MAYBE\n  END\nEND", 4},
		{"invalid size", "MAP\n  SIZE 0 400\nEND", 2},
		{"layer without name", "MAP\n  LAYER\n    TYPE POINT\n  END\nEND", 2},
		{"duplicate layer", "MAP\n  LAYER NAME \"a\" END\n  LAYER NAME \"a\" END\nEND", 3},
		{"opacity", "MAP\n  LAYER\n    NAME \"a\"\n    OPACITY 150\n  END\nEND", 4},
		{"formatoption", "MAP\n  OUTPUTFORMAT\n    NAME \"a\"\n    FORMATOPTION \"GAMMA\"\n  END\nEND", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := ParseString(c.text)
			assert.Nil(t, m)
			require.Error(t, err)
			e, ok := err.(*merrors.ErrParse)
			require.True(t, ok, "expecting *errors.ErrParse, found %T: %v", err, err)
			assert.Equal(t, c.line, e.Line)
		})
	}
}

func TestParseLexError(t *testing.T) {
	m, err := ParseString("MAP\n  NAME \"x\nEND")
	assert.Nil(t, m)
	require.Error(t, err)
	assert.IsType(t, &merrors.ErrLex{}, err)
}

func TestParseFileNotRegular(t *testing.T) {
	dir := t.TempDir()
	_, err := ParseFile(dir)
	assert.Error(t, err)
	_, err = ParseFile(filepath.Join(dir, "missing.map"))
	assert.Error(t, err)
	if _, statErr := os.Stat("/dev/urandom"); statErr == nil {
		_, err = ParseFile("/dev/urandom")
		assert.Error(t, err)
	}
}

func TestParseStatementsOnOneLine(t *testing.T) {
	m, err := ParseString("MAP\n  NAME \"x\"\n  LAYER NAME \"a\"\n    LABELITEM \"n\" STATUS ON TYPE POINT\n  END\n  FOO 1 UNITS DD\nEND")
	require.NoError(t, err)
	assert.Equal(t, mapfile.UnitsDD, m.Units())
	require.Len(t, m.Extras(), 1)
	assert.Equal(t, "FOO 1", m.Extras()[0].Text)

	l := m.Layer("a")
	require.NotNil(t, l)
	assert.Equal(t, mapfile.StatusOn, l.Status())
	assert.Equal(t, mapfile.LayerTypePoint, l.Type())
	require.Len(t, l.Extras(), 1)
	assert.Equal(t, "LABELITEM \"n\"", l.Extras()[0].Text)
}

func TestParseBlockAfterStatementOnOneLine(t *testing.T) {
	text := "MAP\n  NAME \"x\"\n  LAYER\n    NAME \"a\"\n    CLASSITEM \"k\" CLASS NAME \"c\" STYLE COLOR 1 2 3 END END\n    STATUS ON\n  END\nEND"
	m, err := ParseString(text)
	require.NoError(t, err)
	l := m.Layer("a")
	require.NotNil(t, l)
	assert.Equal(t, mapfile.StatusOn, l.Status())
	extras := l.Extras()
	require.Len(t, extras, 2)
	assert.Equal(t, "CLASSITEM \"k\"", extras[0].Text)
	assert.Equal(t, "CLASS", extras[1].Keyword)
	assert.Equal(t, "CLASS NAME \"c\" STYLE COLOR 1 2 3 END END", extras[1].Text)
}

func TestParseBlankValues(t *testing.T) {
	text := "MAP\n  NAME \"x\"\n  CONFIG \"K\" \"\"\n  WEB\n    METADATA\n      \"wms_title\" \"\"\n      \"wms_srs\" \"EPSG:4326\"\n    END\n  END\n" +
		"  OUTPUTFORMAT\n    NAME \"png\"\n    FORMATOPTION \"K=\"\n  END\n" +
		"  LAYER\n    NAME \"a\"\n    METADATA\n      \"k\" \"\"\n    END\n  END\nEND"
	m, err := ParseString(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"K"}, m.Config().Keys())
	assert.Equal(t, []string{"wms_title", "wms_srs"}, m.Metadata().Keys())
	v, ok := m.Metadata().Get("wms_title")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	f := m.OutputFormat("png")
	require.NotNil(t, f)
	assert.Equal(t, []string{"K"}, f.FormatOptions().Keys())
	assert.Equal(t, mapfile.StateUnchanged, f.State())

	assert.Equal(t, []string{"k"}, m.Layer("a").Metadata().Keys())
}
