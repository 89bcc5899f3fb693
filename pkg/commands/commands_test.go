// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
)

const world = `MAP
  NAME "World Map"
  SIZE 800 400
  EXTENT -180 -90 180 90
  OUTPUTFORMAT
    NAME "png"
    DRIVER "AGG/PNG"
    MIMETYPE "image/png"
    FORMATOPTION "GAMMA=0.75"
  END
  OUTPUTFORMAT
    NAME "GTiff"
    DRIVER "GDAL/GTiff"
  END
  LAYER
    NAME "world_raster"
    TYPE RASTER
    STATUS ON
  END
  LAYER
    NAME "world_adm0"
    TYPE POLYGON
    STATUS ON
    MASK "world_raster"
    CLASS
      NAME "Countries"
    END
  END
END`

func load(t *testing.T) *mapfile.Map {
	m, err := parser.ParseString(world)
	require.NoError(t, err)
	return m
}

// roundTrip applies and reverts the command and checks that the map is restored.
func roundTrip(t *testing.T, m *mapfile.Map, c Command) {
	before := m.Clone()
	require.NoError(t, c.Apply(m), c.Description())
	assert.False(t, before.Equal(m), "apply did not change the map: %s", c.Description())
	require.NoError(t, c.Revert(m), c.Description())
	assert.True(t, before.Equal(m), "revert did not restore the map: %s", c.Description())
}

func TestMapCommands(t *testing.T) {
	m := load(t)
	for _, c := range []Command{
		NewSetMapName(m, "Other"),
		NewSetMapStatus(m, false),
		NewSetMapSize(m, 500, 500),
		NewSetMapMaxSize(m, 4096),
		NewSetMapUnits(m, mapfile.UnitsDD),
		NewSetMapExtent(m, mapfile.Extent{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}),
		NewSetMapProjection(m, mapfile.NewProjection("init=epsg:3857")),
		NewSetMapAttribute(MapResolution, m, 96.0),
		NewSetMapAttribute(MapDefResolution, m, 96.0),
		NewSetMapAttribute(MapDebug, m, 3),
		NewSetMapAttribute(MapAngle, m, 45.0),
		NewSetMapAttribute(MapShapePath, m, "data"),
		NewSetMapAttribute(MapFontSet, m, "fonts.txt"),
		NewSetMapAttribute(MapSymbolSet, m, "symbols.sym"),
		NewSetMapAttribute(MapTemplatePattern, m, "tmpl"),
		NewSetMapAttribute(MapImageType, m, "jpeg"),
		NewSetMapImageColor(m, &mapfile.Color{Red: 1, Green: 2, Blue: 3}),
		NewSetMapMetadata(m, "wms_title", "World"),
		NewSetConfigOption(m, "MS_ERRORFILE", "stderr"),
	} {
		roundTrip(t, m, c)
	}
}

func TestMapCommandInvalid(t *testing.T) {
	m := load(t)
	before := m.Clone()
	assert.Error(t, NewSetMapName(m, "").Apply(m))
	assert.Error(t, NewSetMapSize(m, 0, 10).Apply(m))
	assert.Error(t, NewSetMapImageColor(m, &mapfile.Color{Red: 300}).Apply(m))
	assert.True(t, before.Equal(m))
}

func TestDescriptions(t *testing.T) {
	m := load(t)
	c, err := NewSetLayerStatus(m, "world_adm0", mapfile.StatusOff)
	require.NoError(t, err)
	assert.Equal(t, "Change layer status from 'ON' to 'OFF'", c.Description())
	c, err = NewSetLayerStatus(m, "world_adm0", mapfile.StatusDefault)
	require.NoError(t, err)
	assert.Equal(t, "Change layer status from 'ON' to 'Default'", c.Description())
	c, err = NewSetLayerMinScaleDenom(m, "world_adm0", 1000)
	require.NoError(t, err)
	assert.Equal(t, "Change layer min scale denominator from '-1' to '1000'", c.Description())
	assert.Equal(t, "Change map size from '800 x 400' to '500 x 500'", NewSetMapSize(m, 500, 500).Description())
	assert.Equal(t, "Change map config option[PROJ_LIB] from '' to '/proj'", NewSetConfigOption(m, "PROJ_LIB", "/proj").Description())
	r, err := NewRenameLayer(m, "world_adm0", "countries")
	require.NoError(t, err)
	assert.Equal(t, "Rename layer 'world_adm0' to 'countries'", r.Description())
}

func TestLayerCommands(t *testing.T) {
	m := load(t)
	builders := []func() (Command, error){
		func() (Command, error) { return NewSetLayerStatus(m, "world_adm0", mapfile.StatusOff) },
		func() (Command, error) { return NewSetLayerRequires(m, "world_adm0", "![world_raster]") },
		func() (Command, error) { return NewSetLayerMask(m, "world_adm0", "") },
		func() (Command, error) { return NewSetLayerOpacity(m, "world_adm0", 50) },
		func() (Command, error) { return NewSetLayerGroup(m, "world_adm0", "admin") },
		func() (Command, error) { return NewSetLayerDebug(m, "world_adm0", 2) },
		func() (Command, error) { return NewSetLayerMinScaleDenom(m, "world_adm0", 1000) },
		func() (Command, error) { return NewSetLayerMaxScaleDenom(m, "world_adm0", 100000) },
		func() (Command, error) { return NewSetLayerTemplate(m, "world_adm0", "t.html") },
		func() (Command, error) { return NewSetLayerHeader(m, "world_adm0", "h.html") },
		func() (Command, error) { return NewSetLayerFooter(m, "world_adm0", "f.html") },
		func() (Command, error) { return toCommand(NewRenameLayer(m, "world_adm0", "countries")) },
		func() (Command, error) { return toCommand(NewMoveLayer(m, "world_adm0", 0)) },
		func() (Command, error) { return toCommand(NewRemoveLayer(m, "world_raster")) },
		func() (Command, error) { return NewAddLayer(m, mapfile.NewLayer("roads", mapfile.LayerTypeLine)), nil },
	}
	for _, build := range builders {
		c, err := build()
		require.NoError(t, err)
		roundTrip(t, m, c)
	}
}

func TestLayerCommandMissing(t *testing.T) {
	m := load(t)
	_, err := NewSetLayerOpacity(m, "missing", 10)
	assert.IsType(t, &merrors.ErrMissingObject{}, err)
	_, err = NewRemoveLayer(m, "missing")
	assert.IsType(t, &merrors.ErrMissingObject{}, err)

	c, err := NewSetLayerOpacity(m, "world_adm0", 10)
	require.NoError(t, err)
	_, _, err = m.RemoveLayer("world_adm0")
	require.NoError(t, err)
	assert.IsType(t, &merrors.ErrMissingObject{}, c.Apply(m))
}

func TestRemoveLayerRestoresEqualLayer(t *testing.T) {
	m := load(t)
	original := m.Layer("world_adm0").Clone()
	c, err := NewRemoveLayer(m, "world_adm0")
	require.NoError(t, err)
	require.NoError(t, c.Apply(m))
	assert.Nil(t, m.Layer("world_adm0"))
	require.NoError(t, c.Revert(m))
	assert.Equal(t, 1, m.LayerIndex("world_adm0"))
	assert.True(t, original.Equal(m.Layer("world_adm0")))
}

func TestRenameLeavesReferences(t *testing.T) {
	m := load(t)
	c, err := NewRenameLayer(m, "world_raster", "raster")
	require.NoError(t, err)
	require.NoError(t, c.Apply(m))
	assert.Equal(t, "world_raster", m.Layer("world_adm0").Mask())
	require.Len(t, m.DanglingReferences(), 1)
	require.NoError(t, c.Revert(m))
	assert.Empty(t, m.DanglingReferences())

	c, err = NewRenameLayer(m, "world_raster", "world_adm0")
	require.NoError(t, err)
	assert.IsType(t, &merrors.ErrDuplicateName{}, c.Apply(m))
}

func TestOutputFormatCommands(t *testing.T) {
	m := load(t)
	add := NewAddOutputFormat(m, mapfile.NewOutputFormat("jpeg", "image/jpeg", "AGG/JPEG", "jpg", mapfile.ImageModeRGB, false))
	roundTrip(t, m, add)
	assert.Empty(t, m.RemovedOutputFormats())

	option, err := NewSetFormatOption(m, "png", "GAMMA", "0.5")
	require.NoError(t, err)
	require.NoError(t, option.Apply(m))
	assert.Equal(t, "0.5", m.OutputFormat("png").FormatOption("GAMMA"))
	assert.Equal(t, mapfile.StateModified, m.OutputFormat("png").State())
	require.NoError(t, option.Revert(m))
	assert.Equal(t, "0.75", m.OutputFormat("png").FormatOption("GAMMA"))

	update, err := NewUpdateOutputFormat(m, "GTiff", OutputFormatValues{
		Name:          "tiff",
		MimeType:      "image/tiff",
		Driver:        "GDAL/GTiff",
		Extension:     "tif",
		ImageMode:     "RGBA",
		FormatOptions: []string{"COMPRESS=DEFLATE"},
	})
	require.NoError(t, err)
	require.NoError(t, update.Apply(m))
	tiff := m.OutputFormat("tiff")
	require.NotNil(t, tiff)
	assert.Equal(t, "GTiff", tiff.OriginalName())
	assert.Equal(t, mapfile.StateModified, tiff.State())
	assert.Equal(t, "DEFLATE", tiff.FormatOption("COMPRESS"))
	assert.Equal(t, 1, m.OutputFormatIndex("tiff"))
	require.NoError(t, update.Revert(m))
	assert.Equal(t, mapfile.StateUnchanged, m.OutputFormat("GTiff").State())
	assert.Nil(t, m.OutputFormat("tiff"))
}

func TestRemoveOutputFormatCommand(t *testing.T) {
	m := load(t)
	c, err := NewRemoveOutputFormat(m, "png")
	require.NoError(t, err)
	require.NoError(t, c.Apply(m))
	require.Len(t, m.RemovedOutputFormats(), 1)
	assert.Equal(t, mapfile.StateRemoved, m.RemovedOutputFormats()[0].State())
	require.NoError(t, c.Revert(m))
	assert.Empty(t, m.RemovedOutputFormats())
	assert.Equal(t, 0, m.OutputFormatIndex("png"))
	assert.Equal(t, mapfile.StateUnchanged, m.OutputFormat("png").State())
}

func TestGroupRollback(t *testing.T) {
	m := load(t)
	before := m.Clone()
	status, err := NewSetLayerStatus(m, "world_adm0", mapfile.StatusOff)
	require.NoError(t, err)
	g := NewGroup("", NewSetMapName(m, "Other"), status, NewSetMapSize(m, 0, 0))
	err = g.Apply(m)
	require.Error(t, err)
	assert.True(t, before.Equal(m))

	g = NewGroup("rename and hide", NewSetMapName(m, "Other"), status)
	roundTrip(t, m, g)
	assert.Equal(t, "rename and hide", g.Description())
	assert.Len(t, g.Commands(), 2)
}

func TestRemovedKeyRevertKeepsOrder(t *testing.T) {
	m, err := parser.ParseString(`MAP
  NAME "x"
  CONFIG "A" "1"
  CONFIG "B" "2"
  WEB
    METADATA
      "k1" "v1"
      "k2" "v2"
    END
  END
  OUTPUTFORMAT
    NAME "png"
    DRIVER "AGG/PNG"
    FORMATOPTION "A=1"
    FORMATOPTION "B=2"
  END
  LAYER
    NAME "a"
    METADATA
      "k1" "v1"
      "k2" "v2"
      "k3" ""
    END
  END
END`)
	require.NoError(t, err)

	option, err := NewSetFormatOption(m, "png", "A", "")
	require.NoError(t, err)
	roundTrip(t, m, option)
	assert.Equal(t, []string{"A", "B"}, m.OutputFormat("png").FormatOptions().Keys())

	roundTrip(t, m, NewSetConfigOption(m, "A", ""))
	assert.Equal(t, []string{"A", "B"}, m.Config().Keys())

	roundTrip(t, m, NewSetMapMetadata(m, "k1", ""))
	assert.Equal(t, []string{"k1", "k2"}, m.Metadata().Keys())

	group, err := BuildGroup(m, "clear layer metadata", []Spec{
		{Type: TypeLayerMetadata, Layer: "a", Key: "k1", Value: ""},
		{Type: TypeLayerMetadata, Layer: "a", Key: "k3", Value: "v3"},
	})
	require.NoError(t, err)
	roundTrip(t, m, group)
	layer := m.Layer("a").Metadata()
	assert.Equal(t, []string{"k1", "k2", "k3"}, layer.Keys())
	v, ok := layer.Get("k3")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestFormatOptionRevertRestoresState(t *testing.T) {
	m := load(t)
	option, err := NewSetFormatOption(m, "png", "GAMMA", "0.5")
	require.NoError(t, err)
	require.NoError(t, option.Apply(m))
	assert.Equal(t, mapfile.StateModified, m.OutputFormat("png").State())
	require.NoError(t, option.Revert(m))
	assert.Equal(t, mapfile.StateUnchanged, m.OutputFormat("png").State())

	added := mapfile.NewOutputFormat("jpeg", "image/jpeg", "AGG/JPEG", "jpg", mapfile.ImageModeRGB, false)
	require.NoError(t, NewAddOutputFormat(m, added).Apply(m))
	option, err = NewSetFormatOption(m, "jpeg", "QUALITY", "90")
	require.NoError(t, err)
	require.NoError(t, option.Apply(m))
	require.NoError(t, option.Revert(m))
	assert.Equal(t, mapfile.StateAdded, m.OutputFormat("jpeg").State())
	assert.Empty(t, m.OutputFormat("jpeg").FormatOptions().Keys())
}
