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
)

func TestParseSpecs(t *testing.T) {
	specs, err := ParseSpecs([]byte(`[{"type": "map.size", "value": [500, 500]}, {"type": "layer.status", "layer": "a", "value": "OFF"}]`), "json")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, TypeMapSize, specs[0].Type)
	assert.Equal(t, []interface{}{500.0, 500.0}, specs[0].Value)

	specs, err = ParseSpecs([]byte(`{"type": "map.name", "value": "x"}`), "json")
	require.NoError(t, err)
	require.Len(t, specs, 1)

	specs, err = ParseSpecs([]byte("- type: map.size\n  value: [500, 500]\n- type: outputformat.add\n  outputformat:\n    name: jpeg\n    driver: AGG/JPEG\n"), "yaml")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, []interface{}{500, 500}, specs[0].Value)
	assert.Equal(t, "AGG/JPEG", specs[1].OutputFormat.Driver)

	_, err = ParseSpecs([]byte("x"), "toml")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	m := load(t)
	specs := []Spec{
		{Type: TypeMapName, Value: "Other"},
		{Type: TypeMapStatus, Value: "OFF"},
		{Type: TypeMapSize, Value: []interface{}{500, 500.0}},
		{Type: TypeMapMaxSize, Value: 4096.0},
		{Type: TypeMapUnits, Value: "feet"},
		{Type: TypeMapExtent, Value: []interface{}{0, 0, 10, 10}},
		{Type: TypeMapProjection, Value: "init=epsg:3857"},
		{Type: TypeMapResolution, Value: 96},
		{Type: TypeMapDebug, Value: 1},
		{Type: TypeMapImageColor, Value: "#ff0000"},
		{Type: TypeMapImageColor, Value: []interface{}{1, 2, 3}},
		{Type: TypeMapMetadata, Key: "wms_title", Value: "World"},
		{Type: TypeMapConfig, Key: "MS_ERRORFILE", Value: "stderr"},
		{Type: TypeLayerStatus, Layer: "world_adm0", Value: "default"},
		{Type: TypeLayerOpacity, Layer: "world_adm0", Value: 50.0},
		{Type: TypeLayerMinScaleDenom, Layer: "world_adm0", Value: "1000"},
		{Type: TypeLayerMetadata, Layer: "world_adm0", Key: "wms_title", Value: "Countries"},
		{Type: TypeLayerType, Layer: "world_adm0", Value: "line"},
		{Type: TypeLayerRename, Layer: "world_adm0", Value: "countries"},
		{Type: TypeLayerMove, Layer: "world_adm0", Value: 0},
		{Type: TypeLayerRemove, Layer: "world_raster"},
		{Type: TypeLayerAdd, Layer: "roads", Value: "LINE"},
		{Type: TypeOutputFormatOption, Format: "png", Key: "GAMMA", Value: "0.5"},
		{Type: TypeOutputFormatRemove, Format: "GTiff"},
		{Type: TypeOutputFormatUpdate, Format: "png", OutputFormat: &OutputFormatValues{Name: "png8", Driver: "AGG/PNG8"}},
		{Type: TypeOutputFormatAdd, OutputFormat: &OutputFormatValues{Name: "jpeg", Driver: "AGG/JPEG", ImageMode: "RGB"}},
	}
	for _, spec := range specs {
		c, err := Build(m, spec)
		require.NoError(t, err, spec.Type)
		roundTrip(t, m, c)
	}
}

func TestBuildErrors(t *testing.T) {
	m := load(t)
	_, err := Build(m, Spec{Type: "map.colour"})
	assert.IsType(t, &merrors.ErrUnknownCommand{}, err)
	_, err = Build(m, Spec{Type: "feature.add"})
	assert.IsType(t, &merrors.ErrUnknownCommand{}, err)
	_, err = Build(m, Spec{Type: TypeLayerStatus, Value: "ON"})
	assert.IsType(t, &merrors.ErrMissingRequiredParameter{}, err)
	_, err = Build(m, Spec{Type: TypeLayerStatus, Layer: "world_adm0", Value: "MAYBE"})
	assert.IsType(t, &merrors.ErrInvalidParameter{}, err)
	_, err = Build(m, Spec{Type: TypeMapSize, Value: []interface{}{1}})
	assert.IsType(t, &merrors.ErrInvalidParameter{}, err)
	_, err = Build(m, Spec{Type: TypeLayerOpacity, Layer: "world_adm0", Value: 1.5})
	assert.IsType(t, &merrors.ErrInvalidParameter{}, err)
	_, err = Build(m, Spec{Type: TypeOutputFormatOption, Key: "GAMMA", Value: "1"})
	assert.IsType(t, &merrors.ErrMissingRequiredParameter{}, err)
}

func TestBuildGroup(t *testing.T) {
	m := load(t)
	before := m.Clone()
	g, err := BuildGroup(m, "add roads", []Spec{
		{Type: TypeLayerAdd, Layer: "roads", Value: "LINE"},
		{Type: TypeLayerStatus, Layer: "roads", Value: "ON"},
		{Type: TypeLayerMask, Layer: "roads", Value: "world_adm0"},
	})
	require.NoError(t, err)
	assert.True(t, before.Equal(m), "building does not modify the map")
	require.NoError(t, g.Apply(m))
	assert.Equal(t, mapfile.StatusOn, m.Layer("roads").Status())
	assert.Equal(t, "world_adm0", m.Layer("roads").Mask())
	require.NoError(t, g.Revert(m))
	assert.True(t, before.Equal(m))

	_, err = BuildGroup(m, "", []Spec{{Type: TypeLayerStatus, Layer: "roads", Value: "ON"}})
	assert.Error(t, err)
}
