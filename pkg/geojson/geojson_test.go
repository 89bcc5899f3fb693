// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
)

func TestPointUnmarshalJSON(t *testing.T) {
	p := Point{}
	err := json.Unmarshal([]byte(`{"type":"Point", "coordinates": [12.49268, 41.89029]}`), &p)
	assert.NoError(t, err)
	assert.Equal(t, Point{12.49268, 41.89029}, p)
}

func TestFeatureUnmarshalJSON(t *testing.T) {
	j := `{"type": "Feature", "id": "a", "properties": {"foo": "bar"}, "geometry": {"type":"Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}}`
	f := &Feature{}
	require.NoError(t, json.Unmarshal([]byte(j), f))
	assert.Equal(t, "a", f.Id)
	assert.Equal(t, map[string]interface{}{"foo": "bar"}, f.Properties)
	assert.Equal(t, Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, f.Geometry)

	err := json.Unmarshal([]byte(`{"type": "Feature", "geometry": {"type": "LineString", "coordinates": []}}`), f)
	assert.Error(t, err)
}

func TestExtent(t *testing.T) {
	m, err := parser.ParseString("MAP\n NAME \"World\"\n UNITS DD\n EXTENT -180 -90 180 90\n PROJECTION\n  \"init=epsg:4326\"\n END\nEND\n")
	require.NoError(t, err)

	f, err := Extent(m)
	require.NoError(t, err)
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "Feature",
		"id": "World",
		"bbox": [-180, -90, 180, 90],
		"properties": {"name": "World", "units": "DD", "projection": "init=epsg:4326", "epsg": "4326"},
		"geometry": {"type": "Polygon", "coordinates": [[[-180, -90], [180, -90], [180, 90], [-180, 90], [-180, -90]]]}
	}`, string(b))

	c, err := Center(m)
	require.NoError(t, err)
	assert.Equal(t, Point{0, 0}, c)

	b, err = json.Marshal(FeatureCollection{Features: []*Feature{f}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"FeatureCollection"`)
}

func TestExtentMissing(t *testing.T) {
	_, err := Extent(mapfile.New())
	assert.Error(t, err)
	_, err = Center(mapfile.New())
	assert.Error(t, err)
}
