// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/go-mapfile/pkg/commands"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
)

func loadWorld(t *testing.T) *mapfile.Map {
	m, err := parser.ParseFile("../parser/testdata/world.map")
	require.NoError(t, err)
	return m
}

func TestLayers(t *testing.T) {
	table := Layers(loadWorld(t))
	assert.Equal(t, []string{"world_raster", "world_adm0"}, table.Column("name"))
	assert.Equal(t, []string{"DEFAULT", "ON"}, table.Column("status"))
	assert.Equal(t, []string{"100", "80"}, table.Column("opacity"))
	assert.Equal(t, []string{"-1", "50000000"}, table.Column("maxscaledenom"))
	assert.Nil(t, table.Column("missing"))
}

func TestOutputFormats(t *testing.T) {
	m := loadWorld(t)
	table := OutputFormats(m)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"png", "image/png", "AGG/PNG", "", "png", "RGB", "false", "UNCHANGED"}, table.Rows[0])
	assert.Equal(t, []string{"GTiff", "image/tiff", "GDAL", "GTiff", "tif", "RGB", "false", "UNCHANGED"}, table.Rows[1])

	c, err := commands.NewRemoveOutputFormat(m, "GTiff")
	require.NoError(t, err)
	require.NoError(t, c.Apply(m))
	assert.Equal(t, []string{"png"}, OutputFormats(m).Column("name"))
}

func TestMapSettings(t *testing.T) {
	records := map[string]string{}
	for _, r := range MapSettings(loadWorld(t)).Records() {
		records[r["key"]] = r["value"]
	}
	assert.Equal(t, "World Map", records["name"])
	assert.Equal(t, "ON", records["status"])
	assert.Equal(t, "800 400", records["size"])
	assert.Equal(t, "DD", records["units"])
	assert.Equal(t, "255 255 255", records["imagecolor"])
	assert.Equal(t, "stderr", records["config.MS_ERRORFILE"])
	assert.Equal(t, "World Map", records["metadata.wms_title"])
}

func TestDanglingReferences(t *testing.T) {
	m := loadWorld(t)
	assert.Empty(t, DanglingReferences(m).Rows)
	c, err := commands.NewRenameLayer(m, "world_raster", "raster")
	require.NoError(t, err)
	require.NoError(t, c.Apply(m))
	assert.Equal(t, [][]string{{"world_adm0", "mask", "world_raster"}}, DanglingReferences(m).Rows)
}

func TestWrite(t *testing.T) {
	table := &Table{Columns: []string{"name", "type"}, Rows: [][]string{{"roads", "LINE"}, {"countries", "POLYGON"}}}

	buf := new(bytes.Buffer)
	require.NoError(t, table.Write(buf, "csv"))
	assert.Equal(t, "name,type\nroads,LINE\ncountries,POLYGON\n", buf.String())

	buf.Reset()
	require.NoError(t, table.Write(buf, "json"))
	assert.Equal(t, "[{\"name\":\"roads\",\"type\":\"LINE\"},{\"name\":\"countries\",\"type\":\"POLYGON\"}]\n", buf.String())

	buf.Reset()
	require.NoError(t, table.Write(buf, "yaml"))
	assert.Equal(t, "- name: roads\n  type: LINE\n- name: countries\n  type: POLYGON\n", buf.String())

	buf.Reset()
	require.NoError(t, table.Write(buf, "text"))
	assert.Equal(t, "NAME       TYPE\nroads      LINE\ncountries  POLYGON\n", buf.String())

	assert.Error(t, table.Write(buf, "xml"))
}
