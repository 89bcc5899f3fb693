// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package document

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/go-mapfile/pkg/commands"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
)

const worldPath = "../parser/testdata/world.map"

func TestLoad(t *testing.T) {
	d, err := Load(worldPath)
	require.NoError(t, err)
	assert.True(t, d.IsLoaded())
	assert.Equal(t, worldPath, d.Path())
	assert.Equal(t, "World Map", d.MapName())
	assert.Equal(t, []string{"world_raster", "world_adm0"}, d.Layers())
	assert.False(t, d.Modified())
}

func TestLoadFailure(t *testing.T) {
	for _, path := range []string{"/dev/urandom", filepath.Join(t.TempDir(), "missing.map"), t.TempDir()} {
		d, err := Load(path)
		assert.Error(t, err, path)
		require.NotNil(t, d)
		assert.False(t, d.IsLoaded())
		assert.Equal(t, mapfile.DefaultMapName, d.MapName())
		assert.Equal(t, -1, d.MapWidth())
		assert.Equal(t, -1, d.MapHeight())
		assert.Equal(t, 2048, d.MapMaxSize())
		assert.True(t, d.MapStatus())
		assert.Empty(t, d.Layers())
	}
}

func TestNew(t *testing.T) {
	d := New()
	assert.False(t, d.IsLoaded())
	assert.Empty(t, d.Path())
	assert.Equal(t, "MS", d.MapName())
	assert.Equal(t, mapfile.UnitsMeters, d.MapUnits())

	c, err := d.SetMapName("test SetMapName")
	require.NoError(t, err)
	assert.Equal(t, "test SetMapName", d.MapName())
	assert.True(t, d.Modified())
	require.NoError(t, d.Revert(c))
	assert.Equal(t, "MS", d.MapName())
}

func TestSetMapSize(t *testing.T) {
	d := New()
	_, err := d.SetMapSize(0, 10)
	assert.Error(t, err)
	assert.Equal(t, -1, d.MapWidth())
	_, err = d.SetMapSize(640, 480)
	require.NoError(t, err)
	assert.Equal(t, 640, d.MapWidth())
	assert.Equal(t, 480, d.MapHeight())
}

func TestLayerCopy(t *testing.T) {
	d, err := Load(worldPath)
	require.NoError(t, err)
	l, ok := d.Layer("world_adm0")
	require.True(t, ok)
	require.NoError(t, l.SetOpacity(10))
	l, _ = d.Layer("world_adm0")
	assert.Equal(t, 100, l.Opacity())
	_, ok = d.Layer("missing")
	assert.False(t, ok)
}

func TestApplySpecs(t *testing.T) {
	d, err := Load(worldPath)
	require.NoError(t, err)
	c, err := d.ApplySpecs("edit", []commands.Spec{
		{Type: commands.TypeLayerStatus, Layer: "world_raster", Value: "OFF"},
		{Type: commands.TypeMapName, Value: "Renamed"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", d.MapName())
	l, _ := d.Layer("world_raster")
	assert.Equal(t, mapfile.StatusOff, l.Status())

	require.NoError(t, d.Revert(c))
	assert.Equal(t, "World Map", d.MapName())

	_, err = d.ApplySpecs("bad", []commands.Spec{
		{Type: commands.TypeMapName, Value: "Renamed"},
		{Type: commands.TypeLayerStatus, Layer: "missing", Value: "OFF"},
	})
	assert.Error(t, err)
	assert.Equal(t, "World Map", d.MapName())
}

func TestSave(t *testing.T) {
	assert.Error(t, New().Save(""))

	d, err := Load(worldPath)
	require.NoError(t, err)
	_, err = d.SetMapName("Saved Map")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.map")
	require.NoError(t, d.Save(path))
	assert.Equal(t, path, d.Path())
	assert.False(t, d.Modified())

	m, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.True(t, m.Equal(d.Snapshot()))
}

func TestRender(t *testing.T) {
	d, err := Load(worldPath)
	require.NoError(t, err)
	result := d.Render(context.Background(), render.NewPreview(), 500, 500)
	require.True(t, result.OK(), result.Message)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e}, result.Buffer[:3])
}

func TestConcurrentApply(t *testing.T) {
	d := New()
	wg := &sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := d.Execute(func(m *mapfile.Map) (commands.Command, error) {
				return commands.NewSetMapMetadata(m, "k", "v"), nil
			})
			assert.NoError(t, err)
			_ = d.Render(context.Background(), render.NewPreview(), 10, 10)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, "v", d.Snapshot().Metadata().Value("k"))
}
