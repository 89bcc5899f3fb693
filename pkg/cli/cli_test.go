// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/go-mapfile/pkg/parser"
)

var world = filepath.Join("..", "parser", "testdata", "world.map")

func run(t *testing.T, args ...string) (string, error) {
	cmd := NewRootCommand("main", "abc")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Branch: main")
	assert.Contains(t, out, "Commit: abc")
}

func TestValidateCommand(t *testing.T) {
	_, err := run(t, "validate", "--info-destination", filepath.Join(t.TempDir(), "info.log"), world)
	assert.NoError(t, err)

	broken := filepath.Join(t.TempDir(), "broken.map")
	require.NoError(t, ioutil.WriteFile(broken, []byte("MAP\n"), 0600))
	_, err = run(t, "validate", "--error-destination", filepath.Join(t.TempDir(), "error.log"), world, broken)
	assert.Error(t, err)
}

func TestFormatCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.map")
	_, err := run(t, "format", "-o", path, world)
	require.NoError(t, err)
	m, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "World Map", m.Name())
}

func TestLayersCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layers.json")
	_, err := run(t, "layers", "-f", "json", "-o", path, world)
	require.NoError(t, err)
	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "world_adm0")
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	specs := filepath.Join(dir, "commands.json")
	require.NoError(t, ioutil.WriteFile(specs, []byte(`[{"type": "map.name", "value": "Applied"}]`), 0600))
	path := filepath.Join(dir, "applied.map")
	_, err := run(t, "apply", "-c", specs, "-o", path, world)
	require.NoError(t, err)
	m, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Applied", m.Name())
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.gif")
	_, err := run(t, "render", "--width", "100", "--height", "50", "-o", path, world)
	require.NoError(t, err)
	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GIF8", string(b[:4]))
}

func TestExtentCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extent.geojson")
	_, err := run(t, "extent", "-o", path, world)
	require.NoError(t, err)
	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	obj := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(b, &obj))
	assert.Equal(t, "Feature", obj["type"])
}
