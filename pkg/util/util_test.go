// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNameFormat(t *testing.T) {
	name, format := SplitNameFormat("/documents/abc.JSON")
	assert.Equal(t, "/documents/abc", name)
	assert.Equal(t, "json", format)

	name, format = SplitNameFormat("world")
	assert.Equal(t, "world", name)
	assert.Equal(t, "", format)
}

func TestMergeConfigs(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yml")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, ioutil.WriteFile(first, []byte("renderer: map2img\nhttp-address: \":9000\"\n"), 0600))
	require.NoError(t, ioutil.WriteFile(second, []byte(`{"renderer": "preview"}`), 0600))

	v := viper.New()
	require.NoError(t, MergeConfigs(v, []string{first, second}))
	assert.Equal(t, "preview", v.GetString("renderer"))
	assert.Equal(t, ":9000", v.GetString("http-address"))

	assert.Error(t, MergeConfig(v, filepath.Join(dir, "missing.yaml")))
	assert.Error(t, MergeConfig(v, filepath.Join(dir, "noext")))

	buf := new(bytes.Buffer)
	PrintViperSettings(buf, v)
	assert.Contains(t, buf.String(), "renderer=preview\n")
}
