// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b.map")
	assert.Error(t, Write(&OpenInput{Uri: path}, []byte("MAP\nEND\n")))
	require.NoError(t, Write(&OpenInput{Uri: path, Mkdirs: true}, []byte("MAP\nEND\n")))
	assert.Error(t, Write(&OpenInput{Uri: path}, []byte("MAP\nEND\n")))
	require.NoError(t, Write(&OpenInput{Uri: path, Overwrite: true}, []byte("MAP END")))
	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "MAP END", string(b))
}

func TestCheckOutputConfig(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	InitOutputFlags(flags, "text", []string{"csv", "text"})
	require.NoError(t, flags.Parse([]string{"-f", "xml"}))
	v := viper.New()
	require.NoError(t, v.BindPFlags(flags))
	assert.Error(t, CheckOutputConfig(v, []string{"csv", "text"}))
	v.Set(FlagOutputFormat, "csv")
	assert.NoError(t, CheckOutputConfig(v, []string{"csv", "text"}))
}
