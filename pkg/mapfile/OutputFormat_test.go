// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

func TestSplitDriver(t *testing.T) {
	cases := []struct {
		input      string
		driver     string
		gdalDriver string
	}{
		{"GDAL/GTiff", "GDAL", "GTiff"},
		{"OGR/GML", "OGR", "GML"},
		{"GDAL/a/b", "GDAL", ""},
		{"GDAL", "GDAL", ""},
		{"AGG/PNG", "AGG/PNG", ""},
		{"gdal/GTiff", "gdal/GTiff", ""},
	}
	for _, c := range cases {
		f := NewParsedOutputFormat("x")
		f.SetDriver(c.input)
		assert.Equal(t, c.driver, f.Driver(), c.input)
		assert.Equal(t, c.gdalDriver, f.GdalDriver(), c.input)
	}
}

func TestSetDriverClearsGdalDriver(t *testing.T) {
	f := NewOutputFormat("tiff", "image/tiff", "GDAL/GTiff", "tif", ImageModeRGB, false)
	assert.Equal(t, "GTiff", f.GdalDriver())
	f.SetDriver("AGG/PNG")
	assert.Equal(t, "", f.GdalDriver())
	assert.Equal(t, "AGG/PNG", f.FullDriver())
}

func TestOutputFormatState(t *testing.T) {
	f := NewOutputFormat("png", "image/png", "AGG/PNG", "png", ImageModeRGB, false)
	assert.Equal(t, StateAdded, f.State())
	f.SetMimeType("image/png; mode=8bit")
	assert.Equal(t, StateAdded, f.State())

	p := NewParsedOutputFormat("jpeg")
	assert.Equal(t, StateUnchanged, p.State())
	p.SetTransparent(true)
	assert.Equal(t, StateModified, p.State())
}

func TestRemoveOutputFormat(t *testing.T) {
	m := New()
	added := NewOutputFormat("png", "image/png", "AGG/PNG", "png", ImageModeRGB, false)
	saved := NewOutputFormat("gif", "image/gif", "GD/GIF", "gif", ImageModePC256, false)
	parsed := NewParsedOutputFormat("jpeg")
	modified := NewParsedOutputFormat("tiff")
	for _, f := range []*OutputFormat{added, saved, parsed, modified} {
		require.NoError(t, m.AddOutputFormat(f))
	}
	m.MarkSaved()
	assert.Equal(t, StateAddedSaved, saved.State())
	added.SetState(StateAdded)
	modified.SetExtension("tif")
	assert.Equal(t, StateModified, modified.State())

	for _, name := range []string{"png", "gif", "jpeg", "tiff"} {
		_, _, err := m.RemoveOutputFormat(name)
		require.NoError(t, err)
	}
	assert.Empty(t, m.OutputFormats())
	removed := m.RemovedOutputFormats()
	require.Len(t, removed, 2)
	assert.Equal(t, "jpeg", removed[0].Name())
	assert.Equal(t, "tiff", removed[1].Name())
	for _, f := range removed {
		assert.Equal(t, StateRemoved, f.State())
	}

	m.MarkSaved()
	assert.Empty(t, m.RemovedOutputFormats())
}

func TestReinsertDropsTombstone(t *testing.T) {
	m := New()
	f := NewParsedOutputFormat("jpeg")
	require.NoError(t, m.AddOutputFormat(f))
	prior := f.Clone()
	_, i, err := m.RemoveOutputFormat("jpeg")
	require.NoError(t, err)
	require.Len(t, m.RemovedOutputFormats(), 1)
	require.NoError(t, m.InsertOutputFormat(i, prior))
	assert.Empty(t, m.RemovedOutputFormats())
	assert.Equal(t, StateUnchanged, m.OutputFormat("jpeg").State())
}

func TestOutputFormatRename(t *testing.T) {
	m := New()
	require.NoError(t, m.AddOutputFormat(NewOutputFormat("png", "image/png", "AGG/PNG", "png", ImageModeRGB, false)))
	require.NoError(t, m.AddOutputFormat(NewOutputFormat("jpeg", "image/jpeg", "AGG/JPEG", "jpg", ImageModeRGB, false)))
	err := m.SetOutputFormatName("png", "jpeg")
	assert.IsType(t, &merrors.ErrDuplicateName{}, err)
	assert.NotNil(t, m.OutputFormat("png"))
	assert.NotNil(t, m.OutputFormat("jpeg"))

	require.NoError(t, m.SetOutputFormatName("png", "png8"))
	assert.Equal(t, "png", m.OutputFormat("png8").OriginalName())
	assert.IsType(t, &merrors.ErrDuplicateName{}, m.AddOutputFormat(NewParsedOutputFormat("png8")))
}

func TestReplaceOutputFormat(t *testing.T) {
	m := New()
	require.NoError(t, m.AddOutputFormat(NewOutputFormat("png", "image/png", "AGG/PNG", "png", ImageModeRGB, false)))
	require.NoError(t, m.AddOutputFormat(NewOutputFormat("jpeg", "image/jpeg", "AGG/JPEG", "jpg", ImageModeRGB, false)))
	_, err := m.ReplaceOutputFormat("png", NewOutputFormat("jpeg", "", "", "", ImageModeRGB, false))
	assert.IsType(t, &merrors.ErrDuplicateName{}, err)
	old, err := m.ReplaceOutputFormat("png", NewOutputFormat("png8", "image/png", "AGG/PNG", "png", ImageModePC256, false))
	require.NoError(t, err)
	assert.Equal(t, "png", old.Name())
	assert.Equal(t, "png8", m.OutputFormats()[0].Name())
}
