// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package img

import (
	"bytes"
	"image"
	"image/color"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

func TestEncodeImage(t *testing.T) {
	i := CreateImage(20, 10, color.RGBA{255, 0, 0, 255})
	for _, ext := range []string{"png", "jpg", "jpeg", "gif", ".PNG"} {
		buf := new(bytes.Buffer)
		require.NoError(t, EncodeImage(buf, ext, i), ext)
		cfg, _, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err, ext)
		assert.Equal(t, 20, cfg.Width)
		assert.Equal(t, 10, cfg.Height)
	}
	err := EncodeImage(new(bytes.Buffer), "tif", i)
	assert.IsType(t, &merrors.ErrUnknownImageExtension{}, err)
}

func TestRespondWithImage(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, RespondWithImage("png", w, []byte("abc")))
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "abc", w.Body.String())
	assert.Error(t, RespondWithImage("bmp", httptest.NewRecorder(), []byte("abc")))
}

func TestTranscodeImage(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, EncodeImage(buf, "png", CreateImage(8, 4, color.White)))

	same, err := TranscodeImage(buf.Bytes(), "png")
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), same)

	out, err := TranscodeImage(buf.Bytes(), ".jpeg")
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 8, cfg.Width)

	_, err = TranscodeImage([]byte("not an image"), "gif")
	assert.Error(t, err)
}
