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
	_ "image/gif"
	_ "image/jpeg"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// TranscodeImage returns the encoded image in the format for the extension.
// If the image is already in that format, the input is returned as is.
func TranscodeImage(b []byte, ext string) ([]byte, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	if Extension(http.DetectContentType(b)) == ext {
		return b, nil
	}
	i, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "error decoding image")
	}
	buf := new(bytes.Buffer)
	if err := EncodeImage(buf, ext, i); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
