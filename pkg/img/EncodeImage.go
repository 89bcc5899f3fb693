// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package img

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// EncodeImage encodes the image to the writer using the format for the extension.
func EncodeImage(w io.Writer, ext string, i image.Image) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "gif":
		return gif.Encode(w, i, nil)
	case "jpeg", "jpg":
		return jpeg.Encode(w, i, &jpeg.Options{Quality: DefaultJpegQuality})
	case "png":
		return png.Encode(w, i)
	}
	return &merrors.ErrUnknownImageExtension{Extension: ext}
}
