// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

type ImageMode string

const (
	ImageModeUndefined ImageMode = ""
	ImageModePC256     ImageMode = "PC256"
	ImageModeRGB       ImageMode = "RGB"
	ImageModeRGBA      ImageMode = "RGBA"
	ImageModeInt16     ImageMode = "INT16"
	ImageModeFloat32   ImageMode = "FLOAT32"
	ImageModeByte      ImageMode = "BYTE"
	ImageModeFeature   ImageMode = "FEATURE"
)

var ImageModes = []ImageMode{
	ImageModePC256,
	ImageModeRGB,
	ImageModeRGBA,
	ImageModeInt16,
	ImageModeFloat32,
	ImageModeByte,
	ImageModeFeature,
}

func ParseImageMode(str string) (ImageMode, error) {
	for _, m := range ImageModes {
		if strings.EqualFold(string(m), str) {
			return m, nil
		}
	}
	return ImageModeUndefined, &merrors.ErrInvalidParameter{Name: "imagemode", Value: str}
}
