// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"strings"

	"github.com/spatialcurrent/go-mapfile/pkg/img"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// ImageFormat is the encoding of a rendered image.
type ImageFormat struct {
	Extension   string
	Transparent bool
}

var drivers = map[string]string{
	"AGG/PNG":  "png",
	"AGG/PNG8": "png",
	"AGG/JPEG": "jpg",
	"GD/GIF":   "gif",
	"GD/PNG":   "png",
	"CAIRO/PNG": "png",
}

// Format returns the image format for the map IMAGETYPE.  The output format named by IMAGETYPE is used if
// present, otherwise the IMAGETYPE is read as an extension.  Defaults to png.
func Format(m *mapfile.Map) ImageFormat {
	imageType := m.ImageType()
	for _, f := range m.OutputFormats() {
		if !strings.EqualFold(f.Name(), imageType) {
			continue
		}
		if ext := strings.ToLower(f.Extension()); img.ContentTypes[ext] != "" {
			return ImageFormat{Extension: ext, Transparent: f.Transparent()}
		}
		if ext, ok := drivers[strings.ToUpper(f.FullDriver())]; ok {
			return ImageFormat{Extension: ext, Transparent: f.Transparent()}
		}
		if ext := img.Extension(f.MimeType()); ext != "" {
			return ImageFormat{Extension: ext, Transparent: f.Transparent()}
		}
	}
	switch strings.ToLower(imageType) {
	case "jpeg", "jpg":
		return ImageFormat{Extension: "jpg"}
	case "gif":
		return ImageFormat{Extension: "gif"}
	}
	return ImageFormat{Extension: "png"}
}
