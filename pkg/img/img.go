// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package img creates and encodes raster images.
package img

const (
	DefaultJpegQuality = 90
)

// ContentTypes maps an image extension to its content type.
var ContentTypes = map[string]string{
	"gif":  "image/gif",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
}

// Extension returns the image extension for a content type, or a blank string.
func Extension(contentType string) string {
	switch contentType {
	case "image/gif":
		return "gif"
	case "image/jpeg":
		return "jpg"
	case "image/png", "image/png; mode=8bit":
		return "png"
	}
	return ""
}
