// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package render produces preview images of a map.
//
// Renderers receive a copy of the map and return the encoded image.  Bridge wraps a renderer so that callers
// always get a Result, with either the image bytes or a message describing the failure.
package render

import (
	"context"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// Renderer renders a map to an encoded image.  A zero width or height means the map SIZE, or the default size.
type Renderer interface {
	Render(ctx context.Context, m *mapfile.Map, width int, height int) ([]byte, error)
}
