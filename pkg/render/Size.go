// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"fmt"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Size returns the image size to render.  If width or height is not positive, the map SIZE is used,
// or DefaultWidth and DefaultHeight if the map has no size.  Sizes above the map MAXSIZE are rejected.
func Size(m *mapfile.Map, width int, height int) (int, int, error) {
	if width <= 0 || height <= 0 {
		if m.HasSize() {
			width, height = m.Width(), m.Height()
		} else {
			width, height = DefaultWidth, DefaultHeight
		}
	}
	if width > m.MaxSize() || height > m.MaxSize() {
		return 0, 0, &merrors.ErrRender{Message: fmt.Sprintf("image size %d x %d exceeds MAXSIZE %d", width, height, m.MaxSize())}
	}
	return width, height, nil
}
