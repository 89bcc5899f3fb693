// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package img

import (
	"image"
	"image/color"
	"image/draw"
)

// CreateImage returns an image of the given size filled with the color.
func CreateImage(width int, height int, c color.Color) *image.RGBA {
	i := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(i, i.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return i
}
