// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Color is an RGB color as used by IMAGECOLOR.
type Color struct {
	Red   int
	Green int
	Blue  int
}

func (c Color) Validate() error {
	for _, x := range []struct {
		name  string
		value int
	}{{"red", c.Red}, {"green", c.Green}, {"blue", c.Blue}} {
		if x.value < 0 || x.value > 255 {
			return &merrors.ErrInvalidParameter{Name: x.name, Value: fmt.Sprint(x.value), Reason: "expecting 0 to 255"}
		}
	}
	return nil
}

// RGBA returns the color as an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c.Red), G: uint8(c.Green), B: uint8(c.Blue), A: 0xff}
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

func (c Color) String() string {
	return fmt.Sprintf("%d %d %d", c.Red, c.Green, c.Blue)
}

// ParseHexColor parses a "#rrggbb" string.  A trailing alpha component, as in "#rrggbbaa", is ignored.
func ParseHexColor(str string) (*Color, error) {
	hex := strings.TrimPrefix(str, "#")
	if len(hex) == len(str) || (len(hex) != 6 && len(hex) != 8) {
		return nil, &merrors.ErrInvalidParameter{Name: "color", Value: str, Reason: "expecting #rrggbb"}
	}
	rgb, err := strconv.ParseUint(hex[0:6], 16, 32)
	if err != nil {
		return nil, &merrors.ErrInvalidParameter{Name: "color", Value: str, Reason: "expecting #rrggbb"}
	}
	return &Color{Red: int(rgb >> 16 & 0xff), Green: int(rgb >> 8 & 0xff), Blue: int(rgb & 0xff)}, nil
}
