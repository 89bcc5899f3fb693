// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"fmt"
)

// Extent is a bounding box as minx, miny, maxx, maxy.
type Extent struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// DefaultExtent is the unset extent.
var DefaultExtent = Extent{MinX: -1, MinY: -1, MaxX: -1, MaxY: -1}

func (e Extent) IsSet() bool {
	return e != DefaultExtent
}

// Valid returns true if the extent has a positive area.
func (e Extent) Valid() bool {
	return e.MaxX > e.MinX && e.MaxY > e.MinY
}

func (e Extent) Width() float64 {
	return e.MaxX - e.MinX
}

func (e Extent) Height() float64 {
	return e.MaxY - e.MinY
}

// Array returns the extent as [minx, miny, maxx, maxy].
func (e Extent) Array() []float64 {
	return []float64{e.MinX, e.MinY, e.MaxX, e.MaxY}
}

func (e Extent) String() string {
	return fmt.Sprintf("%g %g %g %g", e.MinX, e.MinY, e.MaxX, e.MaxY)
}
