// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package geo contains the map geometry used when previewing a map: scale denominators and tile graticules.
package geo

import (
	"math"
)

var R2D = 180 / math.Pi

const (
	MaxLatitude = 85.0511287798
)
