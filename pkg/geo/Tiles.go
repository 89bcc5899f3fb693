// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"math"
)

func LongitudeToTile(lon float64, z int) int {
	return int((180 + lon) * (math.Pow(2, float64(z)) / 360.0))
}

func LatitudeToTile(lat float64, z int) int {
	lat = math.Max(-MaxLatitude, math.Min(MaxLatitude, lat))
	r := lat / R2D
	return int((1 - math.Log(math.Tan(r)+1/math.Cos(r))/math.Pi) / 2 * math.Pow(2, float64(z)))
}

func TileToLongitude(x int, z int) float64 {
	return float64(x)/math.Pow(2, float64(z))*360 - 180
}

func TileToLatitude(y int, z int) float64 {
	n := math.Pi - 2*math.Pi*float64(y)/math.Pow(2, float64(z))
	return R2D * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))
}

// Graticule returns the longitudes and latitudes of the tile edges at zoom z inside the bounding box.
func Graticule(minx float64, miny float64, maxx float64, maxy float64, z int) ([]float64, []float64) {
	lons := make([]float64, 0)
	for x := LongitudeToTile(minx, z); x <= LongitudeToTile(maxx, z)+1; x++ {
		if lon := TileToLongitude(x, z); lon > minx && lon < maxx {
			lons = append(lons, lon)
		}
	}
	lats := make([]float64, 0)
	for y := LatitudeToTile(maxy, z); y <= LatitudeToTile(miny, z)+1; y++ {
		if lat := TileToLatitude(y, z); lat > miny && lat < maxy {
			lats = append(lats, lat)
		}
	}
	return lons, lats
}

// GraticuleZoom returns the zoom level at which about n tiles span the width in degrees.
func GraticuleZoom(width float64, n int) int {
	if width <= 0 || n <= 0 {
		return 0
	}
	z := int(math.Round(math.Log2(360.0 * float64(n) / width)))
	if z < 0 {
		return 0
	}
	return z
}
