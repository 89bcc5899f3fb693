// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

// ScaleDenominator returns the scale denominator of a map showing width ground units across widthPixels pixels,
// given the number of inches in one ground unit and the resolution in dots per inch.
// Returns 0 if the scale cannot be computed.
func ScaleDenominator(width float64, widthPixels int, inchesPerUnit float64, resolution float64) float64 {
	if width <= 0 || widthPixels <= 1 || inchesPerUnit <= 0 || resolution <= 0 {
		return 0
	}
	md := float64(widthPixels-1) / (resolution * inchesPerUnit)
	return width / md
}
