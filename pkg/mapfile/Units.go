// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

type Units string

const (
	UnitsInches        Units = "INCHES"
	UnitsFeet          Units = "FEET"
	UnitsMiles         Units = "MILES"
	UnitsMeters        Units = "METERS"
	UnitsKilometers    Units = "KILOMETERS"
	UnitsDD            Units = "DD"
	UnitsPixels        Units = "PIXELS"
	UnitsPercentages   Units = "PERCENTAGES"
	UnitsNauticalMiles Units = "NAUTICALMILES"
)

const DefaultUnits = UnitsMeters

var AllUnits = []Units{
	UnitsInches,
	UnitsFeet,
	UnitsMiles,
	UnitsMeters,
	UnitsKilometers,
	UnitsDD,
	UnitsPixels,
	UnitsPercentages,
	UnitsNauticalMiles,
}

// InchesPerUnit is the number of inches in one unit, as used to compute scale denominators.
// Decimal degrees are approximated at the equator.
var InchesPerUnit = map[Units]float64{
	UnitsInches:        1,
	UnitsFeet:          12,
	UnitsMiles:         63360.0,
	UnitsMeters:        39.3701,
	UnitsKilometers:    39370.1,
	UnitsDD:            4374754,
	UnitsPixels:        1,
	UnitsNauticalMiles: 72913.3858,
}

func ParseUnits(str string) (Units, error) {
	for _, u := range AllUnits {
		if strings.EqualFold(string(u), str) {
			return u, nil
		}
	}
	return "", &merrors.ErrInvalidParameter{Name: "units", Value: str}
}
