// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"encoding/json"
)

// Polygon is a list of linear rings.  The first ring is the exterior.
type Polygon [][][]float64

// NewBoundingBox returns the counter-clockwise polygon of the bounding box.
func NewBoundingBox(minx float64, miny float64, maxx float64, maxy float64) Polygon {
	return Polygon{{
		{minx, miny},
		{maxx, miny},
		{maxx, maxy},
		{minx, maxy},
		{minx, miny},
	}}
}

func (p Polygon) Type() string {
	return TypeNamePolygon
}

func (p *Polygon) UnmarshalJSON(b []byte) error {
	s := struct {
		Type        string        `json:"type"`
		Coordinates [][][]float64 `json:"coordinates"`
	}{}
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	*p = s.Coordinates
	return nil
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        TypeNamePolygon,
		"coordinates": [][][]float64(p),
	})
}
