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

type Point []float64

func (p Point) Type() string {
	return TypeNamePoint
}

func (p *Point) UnmarshalJSON(b []byte) error {
	s := struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	}{}
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	*p = s.Coordinates
	return nil
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        TypeNamePoint,
		"coordinates": []float64(p),
	})
}
