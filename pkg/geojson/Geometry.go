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

type Geometry interface {
	Type() string
	json.Marshaler
}

// UnmarshalGeometry decodes a Point or Polygon geometry.
func UnmarshalGeometry(b []byte) (Geometry, error) {
	g := struct {
		Type string `json:"type"`
	}{}
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, err
	}
	switch g.Type {
	case TypeNamePoint:
		p := Point{}
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
		return p, nil
	case TypeNamePolygon:
		p := Polygon{}
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, &ErrUnknownGeometryType{Type: g.Type}
}

type ErrUnknownGeometryType struct {
	Type string
}

func (e *ErrUnknownGeometryType) Error() string {
	return "unknown geometry type " + e.Type
}
