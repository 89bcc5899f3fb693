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

type Feature struct {
	Id         string                 `json:"id,omitempty" yaml:"id,omitempty"`
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Bbox       []float64              `json:"bbox,omitempty" yaml:"bbox,omitempty"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

func (f *Feature) Type() string {
	return TypeNameFeature
}

func (f *Feature) UnmarshalJSON(b []byte) error {
	s := struct {
		Id         string                 `json:"id"`
		Properties map[string]interface{} `json:"properties"`
		Bbox       []float64              `json:"bbox"`
		Geometry   json.RawMessage        `json:"geometry"`
	}{}

	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	f.Id = s.Id
	f.Properties = s.Properties
	f.Bbox = s.Bbox
	f.Geometry = nil

	if len(s.Geometry) > 0 && string(s.Geometry) != "null" {
		g, err := UnmarshalGeometry(s.Geometry)
		if err != nil {
			return err
		}
		f.Geometry = g
	}

	return nil
}

func (f Feature) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"type":       TypeNameFeature,
		"properties": f.Properties,
		"geometry":   f.Geometry,
	}
	if len(f.Id) > 0 {
		m["id"] = f.Id
	}
	if len(f.Bbox) > 0 {
		m["bbox"] = f.Bbox
	}
	return json.Marshal(m)
}

type FeatureCollection struct {
	Features []*Feature `json:"features" yaml:"features"`
}

func (c FeatureCollection) MarshalJSON() ([]byte, error) {
	features := c.Features
	if features == nil {
		features = []*Feature{}
	}
	return json.Marshal(map[string]interface{}{
		"type":     TypeNameFeatureCollection,
		"features": features,
	})
}
