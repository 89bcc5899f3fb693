// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Extent returns the map extent as a polygon feature, with the map name, units and projection as properties.
// The coordinates are in the map projection.
func Extent(m *mapfile.Map) (*Feature, error) {
	e := m.Extent()
	if !e.Valid() {
		return nil, &merrors.ErrInvalidParameter{Name: "extent", Value: e.String(), Reason: "the map has no valid extent"}
	}
	properties := map[string]interface{}{
		"name":       m.Name(),
		"units":      string(m.Units()),
		"projection": m.Projection().String(),
	}
	if epsg := m.Projection().EPSG(); len(epsg) > 0 {
		properties["epsg"] = epsg
	}
	return &Feature{
		Id:         m.Name(),
		Properties: properties,
		Bbox:       e.Array(),
		Geometry:   NewBoundingBox(e.MinX, e.MinY, e.MaxX, e.MaxY),
	}, nil
}

// Center returns the center of the map extent.
func Center(m *mapfile.Map) (Point, error) {
	e := m.Extent()
	if !e.Valid() {
		return nil, &merrors.ErrInvalidParameter{Name: "extent", Value: e.String(), Reason: "the map has no valid extent"}
	}
	return Point{e.MinX + e.Width()/2, e.MinY + e.Height()/2}, nil
}
