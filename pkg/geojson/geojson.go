// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package geojson encodes map extents as GeoJSON.
package geojson

const (
	TypeNameFeature           = "Feature"
	TypeNameFeatureCollection = "FeatureCollection"
	TypeNamePoint             = "Point"
	TypeNamePolygon           = "Polygon"
)
