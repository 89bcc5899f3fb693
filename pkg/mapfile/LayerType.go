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

type LayerType string

const (
	LayerTypePoint      LayerType = "POINT"
	LayerTypeLine       LayerType = "LINE"
	LayerTypePolygon    LayerType = "POLYGON"
	LayerTypeRaster     LayerType = "RASTER"
	LayerTypeAnnotation LayerType = "ANNOTATION"
	LayerTypeQuery      LayerType = "QUERY"
	LayerTypeCircle     LayerType = "CIRCLE"
	LayerTypeChart      LayerType = "CHART"
)

var LayerTypes = []LayerType{
	LayerTypePoint,
	LayerTypeLine,
	LayerTypePolygon,
	LayerTypeRaster,
	LayerTypeAnnotation,
	LayerTypeQuery,
	LayerTypeCircle,
	LayerTypeChart,
}

// Vector returns true for every layer type except raster.
func (t LayerType) Vector() bool {
	return t != LayerTypeRaster
}

func ParseLayerType(str string) (LayerType, error) {
	for _, t := range LayerTypes {
		if strings.EqualFold(string(t), str) {
			return t, nil
		}
	}
	return "", &merrors.ErrInvalidParameter{Name: "type", Value: str}
}
