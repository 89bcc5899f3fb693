// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"strings"
)

// Projection is a PROJECTION block as a list of parameters, such as "init=epsg:4326" or "proj=utm".
type Projection struct {
	Params []string
}

func NewProjection(params ...string) Projection {
	return Projection{Params: append(make([]string, 0, len(params)), params...)}
}

func (p Projection) IsSet() bool {
	return len(p.Params) > 0
}

// EPSG returns the EPSG code if the projection is a single init=epsg:N parameter.
func (p Projection) EPSG() string {
	if len(p.Params) != 1 {
		return ""
	}
	str := strings.ToLower(p.Params[0])
	if strings.HasPrefix(str, "init=epsg:") {
		return p.Params[0][len("init=epsg:"):]
	}
	if strings.HasPrefix(str, "epsg:") {
		return p.Params[0][len("epsg:"):]
	}
	return ""
}

func (p Projection) String() string {
	return strings.Join(p.Params, " ")
}

func (p Projection) Clone() Projection {
	return NewProjection(p.Params...)
}

func (p Projection) Equal(o Projection) bool {
	if len(p.Params) != len(o.Params) {
		return false
	}
	for i := range p.Params {
		if p.Params[i] != o.Params[i] {
			return false
		}
	}
	return true
}
