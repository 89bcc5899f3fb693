// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"context"
	"fmt"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Result is the outcome of a render.  On failure Buffer is nil and Message describes the error.
type Result struct {
	Buffer  []byte `json:"-" yaml:"-"`
	Length  int    `json:"length" yaml:"length"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (r *Result) OK() bool {
	return r.Buffer != nil
}

// Bridge renders a copy of the map with the renderer.  It never panics and never returns an error.
func Bridge(ctx context.Context, r Renderer, m *mapfile.Map, width int, height int) (result *Result) {
	defer func() {
		if p := recover(); p != nil {
			result = &Result{Message: (&merrors.ErrRender{Message: fmt.Sprint(p)}).Error()}
		}
	}()
	if r == nil {
		return &Result{Message: (&merrors.ErrRender{Message: "no renderer"}).Error()}
	}
	if m == nil {
		return &Result{Message: (&merrors.ErrRender{Message: "map is not loaded"}).Error()}
	}
	b, err := r.Render(ctx, m.Clone(), width, height)
	if err != nil {
		return &Result{Message: err.Error()}
	}
	if len(b) == 0 {
		return &Result{Message: (&merrors.ErrRender{Message: "renderer returned an empty image"}).Error()}
	}
	return &Result{Buffer: b, Length: len(b)}
}
