// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"github.com/pkg/errors"
)

// Names are the renderers accepted by New.
var Names = []string{PreviewName, "map2img", "shp2img"}

// New returns the renderer with the given name.
// External renderers write their temporary mapfile into dir.
func New(name string, dir string) (Renderer, error) {
	switch name {
	case "", PreviewName:
		return NewPreview(), nil
	case "map2img", "shp2img":
		return NewCommand(name, dir), nil
	}
	return nil, errors.Errorf("unknown renderer %q, expecting one of %v", name, Names)
}
