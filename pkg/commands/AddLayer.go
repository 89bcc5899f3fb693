// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"fmt"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// AddLayer appends a copy of a layer to the map.
type AddLayer struct {
	layer *mapfile.Layer
	index int
}

func NewAddLayer(m *mapfile.Map, l *mapfile.Layer) *AddLayer {
	return &AddLayer{layer: l.Clone(), index: len(m.Layers())}
}

func (c *AddLayer) Apply(m *mapfile.Map) error {
	index := c.index
	if n := len(m.Layers()); index > n {
		index = n
	}
	return m.InsertLayer(index, c.layer.Clone())
}

func (c *AddLayer) Revert(m *mapfile.Map) error {
	_, _, err := m.RemoveLayer(c.layer.Name())
	return err
}

func (c *AddLayer) Description() string {
	return fmt.Sprintf("Create new layer '%s'", c.layer.Name())
}
