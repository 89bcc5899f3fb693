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

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// RemoveLayer removes a layer.  Revert restores a copy of the layer at its former index.
type RemoveLayer struct {
	layer *mapfile.Layer
	index int
}

func NewRemoveLayer(m *mapfile.Map, name string) (*RemoveLayer, error) {
	i := m.LayerIndex(name)
	if i == -1 {
		return nil, &merrors.ErrMissingObject{Type: mapfile.TypeNameLayer, Name: name}
	}
	return &RemoveLayer{layer: m.Layers()[i].Clone(), index: i}, nil
}

func (c *RemoveLayer) Apply(m *mapfile.Map) error {
	_, _, err := m.RemoveLayer(c.layer.Name())
	return err
}

func (c *RemoveLayer) Revert(m *mapfile.Map) error {
	index := c.index
	if n := len(m.Layers()); index > n {
		index = n
	}
	return m.InsertLayer(index, c.layer.Clone())
}

func (c *RemoveLayer) Description() string {
	return fmt.Sprintf("Delete layer '%s'", c.layer.Name())
}
