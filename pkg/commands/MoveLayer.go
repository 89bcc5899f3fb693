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

// MoveLayer changes the drawing order of a layer.
type MoveLayer struct {
	layer string
	old   int
	new   int
}

func NewMoveLayer(m *mapfile.Map, name string, index int) (*MoveLayer, error) {
	i := m.LayerIndex(name)
	if i == -1 {
		return nil, &merrors.ErrMissingObject{Type: mapfile.TypeNameLayer, Name: name}
	}
	return &MoveLayer{layer: name, old: i, new: index}, nil
}

func (c *MoveLayer) Apply(m *mapfile.Map) error {
	return m.MoveLayer(c.layer, c.new)
}

func (c *MoveLayer) Revert(m *mapfile.Map) error {
	return m.MoveLayer(c.layer, c.old)
}

func (c *MoveLayer) Description() string {
	return fmt.Sprintf("Move layer '%s' from position %d to %d", c.layer, c.old, c.new)
}
