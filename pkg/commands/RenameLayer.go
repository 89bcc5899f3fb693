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

// RenameLayer renames a layer.  References to the layer from other layers are not rewritten.
type RenameLayer struct {
	old string
	new string
}

func NewRenameLayer(m *mapfile.Map, name string, newName string) (*RenameLayer, error) {
	if m.Layer(name) == nil {
		return nil, &merrors.ErrMissingObject{Type: mapfile.TypeNameLayer, Name: name}
	}
	return &RenameLayer{old: name, new: newName}, nil
}

func (c *RenameLayer) rename(m *mapfile.Map, from string, to string) error {
	l := m.Layer(from)
	if l == nil {
		return &merrors.ErrMissingObject{Type: mapfile.TypeNameLayer, Name: from}
	}
	return l.SetName(to)
}

func (c *RenameLayer) Apply(m *mapfile.Map) error {
	return c.rename(m, c.old, c.new)
}

func (c *RenameLayer) Revert(m *mapfile.Map) error {
	return c.rename(m, c.new, c.old)
}

func (c *RenameLayer) Description() string {
	return fmt.Sprintf("Rename layer '%s' to '%s'", c.old, c.new)
}
