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

// LayerAttribute describes an attribute of a layer that can be changed by a command.
type LayerAttribute[T any] struct {
	Name   string
	Get    func(l *mapfile.Layer) T
	Set    func(l *mapfile.Layer, value T) error
	Format func(value T) string
}

func (a *LayerAttribute[T]) format(value T) string {
	if a.Format != nil {
		return a.Format(value)
	}
	return fmt.Sprint(value)
}

// SetLayerAttribute changes one attribute of the layer with the given name.
type SetLayerAttribute[T any] struct {
	attribute *LayerAttribute[T]
	layer     string
	old       T
	new       T
}

// NewSetLayerAttribute returns a command changing the attribute of the named layer, which must exist.
func NewSetLayerAttribute[T any](attribute *LayerAttribute[T], m *mapfile.Map, layer string, value T) (*SetLayerAttribute[T], error) {
	l := m.Layer(layer)
	if l == nil {
		return nil, &merrors.ErrMissingObject{Type: mapfile.TypeNameLayer, Name: layer}
	}
	return &SetLayerAttribute[T]{attribute: attribute, layer: layer, old: attribute.Get(l), new: value}, nil
}

func (c *SetLayerAttribute[T]) set(m *mapfile.Map, value T) error {
	l := m.Layer(c.layer)
	if l == nil {
		return &merrors.ErrMissingObject{Type: mapfile.TypeNameLayer, Name: c.layer}
	}
	return c.attribute.Set(l, value)
}

func (c *SetLayerAttribute[T]) Apply(m *mapfile.Map) error {
	return c.set(m, c.new)
}

func (c *SetLayerAttribute[T]) Revert(m *mapfile.Map) error {
	return c.set(m, c.old)
}

func (c *SetLayerAttribute[T]) Description() string {
	return fmt.Sprintf("Change layer %s from '%s' to '%s'", c.attribute.Name, c.attribute.format(c.old), c.attribute.format(c.new))
}
