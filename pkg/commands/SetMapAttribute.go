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

// MapAttribute describes an attribute of a map that can be changed by a command.
type MapAttribute[T any] struct {
	Name   string
	Get    func(m *mapfile.Map) T
	Set    func(m *mapfile.Map, value T) error
	Format func(value T) string
}

func (a *MapAttribute[T]) format(value T) string {
	if a.Format != nil {
		return a.Format(value)
	}
	return fmt.Sprint(value)
}

// SetMapAttribute changes one attribute of the map.
type SetMapAttribute[T any] struct {
	attribute *MapAttribute[T]
	old       T
	new       T
}

func NewSetMapAttribute[T any](attribute *MapAttribute[T], m *mapfile.Map, value T) *SetMapAttribute[T] {
	return &SetMapAttribute[T]{attribute: attribute, old: attribute.Get(m), new: value}
}

func (c *SetMapAttribute[T]) Apply(m *mapfile.Map) error {
	return c.attribute.Set(m, c.new)
}

func (c *SetMapAttribute[T]) Revert(m *mapfile.Map) error {
	return c.attribute.Set(m, c.old)
}

func (c *SetMapAttribute[T]) Description() string {
	return fmt.Sprintf("Change map %s from '%s' to '%s'", c.attribute.Name, c.attribute.format(c.old), c.attribute.format(c.new))
}
