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

// KeyValues describes an ordered key value list of a map, such as its metadata, that is changed one key at a time.
type KeyValues struct {
	Name    string
	Get     func(m *mapfile.Map) (*mapfile.Metadata, error)
	Replace func(m *mapfile.Map, values *mapfile.Metadata) error
}

var (
	MapMetadata = &KeyValues{
		Name: "map metadata",
		Get:  func(m *mapfile.Map) (*mapfile.Metadata, error) { return m.Metadata(), nil },
		Replace: func(m *mapfile.Map, values *mapfile.Metadata) error {
			m.ReplaceMetadata(values)
			return nil
		},
	}
	MapConfig = &KeyValues{
		Name: "map config option",
		Get:  func(m *mapfile.Map) (*mapfile.Metadata, error) { return m.Config(), nil },
		Replace: func(m *mapfile.Map, values *mapfile.Metadata) error {
			m.ReplaceConfig(values)
			return nil
		},
	}
)

// LayerMetadata returns the metadata of the layer with the given name.
func LayerMetadata(layer string) *KeyValues {
	find := func(m *mapfile.Map) (*mapfile.Layer, error) {
		l := m.Layer(layer)
		if l == nil {
			return nil, &merrors.ErrMissingObject{Type: mapfile.TypeNameLayer, Name: layer}
		}
		return l, nil
	}
	return &KeyValues{
		Name: "layer metadata",
		Get: func(m *mapfile.Map) (*mapfile.Metadata, error) {
			l, err := find(m)
			if err != nil {
				return nil, err
			}
			return l.Metadata(), nil
		},
		Replace: func(m *mapfile.Map, values *mapfile.Metadata) error {
			l, err := find(m)
			if err != nil {
				return err
			}
			l.ReplaceMetadata(values)
			return nil
		},
	}
}

// SetKeyValue sets the value of one key.  A blank value removes the key.
// The whole list is captured at construction and restored on revert, so keys keep their position.
type SetKeyValue struct {
	values *KeyValues
	key    string
	prior  *mapfile.Metadata
	new    string
}

func NewSetKeyValue(values *KeyValues, m *mapfile.Map, key string, value string) (*SetKeyValue, error) {
	prior, err := values.Get(m)
	if err != nil {
		return nil, err
	}
	return &SetKeyValue{values: values, key: key, prior: prior, new: value}, nil
}

func (c *SetKeyValue) Apply(m *mapfile.Map) error {
	current, err := c.values.Get(m)
	if err != nil {
		return err
	}
	if c.new == "" {
		current.Delete(c.key)
	} else {
		current.Set(c.key, c.new)
	}
	return c.values.Replace(m, current)
}

func (c *SetKeyValue) Revert(m *mapfile.Map) error {
	return c.values.Replace(m, c.prior.Clone())
}

func (c *SetKeyValue) Description() string {
	return fmt.Sprintf("Change %s[%s] from '%s' to '%s'", c.values.Name, c.key, c.prior.Value(c.key), c.new)
}

func NewSetMapMetadata(m *mapfile.Map, key string, value string) Command {
	return &SetKeyValue{values: MapMetadata, key: key, prior: m.Metadata(), new: value}
}

func NewSetConfigOption(m *mapfile.Map, key string, value string) Command {
	return &SetKeyValue{values: MapConfig, key: key, prior: m.Config(), new: value}
}

func NewSetLayerMetadata(m *mapfile.Map, layer string, key string, value string) (*SetKeyValue, error) {
	return NewSetKeyValue(LayerMetadata(layer), m, key, value)
}
