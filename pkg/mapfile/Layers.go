// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"fmt"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Layers returns the layers in drawing order.
func (m *Map) Layers() []*Layer {
	return append(make([]*Layer, 0, len(m.layers)), m.layers...)
}

func (m *Map) LayerNames() []string {
	names := make([]string, 0, len(m.layers))
	for _, l := range m.layers {
		names = append(names, l.name)
	}
	return names
}

// Layer returns the layer with the given name or nil.
func (m *Map) Layer(name string) *Layer {
	if i := m.LayerIndex(name); i >= 0 {
		return m.layers[i]
	}
	return nil
}

// LayerIndex returns the index of the layer with the given name or -1.
func (m *Map) LayerIndex(name string) int {
	for i, l := range m.layers {
		if l.name == name {
			return i
		}
	}
	return -1
}

// AddLayer appends the layer to the end of the map.
func (m *Map) AddLayer(l *Layer) error {
	return m.InsertLayer(len(m.layers), l)
}

// InsertLayer inserts the layer at the index.
func (m *Map) InsertLayer(index int, l *Layer) error {
	if l == nil {
		return &merrors.ErrMissingRequiredParameter{Name: "layer"}
	}
	if l.name == "" {
		return &merrors.ErrInvalidParameter{Name: "name", Value: l.name, Reason: "layer name cannot be blank"}
	}
	if m.Layer(l.name) != nil {
		return &merrors.ErrDuplicateName{Type: TypeNameLayer, Name: l.name}
	}
	if index < 0 || index > len(m.layers) {
		return &merrors.ErrInvalidParameter{Name: "index", Value: fmt.Sprint(index), Reason: "out of range"}
	}
	l.parent = m
	m.layers = append(m.layers, nil)
	copy(m.layers[index+1:], m.layers[index:])
	m.layers[index] = l
	return nil
}

// RemoveLayer removes the layer with the given name and returns it with its former index.
func (m *Map) RemoveLayer(name string) (*Layer, int, error) {
	i := m.LayerIndex(name)
	if i == -1 {
		return nil, -1, &merrors.ErrMissingObject{Type: TypeNameLayer, Name: name}
	}
	l := m.layers[i]
	m.layers = append(m.layers[:i], m.layers[i+1:]...)
	l.parent = nil
	return l, i, nil
}

// MoveLayer moves the layer with the given name to the index.
func (m *Map) MoveLayer(name string, index int) error {
	if index < 0 || index >= len(m.layers) {
		return &merrors.ErrInvalidParameter{Name: "index", Value: fmt.Sprint(index), Reason: "out of range"}
	}
	l, _, err := m.RemoveLayer(name)
	if err != nil {
		return err
	}
	return m.InsertLayer(index, l)
}
