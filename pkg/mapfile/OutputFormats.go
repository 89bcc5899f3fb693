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

// OutputFormats returns the live output formats.
func (m *Map) OutputFormats() []*OutputFormat {
	return append(make([]*OutputFormat, 0, len(m.outputFormats)), m.outputFormats...)
}

// OutputFormat returns the live output format with the given name or nil.
func (m *Map) OutputFormat(name string) *OutputFormat {
	if i := m.OutputFormatIndex(name); i >= 0 {
		return m.outputFormats[i]
	}
	return nil
}

func (m *Map) OutputFormatIndex(name string) int {
	for i, f := range m.outputFormats {
		if f.name == name {
			return i
		}
	}
	return -1
}

// AddOutputFormat appends the output format.
func (m *Map) AddOutputFormat(f *OutputFormat) error {
	return m.InsertOutputFormat(len(m.outputFormats), f)
}

// InsertOutputFormat inserts the output format at the index.
// A tombstone with the same original name is dropped, since the format is live again.
func (m *Map) InsertOutputFormat(index int, f *OutputFormat) error {
	if f == nil {
		return &merrors.ErrMissingRequiredParameter{Name: "output format"}
	}
	if f.name == "" {
		return &merrors.ErrInvalidParameter{Name: "name", Value: f.name, Reason: "output format name cannot be blank"}
	}
	if m.OutputFormat(f.name) != nil {
		return &merrors.ErrDuplicateName{Type: TypeNameOutputFormat, Name: f.name}
	}
	if index < 0 || index > len(m.outputFormats) {
		return &merrors.ErrInvalidParameter{Name: "index", Value: fmt.Sprint(index), Reason: "out of range"}
	}
	for i, r := range m.removed {
		if r.originalName == f.originalName {
			m.removed = append(m.removed[:i], m.removed[i+1:]...)
			break
		}
	}
	f.parent = m
	m.outputFormats = append(m.outputFormats, nil)
	copy(m.outputFormats[index+1:], m.outputFormats[index:])
	m.outputFormats[index] = f
	return nil
}

// SetOutputFormatName renames an output format, failing if the new name is already used.
func (m *Map) SetOutputFormatName(name string, newName string) error {
	f := m.OutputFormat(name)
	if f == nil {
		return &merrors.ErrMissingObject{Type: TypeNameOutputFormat, Name: name}
	}
	return f.SetName(newName)
}

// ReplaceOutputFormat replaces the output format with the given name by f at the same index and returns the replaced output format.
func (m *Map) ReplaceOutputFormat(name string, f *OutputFormat) (*OutputFormat, error) {
	if f == nil {
		return nil, &merrors.ErrMissingRequiredParameter{Name: "output format"}
	}
	i := m.OutputFormatIndex(name)
	if i == -1 {
		return nil, &merrors.ErrMissingObject{Type: TypeNameOutputFormat, Name: name}
	}
	if f.name == "" {
		return nil, &merrors.ErrInvalidParameter{Name: "name", Value: f.name, Reason: "output format name cannot be blank"}
	}
	if j := m.OutputFormatIndex(f.name); j != -1 && j != i {
		return nil, &merrors.ErrDuplicateName{Type: TypeNameOutputFormat, Name: f.name}
	}
	old := m.outputFormats[i]
	old.parent = nil
	f.parent = m
	m.outputFormats[i] = f
	return old, nil
}

// RemoveOutputFormat removes the output format with the given name and returns it with its former index.
// Output formats added during this session are discarded, while the others are kept as tombstones in the removed state.
func (m *Map) RemoveOutputFormat(name string) (*OutputFormat, int, error) {
	i := m.OutputFormatIndex(name)
	if i == -1 {
		return nil, -1, &merrors.ErrMissingObject{Type: TypeNameOutputFormat, Name: name}
	}
	f := m.outputFormats[i]
	m.outputFormats = append(m.outputFormats[:i], m.outputFormats[i+1:]...)
	f.parent = nil
	if !f.state.New() {
		f.state = StateRemoved
		m.removed = append(m.removed, f)
	}
	return f, i, nil
}

// RemovedOutputFormats returns the tombstoned output formats.
func (m *Map) RemovedOutputFormats() []*OutputFormat {
	return append(make([]*OutputFormat, 0, len(m.removed)), m.removed...)
}

// MarkSaved records that the map was written to disk.
func (m *Map) MarkSaved() {
	for _, f := range m.outputFormats {
		switch f.state {
		case StateAdded:
			f.state = StateAddedSaved
		case StateModified:
			f.state = StateUnchanged
		}
	}
	m.removed = make([]*OutputFormat, 0)
}
