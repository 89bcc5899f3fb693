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

// RemoveOutputFormat removes an output format.
// Revert restores a copy of the output format, including its prior state, at its former index.
type RemoveOutputFormat struct {
	format *mapfile.OutputFormat
	index  int
}

func NewRemoveOutputFormat(m *mapfile.Map, name string) (*RemoveOutputFormat, error) {
	i := m.OutputFormatIndex(name)
	if i == -1 {
		return nil, &merrors.ErrMissingObject{Type: mapfile.TypeNameOutputFormat, Name: name}
	}
	return &RemoveOutputFormat{format: m.OutputFormats()[i].Clone(), index: i}, nil
}

func (c *RemoveOutputFormat) Apply(m *mapfile.Map) error {
	_, _, err := m.RemoveOutputFormat(c.format.Name())
	return err
}

func (c *RemoveOutputFormat) Revert(m *mapfile.Map) error {
	index := c.index
	if n := len(m.OutputFormats()); index > n {
		index = n
	}
	return m.InsertOutputFormat(index, c.format.Clone())
}

func (c *RemoveOutputFormat) Description() string {
	return fmt.Sprintf("Delete output format '%s'", c.format.Name())
}
