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

// AddOutputFormat appends a copy of an output format to the map.
type AddOutputFormat struct {
	format *mapfile.OutputFormat
	index  int
}

func NewAddOutputFormat(m *mapfile.Map, f *mapfile.OutputFormat) *AddOutputFormat {
	return &AddOutputFormat{format: f.Clone(), index: len(m.OutputFormats())}
}

func (c *AddOutputFormat) Apply(m *mapfile.Map) error {
	index := c.index
	if n := len(m.OutputFormats()); index > n {
		index = n
	}
	return m.InsertOutputFormat(index, c.format.Clone())
}

func (c *AddOutputFormat) Revert(m *mapfile.Map) error {
	_, _, err := m.RemoveOutputFormat(c.format.Name())
	return err
}

func (c *AddOutputFormat) Description() string {
	return fmt.Sprintf("Create new output format '%s'", c.format.Name())
}
