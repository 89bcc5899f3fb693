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

// SetFormatOption changes a FORMATOPTION of an output format.  A blank value removes the option.
// Revert puts back a copy of the output format taken at construction, restoring the order of its options and its state.
type SetFormatOption struct {
	prior *mapfile.OutputFormat
	key   string
	new   string
}

func NewSetFormatOption(m *mapfile.Map, format string, key string, value string) (*SetFormatOption, error) {
	f := m.OutputFormat(format)
	if f == nil {
		return nil, &merrors.ErrMissingObject{Type: mapfile.TypeNameOutputFormat, Name: format}
	}
	return &SetFormatOption{prior: f.Clone(), key: key, new: value}, nil
}

func (c *SetFormatOption) Apply(m *mapfile.Map) error {
	f := m.OutputFormat(c.prior.Name())
	if f == nil {
		return &merrors.ErrMissingObject{Type: mapfile.TypeNameOutputFormat, Name: c.prior.Name()}
	}
	f.SetFormatOption(c.key, c.new)
	return nil
}

func (c *SetFormatOption) Revert(m *mapfile.Map) error {
	_, err := m.ReplaceOutputFormat(c.prior.Name(), c.prior.Clone())
	return err
}

func (c *SetFormatOption) Description() string {
	return fmt.Sprintf("Change output format '%s' option[%s] from '%s' to '%s'", c.prior.Name(), c.key, c.prior.FormatOption(c.key), c.new)
}
