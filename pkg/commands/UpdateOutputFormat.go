// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"fmt"
	"strings"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// OutputFormatValues are the editable attributes of an output format.
type OutputFormatValues struct {
	Name          string   `json:"name" yaml:"name"`
	MimeType      string   `json:"mimetype,omitempty" yaml:"mimetype,omitempty"`
	Driver        string   `json:"driver,omitempty" yaml:"driver,omitempty"`
	Extension     string   `json:"extension,omitempty" yaml:"extension,omitempty"`
	ImageMode     string   `json:"imagemode,omitempty" yaml:"imagemode,omitempty"`
	Transparent   bool     `json:"transparent,omitempty" yaml:"transparent,omitempty"`
	FormatOptions []string `json:"formatoptions,omitempty" yaml:"formatoptions,omitempty"` // KEY=VALUE
}

func (v *OutputFormatValues) imageMode() (mapfile.ImageMode, error) {
	if v.ImageMode == "" {
		return mapfile.ImageModeUndefined, nil
	}
	return mapfile.ParseImageMode(v.ImageMode)
}

// OutputFormat returns a new output format in the added state.
func (v *OutputFormatValues) OutputFormat() (*mapfile.OutputFormat, error) {
	if v.Name == "" {
		return nil, &merrors.ErrMissingRequiredParameter{Name: "name"}
	}
	mode, err := v.imageMode()
	if err != nil {
		return nil, err
	}
	f := mapfile.NewOutputFormat(v.Name, v.MimeType, v.Driver, v.Extension, mode, v.Transparent)
	if err := v.apply(f); err != nil {
		return nil, err
	}
	return f, nil
}

// apply sets every attribute of the output format, replacing its format options.
func (v *OutputFormatValues) apply(f *mapfile.OutputFormat) error {
	mode, err := v.imageMode()
	if err != nil {
		return err
	}
	if err := f.SetName(v.Name); err != nil {
		return err
	}
	f.SetMimeType(v.MimeType)
	f.SetDriver(v.Driver)
	f.SetExtension(v.Extension)
	if err := f.SetImageMode(mode); err != nil {
		return err
	}
	f.SetTransparent(v.Transparent)
	for _, key := range f.FormatOptions().Keys() {
		f.SetFormatOption(key, "")
	}
	for _, option := range v.FormatOptions {
		parts := strings.SplitN(option, "=", 2)
		if len(parts) != 2 {
			return &merrors.ErrInvalidParameter{Name: "formatoption", Value: option, Reason: "expecting KEY=VALUE"}
		}
		f.SetFormatOption(parts[0], parts[1])
	}
	return nil
}

// UpdateOutputFormat replaces every attribute of an output format.
type UpdateOutputFormat struct {
	prior  *mapfile.OutputFormat
	values OutputFormatValues
}

func NewUpdateOutputFormat(m *mapfile.Map, name string, values OutputFormatValues) (*UpdateOutputFormat, error) {
	f := m.OutputFormat(name)
	if f == nil {
		return nil, &merrors.ErrMissingObject{Type: mapfile.TypeNameOutputFormat, Name: name}
	}
	if values.Name == "" {
		values.Name = name
	}
	values.FormatOptions = append(make([]string, 0, len(values.FormatOptions)), values.FormatOptions...)
	return &UpdateOutputFormat{prior: f.Clone(), values: values}, nil
}

func (c *UpdateOutputFormat) Apply(m *mapfile.Map) error {
	f := c.prior.Clone()
	if err := c.values.apply(f); err != nil {
		return err
	}
	_, err := m.ReplaceOutputFormat(c.prior.Name(), f)
	return err
}

func (c *UpdateOutputFormat) Revert(m *mapfile.Map) error {
	_, err := m.ReplaceOutputFormat(c.values.Name, c.prior.Clone())
	return err
}

func (c *UpdateOutputFormat) Description() string {
	return fmt.Sprintf("Update output format '%s'", c.prior.Name())
}
