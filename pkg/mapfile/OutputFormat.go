// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// OutputFormat is an OUTPUTFORMAT block.  Every setter called on an unchanged output format marks it modified.
type OutputFormat struct {
	name          string
	originalName  string
	mimeType      string
	driver        string
	gdalDriver    string
	extension     string
	imageMode     ImageMode
	transparent   bool
	formatOptions *Metadata
	state         State
	extras        []Opaque
	parent        *Map
}

// NewOutputFormat returns a new output format in the added state.
func NewOutputFormat(name string, mimeType string, driver string, extension string, imageMode ImageMode, transparent bool) *OutputFormat {
	f := &OutputFormat{
		name:          name,
		originalName:  name,
		mimeType:      mimeType,
		extension:     extension,
		imageMode:     imageMode,
		transparent:   transparent,
		formatOptions: NewMetadata(),
		state:         StateAdded,
	}
	f.driver, f.gdalDriver = SplitDriver(driver)
	return f
}

// NewParsedOutputFormat returns an output format read from disk in the unchanged state.
func NewParsedOutputFormat(name string) *OutputFormat {
	return &OutputFormat{
		name:          name,
		originalName:  name,
		formatOptions: NewMetadata(),
		state:         StateUnchanged,
	}
}

// SplitDriver splits a GDAL or OGR driver string into the driver and the sub driver.
//
//	"GDAL/GTiff" => "GDAL", "GTiff"
//	"GDAL/a/b"   => "GDAL", ""
//	"AGG/PNG"    => "AGG/PNG", ""
func SplitDriver(driver string) (string, string) {
	if strings.HasPrefix(driver, "GDAL") || strings.HasPrefix(driver, "OGR") {
		parts := strings.Split(driver, "/")
		if len(parts) == 2 {
			return parts[0], parts[1]
		}
		return parts[0], ""
	}
	return driver, ""
}

func (f *OutputFormat) touch() {
	if f.state == StateUnchanged {
		f.state = StateModified
	}
}

func (f *OutputFormat) Name() string {
	return f.name
}

// SetName renames the output format, failing if a sibling already uses the name.
func (f *OutputFormat) SetName(name string) error {
	if name == "" {
		return &merrors.ErrInvalidParameter{Name: "name", Value: name, Reason: "output format name cannot be blank"}
	}
	if name == f.name {
		return nil
	}
	if f.parent != nil {
		if other := f.parent.OutputFormat(name); other != nil && other != f {
			return &merrors.ErrDuplicateName{Type: TypeNameOutputFormat, Name: name}
		}
	}
	f.name = name
	f.touch()
	return nil
}

// OriginalName returns the name the output format had when it was loaded or created.
func (f *OutputFormat) OriginalName() string {
	return f.originalName
}

func (f *OutputFormat) MimeType() string {
	return f.mimeType
}

func (f *OutputFormat) SetMimeType(mimeType string) {
	f.mimeType = mimeType
	f.touch()
}

func (f *OutputFormat) Driver() string {
	return f.driver
}

func (f *OutputFormat) GdalDriver() string {
	return f.gdalDriver
}

// FullDriver returns the driver as written in a mapfile, e.g., GDAL/GTiff.
func (f *OutputFormat) FullDriver() string {
	if f.gdalDriver != "" {
		return f.driver + "/" + f.gdalDriver
	}
	return f.driver
}

// SetDriver sets the driver, deriving the gdal driver with SplitDriver.
func (f *OutputFormat) SetDriver(driver string) {
	f.driver, f.gdalDriver = SplitDriver(driver)
	f.touch()
}

func (f *OutputFormat) Extension() string {
	return f.extension
}

func (f *OutputFormat) SetExtension(extension string) {
	f.extension = extension
	f.touch()
}

func (f *OutputFormat) ImageMode() ImageMode {
	return f.imageMode
}

func (f *OutputFormat) SetImageMode(mode ImageMode) error {
	if mode != ImageModeUndefined {
		if _, err := ParseImageMode(string(mode)); err != nil {
			return err
		}
	}
	f.imageMode = mode
	f.touch()
	return nil
}

func (f *OutputFormat) Transparent() bool {
	return f.transparent
}

func (f *OutputFormat) SetTransparent(transparent bool) {
	f.transparent = transparent
	f.touch()
}

// FormatOptions returns a copy of the FORMATOPTION values.
func (f *OutputFormat) FormatOptions() *Metadata {
	return f.formatOptions.Clone()
}

func (f *OutputFormat) FormatOption(key string) string {
	return f.formatOptions.Value(key)
}

// SetFormatOption sets a FORMATOPTION.  A blank value removes it.
func (f *OutputFormat) SetFormatOption(key string, value string) {
	if value == "" {
		f.formatOptions.Delete(key)
	} else {
		if f.formatOptions == nil {
			f.formatOptions = NewMetadata()
		}
		f.formatOptions.Set(key, value)
	}
	f.touch()
}

// ReplaceFormatOptions replaces every FORMATOPTION, keeping the order of the given options.
func (f *OutputFormat) ReplaceFormatOptions(options *Metadata) {
	f.formatOptions = options.Clone()
	f.touch()
}

func (f *OutputFormat) State() State {
	return f.state
}

// SetState sets the lifecycle state directly.  The parser uses it to mark loaded formats unchanged.
func (f *OutputFormat) SetState(state State) {
	f.state = state
}

// MarkLoaded marks the output format as read from disk, so its current name becomes the original name.
func (f *OutputFormat) MarkLoaded() {
	f.originalName = f.name
	f.state = StateUnchanged
}

func (f *OutputFormat) Extras() []Opaque {
	return cloneOpaque(f.extras)
}

func (f *OutputFormat) AddExtra(o Opaque) {
	f.extras = append(f.extras, o)
}

// Clone returns a deep copy, including the state, that does not belong to any map.
func (f *OutputFormat) Clone() *OutputFormat {
	c := *f
	c.formatOptions = f.formatOptions.Clone()
	c.extras = cloneOpaque(f.extras)
	c.parent = nil
	return &c
}

// Equal compares the attributes of the output formats.  The lifecycle state is not compared.
func (f *OutputFormat) Equal(o *OutputFormat) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.name == o.name &&
		f.originalName == o.originalName &&
		f.mimeType == o.mimeType &&
		f.driver == o.driver &&
		f.gdalDriver == o.gdalDriver &&
		f.extension == o.extension &&
		f.imageMode == o.imageMode &&
		f.transparent == o.transparent &&
		f.formatOptions.Equal(o.formatOptions) &&
		equalOpaque(f.extras, o.extras)
}
