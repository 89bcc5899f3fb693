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

// Map is the root MAP block.  It owns its layers and output formats.
type Map struct {
	name            string
	status          bool
	width           int
	height          int
	maxSize         int
	units           Units
	projection      Projection
	extent          Extent
	resolution      float64
	defResolution   float64
	debug           int
	angle           float64
	shapePath       string
	fontSet         string
	symbolSet       string
	templatePattern string
	dataPattern     string
	imageType       string
	imageColor      *Color
	config          *Metadata
	metadata        *Metadata
	web             Web
	outputFormats   []*OutputFormat
	removed         []*OutputFormat
	layers          []*Layer
	extras          []Opaque
}

// New returns a map with the default attributes.
func New() *Map {
	return &Map{
		name:          DefaultMapName,
		status:        DefaultMapStatus,
		width:         DefaultMapWidth,
		height:        DefaultMapHeight,
		maxSize:       DefaultMapMaxSize,
		units:         DefaultUnits,
		extent:        DefaultExtent,
		resolution:    DefaultResolution,
		defResolution: DefaultDefResolution,
		config:        NewMetadata(),
		metadata:      NewMetadata(),
		outputFormats: make([]*OutputFormat, 0),
		removed:       make([]*OutputFormat, 0),
		layers:        make([]*Layer, 0),
	}
}

func (m *Map) Name() string {
	return m.name
}

func (m *Map) SetName(name string) error {
	if name == "" {
		return &merrors.ErrInvalidParameter{Name: "name", Value: name, Reason: "map name cannot be blank"}
	}
	m.name = name
	return nil
}

func (m *Map) Status() bool {
	return m.status
}

func (m *Map) SetStatus(status bool) {
	m.status = status
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Height() int {
	return m.height
}

// SetSize sets the width and height, which must both be positive or both be -1.
func (m *Map) SetSize(width int, height int) error {
	if !(width == -1 && height == -1) && !(width > 0 && height > 0) {
		return &merrors.ErrInvalidParameter{
			Name:   "size",
			Value:  fmt.Sprintf("%d %d", width, height),
			Reason: "width and height must both be positive or both be -1",
		}
	}
	m.width = width
	m.height = height
	return nil
}

// HasSize returns true if the size is set.
func (m *Map) HasSize() bool {
	return m.width > 0 && m.height > 0
}

func (m *Map) MaxSize() int {
	return m.maxSize
}

func (m *Map) SetMaxSize(maxSize int) error {
	if maxSize <= 0 {
		return &merrors.ErrInvalidParameter{Name: "maxsize", Value: fmt.Sprint(maxSize), Reason: "expecting a positive integer"}
	}
	m.maxSize = maxSize
	return nil
}

func (m *Map) Units() Units {
	return m.units
}

func (m *Map) SetUnits(units Units) error {
	if _, err := ParseUnits(string(units)); err != nil {
		return err
	}
	m.units = units
	return nil
}

func (m *Map) Projection() Projection {
	return m.projection.Clone()
}

func (m *Map) SetProjection(p Projection) {
	m.projection = p.Clone()
}

func (m *Map) Extent() Extent {
	return m.extent
}

func (m *Map) SetExtent(e Extent) {
	m.extent = e
}

func (m *Map) Resolution() float64 {
	return m.resolution
}

func (m *Map) SetResolution(resolution float64) error {
	if resolution <= 0 {
		return &merrors.ErrInvalidParameter{Name: "resolution", Value: fmt.Sprint(resolution), Reason: "expecting a positive number"}
	}
	m.resolution = resolution
	return nil
}

func (m *Map) DefResolution() float64 {
	return m.defResolution
}

func (m *Map) SetDefResolution(resolution float64) error {
	if resolution <= 0 {
		return &merrors.ErrInvalidParameter{Name: "defresolution", Value: fmt.Sprint(resolution), Reason: "expecting a positive number"}
	}
	m.defResolution = resolution
	return nil
}

func (m *Map) Debug() int {
	return m.debug
}

func (m *Map) SetDebug(debug int) error {
	if debug < 0 || debug > 5 {
		return &merrors.ErrInvalidParameter{Name: "debug", Value: fmt.Sprint(debug), Reason: "expecting 0 to 5"}
	}
	m.debug = debug
	return nil
}

func (m *Map) Angle() float64 {
	return m.angle
}

func (m *Map) SetAngle(angle float64) {
	m.angle = angle
}

func (m *Map) ShapePath() string {
	return m.shapePath
}

func (m *Map) SetShapePath(shapePath string) {
	m.shapePath = shapePath
}

func (m *Map) FontSet() string {
	return m.fontSet
}

func (m *Map) SetFontSet(fontSet string) {
	m.fontSet = fontSet
}

func (m *Map) SymbolSet() string {
	return m.symbolSet
}

func (m *Map) SetSymbolSet(symbolSet string) {
	m.symbolSet = symbolSet
}

func (m *Map) TemplatePattern() string {
	return m.templatePattern
}

func (m *Map) SetTemplatePattern(pattern string) {
	m.templatePattern = pattern
}

func (m *Map) DataPattern() string {
	return m.dataPattern
}

func (m *Map) SetDataPattern(pattern string) {
	m.dataPattern = pattern
}

func (m *Map) ImageType() string {
	return m.imageType
}

func (m *Map) SetImageType(imageType string) {
	m.imageType = imageType
}

// ImageColor returns a copy of the image color or nil if not set.
func (m *Map) ImageColor() *Color {
	if m.imageColor == nil {
		return nil
	}
	c := *m.imageColor
	return &c
}

// SetImageColor sets the image color.  A nil color unsets it.
func (m *Map) SetImageColor(c *Color) error {
	if c == nil {
		m.imageColor = nil
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	x := *c
	m.imageColor = &x
	return nil
}

// Config returns a copy of the CONFIG options.
func (m *Map) Config() *Metadata {
	return m.config.Clone()
}

func (m *Map) ConfigOption(key string) string {
	return m.config.Value(key)
}

// SetConfigOption sets a CONFIG option.  A blank value removes it.
func (m *Map) SetConfigOption(key string, value string) {
	if value == "" {
		m.config.Delete(key)
		return
	}
	if m.config == nil {
		m.config = NewMetadata()
	}
	m.config.Set(key, value)
}

// Metadata returns a copy of the map metadata.
func (m *Map) Metadata() *Metadata {
	return m.metadata.Clone()
}

// ReplaceConfig replaces every CONFIG option, keeping the order of the given options.
func (m *Map) ReplaceConfig(config *Metadata) {
	m.config = config.Clone()
}

// ReplaceMetadata replaces the metadata, keeping the order of the given keys.
func (m *Map) ReplaceMetadata(metadata *Metadata) {
	m.metadata = metadata.Clone()
}

// SetMetadata sets a metadata value.  A blank value removes it.
func (m *Map) SetMetadata(key string, value string) {
	if value == "" {
		m.metadata.Delete(key)
		return
	}
	if m.metadata == nil {
		m.metadata = NewMetadata()
	}
	m.metadata.Set(key, value)
}

func (m *Map) Web() Web {
	return m.web.Clone()
}

func (m *Map) SetWeb(w Web) {
	m.web = w.Clone()
}

func (m *Map) Extras() []Opaque {
	return cloneOpaque(m.extras)
}

func (m *Map) AddExtra(o Opaque) {
	m.extras = append(m.extras, o)
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := *m
	c.projection = m.projection.Clone()
	c.imageColor = m.ImageColor()
	c.config = m.config.Clone()
	c.metadata = m.metadata.Clone()
	c.web = m.web.Clone()
	c.extras = cloneOpaque(m.extras)
	c.layers = make([]*Layer, 0, len(m.layers))
	for _, l := range m.layers {
		x := l.Clone()
		x.parent = &c
		c.layers = append(c.layers, x)
	}
	c.outputFormats = make([]*OutputFormat, 0, len(m.outputFormats))
	for _, f := range m.outputFormats {
		x := f.Clone()
		x.parent = &c
		c.outputFormats = append(c.outputFormats, x)
	}
	c.removed = make([]*OutputFormat, 0, len(m.removed))
	for _, f := range m.removed {
		c.removed = append(c.removed, f.Clone())
	}
	return &c
}

// Equal compares the structure of two maps.  Output format states and tombstones are not compared.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.name != o.name ||
		m.status != o.status ||
		m.width != o.width ||
		m.height != o.height ||
		m.maxSize != o.maxSize ||
		m.units != o.units ||
		m.extent != o.extent ||
		m.resolution != o.resolution ||
		m.defResolution != o.defResolution ||
		m.debug != o.debug ||
		m.angle != o.angle ||
		m.shapePath != o.shapePath ||
		m.fontSet != o.fontSet ||
		m.symbolSet != o.symbolSet ||
		m.templatePattern != o.templatePattern ||
		m.dataPattern != o.dataPattern ||
		m.imageType != o.imageType {
		return false
	}
	if (m.imageColor == nil) != (o.imageColor == nil) {
		return false
	}
	if m.imageColor != nil && *m.imageColor != *o.imageColor {
		return false
	}
	if !m.projection.Equal(o.projection) ||
		!m.config.Equal(o.config) ||
		!m.metadata.Equal(o.metadata) ||
		!m.web.Equal(o.web) ||
		!equalOpaque(m.extras, o.extras) {
		return false
	}
	if len(m.layers) != len(o.layers) || len(m.outputFormats) != len(o.outputFormats) {
		return false
	}
	for i := range m.layers {
		if !m.layers[i].Equal(o.layers[i]) {
			return false
		}
	}
	for i := range m.outputFormats {
		if !m.outputFormats[i].Equal(o.outputFormats[i]) {
			return false
		}
	}
	return true
}
