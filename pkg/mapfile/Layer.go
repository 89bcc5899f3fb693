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

// Layer is a LAYER block.  A layer added to a map keeps a pointer to it so renames can check sibling names.
type Layer struct {
	name           string
	layerType      LayerType
	status         Status
	requires       string
	mask           string
	group          string
	opacity        int
	debug          int
	minScaleDenom  float64
	maxScaleDenom  float64
	template       string
	header         string
	footer         string
	data           string
	connection     string
	connectionType string
	processing     []string
	projection     Projection
	metadata       *Metadata
	extras         []Opaque
	parent         *Map
}

// NewLayer returns a new layer with the given name and type and the default attributes.
func NewLayer(name string, layerType LayerType) *Layer {
	return &Layer{
		name:          name,
		layerType:     layerType,
		status:        StatusOff,
		opacity:       DefaultOpacity,
		minScaleDenom: DefaultScaleDenom,
		maxScaleDenom: DefaultScaleDenom,
		metadata:      NewMetadata(),
	}
}

func (l *Layer) Name() string {
	return l.name
}

// SetName renames the layer.  References to the old name held by other layers are left as is.
func (l *Layer) SetName(name string) error {
	if name == "" {
		return &merrors.ErrInvalidParameter{Name: "name", Value: name, Reason: "layer name cannot be blank"}
	}
	if name == l.name {
		return nil
	}
	if l.parent != nil {
		if other := l.parent.Layer(name); other != nil && other != l {
			return &merrors.ErrDuplicateName{Type: TypeNameLayer, Name: name}
		}
	}
	l.name = name
	return nil
}

func (l *Layer) Type() LayerType {
	return l.layerType
}

func (l *Layer) SetType(t LayerType) error {
	if _, err := ParseLayerType(string(t)); err != nil {
		return err
	}
	l.layerType = t
	return nil
}

func (l *Layer) Status() Status {
	return l.status
}

func (l *Layer) SetStatus(s Status) error {
	if !s.Valid() {
		return &merrors.ErrInvalidParameter{Name: "status", Value: fmt.Sprint(int(s))}
	}
	l.status = s
	return nil
}

// Visible returns true if the layer is drawn by default.
func (l *Layer) Visible() bool {
	return l.status == StatusOn || l.status == StatusDefault
}

func (l *Layer) Requires() string {
	return l.requires
}

func (l *Layer) SetRequires(requires string) {
	l.requires = requires
}

func (l *Layer) Mask() string {
	return l.mask
}

func (l *Layer) SetMask(mask string) {
	l.mask = mask
}

func (l *Layer) Group() string {
	return l.group
}

func (l *Layer) SetGroup(group string) {
	l.group = group
}

func (l *Layer) Opacity() int {
	return l.opacity
}

func (l *Layer) SetOpacity(opacity int) error {
	if opacity < 0 || opacity > 100 {
		return &merrors.ErrInvalidParameter{Name: "opacity", Value: fmt.Sprint(opacity), Reason: "expecting 0 to 100"}
	}
	l.opacity = opacity
	return nil
}

func (l *Layer) Debug() int {
	return l.debug
}

func (l *Layer) SetDebug(debug int) error {
	if debug < 0 || debug > 5 {
		return &merrors.ErrInvalidParameter{Name: "debug", Value: fmt.Sprint(debug), Reason: "expecting 0 to 5"}
	}
	l.debug = debug
	return nil
}

func (l *Layer) MinScaleDenom() float64 {
	return l.minScaleDenom
}

// SetMinScaleDenom sets the minimum scale denominator.  A negative value unsets it.
func (l *Layer) SetMinScaleDenom(v float64) error {
	if v >= 0 && l.maxScaleDenom >= 0 && v > l.maxScaleDenom {
		return &merrors.ErrInvalidParameter{
			Name:   "minscaledenom",
			Value:  fmt.Sprint(v),
			Reason: fmt.Sprintf("greater than maxscaledenom %g", l.maxScaleDenom),
		}
	}
	l.minScaleDenom = v
	return nil
}

func (l *Layer) MaxScaleDenom() float64 {
	return l.maxScaleDenom
}

// SetMaxScaleDenom sets the maximum scale denominator.  A negative value unsets it.
func (l *Layer) SetMaxScaleDenom(v float64) error {
	if v >= 0 && l.minScaleDenom >= 0 && v < l.minScaleDenom {
		return &merrors.ErrInvalidParameter{
			Name:   "maxscaledenom",
			Value:  fmt.Sprint(v),
			Reason: fmt.Sprintf("less than minscaledenom %g", l.minScaleDenom),
		}
	}
	l.maxScaleDenom = v
	return nil
}

// InScale returns true if the layer is drawn at the given scale denominator.
func (l *Layer) InScale(scale float64) bool {
	if l.minScaleDenom > 0 && scale < l.minScaleDenom {
		return false
	}
	if l.maxScaleDenom > 0 && scale >= l.maxScaleDenom {
		return false
	}
	return true
}

func (l *Layer) Template() string {
	return l.template
}

func (l *Layer) SetTemplate(template string) {
	l.template = template
}

func (l *Layer) Header() string {
	return l.header
}

func (l *Layer) SetHeader(header string) {
	l.header = header
}

func (l *Layer) Footer() string {
	return l.footer
}

func (l *Layer) SetFooter(footer string) {
	l.footer = footer
}

func (l *Layer) Data() string {
	return l.data
}

func (l *Layer) SetData(data string) {
	l.data = data
}

func (l *Layer) Connection() string {
	return l.connection
}

func (l *Layer) SetConnection(connection string) {
	l.connection = connection
}

func (l *Layer) ConnectionType() string {
	return l.connectionType
}

func (l *Layer) SetConnectionType(connectionType string) {
	l.connectionType = connectionType
}

func (l *Layer) Processing() []string {
	return append(make([]string, 0, len(l.processing)), l.processing...)
}

func (l *Layer) AddProcessing(directive string) {
	l.processing = append(l.processing, directive)
}

func (l *Layer) SetProcessing(directives []string) {
	l.processing = append(make([]string, 0, len(directives)), directives...)
}

func (l *Layer) Projection() Projection {
	return l.projection.Clone()
}

func (l *Layer) SetProjection(p Projection) {
	l.projection = p.Clone()
}

// Metadata returns a copy of the layer metadata.
func (l *Layer) Metadata() *Metadata {
	return l.metadata.Clone()
}

// ReplaceMetadata replaces the metadata, keeping the order of the given keys.
func (l *Layer) ReplaceMetadata(metadata *Metadata) {
	l.metadata = metadata.Clone()
}

// SetMetadata sets a metadata value.  A blank value removes the key.
func (l *Layer) SetMetadata(key string, value string) {
	if value == "" {
		l.metadata.Delete(key)
		return
	}
	if l.metadata == nil {
		l.metadata = NewMetadata()
	}
	l.metadata.Set(key, value)
}

func (l *Layer) Extras() []Opaque {
	return cloneOpaque(l.extras)
}

func (l *Layer) AddExtra(o Opaque) {
	l.extras = append(l.extras, o)
}

// Clone returns a deep copy that does not belong to any map.
func (l *Layer) Clone() *Layer {
	c := *l
	c.processing = l.Processing()
	c.projection = l.projection.Clone()
	c.metadata = l.metadata.Clone()
	c.extras = cloneOpaque(l.extras)
	c.parent = nil
	return &c
}

// Equal compares every attribute of the layers.
func (l *Layer) Equal(o *Layer) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.name != o.name ||
		l.layerType != o.layerType ||
		l.status != o.status ||
		l.requires != o.requires ||
		l.mask != o.mask ||
		l.group != o.group ||
		l.opacity != o.opacity ||
		l.debug != o.debug ||
		l.minScaleDenom != o.minScaleDenom ||
		l.maxScaleDenom != o.maxScaleDenom ||
		l.template != o.template ||
		l.header != o.header ||
		l.footer != o.footer ||
		l.data != o.data ||
		l.connection != o.connection ||
		l.connectionType != o.connectionType {
		return false
	}
	if len(l.processing) != len(o.processing) {
		return false
	}
	for i := range l.processing {
		if l.processing[i] != o.processing[i] {
			return false
		}
	}
	return l.projection.Equal(o.projection) && l.metadata.Equal(o.metadata) && equalOpaque(l.extras, o.extras)
}
