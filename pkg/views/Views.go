// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package views

import (
	"strconv"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func onOff(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}

func formatBool(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

// MapSettings returns the map level settings as key and value rows.
func MapSettings(m *mapfile.Map) *Table {
	rows := [][]string{
		{"name", m.Name()},
		{"status", onOff(m.Status())},
		{"size", strconv.Itoa(m.Width()) + " " + strconv.Itoa(m.Height())},
		{"maxsize", strconv.Itoa(m.MaxSize())},
		{"units", string(m.Units())},
		{"extent", m.Extent().String()},
		{"projection", m.Projection().String()},
		{"resolution", formatFloat(m.Resolution())},
		{"defresolution", formatFloat(m.DefResolution())},
		{"debug", strconv.Itoa(m.Debug())},
		{"angle", formatFloat(m.Angle())},
		{"shapepath", m.ShapePath()},
		{"fontset", m.FontSet()},
		{"symbolset", m.SymbolSet()},
		{"templatepattern", m.TemplatePattern()},
		{"datapattern", m.DataPattern()},
		{"imagetype", m.ImageType()},
	}
	if c := m.ImageColor(); c != nil {
		rows = append(rows, []string{"imagecolor", c.String()})
	} else {
		rows = append(rows, []string{"imagecolor", ""})
	}
	for _, key := range m.Config().Keys() {
		rows = append(rows, []string{"config." + key, m.Config().Value(key)})
	}
	for _, key := range m.Metadata().Keys() {
		rows = append(rows, []string{"metadata." + key, m.Metadata().Value(key)})
	}
	return &Table{Columns: []string{"key", "value"}, Rows: rows}
}

// Layers returns one row per layer in drawing order.
func Layers(m *mapfile.Map) *Table {
	rows := make([][]string, 0, len(m.Layers()))
	for _, l := range m.Layers() {
		rows = append(rows, []string{
			l.Name(),
			string(l.Type()),
			l.Status().String(),
			l.Group(),
			strconv.Itoa(l.Opacity()),
			formatFloat(l.MinScaleDenom()),
			formatFloat(l.MaxScaleDenom()),
			l.Requires(),
			l.Mask(),
			l.Data(),
		})
	}
	return &Table{
		Columns: []string{"name", "type", "status", "group", "opacity", "minscaledenom", "maxscaledenom", "requires", "mask", "data"},
		Rows:    rows,
	}
}

// OutputFormats returns one row per live output format.
func OutputFormats(m *mapfile.Map) *Table {
	rows := make([][]string, 0, len(m.OutputFormats()))
	for _, f := range m.OutputFormats() {
		rows = append(rows, []string{
			f.Name(),
			f.MimeType(),
			f.Driver(),
			f.GdalDriver(),
			f.Extension(),
			string(f.ImageMode()),
			formatBool(f.Transparent()),
			f.State().String(),
		})
	}
	return &Table{
		Columns: []string{"name", "mimetype", "driver", "gdaldriver", "extension", "imagemode", "transparent", "state"},
		Rows:    rows,
	}
}

// DanglingReferences returns one row per mask or requires reference that matches no layer.
func DanglingReferences(m *mapfile.Map) *Table {
	warnings := m.DanglingReferences()
	rows := make([][]string, 0, len(warnings))
	for _, w := range warnings {
		rows = append(rows, []string{w.Layer, w.Attribute, w.Target})
	}
	return &Table{Columns: []string{"layer", "attribute", "target"}, Rows: rows}
}
