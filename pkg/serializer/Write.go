// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serializer

import (
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/lexer"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

type WriteInput struct {
	Writer io.Writer
	Map    *mapfile.Map
	// OnTombstone is called for every removed output format, which is not written.
	OnTombstone func(f *mapfile.OutputFormat)
}

// Write writes the map as mapfile text to the writer.
func Write(input *WriteInput) error {
	if input.Map == nil {
		return errors.New("error writing mapfile: map is nil")
	}
	b := Serialize(input.Map)
	if input.OnTombstone != nil {
		for _, f := range input.Map.RemovedOutputFormats() {
			input.OnTombstone(f)
		}
	}
	if _, err := input.Writer.Write(b); err != nil {
		return errors.Wrap(err, "error writing mapfile")
	}
	return nil
}

// Serialize returns the map as mapfile text.
func Serialize(m *mapfile.Map) []byte {
	w := &writer{buf: new(bytes.Buffer)}
	writeMap(w, m)
	return w.buf.Bytes()
}

func writeMap(w *writer, m *mapfile.Map) {
	w.open("MAP")
	w.line("NAME", lexer.Quote(m.Name()))
	w.line("STATUS", onOff(m.Status()))
	if m.HasSize() {
		w.line("SIZE", strconv.Itoa(m.Width()), strconv.Itoa(m.Height()))
	}
	if m.MaxSize() != mapfile.DefaultMapMaxSize {
		w.line("MAXSIZE", strconv.Itoa(m.MaxSize()))
	}
	if m.Units() != mapfile.DefaultUnits {
		w.line("UNITS", string(m.Units()))
	}
	if e := m.Extent(); e.IsSet() {
		w.line("EXTENT", formatFloat(e.MinX), formatFloat(e.MinY), formatFloat(e.MaxX), formatFloat(e.MaxY))
	}
	if m.Resolution() != mapfile.DefaultResolution {
		w.float("RESOLUTION", m.Resolution())
	}
	if m.DefResolution() != mapfile.DefaultDefResolution {
		w.float("DEFRESOLUTION", m.DefResolution())
	}
	if m.Debug() != 0 {
		w.line("DEBUG", strconv.Itoa(m.Debug()))
	}
	if m.Angle() != 0 {
		w.float("ANGLE", m.Angle())
	}
	w.str("SHAPEPATH", m.ShapePath())
	w.str("FONTSET", m.FontSet())
	w.str("SYMBOLSET", m.SymbolSet())
	w.str("TEMPLATEPATTERN", m.TemplatePattern())
	w.str("DATAPATTERN", m.DataPattern())
	w.str("IMAGETYPE", m.ImageType())
	if c := m.ImageColor(); c != nil {
		w.line("IMAGECOLOR", strconv.Itoa(c.Red), strconv.Itoa(c.Green), strconv.Itoa(c.Blue))
	}
	config := m.Config()
	for _, key := range config.Keys() {
		w.line("CONFIG", lexer.Quote(key), lexer.Quote(config.Value(key)))
	}
	writeProjection(w, m.Projection())
	writeWeb(w, m.Web(), m.Metadata())
	for _, f := range m.OutputFormats() {
		writeOutputFormat(w, f)
	}
	for _, l := range m.Layers() {
		writeLayer(w, l)
	}
	writeExtras(w, m.Extras())
	w.close()
}

func writeProjection(w *writer, p mapfile.Projection) {
	if !p.IsSet() {
		return
	}
	w.open("PROJECTION")
	for _, param := range p.Params {
		w.line(lexer.Quote(param))
	}
	w.close()
}

func writeMetadata(w *writer, md *mapfile.Metadata) {
	if md.Len() == 0 {
		return
	}
	w.open("METADATA")
	for _, key := range md.Keys() {
		w.line(lexer.Quote(key), lexer.Quote(md.Value(key)))
	}
	w.close()
}

func writeWeb(w *writer, web mapfile.Web, md *mapfile.Metadata) {
	if web.IsZero() && md.Len() == 0 {
		return
	}
	w.open("WEB")
	w.str("IMAGEPATH", web.ImagePath)
	w.str("IMAGEURL", web.ImageURL)
	w.str("TEMPLATE", web.Template)
	w.str("HEADER", web.Header)
	w.str("FOOTER", web.Footer)
	writeMetadata(w, md)
	writeExtras(w, web.Extras)
	w.close()
}

func writeOutputFormat(w *writer, f *mapfile.OutputFormat) {
	w.open("OUTPUTFORMAT")
	w.line("NAME", lexer.Quote(f.Name()))
	w.str("DRIVER", f.FullDriver())
	w.str("MIMETYPE", f.MimeType())
	if f.ImageMode() != mapfile.ImageModeUndefined {
		w.line("IMAGEMODE", string(f.ImageMode()))
	}
	w.str("EXTENSION", f.Extension())
	if f.Transparent() {
		w.line("TRANSPARENT", "ON")
	}
	options := f.FormatOptions()
	for _, key := range options.Keys() {
		w.line("FORMATOPTION", lexer.Quote(key+"="+options.Value(key)))
	}
	writeExtras(w, f.Extras())
	w.close()
}

func writeLayer(w *writer, l *mapfile.Layer) {
	w.open("LAYER")
	w.line("NAME", lexer.Quote(l.Name()))
	w.line("TYPE", string(l.Type()))
	w.line("STATUS", l.Status().String())
	w.str("GROUP", l.Group())
	w.str("REQUIRES", l.Requires())
	w.str("MASK", l.Mask())
	if l.ConnectionType() != "" {
		w.line("CONNECTIONTYPE", l.ConnectionType())
	}
	w.str("CONNECTION", l.Connection())
	w.str("DATA", l.Data())
	for _, directive := range l.Processing() {
		w.line("PROCESSING", lexer.Quote(directive))
	}
	if l.Opacity() != mapfile.DefaultOpacity {
		w.line("OPACITY", strconv.Itoa(l.Opacity()))
	}
	if l.Debug() != 0 {
		w.line("DEBUG", strconv.Itoa(l.Debug()))
	}
	if l.MinScaleDenom() != mapfile.DefaultScaleDenom {
		w.float("MINSCALEDENOM", l.MinScaleDenom())
	}
	if l.MaxScaleDenom() != mapfile.DefaultScaleDenom {
		w.float("MAXSCALEDENOM", l.MaxScaleDenom())
	}
	w.str("TEMPLATE", l.Template())
	w.str("HEADER", l.Header())
	w.str("FOOTER", l.Footer())
	writeProjection(w, l.Projection())
	writeMetadata(w, l.Metadata())
	writeExtras(w, l.Extras())
	w.close()
}

func writeExtras(w *writer, extras []mapfile.Opaque) {
	for _, o := range extras {
		w.text(o.Text)
	}
}
