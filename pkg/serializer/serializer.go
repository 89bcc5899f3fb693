// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package serializer writes a mapfile.Map as mapfile text.
//
// Output is deterministic: keywords are upper case, blocks are indented by two spaces, fields are written in a
// fixed order and only when they differ from their defaults.  Opaque entries are written verbatim at the end of
// their parent block.
package serializer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/spatialcurrent/go-mapfile/pkg/lexer"
)

const (
	Indent = "  "
)

type writer struct {
	buf   *bytes.Buffer
	depth int
}

func (w *writer) line(parts ...string) {
	w.buf.WriteString(strings.Repeat(Indent, w.depth))
	w.buf.WriteString(strings.Join(parts, " "))
	w.buf.WriteString("\n")
}

func (w *writer) open(keyword string) {
	w.line(keyword)
	w.depth++
}

func (w *writer) close() {
	w.depth--
	w.line("END")
}

// text writes a verbatim span.  Lines after the first keep their original indentation.
func (w *writer) text(text string) {
	w.line(text)
}

func (w *writer) str(keyword string, value string) {
	if value != "" {
		w.line(keyword, lexer.Quote(value))
	}
}

func (w *writer) float(keyword string, value float64) {
	w.line(keyword, formatFloat(value))
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func onOff(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}
