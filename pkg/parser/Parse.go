// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"github.com/spatialcurrent/go-mapfile/pkg/lexer"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// Parse parses the mapfile source.  The filename is only used in error messages.
// On failure no map is returned.
func Parse(filename string, source []byte) (*mapfile.Map, error) {
	return parse(lexer.New(filename, source))
}

// ParseString parses the mapfile text.
func ParseString(text string) (*mapfile.Map, error) {
	return parse(lexer.NewString("", text))
}

func parse(tokenizer *lexer.Tokenizer) (*mapfile.Map, error) {
	p := newParser(tokenizer)
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	switch {
	case t.Kind == lexer.EOF:
		return nil, p.errorf(t.Line, "missing MAP block")
	case !t.Is("MAP"):
		return nil, p.errorf(t.Line, "content outside MAP block: %s", t.String())
	}
	m, err := p.parseMap(t)
	if err != nil {
		return nil, err
	}
	t, err = p.next()
	if err != nil {
		return nil, err
	}
	switch {
	case t.Is("MAP"):
		return nil, p.errorf(t.Line, "duplicate MAP block")
	case t.Kind != lexer.EOF:
		return nil, p.errorf(t.Line, "content outside MAP block: %s", t.String())
	}
	return m, nil
}
