// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package parser builds a mapfile.Map from mapfile text.
//
// The parser is a recursive descent over the token stream of the lexer package, with one function per
// modeled block.  Keywords the model does not know are kept as opaque entries holding the exact source text,
// so they can be written back unchanged.
package parser

import (
	"fmt"

	"github.com/spatialcurrent/go-mapfile/pkg/lexer"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// BlockOpeners are the keywords that start a block closed by END when captured as opaque text.
var BlockOpeners = map[string]struct{}{
	"CLASS":             struct{}{},
	"CLUSTER":           struct{}{},
	"COMPOSITE":         struct{}{},
	"CONNECTIONOPTIONS": struct{}{},
	"FEATURE":           struct{}{},
	"GRID":              struct{}{},
	"JOIN":              struct{}{},
	"LABEL":             struct{}{},
	"LAYER":             struct{}{},
	"LEADER":            struct{}{},
	"LEGEND":            struct{}{},
	"METADATA":          struct{}{},
	"OUTPUTFORMAT":      struct{}{},
	"PATTERN":           struct{}{},
	"POINTS":            struct{}{},
	"PROJECTION":        struct{}{},
	"QUERYMAP":          struct{}{},
	"REFERENCE":         struct{}{},
	"SCALEBAR":          struct{}{},
	"SCALETOKEN":        struct{}{},
	"STYLE":             struct{}{},
	"VALIDATION":        struct{}{},
	"VALUES":            struct{}{},
	"WEB":               struct{}{},
}

// keywords is a set of upper case keywords.
type keywords map[string]struct{}

func newKeywords(words ...string) keywords {
	k := keywords{}
	for _, w := range words {
		k[w] = struct{}{}
	}
	return k
}

func (k keywords) has(word string) bool {
	_, ok := k[word]
	return ok
}

// The keywords modeled by each block handler.  An unknown statement ends before any of them.
var (
	mapKeywords = newKeywords("NAME", "STATUS", "SIZE", "MAXSIZE", "UNITS", "EXTENT", "RESOLUTION", "DEFRESOLUTION",
		"DEBUG", "ANGLE", "SHAPEPATH", "FONTSET", "SYMBOLSET", "TEMPLATEPATTERN", "DATAPATTERN", "IMAGETYPE",
		"IMAGECOLOR", "CONFIG", "PROJECTION", "WEB", "OUTPUTFORMAT", "LAYER")
	layerKeywords = newKeywords("NAME", "TYPE", "STATUS", "REQUIRES", "MASK", "GROUP", "OPACITY", "DEBUG",
		"MINSCALEDENOM", "MINSCALE", "MAXSCALEDENOM", "MAXSCALE", "TEMPLATE", "HEADER", "FOOTER", "DATA",
		"CONNECTION", "CONNECTIONTYPE", "PROCESSING", "PROJECTION", "METADATA")
	outputFormatKeywords = newKeywords("NAME", "MIMETYPE", "DRIVER", "EXTENSION", "IMAGEMODE", "TRANSPARENT", "FORMATOPTION")
	webKeywords          = newKeywords("IMAGEPATH", "IMAGEURL", "TEMPLATE", "HEADER", "FOOTER", "METADATA")
)

type parser struct {
	tokenizer *lexer.Tokenizer
	peeked    []lexer.Token
}

func newParser(tokenizer *lexer.Tokenizer) *parser {
	return &parser{tokenizer: tokenizer, peeked: make([]lexer.Token, 0, 2)}
}

func (p *parser) next() (lexer.Token, error) {
	if len(p.peeked) > 0 {
		t := p.peeked[0]
		p.peeked = p.peeked[1:]
		return t, nil
	}
	return p.tokenizer.Next()
}

// peek returns the token n positions ahead without consuming it, starting at 0.
func (p *parser) peek(n int) (lexer.Token, error) {
	for len(p.peeked) <= n {
		t, err := p.tokenizer.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		p.peeked = append(p.peeked, t)
	}
	return p.peeked[n], nil
}

func (p *parser) errorf(line int, format string, args ...interface{}) error {
	return &merrors.ErrParse{Filename: p.tokenizer.Filename(), Line: line, Message: fmt.Sprintf(format, args...)}
}

// wrap converts a model error into a parse error at the line of the token.
func (p *parser) wrap(t lexer.Token, err error) error {
	return p.errorf(t.Line, "invalid value for %s: %s", t.Upper(), err.Error())
}

func (p *parser) unterminated(block lexer.Token) error {
	return p.errorf(block.Line, "unterminated %s block starting at line %d", block.Upper(), block.Line)
}

// opensBlock returns true if the keyword starts a block closed by END.
func (p *parser) opensBlock(keyword lexer.Token) (bool, error) {
	upper := keyword.Upper()
	switch upper {
	case "SYMBOL":
		// a symbol definition is a block, while a style references a symbol by name or index
		t, err := p.peek(0)
		if err != nil {
			return false, err
		}
		return t.Kind == lexer.Keyword && t.Line > keyword.Line, nil
	case "STYLE":
		// the scalebar STYLE takes an integer
		t, err := p.peek(0)
		if err != nil {
			return false, err
		}
		return t.Kind != lexer.Number, nil
	}
	_, ok := BlockOpeners[upper]
	return ok, nil
}

// startsStatement returns true if the keyword begins a new statement rather than being a value of the previous one.
func startsStatement(word string, known keywords) bool {
	if word == "SYMBOL" || known.has(word) {
		return true
	}
	_, ok := BlockOpeners[word]
	return ok
}

// opaque captures the construct starting at keyword as verbatim source text.
// A statement ends at the end of its line, at END, or before the next keyword that is in known or opens a block,
// so several statements can share a line.
func (p *parser) opaque(keyword lexer.Token, known keywords) (opaqueSpan, error) {
	span := opaqueSpan{keyword: keyword, last: keyword}
	block, err := p.opensBlock(keyword)
	if err != nil {
		return span, err
	}
	if !block {
		for {
			t, err := p.peek(0)
			if err != nil {
				return span, err
			}
			if t.Kind == lexer.EOF || t.Kind == lexer.End || t.Line != keyword.Line {
				return span, nil
			}
			if t.Kind == lexer.Keyword && startsStatement(t.Upper(), known) {
				return span, nil
			}
			span.last, _ = p.next()
		}
	}
	for {
		t, err := p.next()
		if err != nil {
			return span, err
		}
		switch t.Kind {
		case lexer.EOF:
			return span, p.unterminated(keyword)
		case lexer.End:
			span.last = t
			return span, nil
		case lexer.Keyword:
			nested, err := p.opaque(t, nil)
			if err != nil {
				return span, err
			}
			span.last = nested.last
		default:
			span.last = t
		}
	}
}

// text returns the source text of the span.
func (p *parser) text(span opaqueSpan) string {
	return p.tokenizer.Source()[span.keyword.Offset:span.last.EndOffset()]
}

type opaqueSpan struct {
	keyword lexer.Token
	last    lexer.Token
}

func isValue(t lexer.Token) bool {
	return t.Kind == lexer.String || t.Kind == lexer.Keyword || t.Kind == lexer.Number
}
