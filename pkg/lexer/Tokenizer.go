// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lexer

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Tokenizer lazily produces tokens from a mapfile source.
// The sequence is finite and can be restarted with Reset.
type Tokenizer struct {
	filename string
	source   string
	lexer    lexer.Lexer
	last     lexer.Position
	done     bool
}

// New returns a tokenizer over the given source.  The filename is only used in error messages.
func New(filename string, source []byte) *Tokenizer {
	return &Tokenizer{filename: filename, source: string(source)}
}

// NewString returns a tokenizer over the given string.
func NewString(filename string, source string) *Tokenizer {
	return &Tokenizer{filename: filename, source: source}
}

// Source returns the full source text.
func (t *Tokenizer) Source() string {
	return t.source
}

// Filename returns the name given at construction.
func (t *Tokenizer) Filename() string {
	return t.filename
}

// Reset restarts the tokenizer at the first byte of the source.
func (t *Tokenizer) Reset() {
	t.lexer = nil
	t.last = lexer.Position{}
	t.done = false
}

// Next returns the next token.  Once the end of the source is reached, Next keeps returning an EOF token.
func (t *Tokenizer) Next() (Token, error) {
	if t.done {
		return t.eof(), nil
	}
	if t.lexer == nil {
		l, err := definition.LexString(t.filename, t.source)
		if err != nil {
			return Token{}, errors.Wrap(err, "error creating lexer")
		}
		t.lexer = l
	}
	for {
		raw, err := t.lexer.Next()
		if err != nil {
			return Token{}, t.lexError(err)
		}
		if raw.EOF() {
			t.done = true
			return t.eof(), nil
		}
		t.last = raw.Pos
		switch raw.Type {
		case symbols[ruleComment], symbols[ruleWhitespace]:
			continue
		case symbols[ruleString]:
			value, err := Unquote(raw.Value, raw.Pos.Line, raw.Pos.Column)
			if err != nil {
				if lerr, ok := err.(*merrors.ErrLex); ok {
					lerr.Filename = t.filename
				}
				return Token{}, err
			}
			return t.token(String, value, raw), nil
		case symbols[ruleUnterminated]:
			return Token{}, &merrors.ErrLex{Filename: t.filename, Line: raw.Pos.Line, Column: raw.Pos.Column, Message: "unterminated string"}
		case symbols[ruleRegex]:
			return t.token(Regex, raw.Value, raw), nil
		case symbols[ruleExprOpen]:
			return t.expression(raw)
		case symbols[ruleExprClose]:
			return Token{}, &merrors.ErrLex{Filename: t.filename, Line: raw.Pos.Line, Column: raw.Pos.Column, Message: "unbalanced ')'"}
		case symbols[ruleSymbol]:
			return t.token(Symbol, raw.Value, raw), nil
		case symbols[ruleWord]:
			if strings.EqualFold(raw.Value, "END") {
				return t.token(End, raw.Value, raw), nil
			}
			if isNumber(raw.Value) {
				return t.token(Number, raw.Value, raw), nil
			}
			return t.token(Keyword, raw.Value, raw), nil
		}
		return Token{}, &merrors.ErrLex{Filename: t.filename, Line: raw.Pos.Line, Column: raw.Pos.Column, Message: "unexpected input " + raw.Value}
	}
}

// All returns every remaining token, excluding the trailing EOF.
func (t *Tokenizer) All() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		tok, err := t.Next()
		if err != nil {
			return tokens, err
		}
		if tok.Kind == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// expression collects a balanced parenthesized expression into a single token.
func (t *Tokenizer) expression(open lexer.Token) (Token, error) {
	depth := 1
	end := open.Pos.Offset + len(open.Value)
	for depth > 0 {
		raw, err := t.lexer.Next()
		if err != nil {
			return Token{}, t.lexError(err)
		}
		if raw.EOF() {
			return Token{}, &merrors.ErrLex{Filename: t.filename, Line: open.Pos.Line, Column: open.Pos.Column, Message: "unbalanced expression, missing ')'"}
		}
		t.last = raw.Pos
		switch raw.Type {
		case symbols[ruleExprOpen]:
			depth++
		case symbols[ruleExprClose]:
			depth--
		case symbols[ruleExprUnterminated]:
			return Token{}, &merrors.ErrLex{Filename: t.filename, Line: raw.Pos.Line, Column: raw.Pos.Column, Message: "unterminated string in expression"}
		}
		end = raw.Pos.Offset + len(raw.Value)
	}
	text := t.source[open.Pos.Offset:end]
	return Token{
		Kind:   Expression,
		Value:  text,
		Raw:    text,
		Line:   open.Pos.Line,
		Column: open.Pos.Column,
		Offset: open.Pos.Offset,
	}, nil
}

func (t *Tokenizer) token(kind Kind, value string, raw lexer.Token) Token {
	return Token{
		Kind:   kind,
		Value:  value,
		Raw:    raw.Value,
		Line:   raw.Pos.Line,
		Column: raw.Pos.Column,
		Offset: raw.Pos.Offset,
	}
}

func (t *Tokenizer) eof() Token {
	line := 1 + strings.Count(t.source, "\n")
	column := len(t.source) - strings.LastIndex(t.source, "\n")
	return Token{Kind: EOF, Line: line, Column: column, Offset: len(t.source)}
}

func (t *Tokenizer) lexError(err error) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &merrors.ErrLex{Filename: t.filename, Line: lerr.Pos.Line, Column: lerr.Pos.Column, Message: lerr.Msg}
	}
	return &merrors.ErrLex{Filename: t.filename, Line: t.last.Line, Column: t.last.Column, Message: err.Error()}
}
