// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lexer

import (
	"strconv"
	"strings"
)

// Token is a single lexical unit of a mapfile.
// Value holds the decoded value (unquoted and unescaped for strings), while Raw holds the exact source text.
type Token struct {
	Kind   Kind
	Value  string
	Raw    string
	Line   int
	Column int
	Offset int
}

// EndOffset returns the byte offset just past the token in the source.
func (t Token) EndOffset() int {
	return t.Offset + len(t.Raw)
}

// EndLine returns the line of the last byte of the token.
func (t Token) EndLine() int {
	return t.Line + strings.Count(t.Raw, "\n")
}

// Is returns true if the token is a keyword (or END) matching name, ignoring case.
func (t Token) Is(name string) bool {
	if t.Kind != Keyword && t.Kind != End {
		return false
	}
	return strings.EqualFold(t.Value, name)
}

// Upper returns the value in upper case, which is how keywords are compared.
func (t Token) Upper() string {
	return strings.ToUpper(t.Value)
}

func (t Token) Float64() (float64, error) {
	return strconv.ParseFloat(t.Value, 64)
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return t.Kind.String() + " " + strconv.Quote(t.Raw)
}

// isNumber returns true if the word is a numeric literal.
// Words such as "inf" or "NaN" are keywords, not numbers.
func isNumber(word string) bool {
	if len(word) == 0 {
		return false
	}
	switch c := word[0]; {
	case c >= '0' && c <= '9', c == '-', c == '+', c == '.':
	default:
		return false
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}
