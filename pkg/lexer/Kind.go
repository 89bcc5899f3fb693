// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lexer

// Kind is the class of a token.
type Kind int

const (
	EOF Kind = iota
	Keyword
	String
	Number
	Symbol
	Expression
	Regex
	End
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	Keyword:    "KEYWORD",
	String:     "STRING",
	Number:     "NUMBER",
	Symbol:     "SYMBOL",
	Expression: "EXPRESSION",
	Regex:      "REGEX",
	End:        "END",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
