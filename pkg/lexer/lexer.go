// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package lexer turns mapfile text into a lazy stream of tokens.
// Whitespace and comments are skipped.  Parenthesized expressions are returned as a single token
// holding the raw text, so the parser never needs to understand the expression language.
package lexer

import (
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	ruleComment          = "Comment"
	ruleWhitespace       = "Whitespace"
	ruleString           = "String"
	ruleUnterminated     = "Unterminated"
	ruleRegex            = "Regex"
	ruleExprOpen         = "ExprOpen"
	ruleExprClose        = "ExprClose"
	ruleExprString       = "ExprString"
	ruleExprUnterminated = "ExprUnterminated"
	ruleExprText         = "ExprText"
	ruleSymbol           = "Symbol"
	ruleWord             = "Word"
)

var definition = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: ruleComment, Pattern: `#[^\n]*`, Action: nil},
		{Name: ruleWhitespace, Pattern: `[ \t\r\n]+`, Action: nil},
		{Name: ruleString, Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`, Action: nil},
		{Name: ruleUnterminated, Pattern: `"(?:\\.|[^"\\])*\\?|'(?:\\.|[^'\\])*\\?`, Action: nil},
		{Name: ruleRegex, Pattern: `/(?:\\.|[^/\\\n])*/i?`, Action: nil},
		{Name: ruleExprOpen, Pattern: `\(`, Action: lexer.Push("Expression")},
		{Name: ruleExprClose, Pattern: `\)`, Action: nil},
		{Name: ruleSymbol, Pattern: `[\[\]{}]`, Action: nil},
		{Name: ruleWord, Pattern: `[^\s"'()\[\]{}#]+`, Action: nil},
	},
	"Expression": {
		{Name: ruleExprString, Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`, Action: nil},
		{Name: ruleExprUnterminated, Pattern: `["']`, Action: nil},
		{Name: ruleExprOpen, Pattern: `\(`, Action: lexer.Push("Expression")},
		{Name: ruleExprClose, Pattern: `\)`, Action: lexer.Pop()},
		{Name: ruleExprText, Pattern: `[^()"']+`, Action: nil},
	},
})

var symbols = definition.Symbols()
