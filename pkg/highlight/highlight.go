// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package highlight renders mapfile text as syntax highlighted HTML.
package highlight

import (
	"sort"

	"github.com/alecthomas/chroma"

	"github.com/spatialcurrent/go-mapfile/pkg/parser"
)

const (
	DefaultStyle = "xcode"
)

var constants = []string{
	"ON", "OFF", "DEFAULT", "TRUE", "FALSE", "AUTO", "EMBED",
	"POINT", "LINE", "POLYGON", "RASTER", "ANNOTATION", "QUERY", "CIRCLE", "CHART",
	"DD", "FEET", "INCHES", "KILOMETERS", "METERS", "MILES", "NAUTICALMILES", "PIXELS",
	"PC256", "RGB", "RGBA", "INT16", "FLOAT32", "BYTE", "FEATURE",
}

func blocks() []string {
	words := []string{"MAP", "SYMBOL", "STYLE", "END"}
	for keyword := range parser.BlockOpeners {
		words = append(words, keyword)
	}
	sort.Strings(words)
	return words
}

// Lexer tokenizes mapfile text for chroma formatters.
var Lexer = chroma.MustNewLazyLexer(
	&chroma.Config{
		Name:            "Mapfile",
		Aliases:         []string{"mapfile", "map"},
		Filenames:       []string{"*.map"},
		MimeTypes:       []string{"text/x-mapfile"},
		CaseInsensitive: true,
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `#[^\n]*`, Type: chroma.CommentSingle, Mutator: nil},
				{Pattern: `\s+`, Type: chroma.Text, Mutator: nil},
				{Pattern: `"(\\\\|\\"|[^"])*"`, Type: chroma.LiteralStringDouble, Mutator: nil},
				{Pattern: `'(\\\\|\\'|[^'])*'`, Type: chroma.LiteralStringSingle, Mutator: nil},
				{Pattern: `/(\\/|[^/\n])*/i?`, Type: chroma.LiteralStringRegex, Mutator: nil},
				{Pattern: `\(`, Type: chroma.Punctuation, Mutator: chroma.Push("expression")},
				{Pattern: `-?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?\b`, Type: chroma.LiteralNumber, Mutator: nil},
				{Pattern: chroma.Words(`\b`, `\b`, blocks()...), Type: chroma.Keyword, Mutator: nil},
				{Pattern: chroma.Words(`\b`, `\b`, constants...), Type: chroma.KeywordConstant, Mutator: nil},
				{Pattern: `[A-Za-z_][A-Za-z0-9_]*`, Type: chroma.NameAttribute, Mutator: nil},
				{Pattern: `[\[\]{}]`, Type: chroma.Punctuation, Mutator: nil},
				{Pattern: `.`, Type: chroma.Text, Mutator: nil},
			},
			"expression": {
				{Pattern: `\(`, Type: chroma.Punctuation, Mutator: chroma.Push()},
				{Pattern: `\)`, Type: chroma.Punctuation, Mutator: chroma.Pop(1)},
				{Pattern: `"(\\\\|\\"|[^"])*"`, Type: chroma.LiteralStringDouble, Mutator: nil},
				{Pattern: `'(\\\\|\\'|[^'])*'`, Type: chroma.LiteralStringSingle, Mutator: nil},
				{Pattern: `\[[^\]]*\]`, Type: chroma.NameVariable, Mutator: nil},
				{Pattern: `-?\d+(\.\d+)?`, Type: chroma.LiteralNumber, Mutator: nil},
				{Pattern: `[^()"'\[\]\d-]+|.`, Type: chroma.Operator, Mutator: nil},
			},
		}
	},
)

// Tokens returns the coalesced tokens of the source.
func Tokens(source string) ([]chroma.Token, error) {
	iterator, err := chroma.Coalesce(Lexer).Tokenise(nil, source)
	if err != nil {
		return nil, err
	}
	return iterator.Tokens(), nil
}
