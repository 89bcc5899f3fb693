// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package highlight

import (
	"bytes"
	"testing"

	"github.com/alecthomas/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tokens, err := Tokens("map # comment\n  NAME \"World\"\n  SIZE 400 300\n  STATUS on\nEND\n")
	require.NoError(t, err)

	types := map[string]chroma.TokenType{}
	for _, token := range tokens {
		types[token.Value] = token.Type
	}
	assert.Equal(t, chroma.Keyword, types["map"])
	assert.Equal(t, chroma.CommentSingle, types["# comment"])
	assert.Equal(t, chroma.NameAttribute, types["NAME"])
	assert.Equal(t, chroma.LiteralStringDouble, types["\"World\""])
	assert.Equal(t, chroma.LiteralNumber, types["400"])
	assert.Equal(t, chroma.KeywordConstant, types["on"])
	assert.Equal(t, chroma.Keyword, types["END"])
}

func TestTokensExpression(t *testing.T) {
	tokens, err := Tokens("EXPRESSION ([POP] > (1000))")
	require.NoError(t, err)
	values := []string{}
	for _, token := range tokens {
		if token.Type == chroma.NameVariable {
			values = append(values, token.Value)
		}
	}
	assert.Equal(t, []string{"[POP]"}, values)
	assert.Equal(t, chroma.Punctuation, tokens[len(tokens)-1].Type)
}

func TestWriteHTML(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteHTML(buf, "world.map", "MAP\n  NAME \"World Map\"\nEND\n", ""))
	assert.Contains(t, buf.String(), "<title>world.map</title>")
	assert.Contains(t, buf.String(), "<pre")
	assert.Contains(t, buf.String(), "World Map")
}
