// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lexer

import (
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

var escapes = map[byte]byte{
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
}

// Unquote decodes a quoted string token.  line and column locate the opening quote and are
// used to report the position of an invalid escape sequence.
func Unquote(raw string, line int, column int) (string, error) {
	if len(raw) < 2 {
		return "", &merrors.ErrLex{Line: line, Column: column, Message: "unterminated string"}
	}
	body := raw[1 : len(raw)-1]
	if strings.IndexByte(body, '\\') == -1 {
		return body, nil
	}
	var b strings.Builder
	l, c := line, column+1
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch == '\\' {
			if i+1 >= len(body) {
				return "", &merrors.ErrLex{Line: l, Column: c, Message: "invalid escape sequence at end of string"}
			}
			decoded, ok := escapes[body[i+1]]
			if !ok {
				return "", &merrors.ErrLex{Line: l, Column: c, Message: "invalid escape sequence \\" + string(body[i+1])}
			}
			b.WriteByte(decoded)
			i++
			c += 2
			continue
		}
		b.WriteByte(ch)
		if ch == '\n' {
			l++
			c = 1
		} else {
			c++
		}
	}
	return b.String(), nil
}

// Quote encodes a value as a double-quoted mapfile string.
func Quote(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		switch ch := value[i]; ch {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}
