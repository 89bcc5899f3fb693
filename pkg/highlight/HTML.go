// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package highlight

import (
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma"
	htmlformatter "github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/styles"
	"github.com/pkg/errors"
)

// WriteHTML writes an html page with the highlighted source.  If style is blank, DefaultStyle is used.
func WriteHTML(w io.Writer, title string, source string, style string) error {
	if len(style) == 0 {
		style = DefaultStyle
	}
	s := styles.Get(style)
	formatter := htmlformatter.New(htmlformatter.WithClasses(true), htmlformatter.WithLineNumbers(true))

	var head strings.Builder
	head.WriteString("<title>" + html.EscapeString(title) + "</title>")
	head.WriteString("<style>")
	if err := formatter.WriteCSS(&head, s); err != nil {
		return errors.Wrap(err, "error writing chroma styles")
	}
	head.WriteString("pre { padding: 20px; }")
	head.WriteString("</style>")

	iterator, err := chroma.Coalesce(Lexer).Tokenise(nil, source)
	if err != nil {
		return errors.Wrap(err, "error tokenizing mapfile")
	}
	var body strings.Builder
	if err := formatter.Format(&body, s, iterator); err != nil {
		return errors.Wrap(err, "error formatting mapfile")
	}

	_, err = io.WriteString(w, "<html><head>"+head.String()+"</head><body>"+body.String()+"</body></html>")
	return err
}
