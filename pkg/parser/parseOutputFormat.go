// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"strings"

	"github.com/spatialcurrent/go-mapfile/pkg/lexer"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

func (p *parser) parseOutputFormat(block lexer.Token) (*mapfile.OutputFormat, error) {
	f := mapfile.NewParsedOutputFormat("")
	for {
		t, err := p.next()
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case lexer.EOF:
			return nil, p.unterminated(block)
		case lexer.End:
			if f.Name() == "" {
				return nil, p.errorf(block.Line, "OUTPUTFORMAT block starting at line %d has no NAME", block.Line)
			}
			f.MarkLoaded()
			return f, nil
		case lexer.Keyword:
		default:
			return nil, p.errorf(t.Line, "unexpected %s in OUTPUTFORMAT block", t.String())
		}
		if err := p.parseOutputFormatKeyword(f, t); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseOutputFormatKeyword(f *mapfile.OutputFormat, t lexer.Token) error {
	switch t.Upper() {
	case "NAME":
		name, err := p.parseString(t)
		if err != nil {
			return err
		}
		if err := f.SetName(name); err != nil {
			return p.wrap(t, err)
		}
	case "MIMETYPE":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		f.SetMimeType(str)
	case "DRIVER":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		f.SetDriver(str)
	case "EXTENSION":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		f.SetExtension(str)
	case "IMAGEMODE":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		mode, err := mapfile.ParseImageMode(str)
		if err != nil {
			return p.wrap(t, err)
		}
		_ = f.SetImageMode(mode)
	case "TRANSPARENT":
		transparent, err := p.parseSwitch(t)
		if err != nil {
			return err
		}
		f.SetTransparent(transparent)
	case "FORMATOPTION":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		parts := strings.SplitN(str, "=", 2)
		if len(parts) != 2 {
			return p.errorf(t.Line, "invalid value %q for FORMATOPTION, expecting KEY=VALUE", str)
		}
		options := f.FormatOptions()
		options.Set(parts[0], parts[1])
		f.ReplaceFormatOptions(options)
	default:
		span, err := p.opaque(t, outputFormatKeywords)
		if err != nil {
			return err
		}
		f.AddExtra(mapfile.Opaque{Keyword: t.Upper(), Text: p.text(span), Line: t.Line, Column: t.Column})
	}
	return nil
}
