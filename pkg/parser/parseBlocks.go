// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"github.com/spatialcurrent/go-mapfile/pkg/lexer"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// parseProjection parses the parameters of a PROJECTION block, quoted or not.
func (p *parser) parseProjection(block lexer.Token) (mapfile.Projection, error) {
	params := make([]string, 0)
	for {
		t, err := p.next()
		if err != nil {
			return mapfile.Projection{}, err
		}
		switch t.Kind {
		case lexer.EOF:
			return mapfile.Projection{}, p.unterminated(block)
		case lexer.End:
			return mapfile.NewProjection(params...), nil
		case lexer.String, lexer.Keyword:
			params = append(params, t.Value)
		default:
			return mapfile.Projection{}, p.errorf(t.Line, "unexpected %s in PROJECTION block", t.String())
		}
	}
}

// parseMetadata parses the key value pairs of a METADATA block and passes each pair to set.
// Blank values are kept.
func (p *parser) parseMetadata(block lexer.Token, set func(key string, value string)) error {
	for {
		t, err := p.next()
		if err != nil {
			return err
		}
		switch t.Kind {
		case lexer.EOF:
			return p.unterminated(block)
		case lexer.End:
			return nil
		case lexer.String, lexer.Keyword, lexer.Number:
		default:
			return p.errorf(t.Line, "unexpected %s in METADATA block", t.String())
		}
		value, err := p.value(t)
		if err != nil {
			return p.errorf(t.Line, "missing value for metadata %q", t.Value)
		}
		set(t.Value, value.Value)
	}
}

// parseWeb parses a WEB block.  Its METADATA is the metadata of the map.
func (p *parser) parseWeb(m *mapfile.Map, block lexer.Token) error {
	web := m.Web()
	for {
		t, err := p.next()
		if err != nil {
			return err
		}
		switch t.Kind {
		case lexer.EOF:
			return p.unterminated(block)
		case lexer.End:
			m.SetWeb(web)
			return nil
		case lexer.Keyword:
		default:
			return p.errorf(t.Line, "unexpected %s in WEB block", t.String())
		}
		var target *string
		switch t.Upper() {
		case "IMAGEPATH":
			target = &web.ImagePath
		case "IMAGEURL":
			target = &web.ImageURL
		case "TEMPLATE":
			target = &web.Template
		case "HEADER":
			target = &web.Header
		case "FOOTER":
			target = &web.Footer
		case "METADATA":
			metadata := m.Metadata()
			if err := p.parseMetadata(t, metadata.Set); err != nil {
				return err
			}
			m.ReplaceMetadata(metadata)
			continue
		default:
			span, err := p.opaque(t, webKeywords)
			if err != nil {
				return err
			}
			web.Extras = append(web.Extras, mapfile.Opaque{Keyword: t.Upper(), Text: p.text(span), Line: t.Line, Column: t.Column})
			continue
		}
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		*target = str
	}
}
