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

func (p *parser) parseLayer(block lexer.Token) (*mapfile.Layer, error) {
	l := mapfile.NewLayer("", mapfile.LayerTypePolygon)
	for {
		t, err := p.next()
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case lexer.EOF:
			return nil, p.unterminated(block)
		case lexer.End:
			if l.Name() == "" {
				return nil, p.errorf(block.Line, "LAYER block starting at line %d has no NAME", block.Line)
			}
			return l, nil
		case lexer.Keyword:
		default:
			return nil, p.errorf(t.Line, "unexpected %s in LAYER block", t.String())
		}
		if err := p.parseLayerKeyword(l, t); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseLayerKeyword(l *mapfile.Layer, t lexer.Token) error {
	switch t.Upper() {
	case "NAME":
		name, err := p.parseString(t)
		if err != nil {
			return err
		}
		if err := l.SetName(name); err != nil {
			return p.wrap(t, err)
		}
	case "TYPE":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		layerType, err := mapfile.ParseLayerType(str)
		if err != nil {
			return p.wrap(t, err)
		}
		_ = l.SetType(layerType)
	case "STATUS":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		status, err := mapfile.ParseStatus(str)
		if err != nil {
			return p.wrap(t, err)
		}
		_ = l.SetStatus(status)
	case "REQUIRES":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetRequires(str)
	case "MASK":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetMask(str)
	case "GROUP":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetGroup(str)
	case "OPACITY":
		opacity, err := p.parseInt(t)
		if err != nil {
			return err
		}
		if err := l.SetOpacity(opacity); err != nil {
			return p.wrap(t, err)
		}
	case "DEBUG":
		debug, err := p.parseDebug(t)
		if err != nil {
			return err
		}
		if err := l.SetDebug(debug); err != nil {
			return p.wrap(t, err)
		}
	case "MINSCALEDENOM", "MINSCALE":
		v, err := p.parseFloat64(t)
		if err != nil {
			return err
		}
		if err := l.SetMinScaleDenom(v); err != nil {
			return p.wrap(t, err)
		}
	case "MAXSCALEDENOM", "MAXSCALE":
		v, err := p.parseFloat64(t)
		if err != nil {
			return err
		}
		if err := l.SetMaxScaleDenom(v); err != nil {
			return p.wrap(t, err)
		}
	case "TEMPLATE":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetTemplate(str)
	case "HEADER":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetHeader(str)
	case "FOOTER":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetFooter(str)
	case "DATA":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetData(str)
	case "CONNECTION":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetConnection(str)
	case "CONNECTIONTYPE":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.SetConnectionType(str)
	case "PROCESSING":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		l.AddProcessing(str)
	case "PROJECTION":
		projection, err := p.parseProjection(t)
		if err != nil {
			return err
		}
		l.SetProjection(projection)
	case "METADATA":
		metadata := l.Metadata()
		if err := p.parseMetadata(t, metadata.Set); err != nil {
			return err
		}
		l.ReplaceMetadata(metadata)
	default:
		span, err := p.opaque(t, layerKeywords)
		if err != nil {
			return err
		}
		l.AddExtra(mapfile.Opaque{Keyword: t.Upper(), Text: p.text(span), Line: t.Line, Column: t.Column})
	}
	return nil
}
