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

func (p *parser) parseMap(block lexer.Token) (*mapfile.Map, error) {
	m := mapfile.New()
	for {
		t, err := p.next()
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case lexer.EOF:
			return nil, p.unterminated(block)
		case lexer.End:
			return m, nil
		case lexer.Keyword:
		default:
			return nil, p.errorf(t.Line, "unexpected %s in MAP block", t.String())
		}
		if err := p.parseMapKeyword(m, t); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseMapKeyword(m *mapfile.Map, t lexer.Token) error {
	switch t.Upper() {
	case "NAME":
		name, err := p.parseString(t)
		if err != nil {
			return err
		}
		if err := m.SetName(name); err != nil {
			return p.wrap(t, err)
		}
	case "STATUS":
		status, err := p.parseSwitch(t)
		if err != nil {
			return err
		}
		m.SetStatus(status)
	case "SIZE":
		size, err := p.parseIntArray(t, 2)
		if err != nil {
			return err
		}
		if err := m.SetSize(size[0], size[1]); err != nil {
			return p.wrap(t, err)
		}
	case "MAXSIZE":
		maxSize, err := p.parseInt(t)
		if err != nil {
			return err
		}
		if err := m.SetMaxSize(maxSize); err != nil {
			return p.wrap(t, err)
		}
	case "UNITS":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		units, err := mapfile.ParseUnits(str)
		if err != nil {
			return p.wrap(t, err)
		}
		_ = m.SetUnits(units)
	case "EXTENT":
		values, err := p.parseFloat64Array(t, 4)
		if err != nil {
			return err
		}
		m.SetExtent(mapfile.Extent{MinX: values[0], MinY: values[1], MaxX: values[2], MaxY: values[3]})
	case "RESOLUTION":
		resolution, err := p.parseFloat64(t)
		if err != nil {
			return err
		}
		if err := m.SetResolution(resolution); err != nil {
			return p.wrap(t, err)
		}
	case "DEFRESOLUTION":
		resolution, err := p.parseFloat64(t)
		if err != nil {
			return err
		}
		if err := m.SetDefResolution(resolution); err != nil {
			return p.wrap(t, err)
		}
	case "DEBUG":
		debug, err := p.parseDebug(t)
		if err != nil {
			return err
		}
		if err := m.SetDebug(debug); err != nil {
			return p.wrap(t, err)
		}
	case "ANGLE":
		angle, err := p.parseFloat64(t)
		if err != nil {
			return err
		}
		m.SetAngle(angle)
	case "SHAPEPATH":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		m.SetShapePath(str)
	case "FONTSET":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		m.SetFontSet(str)
	case "SYMBOLSET":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		m.SetSymbolSet(str)
	case "TEMPLATEPATTERN":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		m.SetTemplatePattern(str)
	case "DATAPATTERN":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		m.SetDataPattern(str)
	case "IMAGETYPE":
		str, err := p.parseString(t)
		if err != nil {
			return err
		}
		m.SetImageType(str)
	case "IMAGECOLOR":
		c, err := p.parseColor(t)
		if err != nil {
			return err
		}
		if err := m.SetImageColor(c); err != nil {
			return p.wrap(t, err)
		}
	case "CONFIG":
		key, err := p.parseString(t)
		if err != nil {
			return err
		}
		value, err := p.parseString(t)
		if err != nil {
			return err
		}
		config := m.Config()
		config.Set(key, value)
		m.ReplaceConfig(config)
	case "PROJECTION":
		projection, err := p.parseProjection(t)
		if err != nil {
			return err
		}
		m.SetProjection(projection)
	case "WEB":
		return p.parseWeb(m, t)
	case "OUTPUTFORMAT":
		f, err := p.parseOutputFormat(t)
		if err != nil {
			return err
		}
		if err := m.AddOutputFormat(f); err != nil {
			return p.wrap(t, err)
		}
	case "LAYER":
		l, err := p.parseLayer(t)
		if err != nil {
			return err
		}
		if err := m.AddLayer(l); err != nil {
			return p.wrap(t, err)
		}
	default:
		span, err := p.opaque(t, mapKeywords)
		if err != nil {
			return err
		}
		m.AddExtra(mapfile.Opaque{Keyword: t.Upper(), Text: p.text(span), Line: t.Line, Column: t.Column})
	}
	return nil
}
