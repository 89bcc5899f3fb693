// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/spatialcurrent/go-mapfile/pkg/lexer"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// value returns the value following keyword.
func (p *parser) value(keyword lexer.Token) (lexer.Token, error) {
	t, err := p.next()
	if err != nil {
		return t, err
	}
	if !isValue(t) {
		return t, p.errorf(keyword.Line, "missing value for %s", keyword.Upper())
	}
	return t, nil
}

func (p *parser) parseString(keyword lexer.Token) (string, error) {
	t, err := p.value(keyword)
	if err != nil {
		return "", err
	}
	return t.Value, nil
}

func (p *parser) parseFloat64(keyword lexer.Token) (float64, error) {
	t, err := p.value(keyword)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(t.Value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, p.errorf(t.Line, "malformed numeric literal %q for %s", t.Value, keyword.Upper())
	}
	return f, nil
}

func (p *parser) parseInt(keyword lexer.Token) (int, error) {
	t, err := p.value(keyword)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(t.Value)
	if err != nil {
		return 0, p.errorf(t.Line, "malformed numeric literal %q for %s, expecting an integer", t.Value, keyword.Upper())
	}
	return i, nil
}

// parseFloat64Array parses n numbers following keyword, as used by EXTENT.
func (p *parser) parseFloat64Array(keyword lexer.Token, n int) ([]float64, error) {
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		f, err := p.parseFloat64(keyword)
		if err != nil {
			return values, err
		}
		values = append(values, f)
	}
	return values, nil
}

// parseIntArray parses n integers following keyword, as used by SIZE and IMAGECOLOR.
func (p *parser) parseIntArray(keyword lexer.Token, n int) ([]int, error) {
	values := make([]int, 0, n)
	for i := 0; i < n; i++ {
		x, err := p.parseInt(keyword)
		if err != nil {
			return values, err
		}
		values = append(values, x)
	}
	return values, nil
}

// parseSwitch parses ON, OFF, TRUE or FALSE.
func (p *parser) parseSwitch(keyword lexer.Token) (bool, error) {
	t, err := p.value(keyword)
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(t.Value) {
	case "ON", "TRUE":
		return true, nil
	case "OFF", "FALSE":
		return false, nil
	}
	return false, p.errorf(t.Line, "invalid value %q for %s, expecting ON or OFF", t.Value, keyword.Upper())
}

// parseDebug parses a debug level, where ON is level 1.
func (p *parser) parseDebug(keyword lexer.Token) (int, error) {
	t, err := p.value(keyword)
	if err != nil {
		return 0, err
	}
	switch strings.ToUpper(t.Value) {
	case "ON":
		return 1, nil
	case "OFF":
		return 0, nil
	}
	i, err := strconv.Atoi(t.Value)
	if err != nil {
		return 0, p.errorf(t.Line, "malformed numeric literal %q for %s", t.Value, keyword.Upper())
	}
	return i, nil
}

// parseColor parses an RGB triplet or a "#rrggbb" string.
func (p *parser) parseColor(keyword lexer.Token) (*mapfile.Color, error) {
	t, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if t.Kind == lexer.String && strings.HasPrefix(t.Value, "#") {
		_, _ = p.next()
		c, err := mapfile.ParseHexColor(t.Value)
		if err != nil {
			return nil, p.wrap(keyword, err)
		}
		return c, nil
	}
	values, err := p.parseIntArray(keyword, 3)
	if err != nil {
		return nil, err
	}
	return &mapfile.Color{Red: values[0], Green: values[1], Blue: values[2]}, nil
}
