// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrLex(t *testing.T) {
	assert.Equal(t, "world.map:3:7: unterminated string", (&ErrLex{Filename: "world.map", Line: 3, Column: 7, Message: "unterminated string"}).Error())
	assert.Equal(t, "line 3, column 7: unterminated string", (&ErrLex{Line: 3, Column: 7, Message: "unterminated string"}).Error())
}

func TestErrParse(t *testing.T) {
	assert.Equal(t, "line 12: duplicate MAP block", (&ErrParse{Line: 12, Message: "duplicate MAP block"}).Error())
}

func TestErrInvalidParameter(t *testing.T) {
	assert.Equal(t, "invalid parameter opacity with value 101", (&ErrInvalidParameter{Name: "opacity", Value: 101}).Error())
	assert.Equal(t, "invalid parameter size with value [0 10]: width and height must both be positive", (&ErrInvalidParameter{Name: "size", Value: []int{0, 10}, Reason: "width and height must both be positive"}).Error())
}

func TestWarnDanglingReference(t *testing.T) {
	w := &WarnDanglingReference{Layer: "roads", Attribute: "mask", Target: "land"}
	assert.Equal(t, "layer roads has mask referencing missing layer land", w.Error())
}
