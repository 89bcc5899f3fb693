// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"strings"
)

// Opaque is a construct that is not modeled, kept as the verbatim source text so it can be written back unchanged.
type Opaque struct {
	Keyword string
	Text    string
	Line    int
	Column  int
}

// Equal compares the keyword and text, ignoring the position.
func (o Opaque) Equal(x Opaque) bool {
	return strings.EqualFold(o.Keyword, x.Keyword) && o.Text == x.Text
}

func cloneOpaque(in []Opaque) []Opaque {
	if len(in) == 0 {
		return nil
	}
	return append(make([]Opaque, 0, len(in)), in...)
}

func equalOpaque(a []Opaque, b []Opaque) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
