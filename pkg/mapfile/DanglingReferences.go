// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"regexp"
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

var requiresReference = regexp.MustCompile(`\[([^\]]+)\]`)

// RequiredLayers returns the layer names referenced by a REQUIRES expression, e.g., "![orthoquads]".
// An expression without brackets is treated as a single layer name.
func RequiredLayers(requires string) []string {
	requires = strings.TrimSpace(requires)
	if requires == "" {
		return []string{}
	}
	matches := requiresReference.FindAllStringSubmatch(requires, -1)
	if len(matches) == 0 {
		return []string{strings.TrimPrefix(requires, "!")}
	}
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}

// DanglingReferences returns a warning for every mask or requires reference that names no layer.
func (m *Map) DanglingReferences() []*merrors.WarnDanglingReference {
	warnings := make([]*merrors.WarnDanglingReference, 0)
	for _, l := range m.layers {
		if l.mask != "" && m.Layer(l.mask) == nil {
			warnings = append(warnings, &merrors.WarnDanglingReference{Layer: l.name, Attribute: "mask", Target: l.mask})
		}
		for _, name := range RequiredLayers(l.requires) {
			if m.Layer(name) == nil {
				warnings = append(warnings, &merrors.WarnDanglingReference{Layer: l.name, Attribute: "requires", Target: name})
			}
		}
	}
	return warnings
}
