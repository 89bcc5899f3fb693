// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"path/filepath"
	"strings"
)

// SplitNameFormat splits a path into its name and format.
//  - /documents/abc.json => ("/documents/abc", "json")
//  - world.map => ("world", "map")
//  - world => ("world", "")
func SplitNameFormat(p string) (string, string) {
	ext := filepath.Ext(p)
	if len(ext) == 0 {
		return p, ""
	}
	return p[:len(p)-len(ext)], strings.ToLower(ext[1:])
}
