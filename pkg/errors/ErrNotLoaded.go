// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrNotLoaded struct {
	Path string
}

func (e *ErrNotLoaded) Error() string {
	if len(e.Path) == 0 {
		return "mapfile is not loaded"
	}
	return "mapfile at path " + e.Path + " is not loaded"
}
