// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"fmt"
)

// ErrParse is returned when the token stream does not form a valid mapfile.
type ErrParse struct {
	Filename string
	Line     int
	Message  string
}

func (e *ErrParse) Error() string {
	if len(e.Filename) > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
