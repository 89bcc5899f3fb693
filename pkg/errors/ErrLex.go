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

// ErrLex is returned when the tokenizer cannot turn the input into tokens.
type ErrLex struct {
	Filename string
	Line     int
	Column   int
	Message  string
}

func (e *ErrLex) Error() string {
	if len(e.Filename) > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}
