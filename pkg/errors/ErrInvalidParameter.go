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

// ErrInvalidParameter is returned when a setter or command receives a value that breaks a model invariant.
type ErrInvalidParameter struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *ErrInvalidParameter) Error() string {
	str := "invalid parameter " + e.Name + " with value " + fmt.Sprint(e.Value)
	if len(e.Reason) > 0 {
		str += ": " + e.Reason
	}
	return str
}
