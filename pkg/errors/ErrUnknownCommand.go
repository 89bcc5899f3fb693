// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrUnknownCommand struct {
	Type string
}

func (e *ErrUnknownCommand) Error() string {
	return "unknown command type " + e.Type
}
