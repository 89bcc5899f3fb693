// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrDuplicateName struct {
	Type string
	Name string
}

func (e *ErrDuplicateName) Error() string {
	return e.Type + " with name " + e.Name + " already exists"
}
