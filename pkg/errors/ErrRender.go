// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrRender struct {
	Renderer string
	Message  string
}

func (e *ErrRender) Error() string {
	if len(e.Renderer) > 0 {
		return "error rendering map with " + e.Renderer + ": " + e.Message
	}
	return "error rendering map: " + e.Message
}
