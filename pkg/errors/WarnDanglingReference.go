// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

// WarnDanglingReference is a non-fatal warning.  A layer refers by name to a layer that does not exist.
type WarnDanglingReference struct {
	Layer     string // the layer holding the reference
	Attribute string // mask or requires
	Target    string
}

func (w *WarnDanglingReference) Error() string {
	return "layer " + w.Layer + " has " + w.Attribute + " referencing missing layer " + w.Target
}
