// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

// Web is the WEB block of a map, excluding its METADATA which is held by the map.
type Web struct {
	ImagePath string
	ImageURL  string
	Template  string
	Header    string
	Footer    string
	Extras    []Opaque
}

func (w Web) IsZero() bool {
	return w.ImagePath == "" && w.ImageURL == "" && w.Template == "" && w.Header == "" && w.Footer == "" && len(w.Extras) == 0
}

func (w Web) Clone() Web {
	c := w
	c.Extras = cloneOpaque(w.Extras)
	return c
}

func (w Web) Equal(o Web) bool {
	return w.ImagePath == o.ImagePath &&
		w.ImageURL == o.ImageURL &&
		w.Template == o.Template &&
		w.Header == o.Header &&
		w.Footer == o.Footer &&
		equalOpaque(w.Extras, o.Extras)
}
