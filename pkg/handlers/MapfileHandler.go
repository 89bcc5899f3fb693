// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/spatialcurrent/go-mapfile/pkg/highlight"
	"github.com/spatialcurrent/go-mapfile/pkg/serializer"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// MapfileHandler responds with the serialized document, as mapfile text or as highlighted html.
type MapfileHandler struct {
	*BaseHandler
	Style string
}

func (h *MapfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "mapfile")
	vars := mux.Vars(r)
	format := vars["ext"]

	if r.Method != "GET" {
		err := h.RespondWithNotImplemented(w, format)
		if err != nil {
			h.SendError(err)
		}
		return
	}

	s, err := h.Session(vars)
	if err != nil {
		err = h.RespondWithError(w, err, format)
		if err != nil {
			h.SendError(err)
		}
		return
	}

	text := serializer.Serialize(s.Document.Snapshot())

	switch format {
	case "map", "txt":
		if p := s.Document.Path(); len(p) > 0 {
			w.Header().Set("Content-Disposition", "inline; filename="+filepath.Base(p))
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err = w.Write(text)
	case "html":
		title := s.Document.Path()
		if len(title) == 0 {
			title = s.Document.MapName()
		}
		w.Header().Set("Content-Type", "text/html")
		err = highlight.WriteHTML(w, title, string(text), h.Style)
	default:
		err = h.RespondWithError(w, &merrors.ErrInvalidParameter{Name: "ext", Value: format, Reason: "must be map, txt or html"}, "json")
	}
	if err != nil {
		h.SendError(err)
	}
}
