// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HistoryHandler responds with the journal entries of a document.
type HistoryHandler struct {
	*BaseHandler
}

func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "history")
	vars := mux.Vars(r)
	format := vars["ext"]

	if r.Method != "GET" || h.Journal == nil {
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

	entries, err := h.Journal.List(r.Context(), s.Id)
	if err != nil {
		h.SendError(err)
		err = h.RespondWithError(w, err, format)
		if err != nil {
			h.SendError(err)
		}
		return
	}

	err = h.RespondWithObject(&Response{
		Url:        r.URL,
		Writer:     w,
		StatusCode: http.StatusOK,
		Format:     format,
		Object:     map[string]interface{}{"id": s.Id, "undo": s.Depth(), "entries": entries},
	})
	if err != nil {
		h.SendError(err)
	}
}
