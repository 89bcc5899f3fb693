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

// DocumentHandler describes or closes one open document.
type DocumentHandler struct {
	*BaseHandler
}

func (h *DocumentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "document")
	vars := mux.Vars(r)
	format := vars["ext"]

	s, err := h.Session(vars)
	if err != nil {
		err = h.RespondWithError(w, err, format)
		if err != nil {
			h.SendError(err)
		}
		return
	}

	switch r.Method {
	case "GET":
		err = h.RespondWithObject(&Response{
			Url:        r.URL,
			Writer:     w,
			StatusCode: http.StatusOK,
			Format:     format,
			Object:     s.Summary(),
		})
	case "DELETE":
		h.Registry.Delete(s.Id)
		h.SendInfo(map[string]interface{}{"msg": "closed document", "id": s.Id})
		err = h.RespondWithObject(&Response{
			Writer:     w,
			StatusCode: http.StatusOK,
			Format:     format,
			Object:     map[string]interface{}{"success": true, "id": s.Id, "modified": s.Document.Modified()},
		})
	default:
		err = h.RespondWithNotImplemented(w, format)
	}
	if err != nil {
		h.SendError(err)
	}
}
