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

	"github.com/spatialcurrent/go-mapfile/pkg/journal"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// UndoHandler reverts the last group of commands applied through the api.
type UndoHandler struct {
	*BaseHandler
}

func (h *UndoHandler) Undo(r *http.Request, vars map[string]string) (map[string]interface{}, error) {
	s, err := h.Session(vars)
	if err != nil {
		return nil, err
	}
	c, ok, err := s.Undo()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &merrors.ErrMissingObject{Type: "command", Name: "undo"}
	}
	h.Record(r, &journal.Entry{
		Document:    s.Id,
		Action:      journal.ActionRevert,
		Description: c.Description(),
	})
	obj := s.Summary()
	obj["command"] = c.Description()
	return obj, nil
}

func (h *UndoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "undo")
	vars := mux.Vars(r)
	format := vars["ext"]

	switch r.Method {
	case "POST":
		obj, err := h.Undo(r, vars)
		if err != nil {
			h.SendError(err)
			err = h.RespondWithError(w, err, format)
			if err != nil {
				h.SendError(err)
			}
			return
		}
		err = h.RespondWithObject(&Response{
			Writer:     w,
			StatusCode: http.StatusOK,
			Format:     format,
			Object:     obj,
		})
		if err != nil {
			h.SendError(err)
		}
	default:
		err := h.RespondWithNotImplemented(w, format)
		if err != nil {
			h.SendError(err)
		}
	}
}
