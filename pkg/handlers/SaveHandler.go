// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/journal"
)

// SaveInput is the body of a request to save a document.  A blank path saves to the path the document was opened from.
type SaveInput struct {
	Path string `json:"path" yaml:"path"`
}

// SaveHandler writes a document to disk.
type SaveHandler struct {
	*BaseHandler
}

func (h *SaveHandler) Save(r *http.Request, vars map[string]string, format string) (*Session, error) {
	s, err := h.Session(vars)
	if err != nil {
		return nil, err
	}
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading body")
	}
	input := &SaveInput{}
	if len(body) > 0 {
		if err := h.ParseBody(body, format, input); err != nil {
			return nil, err
		}
	}
	if err := s.Document.Save(input.Path); err != nil {
		return nil, err
	}
	h.SendInfo(map[string]interface{}{"msg": "saved document", "id": s.Id, "path": s.Document.Path()})
	h.Record(r, &journal.Entry{
		Document:    s.Id,
		Action:      journal.ActionSave,
		Description: "Save " + s.Document.Path(),
	})
	return s, nil
}

func (h *SaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "save")
	vars := mux.Vars(r)
	format := vars["ext"]

	switch r.Method {
	case "POST":
		s, err := h.Save(r, vars, format)
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
			Object:     s.Summary(),
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
