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

	"github.com/spatialcurrent/go-mapfile/pkg/document"
	"github.com/spatialcurrent/go-mapfile/pkg/journal"
)

// OpenInput is the body of a request to open a document.  A blank path opens a new document.
type OpenInput struct {
	Path string `json:"path" yaml:"path"`
}

// DocumentsHandler opens documents and lists the open documents.
type DocumentsHandler struct {
	*BaseHandler
}

func (h *DocumentsHandler) Open(r *http.Request, format string) (*Session, error) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading body")
	}
	input := &OpenInput{}
	if len(body) > 0 {
		if err := h.ParseBody(body, format, input); err != nil {
			return nil, err
		}
	}
	if len(input.Path) == 0 {
		return h.Registry.Add(document.New()), nil
	}
	d, err := document.Load(input.Path)
	if err != nil {
		return nil, err
	}
	s := h.Registry.Add(d)
	h.SendInfo(map[string]interface{}{"msg": "opened document", "id": s.Id, "path": input.Path})
	h.Record(r, &journal.Entry{Document: s.Id, Action: journal.ActionOpen, Description: "Open " + input.Path})
	return s, nil
}

func (h *DocumentsHandler) List() []interface{} {
	sessions := h.Registry.List()
	summaries := make([]interface{}, 0, len(sessions))
	for _, s := range sessions {
		summaries = append(summaries, s.Summary())
	}
	return summaries
}

func (h *DocumentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "documents")
	format := mux.Vars(r)["ext"]
	switch r.Method {
	case "POST":
		s, err := h.Open(r, format)
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
			StatusCode: http.StatusCreated,
			Format:     format,
			Object:     s.Summary(),
		})
		if err != nil {
			h.SendError(err)
		}
	case "GET":
		err := h.RespondWithObject(&Response{
			Url:        r.URL,
			Writer:     w,
			StatusCode: http.StatusOK,
			Format:     format,
			Object:     map[string]interface{}{"documents": h.List()},
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
