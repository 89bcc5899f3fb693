// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/views"
)

// TableHandler responds with a table view of a document, such as its layers or output formats.
type TableHandler struct {
	*BaseHandler
	Name string
	View func(m *mapfile.Map) *views.Table
}

func (h *TableHandler) respond(w http.ResponseWriter, r *http.Request, t *views.Table, format string) error {
	switch format {
	case "csv", "text":
		buf := new(bytes.Buffer)
		if err := t.Write(buf, format); err != nil {
			return err
		}
		if format == "csv" {
			w.Header().Set("Content-Type", "text/csv")
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
	return h.RespondWithObject(&Response{
		Url:        r.URL,
		Writer:     w,
		StatusCode: http.StatusOK,
		Format:     format,
		Object:     map[string]interface{}{h.Name: t.Records()},
	})
}

func (h *TableHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, h.Name)
	vars := mux.Vars(r)
	format := vars["ext"]

	switch r.Method {
	case "GET":
		s, err := h.Session(vars)
		if err != nil {
			err = h.RespondWithError(w, err, format)
			if err != nil {
				h.SendError(err)
			}
			return
		}
		err = h.respond(w, r, h.View(s.Document.Snapshot()), format)
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
