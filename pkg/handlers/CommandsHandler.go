// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/commands"
	"github.com/spatialcurrent/go-mapfile/pkg/journal"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// CommandsHandler applies a list of command specs to a document as one undoable group.
// The description query parameter names the group.
type CommandsHandler struct {
	*BaseHandler
}

func (h *CommandsHandler) Apply(r *http.Request, vars map[string]string, format string) (*Session, commands.Command, error) {
	s, err := h.Session(vars)
	if err != nil {
		return nil, nil, err
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error reading body")
	}

	specs, err := commands.ParseSpecs(body, format)
	if err != nil {
		return nil, nil, &merrors.ErrInvalidParameter{Name: "body", Value: string(body), Reason: err.Error()}
	}
	if len(specs) == 0 {
		return nil, nil, &merrors.ErrMissingRequiredParameter{Name: "commands"}
	}

	description := r.URL.Query().Get("description")
	if len(description) == 0 {
		if len(specs) == 1 {
			description = fmt.Sprintf("Apply %s", specs[0].Type)
		} else {
			description = fmt.Sprintf("Apply %d commands", len(specs))
		}
	}

	c, err := s.Document.ApplySpecs(description, specs)
	if err != nil {
		return nil, nil, err
	}
	s.Push(c)

	h.Record(r, &journal.Entry{
		Document:    s.Id,
		Action:      journal.ActionApply,
		Description: c.Description(),
		Body:        string(body),
	})
	return s, c, nil
}

func (h *CommandsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "commands")
	vars := mux.Vars(r)
	format := vars["ext"]

	switch r.Method {
	case "POST":
		s, c, err := h.Apply(r, vars, format)
		if err != nil {
			h.SendError(err)
			err = h.RespondWithError(w, err, format)
			if err != nil {
				h.SendError(err)
			}
			return
		}
		obj := s.Summary()
		obj["command"] = c.Description()
		err = h.RespondWithObject(&Response{
			Url:        r.URL,
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
