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

type HealthHandler struct {
	*BaseHandler
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "health")
	format := mux.Vars(r)["ext"]
	switch r.Method {
	case "GET":
		obj := map[string]interface{}{
			"success":   true,
			"documents": h.Registry.Count(),
			"gitBranch": h.GitBranch,
			"gitCommit": h.GitCommit,
		}
		err := h.RespondWithObject(&Response{
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
