// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/geojson"
)

// ExtentHandler responds with the map extent as a GeoJSON feature.
type ExtentHandler struct {
	*BaseHandler
}

func (h *ExtentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "extent")
	vars := mux.Vars(r)

	if r.Method != "GET" {
		err := h.RespondWithNotImplemented(w, "json")
		if err != nil {
			h.SendError(err)
		}
		return
	}

	err := h.extent(w, vars)
	if err != nil {
		h.SendError(err)
		err = h.RespondWithError(w, err, "json")
		if err != nil {
			h.SendError(err)
		}
	}
}

func (h *ExtentHandler) extent(w http.ResponseWriter, vars map[string]string) error {
	s, err := h.Session(vars)
	if err != nil {
		return err
	}
	f, err := geojson.Extent(s.Document.Snapshot())
	if err != nil {
		return err
	}
	b, err := json.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "error serializing extent")
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, err = w.Write(b)
	return err
}
