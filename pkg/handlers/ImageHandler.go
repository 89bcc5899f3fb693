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
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/img"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
	"github.com/spatialcurrent/go-mapfile/pkg/request"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// ImageHandler renders the document and responds with the image.
// Query parameters width and height override the map size.
type ImageHandler struct {
	*BaseHandler
}

func (h *ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Annotate(r, "image")
	vars := mux.Vars(r)
	ext := vars["ext"]

	if r.Method != "GET" {
		err := h.RespondWithNotImplemented(w, "json")
		if err != nil {
			h.SendError(err)
		}
		return
	}

	b, err := h.Run(r, vars, request.NewQueryString(r), ext)
	if err != nil {
		h.SendError(err)
		err = h.RespondWithError(w, err, "json")
		if err != nil {
			h.SendError(err)
		}
		return
	}

	err = img.RespondWithImage(ext, w, b)
	if err != nil {
		h.SendError(err)
	}
}

func (h *ImageHandler) Run(r *http.Request, vars map[string]string, qs request.QueryString, ext string) ([]byte, error) {
	if _, ok := img.ContentTypes[ext]; !ok {
		return nil, &merrors.ErrUnknownImageExtension{Extension: ext}
	}

	s, err := h.Session(vars)
	if err != nil {
		return nil, err
	}

	width, err := qs.IntOrDefault("width", 0)
	if err != nil {
		return nil, &merrors.ErrInvalidParameter{Name: "width", Value: qs.Params["width"], Reason: err.Error()}
	}
	height, err := qs.IntOrDefault("height", 0)
	if err != nil {
		return nil, &merrors.ErrInvalidParameter{Name: "height", Value: qs.Params["height"], Reason: err.Error()}
	}

	m := s.Document.Snapshot()

	load := func() ([]byte, error) {
		result := render.Bridge(r.Context(), h.Renderer, m, width, height)
		rr := request.RenderRequest{Document: s.Id, Width: width, Height: height, Format: ext, Length: result.Length, Message: result.Message}
		h.SendRequest(rr)
		if !result.OK() {
			return nil, errors.New(result.Message)
		}
		return img.TranscodeImage(result.Buffer, ext)
	}

	if h.Cache == nil {
		return load()
	}

	key := render.Key(m, width, height) + ":" + ext
	hit, b, err := h.Cache.Get(key, load)
	h.SendRequest(request.CacheRequest{Key: key, Hit: hit})
	if err != nil {
		return nil, err
	}
	return b, nil
}
