// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/spatialcurrent/go-mapfile/pkg/request"
)

type Router struct {
	*mux.Router
	Requests chan request.Request
	Messages chan interface{}
	Errors   chan interface{}
}

func NewRouter(requests chan request.Request, messages chan interface{}, errors chan interface{}) *Router {
	return &Router{
		Router:   mux.NewRouter(),
		Requests: requests,
		Messages: messages,
		Errors:   errors,
	}
}

// AddHandler registers the handler for each path, limited to the given methods.
func (r *Router) AddHandler(name string, methods []string, paths []string, handler http.Handler) {
	for _, path := range paths {
		r.Methods(methods...).Name(name).Path(path).Handler(handler)
	}
}

func (r *Router) AddHandlerFunc(name string, methods []string, paths []string, handler func(w http.ResponseWriter, r *http.Request)) {
	for _, path := range paths {
		r.Methods(methods...).Name(name).Path(path).HandlerFunc(handler)
	}
}
