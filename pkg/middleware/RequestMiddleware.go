// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestMiddleware attaches a *Request to the request context.
var RequestMiddleware = func() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			client := r.Header.Get("X-Forwarded-For")
			if len(client) == 0 {
				client = r.RemoteAddr
			}
			ctx := context.WithValue(r.Context(), ContextKeyRequest, &Request{
				Client: client,
				Host:   r.Host,
				Url:    r.URL.String(),
				Method: r.Method,
				Start:  &start,
			})
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequest returns the *Request attached to the context, or nil.
func GetRequest(ctx context.Context) *Request {
	if v := ctx.Value(ContextKeyRequest); v != nil {
		if req, ok := v.(*Request); ok {
			return req
		}
	}
	return nil
}
