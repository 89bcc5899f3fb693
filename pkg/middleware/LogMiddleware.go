// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"net/http"
	"time"

	"github.com/spatialcurrent/go-mapfile/pkg/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogMiddleware logs the request attached by RequestMiddleware once the handler returns.
var LogMiddleware = func(l *logger.Logger) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				if req := GetRequest(r.Context()); req != nil {
					end := time.Now()
					req.End = &end
					req.StatusCode = recorder.status
					l.Info(req.Map())
					l.Flush()
				}
			}()
			h.ServeHTTP(recorder, r)
		})
	}
}
