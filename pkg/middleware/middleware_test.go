// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spatialcurrent/go-mapfile/pkg/logger"
)

func newLogger(info *bytes.Buffer, errs *bytes.Buffer) *logger.Logger {
	return logger.New(logger.NewWriter(info), "json", logger.NewWriter(errs), "json", false)
}

func TestRequestAndLogMiddleware(t *testing.T) {
	info := new(bytes.Buffer)
	l := newLogger(info, new(bytes.Buffer))

	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := GetRequest(r.Context())
		if assert.NotNil(t, req) {
			req.Handler = "TestHandler"
		}
		w.WriteHeader(http.StatusTeapot)
	})
	handler = LogMiddleware(l)(handler)
	handler = RequestMiddleware()(handler)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/health.json", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, info.String(), `"handler":"TestHandler"`)
	assert.Contains(t, info.String(), `"status":418`)
	assert.Contains(t, info.String(), `"url":"/health.json"`)
}

func TestRecoverMiddleware(t *testing.T) {
	errs := new(bytes.Buffer)
	l := newLogger(new(bytes.Buffer), errs)
	handler := RecoverMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, errs.String(), "recovered from panic: boom")
}

func TestCorsMiddleware(t *testing.T) {
	handler := CorsMiddleware("*", "true")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
