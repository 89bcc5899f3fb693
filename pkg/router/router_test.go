// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/go-mapfile/pkg/cache"
	"github.com/spatialcurrent/go-mapfile/pkg/logger"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
	"github.com/spatialcurrent/go-mapfile/pkg/request"
)

func newTestRouter(t *testing.T, v *viper.Viper) (*MapfileRouter, *bytes.Buffer) {
	info := new(bytes.Buffer)
	l := logger.New(logger.NewWriter(info), "json", logger.NewWriter(new(bytes.Buffer)), "json", false)
	messages := make(chan interface{}, 100)
	errs := make(chan interface{}, 100)
	requests := make(chan request.Request, 100)
	r := NewMapfileRouter(&NewMapfileRouterInput{
		Viper:         v,
		Renderer:      render.NewPreview(),
		Cache:         cache.NewCache(),
		Requests:      requests,
		Messages:      messages,
		ErrorsChannel: errs,
		GitBranch:     "main",
		GitCommit:     "abc",
		Logger:        l,
	})
	for _, c := range []chan interface{}{messages, errs} {
		go func(c chan interface{}) {
			for range c {
			}
		}(c)
	}
	go func() {
		for range requests {
		}
	}()
	return r, info
}

func TestRouter(t *testing.T) {
	r, info := newTestRouter(t, viper.New())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, info.String(), `"handler":"health"`)

	path := filepath.Join("..", "parser", "testdata", "world.map")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/documents.json", bytes.NewBufferString(`{"path": "`+path+`"}`)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	obj := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &obj))
	id := obj["id"].(string)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/documents/"+id+"/settings.text", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "World Map")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/documents/"+id+"/references.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PUT", "/documents/"+id+"/commands.json", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouterGzip(t *testing.T) {
	v := viper.New()
	v.Set("http-middleware-gzip", true)
	v.Set("http-middleware-cors", true)
	v.Set("cors-origin", "*")
	r, _ := newTestRouter(t, v)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	if w.Header().Get("Content-Encoding") == "gzip" {
		gr, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		b, err := ioutil.ReadAll(gr)
		require.NoError(t, err)
		assert.Contains(t, string(b), "go-mapfile")
	} else {
		assert.Contains(t, w.Body.String(), "go-mapfile")
	}
}
