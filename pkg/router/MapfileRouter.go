// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package router

import (
	"compress/gzip"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mapfile/pkg/cache"
	"github.com/spatialcurrent/go-mapfile/pkg/handlers"
	"github.com/spatialcurrent/go-mapfile/pkg/journal"
	"github.com/spatialcurrent/go-mapfile/pkg/logger"
	"github.com/spatialcurrent/go-mapfile/pkg/middleware"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
	"github.com/spatialcurrent/go-mapfile/pkg/request"
	"github.com/spatialcurrent/go-mapfile/pkg/views"
)

const (
	DefaultSessionExpiration = time.Hour
	DefaultSessionCleanup    = time.Minute * 10
)

type MapfileRouter struct {
	*Router
	Viper     *viper.Viper
	Registry  *handlers.Registry
	Journal   *journal.Journal
	Renderer  render.Renderer
	Cache     *cache.Cache
	Debug     bool
	GitBranch string
	GitCommit string
}

type NewMapfileRouterInput struct {
	Viper         *viper.Viper
	Registry      *handlers.Registry
	Journal       *journal.Journal
	Renderer      render.Renderer
	Cache         *cache.Cache
	Requests      chan request.Request
	Messages      chan interface{}
	ErrorsChannel chan interface{}
	GitBranch     string
	GitCommit     string
	Logger        *logger.Logger
}

func NewMapfileRouter(input *NewMapfileRouterInput) *MapfileRouter {

	v := input.Viper
	messages := input.Messages

	registry := input.Registry
	if registry == nil {
		registry = handlers.NewRegistry(DefaultSessionExpiration, DefaultSessionCleanup)
	}

	r := &MapfileRouter{
		Router:    NewRouter(input.Requests, input.Messages, input.ErrorsChannel),
		Viper:     v,
		Registry:  registry,
		Journal:   input.Journal,
		Renderer:  input.Renderer,
		Cache:     input.Cache,
		Debug:     v.GetBool("verbose"),
		GitBranch: input.GitBranch,
		GitCommit: input.GitCommit,
	}

	if v.GetBool("http-middleware-recover") {
		messages <- map[string]interface{}{"middleware": "recover", "loaded": true}
		r.Use(middleware.RecoverMiddleware(input.Logger))
	}

	messages <- map[string]interface{}{"middleware": "request", "loaded": true}
	r.Use(middleware.RequestMiddleware())

	r.Use(middleware.LogMiddleware(input.Logger))

	if v.GetBool("http-middleware-gzip") {
		messages <- map[string]interface{}{"middleware": "gzip", "loaded": true}
		r.Use(gziphandler.MustNewGzipLevelHandler(gzip.DefaultCompression))
	}

	if v.GetBool("http-middleware-cors") {
		messages <- map[string]interface{}{"middleware": "cors", "loaded": true}
		r.Use(middleware.CorsMiddleware(v.GetString("cors-origin"), v.GetString("cors-credentials")))
	}

	r.AddHandlerFunc(
		"home",
		[]string{"GET"},
		[]string{"/"},
		handlers.FormatHandlerFunc(homeFormat, input.GitBranch, input.GitCommit),
	)

	r.AddHandler("health", []string{"GET"}, []string{"/health.{ext}"}, &handlers.HealthHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("documents", []string{"GET", "POST"}, []string{"/documents.{ext}"}, &handlers.DocumentsHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("document", []string{"GET", "DELETE"}, []string{"/documents/{id}.{ext}"}, &handlers.DocumentHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("layers", []string{"GET"}, []string{"/documents/{id}/layers.{ext}"}, &handlers.TableHandler{
		BaseHandler: r.NewBaseHandler(),
		Name:        "layers",
		View:        views.Layers,
	})

	r.AddHandler("formats", []string{"GET"}, []string{"/documents/{id}/formats.{ext}"}, &handlers.TableHandler{
		BaseHandler: r.NewBaseHandler(),
		Name:        "formats",
		View:        views.OutputFormats,
	})

	r.AddHandler("settings", []string{"GET"}, []string{"/documents/{id}/settings.{ext}"}, &handlers.TableHandler{
		BaseHandler: r.NewBaseHandler(),
		Name:        "settings",
		View:        views.MapSettings,
	})

	r.AddHandler("references", []string{"GET"}, []string{"/documents/{id}/references.{ext}"}, &handlers.TableHandler{
		BaseHandler: r.NewBaseHandler(),
		Name:        "references",
		View:        views.DanglingReferences,
	})

	r.AddHandler("mapfile", []string{"GET"}, []string{"/documents/{id}/mapfile.{ext}"}, &handlers.MapfileHandler{
		BaseHandler: r.NewBaseHandler(),
		Style:       v.GetString("highlight-style"),
	})

	r.AddHandler("extent", []string{"GET"}, []string{"/documents/{id}/extent.geojson"}, &handlers.ExtentHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("image", []string{"GET"}, []string{"/documents/{id}/image.{ext}"}, &handlers.ImageHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("commands", []string{"POST"}, []string{"/documents/{id}/commands.{ext}"}, &handlers.CommandsHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("undo", []string{"POST"}, []string{"/documents/{id}/undo.{ext}"}, &handlers.UndoHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("history", []string{"GET"}, []string{"/documents/{id}/history.{ext}"}, &handlers.HistoryHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	r.AddHandler("save", []string{"POST"}, []string{"/documents/{id}/save.{ext}"}, &handlers.SaveHandler{
		BaseHandler: r.NewBaseHandler(),
	})

	return r
}

const homeFormat = `<html>
  <head>
    <meta charset="utf-8">
    <title>go-mapfile</title>
  </head>
  <body>
    <h2>go-mapfile</h2>
    <p>branch %s, commit %s</p>
    <ul>
      <li><a href="/health.json">/health.json</a></li>
      <li><a href="/documents.json">/documents.json</a></li>
    </ul>
  </body>
</html>
`

func (r *MapfileRouter) NewBaseHandler() *handlers.BaseHandler {
	return &handlers.BaseHandler{
		Registry:  r.Registry,
		Journal:   r.Journal,
		Renderer:  r.Renderer,
		Cache:     r.Cache,
		Requests:  r.Requests,
		Messages:  r.Messages,
		Errors:    r.Errors,
		Debug:     r.Debug,
		GitBranch: r.GitBranch,
		GitCommit: r.GitCommit,
	}
}
