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
	"os"
	"strings"

	"github.com/alecthomas/chroma"
	htmlformatter "github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/spatialcurrent/go-mapfile/pkg/cache"
	"github.com/spatialcurrent/go-mapfile/pkg/highlight"
	"github.com/spatialcurrent/go-mapfile/pkg/journal"
	"github.com/spatialcurrent/go-mapfile/pkg/middleware"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
	"github.com/spatialcurrent/go-mapfile/pkg/request"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

type BaseHandler struct {
	Registry  *Registry
	Journal   *journal.Journal
	Renderer  render.Renderer
	Cache     *cache.Cache
	Requests  chan request.Request
	Messages  chan interface{}
	Errors    chan interface{}
	Debug     bool
	GitBranch string
	GitCommit string
}

func (h *BaseHandler) SendDebug(message interface{}) {
	if h.Debug {
		h.Messages <- message
	}
}

func (h *BaseHandler) SendInfo(message interface{}) {
	h.Messages <- message
}

func (h *BaseHandler) SendWarn(message interface{}) {
	h.Errors <- message
}

func (h *BaseHandler) SendError(message interface{}) {
	h.Errors <- message
}

// SendRequest forwards the request to the request channel, if any.
func (h *BaseHandler) SendRequest(r request.Request) {
	if h.Requests != nil {
		h.Requests <- r
	}
}

// Annotate names the handler on the request recorded by the request middleware.
func (h *BaseHandler) Annotate(r *http.Request, name string) {
	if req := middleware.GetRequest(r.Context()); req != nil {
		req.Handler = name
	}
}

// ParseBody decodes the body formatted as json or yaml into the object.
func (h *BaseHandler) ParseBody(body []byte, format string, obj interface{}) error {
	switch format {
	case "json":
		if err := json.Unmarshal(body, obj); err != nil {
			return errors.Wrap(err, "error deserializing body")
		}
		return nil
	case "yaml", "yml":
		if err := yaml.Unmarshal(body, obj); err != nil {
			return errors.Wrap(err, "error deserializing body")
		}
		return nil
	}
	return &merrors.ErrInvalidParameter{Name: "format", Value: format, Reason: "body must be json or yaml"}
}

func serialize(obj interface{}, format string, pretty bool) ([]byte, string, error) {
	switch format {
	case "yaml", "yml":
		b, err := yaml.Marshal(obj)
		if err != nil {
			return nil, "", errors.Wrap(err, "error serializing response body")
		}
		return b, "text/yaml", nil
	}
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(obj, "", "    ")
	} else {
		b, err = json.Marshal(obj)
	}
	if err != nil {
		return nil, "", errors.Wrap(err, "error serializing response body")
	}
	return b, "application/json", nil
}

/* #nosec */
func (h *BaseHandler) RespondWithObject(resp *Response) error {

	if resp.Format == "html" {
		code, err := json.MarshalIndent(resp.Object, "", "    ")
		if err != nil {
			return errors.Wrap(err, "error serializing response body")
		}
		var head strings.Builder
		head.WriteString("<title>Mapfile</title>")
		head.WriteString("<style>")
		formatter := htmlformatter.New(htmlformatter.WithClasses(true))
		style := styles.Get(highlight.DefaultStyle)
		err = formatter.WriteCSS(&head, style)
		if err != nil {
			return errors.Wrap(err, "error writing chroma styles")
		}
		head.WriteString("pre { border:2px solid black; padding: 20px; }")
		head.WriteString("</style>")
		lexer := chroma.Coalesce(lexers.Get("json"))
		iterator, err := lexer.Tokenise(nil, string(code))
		if err != nil {
			return errors.Wrap(err, "error tokenizing source code")
		}
		var preview strings.Builder
		err = formatter.Format(&preview, style, iterator)
		if err != nil {
			return errors.Wrap(err, "error formatting preview")
		}
		requestUrlPath := ""
		if resp.Url != nil {
			requestUrlPath = resp.Url.Path
		}
		page := "<html><head>" + head.String() + "</head><body><h2>" + requestUrlPath + "</h2>" + preview.String() + "</body></html>"
		resp.Writer.Header().Set("Content-Type", "text/html")
		resp.Writer.WriteHeader(resp.StatusCode)
		resp.Writer.Write([]byte(page))
		return nil
	}

	b, contentType, err := serialize(resp.Object, resp.Format, resp.Pretty)
	if err != nil {
		return err
	}

	if len(resp.Filename) > 0 {
		resp.Writer.Header().Set("Content-Disposition", "attachment; filename="+resp.Filename)
	}

	resp.Writer.Header().Set("Content-Type", contentType)
	if resp.StatusCode != http.StatusOK {
		resp.Writer.WriteHeader(resp.StatusCode)
	}
	resp.Writer.Write(b)
	return nil
}

// StatusCode returns the http status code for the error.
func StatusCode(err error) int {
	cause := errors.Cause(err)
	if os.IsNotExist(cause) {
		return http.StatusNotFound
	}
	switch cause.(type) {
	case *merrors.ErrMissingRequiredParameter, *request.ErrQueryStringParameterMissing:
		return http.StatusBadRequest
	case *merrors.ErrInvalidParameter, *merrors.ErrUnknownCommand, *merrors.ErrDuplicateName:
		return http.StatusBadRequest
	case *merrors.ErrParse, *merrors.ErrLex, *merrors.ErrUnknownImageExtension:
		return http.StatusBadRequest
	case *merrors.ErrMissingObject:
		return http.StatusNotFound
	case *merrors.ErrNotLoaded:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (h *BaseHandler) RespondWithError(w http.ResponseWriter, err error, format string) error {

	if format == "html" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(StatusCode(err))
		w.Write([]byte(err.Error())) // #nosec
		return nil
	}

	b, contentType, serr := serialize(map[string]interface{}{"success": false, "error": err.Error()}, format, false)
	if serr != nil {
		w.WriteHeader(StatusCode(err))
		return serr
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(StatusCode(err))
	w.Write(b) // #nosec
	return nil
}

func (h *BaseHandler) RespondWithNotImplemented(w http.ResponseWriter, format string) error {
	if format == "html" {
		w.WriteHeader(http.StatusNotImplemented)
		w.Write([]byte("Not implemented")) // #nosec
		return nil
	}
	b, _, err := serialize(map[string]interface{}{"success": false, "error": "not implemented"}, format, false)
	if err != nil {
		return err
	}
	w.WriteHeader(http.StatusNotImplemented)
	w.Write(b) // #nosec
	return nil
}

// Session returns the session named by the id route variable.
func (h *BaseHandler) Session(vars map[string]string) (*Session, error) {
	id, ok := vars["id"]
	if !ok || len(id) == 0 {
		return nil, &merrors.ErrMissingRequiredParameter{Name: "id"}
	}
	return h.Registry.Get(id)
}

// Record appends an entry to the journal, if one is configured.  Journal failures are reported but not returned.
func (h *BaseHandler) Record(r *http.Request, e *journal.Entry) {
	if h.Journal == nil {
		return
	}
	if err := h.Journal.Append(r.Context(), e); err != nil {
		h.SendError(errors.Wrap(err, "error appending to journal"))
	}
}
