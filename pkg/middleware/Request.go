// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package middleware contains the http middleware of the server.
package middleware

import (
	"time"
)

type contextKey string

const (
	ContextKeyRequest = contextKey("request")
)

// Request is the record of an http request that is logged when the request completes.
type Request struct {
	Client     string
	Host       string
	Url        string
	Method     string
	Start      *time.Time
	End        *time.Time
	StatusCode int
	Handler    string
	Error      error
}

func (r *Request) String() string {
	return r.Method + " " + r.Url
}

func (r *Request) Map() map[string]interface{} {
	m := map[string]interface{}{
		"client": r.Client,
		"host":   r.Host,
		"url":    r.Url,
		"method": r.Method,
	}
	if r.Start != nil {
		m["start"] = r.Start.Format(time.RFC3339)
	}
	if r.End != nil {
		m["end"] = r.End.Format(time.RFC3339)
	}
	if r.Start != nil && r.End != nil {
		m["duration"] = r.End.Sub(*r.Start).String()
	}
	if r.StatusCode != 0 {
		m["status"] = r.StatusCode
	}
	if len(r.Handler) > 0 {
		m["handler"] = r.Handler
	}
	if r.Error != nil {
		m["error"] = r.Error.Error()
	}
	return m
}
