// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package handlers contains the http handlers for editing mapfiles over a REST API.
//
// Documents are opened with POST /documents and addressed by id afterwards.  Every handler
// responds in the format given by the path extension, such as json, yaml or html.
package handlers

import (
	"fmt"
	"net/http"
)

func FormatHandlerFunc(format string, a ...interface{}) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, format, a...) // #nosec
	}
}
