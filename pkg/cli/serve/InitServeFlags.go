// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/cors"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/http"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/runtime"
	"github.com/spatialcurrent/go-mapfile/pkg/highlight"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
)

// InitServeFlags initializes the serve flags.
func InitServeFlags(flag *pflag.FlagSet) {
	http.InitHttpFlags(flag)

	runtime.InitRuntimeFlags(flag)

	// Cache Flags
	flag.DurationP(FlagCacheDefaultExpiration, "", DefaultCacheDefaultExpiration, "the default expiration for rendered images in the cache")
	flag.DurationP(FlagCacheCleanupInterval, "", DefaultCacheCleanupInterval, "the cleanup interval for the cache")

	// Document Flags
	flag.Duration(FlagSessionExpiration, DefaultSessionExpiration, "close documents not accessed for this duration")
	flag.StringSlice(FlagOpen, []string{}, "mapfiles to open on start")
	flag.String(FlagJournalPath, DefaultJournalPath, "path to the sqlite journal of document changes, or :memory:")

	// Render Flags
	flag.String(FlagRenderer, render.PreviewName, "the renderer: "+strings.Join(render.Names, ", "))
	flag.String(FlagRendererDir, "", "the directory for temporary mapfiles written for external renderers")
	flag.String(FlagHighlightStyle, highlight.DefaultStyle, "the chroma style for highlighted mapfiles")

	// Logging Flags
	flag.BoolP(FlagLogRequestsCache, "", false, "log cache hit/miss")
	flag.BoolP(FlagLogRequestsRender, "", false, "log render requests")

	// CORS Flags
	cors.InitCorsFlags(flag)
}
