// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/spatialcurrent/go-mapfile/pkg/logger"
)

// InitLoggingFlags initializes the logging flags.
func InitLoggingFlags(flag *pflag.FlagSet) {
	flag.BoolP(FlagVerbose, "v", false, "print verbose output to stdout")

	flag.String(FlagInfoDestination, DefaultInfoDestination, "destination for info logs: stdout, stderr, or a file path")
	flag.String(FlagInfoFormat, DefaultFormat, "info log format: "+strings.Join(logger.Formats, ", "))

	flag.String(FlagErrorDestination, DefaultErrorDestination, "destination for errors: stdout, stderr, or a file path")
	flag.String(FlagErrorFormat, DefaultFormat, "error log format: "+strings.Join(logger.Formats, ", "))
}
