// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/spatialcurrent/go-mapfile/pkg/logger"
)

const (
	FlagErrorDestination = "error-destination"
	FlagErrorFormat      = "error-format"
	FlagInfoDestination  = "info-destination"
	FlagInfoFormat       = "info-format"
	FlagVerbose          = "verbose"

	DefaultFormat           = logger.DefaultFormat
	DefaultInfoDestination  = "stdout"
	DefaultErrorDestination = "stderr"
)
