// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mapfile/pkg/logger"
)

// NewLoggerFromViper returns a new logger from the viper configuration.
func NewLoggerFromViper(v *viper.Viper) (*logger.Logger, error) {
	return logger.NewLoggerFromConfig(&logger.NewLoggerFromConfigInput{
		ErrorDestination: v.GetString(FlagErrorDestination),
		ErrorFormat:      v.GetString(FlagErrorFormat),
		InfoDestination:  v.GetString(FlagInfoDestination),
		InfoFormat:       v.GetString(FlagInfoFormat),
		Verbose:          v.GetBool(FlagVerbose),
	})
}
