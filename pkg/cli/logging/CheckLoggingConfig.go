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

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// CheckLoggingConfig checks the logging configuration.
func CheckLoggingConfig(v *viper.Viper) error {
	for _, flag := range []string{FlagInfoFormat, FlagErrorFormat} {
		format := v.GetString(flag)
		valid := false
		for _, f := range logger.Formats {
			if f == format {
				valid = true
				break
			}
		}
		if !valid {
			return &merrors.ErrInvalidParameter{Name: flag, Value: format, Reason: "unknown log format"}
		}
	}
	for _, flag := range []string{FlagInfoDestination, FlagErrorDestination} {
		if len(v.GetString(flag)) == 0 {
			return &merrors.ErrMissingRequiredParameter{Name: flag}
		}
	}
	return nil
}
