// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"github.com/spf13/viper"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// CheckOutputConfig checks the output configuration.
func CheckOutputConfig(v *viper.Viper, formats []string) error {
	if len(v.GetString(FlagOutputURI)) == 0 {
		return &merrors.ErrMissingRequiredParameter{Name: FlagOutputURI}
	}
	if len(formats) == 0 {
		return nil
	}
	format := v.GetString(FlagOutputFormat)
	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return &merrors.ErrInvalidParameter{Name: FlagOutputFormat, Value: format, Reason: "unknown output format"}
}
