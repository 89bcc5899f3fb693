// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cors

import (
	"github.com/spf13/viper"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// CheckCorsConfig checks the CORS configuration.
func CheckCorsConfig(v *viper.Viper) error {
	switch credentials := v.GetString(FlagCorsCredentials); credentials {
	case "true", "false":
	default:
		return &merrors.ErrInvalidParameter{Name: FlagCorsCredentials, Value: credentials, Reason: "must be true or false"}
	}
	return nil
}
