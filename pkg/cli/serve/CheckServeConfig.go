// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/cors"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/http"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/logging"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/runtime"
	"github.com/spatialcurrent/go-mapfile/pkg/render"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// CheckServeConfig checks the serve configuration.
func CheckServeConfig(v *viper.Viper, args []string) error {
	err := http.CheckHttpConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with http configuration")
	}
	err = cors.CheckCorsConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with cors configuration")
	}
	err = runtime.CheckRuntimeConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with runtime configuration")
	}
	err = logging.CheckLoggingConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with logging configuration")
	}
	if d := v.GetDuration(FlagSessionExpiration); d <= 0 {
		return &merrors.ErrInvalidParameter{Name: FlagSessionExpiration, Value: d, Reason: "must be positive"}
	}
	renderer := v.GetString(FlagRenderer)
	for _, name := range render.Names {
		if name == renderer {
			return nil
		}
	}
	return &merrors.ErrInvalidParameter{Name: FlagRenderer, Value: renderer, Reason: "unknown renderer"}
}
