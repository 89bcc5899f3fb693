// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mapfile/pkg/util"
)

const (
	FlagConfigUri = "config-uri"
)

// NewViper returns a viper bound to the flags and to environment variables, with the files named by
// --config-uri merged in.  Environment variables use underscores in place of dashes.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	err := v.BindPFlags(flags)
	if err != nil {
		return nil, errors.Wrap(err, "error binding flags")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config

	err = util.MergeConfigs(v, v.GetStringSlice(FlagConfigUri))
	if err != nil {
		return nil, errors.Wrap(err, "error loading config")
	}

	return v, nil
}
