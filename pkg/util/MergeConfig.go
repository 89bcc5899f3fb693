// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"bytes"
	"io/ioutil"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// MergeConfig merges a config from the file at the given uri into the Viper config.
// The config type is the file extension, such as yaml, json or toml.
func MergeConfig(v *viper.Viper, configUri string) error {
	_, configFormat := SplitNameFormat(configUri)
	if len(configFormat) == 0 {
		return errors.Errorf("missing file extension for config uri %q", configUri)
	}
	if configFormat == "yml" {
		configFormat = "yaml"
	}
	v.SetConfigType(configFormat)

	path, err := homedir.Expand(configUri)
	if err != nil {
		return errors.Wrapf(err, "error expanding config uri %q", configUri)
	}

	configBytes, err := ioutil.ReadFile(path) // #nosec
	if err != nil {
		return errors.Wrapf(err, "error reading config uri %q", configUri)
	}

	if len(configBytes) > 0 {
		err = v.MergeConfig(bytes.NewReader(configBytes))
		if err != nil {
			return errors.Wrapf(err, "error merging config from uri %q", configUri)
		}
	}
	return nil
}

// MergeConfigs merges an array of config from the given uris into the Viper config.
func MergeConfigs(v *viper.Viper, configUris []string) error {
	for _, configUri := range configUris {
		if err := MergeConfig(v, configUri); err != nil {
			return err
		}
	}
	return nil
}
