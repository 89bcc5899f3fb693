// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package config loads command configuration from viper into structs tagged with viper keys.
package config

type mapper interface {
	Map() map[string]interface{}
}
