// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package output contains the flags and writers shared by commands that write to stdout or a file.
package output

const (
	FlagOutputURI       = "output-uri"
	FlagOutputFormat    = "output-format"
	FlagOutputMkdirs    = "output-mkdirs"
	FlagOutputOverwrite = "output-overwrite"

	Stdout = "stdout"
)
