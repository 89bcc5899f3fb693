// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"strings"

	"github.com/spf13/pflag"
)

// InitOutputFlags initializes the output flags.  If formats is empty, the output format flag is not added.
func InitOutputFlags(flag *pflag.FlagSet, defaultOutputFormat string, formats []string) {
	flag.StringP(FlagOutputURI, "o", Stdout, "the output uri: stdout or a file path")
	if len(formats) > 0 {
		flag.StringP(FlagOutputFormat, "f", defaultOutputFormat, "the output format: "+strings.Join(formats, ", "))
	}
	flag.Bool(FlagOutputMkdirs, false, "make directories if missing for output files")
	flag.Bool(FlagOutputOverwrite, false, "overwrite output if it already exists")
}
