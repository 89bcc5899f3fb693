// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package validate

import (
	"github.com/spf13/cobra"
)

// NewCommand returns a new instance of the validate command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		Args:         cobra.MinimumNArgs(1),
		RunE:         validateFunction,
		SilenceUsage: SilenceUsage,
	}
	cmd.Flags().Bool(FlagStrict, false, "treat references to missing layers as errors")
	return cmd
}
