// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/output"
	"github.com/spatialcurrent/go-mapfile/pkg/config"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
	"github.com/spatialcurrent/go-mapfile/pkg/serializer"
)

const (
	CliUse       = "format MAPFILE"
	CliShort     = "format a mapfile"
	CliLong      = "parse a mapfile and write it back in canonical form.  Unknown blocks are kept as written."
	SilenceUsage = true
)

const (
	FlagInPlace = "in-place"
)

func formatFunction(cmd *cobra.Command, args []string) error {

	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}

	path := args[0]

	m, err := parser.ParseFile(path)
	if err != nil {
		return errors.Wrapf(err, "error parsing mapfile %q", path)
	}

	if v.GetBool(FlagInPlace) {
		return serializer.WriteFile(&serializer.WriteFileInput{Uri: path, Map: m})
	}

	return output.Write(&output.OpenInput{
		Uri:       v.GetString(output.FlagOutputURI),
		Mkdirs:    v.GetBool(output.FlagOutputMkdirs),
		Overwrite: v.GetBool(output.FlagOutputOverwrite),
	}, serializer.Serialize(m))
}

// NewCommand returns a new instance of the format command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		Args:         cobra.ExactArgs(1),
		RunE:         formatFunction,
		SilenceUsage: SilenceUsage,
	}
	output.InitOutputFlags(cmd.Flags(), "", nil)
	cmd.Flags().BoolP(FlagInPlace, "i", false, "rewrite the mapfile in place")
	return cmd
}
