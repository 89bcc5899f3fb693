// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package extent

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/output"
	"github.com/spatialcurrent/go-mapfile/pkg/config"
	"github.com/spatialcurrent/go-mapfile/pkg/geojson"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
)

const (
	CliUse       = "extent MAPFILE"
	CliShort     = "print the extent of a mapfile as GeoJSON"
	CliLong      = "print the EXTENT of a mapfile as a GeoJSON polygon feature, or its center as a GeoJSON point."
	SilenceUsage = true
)

const (
	FlagCenter = "center"
	FlagPretty = "pretty"
)

func extentFunction(cmd *cobra.Command, args []string) error {

	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}

	m, err := parser.ParseFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "error parsing mapfile %q", args[0])
	}

	var obj interface{}
	if v.GetBool(FlagCenter) {
		obj, err = geojson.Center(m)
	} else {
		obj, err = geojson.Extent(m)
	}
	if err != nil {
		return err
	}

	var b []byte
	if v.GetBool(FlagPretty) {
		b, err = json.MarshalIndent(obj, "", "  ")
	} else {
		b, err = json.Marshal(obj)
	}
	if err != nil {
		return errors.Wrap(err, "error serializing extent")
	}

	return output.Write(&output.OpenInput{
		Uri:       v.GetString(output.FlagOutputURI),
		Mkdirs:    v.GetBool(output.FlagOutputMkdirs),
		Overwrite: v.GetBool(output.FlagOutputOverwrite),
	}, append(b, '\n'))
}

// NewCommand returns a new instance of the extent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		Args:         cobra.ExactArgs(1),
		RunE:         extentFunction,
		SilenceUsage: SilenceUsage,
	}
	output.InitOutputFlags(cmd.Flags(), "", nil)
	cmd.Flags().Bool(FlagCenter, false, "print the center of the extent as a point")
	cmd.Flags().BoolP(FlagPretty, "p", false, "indent the output")
	return cmd
}
