// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package table contains the commands that print a table view of a mapfile, such as its layers.
package table

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/output"
	"github.com/spatialcurrent/go-mapfile/pkg/config"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
	"github.com/spatialcurrent/go-mapfile/pkg/views"
)

const (
	SilenceUsage  = true
	DefaultFormat = "text"
)

func tableFunction(view func(m *mapfile.Map) *views.Table) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		v, err := config.NewViper(cmd.Flags())
		if err != nil {
			return err
		}

		err = output.CheckOutputConfig(v, views.Formats)
		if err != nil {
			return errors.Wrap(err, "error with output configuration")
		}

		m, err := parser.ParseFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "error parsing mapfile %q", args[0])
		}

		buf := new(bytes.Buffer)
		err = view(m).Write(buf, v.GetString(output.FlagOutputFormat))
		if err != nil {
			return err
		}

		return output.Write(&output.OpenInput{
			Uri:       v.GetString(output.FlagOutputURI),
			Mkdirs:    v.GetBool(output.FlagOutputMkdirs),
			Overwrite: v.GetBool(output.FlagOutputOverwrite),
		}, buf.Bytes())
	}
}

// NewCommand returns a command that prints the view of the mapfile given as the only argument.
func NewCommand(use string, short string, view func(m *mapfile.Map) *views.Table) *cobra.Command {
	cmd := &cobra.Command{
		Use:          use + " MAPFILE",
		Short:        short,
		Long:         short,
		Args:         cobra.ExactArgs(1),
		RunE:         tableFunction(view),
		SilenceUsage: SilenceUsage,
	}
	output.InitOutputFlags(cmd.Flags(), DefaultFormat, views.Formats)
	return cmd
}

// NewCommands returns the layers, formats, settings and references commands.
func NewCommands() []*cobra.Command {
	return []*cobra.Command{
		NewCommand("layers", "print the layers of a mapfile in drawing order", views.Layers),
		NewCommand("formats", "print the output formats of a mapfile", views.OutputFormats),
		NewCommand("settings", "print the map level settings of a mapfile", views.MapSettings),
		NewCommand("references", "print the mask and requires references to missing layers", views.DanglingReferences),
	}
}
