// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package apply

import (
	"io/ioutil"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/logging"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/output"
	"github.com/spatialcurrent/go-mapfile/pkg/commands"
	"github.com/spatialcurrent/go-mapfile/pkg/config"
	"github.com/spatialcurrent/go-mapfile/pkg/document"
	"github.com/spatialcurrent/go-mapfile/pkg/serializer"
	"github.com/spatialcurrent/go-mapfile/pkg/util"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

const (
	CliUse       = "apply MAPFILE"
	CliShort     = "apply command specs to a mapfile"
	CliLong      = "apply a list of command specs, formatted as json or yaml, to a mapfile as one group.  If any command fails, the mapfile is unchanged."
	SilenceUsage = true
)

const (
	FlagCommands      = "commands"
	FlagCommandFormat = "command-format"
	FlagDescription   = "description"
	FlagInPlace       = "in-place"

	DefaultDescription = "Apply commands"
)

// ReadSpecs reads the command specs from the uri, or from stdin if the uri is "-".
// The format is the extension of the uri unless given.
func ReadSpecs(uri string, format string) ([]commands.Spec, error) {
	var b []byte
	if uri == "-" {
		in, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "error reading commands from stdin")
		}
		b = in
	} else {
		p, err := homedir.Expand(uri)
		if err != nil {
			return nil, errors.Wrapf(err, "error expanding commands uri %q", uri)
		}
		in, err := ioutil.ReadFile(p) // #nosec
		if err != nil {
			return nil, errors.Wrapf(err, "error reading commands from %q", uri)
		}
		b = in
		if len(format) == 0 {
			_, format = util.SplitNameFormat(uri)
		}
	}
	switch format {
	case "yml":
		format = "yaml"
	case "":
		format = "json"
	}
	return commands.ParseSpecs(b, format)
}

func applyFunction(cmd *cobra.Command, args []string) error {

	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}

	uri := v.GetString(FlagCommands)
	if len(uri) == 0 {
		return &merrors.ErrMissingRequiredParameter{Name: FlagCommands}
	}

	specs, err := ReadSpecs(uri, v.GetString(FlagCommandFormat))
	if err != nil {
		return err
	}

	d, err := document.Load(args[0])
	if err != nil {
		return errors.Wrapf(err, "error loading mapfile %q", args[0])
	}

	c, err := d.ApplySpecs(v.GetString(FlagDescription), specs)
	if err != nil {
		return errors.Wrap(err, "error applying commands")
	}

	if v.GetBool(logging.FlagVerbose) {
		logger, err := logging.NewLoggerFromViper(v)
		if err != nil {
			return errors.Wrap(err, "error creating logger")
		}
		logger.Debug(map[string]interface{}{"msg": "applied commands", "description": c.Description(), "commands": len(specs)})
		for _, w := range d.Snapshot().DanglingReferences() {
			logger.Warn(w)
		}
		logger.Close()
	}

	if v.GetBool(FlagInPlace) {
		return d.Save("")
	}

	outputUri := v.GetString(output.FlagOutputURI)
	if outputUri != output.Stdout {
		if _, err := os.Stat(outputUri); err == nil && !v.GetBool(output.FlagOutputOverwrite) {
			return errors.Errorf("output file %q already exists", outputUri)
		}
		return d.Save(outputUri)
	}

	return output.Write(&output.OpenInput{Uri: output.Stdout}, serializer.Serialize(d.Snapshot()))
}

// NewCommand returns a new instance of the apply command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		Args:         cobra.ExactArgs(1),
		RunE:         applyFunction,
		SilenceUsage: SilenceUsage,
	}
	flag := cmd.Flags()
	output.InitOutputFlags(flag, "", nil)
	flag.StringP(FlagCommands, "c", "", "the uri to the command specs, or - for stdin")
	flag.String(FlagCommandFormat, "", "the format of the command specs: json or yaml, defaults to the extension of the uri")
	flag.StringP(FlagDescription, "d", DefaultDescription, "the description of the group of commands")
	flag.BoolP(FlagInPlace, "i", false, "save the mapfile in place")
	return cmd
}
