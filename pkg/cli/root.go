// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/apply"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/extent"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/format"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/render"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/serve"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/table"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/validate"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/version"
)

// NewRootCommand returns the mapfile command with every subcommand.
func NewRootCommand(gitBranch string, gitCommit string) *cobra.Command {

	//
	// Root Command
	//

	var rootCmd = &cobra.Command{
		Use:   "mapfile",
		Short: "a tool for editing MapServer mapfiles",
		Long: `mapfile parses, edits, formats and previews MapServer mapfiles.
Edits are expressed as command specs in json or yaml and are applied as one group.
The serve command exposes the same operations over http.`,
	}
	InitRootFlags(rootCmd.PersistentFlags())

	//
	// Completion Command
	//

	completionCommandLong := ""
	if _, err := os.Stat("/etc/bash_completion.d/"); !os.IsNotExist(err) {
		completionCommandLong = "To install completion scripts run:\nmapfile completion > /etc/bash_completion.d/mapfile"
	} else {
		if _, err := os.Stat("/usr/local/etc/bash_completion.d/"); !os.IsNotExist(err) {
			completionCommandLong = "To install completion scripts run:\nmapfile completion > /usr/local/etc/bash_completion.d/mapfile"
		} else {
			completionCommandLong = "To install completion scripts run:\nmapfile completion > .../bash_completion.d/mapfile"
		}
	}

	rootCmd.AddCommand(func() *cobra.Command {
		return &cobra.Command{
			Use:   "completion",
			Short: "Generates bash completion scripts",
			Long:  completionCommandLong,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			},
		}
	}())

	rootCmd.AddCommand(version.NewCommand(&version.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	//
	// Mapfile Commands
	//

	rootCmd.AddCommand(validate.NewCommand())
	rootCmd.AddCommand(format.NewCommand())
	rootCmd.AddCommand(table.NewCommands()...)
	rootCmd.AddCommand(render.NewCommand())
	rootCmd.AddCommand(apply.NewCommand())
	rootCmd.AddCommand(extent.NewCommand())

	//
	// Serve Command
	//

	rootCmd.AddCommand(serve.NewCommand(&serve.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	return rootCmd
}

// Execute handles command line calls to mapfile.
func Execute(gitBranch string, gitCommit string) error {
	return NewRootCommand(gitBranch, gitCommit).Execute()
}
