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

	"github.com/spatialcurrent/go-mvt/pkg/cli/decode"
	"github.com/spatialcurrent/go-mvt/pkg/cli/layers"
	"github.com/spatialcurrent/go-mvt/pkg/cli/version"
)

// NewRootCommand returns the mvt command with every sub command attached.
func NewRootCommand(gitBranch string, gitCommit string) *cobra.Command {

	//
	// Root Command
	//

	var rootCmd = &cobra.Command{
		Use:   "mvt",
		Short: "a reader for Mapbox vector tiles",
		Long:  "mvt decodes Mapbox vector tiles into GeoJSON, as full features or as flyweight features in tile pixel space.",
	}
	InitRootFlags(rootCmd.PersistentFlags())

	//
	// Completion Command
	//

	completionCommandLong := ""
	if _, err := os.Stat("/etc/bash_completion.d/"); !os.IsNotExist(err) {
		completionCommandLong = "To install completion scripts run:\nmvt completion > /etc/bash_completion.d/mvt"
	} else {
		completionCommandLong = "To install completion scripts run:\nmvt completion > .../bash_completion.d/mvt"
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long:  completionCommandLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	})

	rootCmd.AddCommand(version.NewCommand(&version.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	//
	// Decode Command
	//

	rootCmd.AddCommand(decode.NewCommand())

	//
	// Layers Command
	//

	rootCmd.AddCommand(layers.NewCommand())

	return rootCmd
}

// Execute handles command line calls to mvt.
func Execute(gitBranch string, gitCommit string) error {
	return NewRootCommand(gitBranch, gitCommit).Execute()
}
