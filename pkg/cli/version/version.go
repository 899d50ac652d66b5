// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	CliUse   = "version"
	CliShort = "print version"
)

type NewCommandInput struct {
	GitBranch string
	GitCommit string
}

// NewCommand returns a new instance of the version command.
func NewCommand(input *NewCommandInput) *cobra.Command {
	return &cobra.Command{
		Use:   CliUse,
		Short: CliShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(input.GitBranch) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Branch: "+input.GitBranch)
			}
			if len(input.GitCommit) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Commit: "+input.GitCommit)
			}
			return nil
		},
	}
}
