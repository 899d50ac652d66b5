// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"github.com/spf13/cobra"
)

// NewCommand returns a new instance of the decode command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		RunE:         decodeFunction,
		SilenceUsage: SilenceUsage,
	}
	InitDecodeFlags(cmd.Flags())
	return cmd
}
