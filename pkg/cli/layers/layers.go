// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layers

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mvt/pkg/cli/input"
	"github.com/spatialcurrent/go-mvt/pkg/vt"
)

const (
	CliUse       = "layers"
	CliShort     = "list the layers of a vector tile"
	CliLong      = "list the name, version, extent, and feature count of every layer of a vector tile"
	SilenceUsage = true
)

func layersFunction(cmd *cobra.Command, args []string) error {
	v := viper.New()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return errors.Wrap(err, "error binding flags")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err = input.CheckInputConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with input configuration")
	}

	b, err := input.ReadTile(&input.ReadTileInput{
		Uri:         v.GetString(input.FlagInputURI),
		Compression: v.GetString(input.FlagInputCompression),
		Stdin:       cmd.InOrStdin(),
	})
	if err != nil {
		return errors.Wrap(err, "error reading tile")
	}

	tile, err := vt.Parse(b)
	if err != nil {
		return errors.Wrap(err, "error parsing tile")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tEXTENT\tFEATURES")
	for _, l := range tile.Layers() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", l.Name, l.Version, l.Extent, l.Len())
	}
	return w.Flush()
}

// NewCommand returns a new instance of the layers command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		RunE:         layersFunction,
		SilenceUsage: SilenceUsage,
	}
	input.InitInputFlags(cmd.Flags())
	return cmd
}
