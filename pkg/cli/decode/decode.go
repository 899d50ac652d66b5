// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mvt/pkg/cli/input"
	"github.com/spatialcurrent/go-mvt/pkg/cli/logging"
	"github.com/spatialcurrent/go-mvt/pkg/feature"
	"github.com/spatialcurrent/go-mvt/pkg/filter"
	"github.com/spatialcurrent/go-mvt/pkg/mvt"
	"github.com/spatialcurrent/go-mvt/pkg/util"
)

const (
	CliUse       = "decode"
	CliShort     = "decode a vector tile into a GeoJSON feature collection"
	CliLong      = "decode a vector tile into a GeoJSON feature collection, optionally reprojecting from tile pixels when the tile coordinates are known"
	SilenceUsage = true
)

const (
	FlagLayers       = "layers"
	FlagFlyweight    = "flyweight"
	FlagGeometryName = "geometry-name"
	FlagLayerName    = "layer-name"
	FlagTile         = "tile"
	FlagProjection   = "projection"
	FlagWhere        = "where"
	FlagPretty       = "pretty"
	FlagConfigUri    = "config-uri"
)

func decodeFunction(cmd *cobra.Command, args []string) error {
	v := viper.New()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return errors.Wrap(err, "error binding flags")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err = util.MergeConfigs(v, v.GetStringSlice(FlagConfigUri))
	if err != nil {
		return errors.Wrap(err, "error merging config")
	}

	err = CheckDecodeConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with configuration")
	}

	logger := logging.NewLoggerFromViper(v, os.Stderr)

	b, err := input.ReadTile(&input.ReadTileInput{
		Uri:         v.GetString(input.FlagInputURI),
		Compression: v.GetString(input.FlagInputCompression),
		Stdin:       cmd.InOrStdin(),
	})
	if err != nil {
		return errors.Wrap(err, "error reading tile")
	}

	options := &mvt.Options{
		Layers:       nil,
		GeometryName: v.GetString(FlagGeometryName),
		LayerName:    v.GetString(FlagLayerName),
		Flyweight:    v.GetBool(FlagFlyweight),
		Logger:       logger,
	}
	if layers := v.GetStringSlice(FlagLayers); len(layers) > 0 {
		options.Layers = layers
	}

	reader, err := mvt.NewReader(options)
	if err != nil {
		return errors.Wrap(err, "error creating reader")
	}

	readOptions, err := NewReadOptions(v)
	if err != nil {
		return errors.Wrap(err, "error with read options")
	}

	features, err := reader.ReadFeatures(b, readOptions)
	if err != nil {
		return errors.Wrap(err, "error reading features")
	}

	where, err := ParseWhere(v.GetStringSlice(FlagWhere))
	if err != nil {
		return errors.Wrap(err, "error parsing where clauses")
	}
	if where != nil {
		features = filter.Apply(features, where)
	}

	logger.WithField("features", len(features)).Debug("decoded tile")

	fc, err := feature.NewFeatureCollection(features, reader.GeometryName())
	if err != nil {
		return errors.Wrap(err, "error converting features to GeoJSON")
	}

	return WriteFeatureCollection(cmd.OutOrStdout(), fc, v.GetBool(FlagPretty))
}
