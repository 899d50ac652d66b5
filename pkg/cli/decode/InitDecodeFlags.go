// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/go-mvt/pkg/cli/input"
	"github.com/spatialcurrent/go-mvt/pkg/mvt"
)

// InitDecodeFlags initializes the decode flags.
func InitDecodeFlags(flag *pflag.FlagSet) {
	input.InitInputFlags(flag)
	flag.StringSliceP(FlagLayers, "l", []string{}, "only read features from these layers")
	flag.Bool(FlagFlyweight, false, "read flyweight features, which are never reprojected")
	flag.String(FlagGeometryName, mvt.DefaultGeometryName, "the property key of the geometry")
	flag.String(FlagLayerName, mvt.DefaultLayerName, "the property key the layer name is written to")
	flag.String(FlagTile, "", "the tile coordinates as z/x/y, required for reprojection")
	flag.String(FlagProjection, "", "reproject features into EPSG:4326 or EPSG:3857")
	flag.StringArrayP(FlagWhere, "w", []string{}, "only output features with a property equal to a value, as key=value")
	flag.BoolP(FlagPretty, "p", false, "pretty print output")
}
