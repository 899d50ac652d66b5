// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mvt/pkg/mvt"
	"github.com/spatialcurrent/go-mvt/pkg/proj"
)

// NewReadOptions returns the read options for the configured tile and projection.
// Without a projection features stay in tile pixels and nil is returned.
func NewReadOptions(v *viper.Viper) (*mvt.ReadOptions, error) {
	code := v.GetString(FlagProjection)
	if len(code) == 0 {
		return nil, nil
	}
	p, err := proj.Parse(code)
	if err != nil {
		return nil, err
	}
	tile, err := ParseTile(v.GetString(FlagTile))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing tile")
	}
	return &mvt.ReadOptions{Tile: &tile, FeatureProjection: p}, nil
}
