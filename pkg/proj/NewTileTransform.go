// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package proj

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/project"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
	"github.com/spatialcurrent/go-mvt/pkg/geo"
	"github.com/spatialcurrent/go-mvt/pkg/geom"
)

type NewTileTransformInput struct {
	Tile       maptile.Tile
	Extent     uint32
	Projection Projection
}

// NewTileTransform returns a transform from the pixel space of a tile with the
// given extent into EPSG:4326 or EPSG:3857.
func NewTileTransform(input *NewTileTransformInput) (geom.TransformFunc, error) {
	if input.Extent == 0 {
		return nil, &rerrors.ErrInvalidParameter{Name: "extent", Value: input.Extent}
	}
	if input.Projection.IsTilePixels() {
		return nil, &rerrors.ErrInvalidParameter{Name: "projection", Value: input.Projection}
	}

	z := int(input.Tile.Z)
	extent := float64(input.Extent)
	tx := float64(input.Tile.X)
	ty := float64(input.Tile.Y)

	toWGS84 := func(x float64, y float64) (float64, float64) {
		return geo.TileToLongitude(tx+x/extent, z), geo.TileToLatitude(ty+y/extent, z)
	}

	switch input.Projection.Code {
	case EPSG4326.Code:
		return toWGS84, nil
	case EPSG3857.Code:
		return func(x float64, y float64) (float64, float64) {
			lon, lat := toWGS84(x, y)
			p := project.WGS84.ToMercator(orb.Point{lon, lat})
			return p[0], p[1]
		}, nil
	}

	return nil, &rerrors.ErrInvalidParameter{Name: "projection", Value: input.Projection}
}
