// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mvt

import (
	"github.com/paulmach/orb/maptile"

	"github.com/spatialcurrent/go-mvt/pkg/geom"
	"github.com/spatialcurrent/go-mvt/pkg/proj"
)

// ReadOptions are passed to each call of ReadFeatures.  They only affect full
// features; flyweight features always stay in tile pixel space.
type ReadOptions struct {
	// Transform is applied once to every geometry.
	Transform geom.TransformFunc
	// Tile and FeatureProjection derive a transform for each layer extent when
	// Transform is nil.
	Tile              *maptile.Tile
	FeatureProjection proj.Projection
}
