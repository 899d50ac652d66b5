// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geom

// TransformFunc maps one position to another, e.g., tile pixels to map units.
type TransformFunc func(x float64, y float64) (float64, float64)

// Transform rewrites every position of the flat buffer in place.
func (g *Geometry) Transform(fn TransformFunc) {
	for i := 0; i+1 < len(g.FlatCoordinates); i += Stride {
		g.FlatCoordinates[i], g.FlatCoordinates[i+1] = fn(g.FlatCoordinates[i], g.FlatCoordinates[i+1])
	}
}
