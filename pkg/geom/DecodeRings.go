// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geom

import (
	"github.com/spatialcurrent/go-mvt/pkg/vt"
)

// DecodeRings flattens rings into one coordinate buffer and returns the offset
// where each ring ends.  Offsets count buffer slots, two per point.  An empty
// ring still contributes an offset so the number of ends equals the number of rings.
// Coordinates stay in tile pixel space.
func DecodeRings(rings [][]vt.Point) ([]float64, []int) {
	n := 0
	for _, ring := range rings {
		n += len(ring)
	}
	flat := make([]float64, 0, Stride*n)
	ends := make([]int, 0, len(rings))
	end := 0
	for _, ring := range rings {
		for _, p := range ring {
			flat = append(flat, float64(p.X), float64(p.Y))
		}
		end += Stride * len(ring)
		ends = append(ends, end)
	}
	return flat, ends
}
