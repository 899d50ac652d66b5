// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"math"
)

// TileToLongitude returns the longitude of the western edge of column x at zoom z.
// Fractional columns address positions inside a tile.
func TileToLongitude(x float64, z int) float64 {
	return x/math.Pow(2, float64(z))*360 - 180
}
