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

var R2D = 180 / math.Pi

// TileToLatitude returns the latitude of the northern edge of row y at zoom z.
func TileToLatitude(y float64, z int) float64 {
	n := math.Pi - 2*math.Pi*y/math.Pow(2, float64(z))
	return R2D * math.Atan(0.5*(math.Exp(n)-math.Exp(-1.0*n)))
}
