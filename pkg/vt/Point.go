// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package vt

// Point is a position in tile-local pixel space.
type Point struct {
	X int
	Y int
}
