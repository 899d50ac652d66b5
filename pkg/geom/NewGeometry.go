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

// NewGeometry decodes and classifies the rings of a feature.
// A zero tag yields KindNone with empty buffers.
func NewGeometry(tag vt.GeometryType, rings [][]vt.Point) *Geometry {
	if tag == vt.GeometryTypeUnknown {
		return &Geometry{Kind: KindNone, FlatCoordinates: []float64{}, Ends: []int{}}
	}
	flat, ends := DecodeRings(rings)
	return &Geometry{
		Kind:            Classify(tag, len(rings)),
		FlatCoordinates: flat,
		Ends:            ends,
	}
}
