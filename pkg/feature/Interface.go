// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package feature contains the records produced when reading a tile.
package feature

import (
	"github.com/spatialcurrent/go-mvt/pkg/geom"
)

// Interface is implemented by both Feature and FlyweightFeature.
type Interface interface {
	GeometryKind() geom.Kind
	Flat() []float64
	RingEnds() []int
	Values() map[string]interface{}
}
