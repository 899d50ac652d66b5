// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	"github.com/spatialcurrent/go-mvt/pkg/geom"
)

// FlyweightFeature keeps only what is needed to draw a feature.
//
// The flat buffer and ring ends belong to the feature.  Properties is the map of
// the raw feature it was read from and must be treated as read-only; copy it
// before changing it.
type FlyweightFeature struct {
	Type            geom.Kind
	FlatCoordinates []float64
	Ends            []int
	Properties      map[string]interface{}
}

func (f *FlyweightFeature) GeometryKind() geom.Kind {
	return f.Type
}

func (f *FlyweightFeature) Flat() []float64 {
	return f.FlatCoordinates
}

func (f *FlyweightFeature) RingEnds() []int {
	return f.Ends
}

func (f *FlyweightFeature) Values() map[string]interface{} {
	return f.Properties
}
