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

// Feature owns its properties.  The geometry is one of the properties, stored
// under GeometryName, and is absent when the feature has no geometry.
type Feature struct {
	Properties   map[string]interface{} `json:"properties" yaml:"properties"`
	GeometryName string                 `json:"geometry_name" yaml:"geometry_name"`
}

func NewFeature(properties map[string]interface{}, geometryName string) *Feature {
	if properties == nil {
		properties = map[string]interface{}{}
	}
	return &Feature{Properties: properties, GeometryName: geometryName}
}

// Geometry returns the geometry stored under GeometryName or nil.
func (f *Feature) Geometry() *geom.Geometry {
	if g, ok := f.Properties[f.GeometryName].(*geom.Geometry); ok {
		return g
	}
	return nil
}

func (f *Feature) SetGeometry(g *geom.Geometry) {
	if g == nil {
		delete(f.Properties, f.GeometryName)
		return
	}
	f.Properties[f.GeometryName] = g
}

// Get returns the property with the given key.
func (f *Feature) Get(key string) (interface{}, bool) {
	v, ok := f.Properties[key]
	return v, ok
}

func (f *Feature) GeometryKind() geom.Kind {
	if g := f.Geometry(); g != nil {
		return g.Kind
	}
	return geom.KindNone
}

func (f *Feature) Flat() []float64 {
	if g := f.Geometry(); g != nil {
		return g.FlatCoordinates
	}
	return []float64{}
}

func (f *Feature) RingEnds() []int {
	if g := f.Geometry(); g != nil {
		return g.Ends
	}
	return []int{}
}

func (f *Feature) Values() map[string]interface{} {
	return f.Properties
}
