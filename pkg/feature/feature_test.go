// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/go-mvt/pkg/geom"
)

func TestFeatureGeometry(t *testing.T) {
	f := NewFeature(map[string]interface{}{"class": "park"}, "the_geom")
	assert.Nil(t, f.Geometry())
	assert.Equal(t, geom.KindNone, f.GeometryKind())
	assert.Empty(t, f.Flat())
	assert.Empty(t, f.RingEnds())

	g := &geom.Geometry{Kind: geom.KindLineString, FlatCoordinates: []float64{0, 0, 10, 0, 10, 10}, Ends: []int{6}}
	f.SetGeometry(g)
	assert.Same(t, g, f.Geometry())
	assert.Equal(t, geom.KindLineString, f.GeometryKind())
	assert.Equal(t, []float64{0, 0, 10, 0, 10, 10}, f.Flat())
	assert.Equal(t, []int{6}, f.RingEnds())

	v, ok := f.Get("class")
	assert.True(t, ok)
	assert.Equal(t, "park", v)

	f.SetGeometry(nil)
	_, ok = f.Get("the_geom")
	assert.False(t, ok)
}

func TestToGeoJSON(t *testing.T) {
	f := NewFeature(map[string]interface{}{"class": "park", "layer": "landuse"}, "geometry")
	f.SetGeometry(&geom.Geometry{Kind: geom.KindLineString, FlatCoordinates: []float64{0, 0, 10, 0, 10, 10}, Ends: []int{6}})

	gf, err := ToGeoJSON(f, "geometry")
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{0, 0}, {10, 0}, {10, 10}}, gf.Geometry)
	assert.Equal(t, map[string]interface{}{"class": "park", "layer": "landuse"}, map[string]interface{}(gf.Properties))
}

func TestToGeoJSONFlyweight(t *testing.T) {
	f := &FlyweightFeature{
		Type:            geom.KindMultiPoint,
		FlatCoordinates: []float64{1, 2, 3, 4},
		Ends:            []int{2, 4},
		Properties:      map[string]interface{}{"layer": "poi", "geometry": "not a geometry"},
	}
	gf, err := ToGeoJSON(f, "geometry")
	require.NoError(t, err)
	assert.Equal(t, orb.MultiPoint{{1, 2}, {3, 4}}, gf.Geometry)
	assert.Equal(t, "not a geometry", gf.Properties["geometry"])
}

func TestNewFeatureCollection(t *testing.T) {
	features := []Interface{
		&FlyweightFeature{Type: geom.KindPoint, FlatCoordinates: []float64{1, 2}, Ends: []int{2}, Properties: map[string]interface{}{"layer": "a"}},
		NewFeature(map[string]interface{}{"layer": "b"}, "geometry"),
	}
	fc, err := NewFeatureCollection(features, "geometry")
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, orb.Point{1, 2}, fc.Features[0].Geometry)
	assert.Nil(t, fc.Features[1].Geometry)
	assert.Equal(t, "b", fc.Features[1].Properties["layer"])
}

func TestNewFeatureCollectionUnknownKind(t *testing.T) {
	features := []Interface{&FlyweightFeature{Type: geom.Kind(99)}}
	_, err := NewFeatureCollection(features, "geometry")
	assert.Error(t, err)
}
