// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package vt_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
	"github.com/spatialcurrent/go-mvt/pkg/vt"
	"github.com/spatialcurrent/go-mvt/pkg/vt/vttest"
)

func TestParseLayers(t *testing.T) {
	b := vttest.Encode(
		vttest.Layer{
			Name:   "water",
			Extent: 512,
			Features: []vttest.Feature{
				{Type: vt.GeometryTypePoint, Rings: [][]vt.Point{{{X: 1, Y: 2}}}},
			},
		},
		vttest.Layer{
			Name: "roads",
			Features: []vttest.Feature{
				{Type: vt.GeometryTypeLineString, Rings: [][]vt.Point{{{X: 0, Y: 0}, {X: 5, Y: 5}}}},
				{Type: vt.GeometryTypeLineString, Rings: [][]vt.Point{{{X: 1, Y: 1}, {X: 2, Y: 2}}}},
			},
		},
	)

	tile, err := vt.Parse(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"water", "roads"}, tile.LayerNames())

	water, ok := tile.Layer("water")
	require.True(t, ok)
	assert.Equal(t, uint32(512), water.Extent)
	assert.Equal(t, uint32(2), water.Version)
	assert.Equal(t, 1, water.Len())

	roads, ok := tile.Layer("roads")
	require.True(t, ok)
	assert.Equal(t, vt.DefaultExtent, roads.Extent)
	assert.Equal(t, 2, roads.Len())

	_, ok = tile.Layer("buildings")
	assert.False(t, ok)
}

func TestParseEmpty(t *testing.T) {
	tile, err := vt.Parse([]byte{})
	require.NoError(t, err)
	assert.Empty(t, tile.Layers())
}

func TestParseTruncated(t *testing.T) {
	b := vttest.Encode(vttest.Layer{
		Name: "roads",
		Features: []vttest.Feature{
			{Type: vt.GeometryTypeLineString, Rings: [][]vt.Point{{{X: 0, Y: 0}, {X: 5, Y: 5}}}},
		},
	})
	_, err := vt.Parse(b[:len(b)-3])
	assert.Error(t, err)
}

func TestLayerFeatureOutOfRange(t *testing.T) {
	tile, err := vt.Parse(vttest.Encode(vttest.Layer{Name: "empty"}))
	require.NoError(t, err)
	l, ok := tile.Layer("empty")
	require.True(t, ok)
	_, err = l.Feature(0)
	require.Error(t, err)
	assert.IsType(t, &rerrors.ErrMissingObject{}, err)
}

func TestParseOrbEncodedTile(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(orb.LineString{{0, 0}, {10, 0}, {10, 10}})
	f.Properties["class"] = "park"
	fc.Append(f)

	b, err := mvt.Marshal(mvt.Layers{mvt.NewLayer("landuse", fc)})
	require.NoError(t, err)

	tile, err := vt.Parse(b)
	require.NoError(t, err)
	l, ok := tile.Layer("landuse")
	require.True(t, ok)
	require.Equal(t, 1, l.Len())

	raw, err := l.Feature(0)
	require.NoError(t, err)
	assert.Equal(t, vt.GeometryTypeLineString, raw.Type)
	assert.Equal(t, map[string]interface{}{"class": "park"}, raw.Properties())

	rings, err := raw.LoadGeometry()
	require.NoError(t, err)
	assert.Equal(t, [][]vt.Point{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}, rings)
}
