// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package vt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/spatialcurrent/go-mvt/pkg/vt"
	"github.com/spatialcurrent/go-mvt/pkg/vt/vttest"
)

func firstFeature(t *testing.T, f vttest.Feature) *vt.Feature {
	t.Helper()
	tile, err := vt.Parse(vttest.Encode(vttest.Layer{Name: "test", Features: []vttest.Feature{f}}))
	require.NoError(t, err)
	l, ok := tile.Layer("test")
	require.True(t, ok)
	raw, err := l.Feature(0)
	require.NoError(t, err)
	return raw
}

// rawFeature builds a tile around a hand written command stream.
func rawFeature(t *testing.T, typ vt.GeometryType, cmds []uint32) *vt.Feature {
	t.Helper()
	packed := make([]byte, 0)
	for _, c := range cmds {
		packed = protowire.AppendVarint(packed, uint64(c))
	}
	f := make([]byte, 0)
	f = protowire.AppendTag(f, 3, protowire.VarintType)
	f = protowire.AppendVarint(f, uint64(typ))
	f = protowire.AppendTag(f, 4, protowire.BytesType)
	f = protowire.AppendBytes(f, packed)

	l := make([]byte, 0)
	l = protowire.AppendTag(l, 1, protowire.BytesType)
	l = protowire.AppendString(l, "test")
	l = protowire.AppendTag(l, 2, protowire.BytesType)
	l = protowire.AppendBytes(l, f)

	b := protowire.AppendTag(nil, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, l)

	tile, err := vt.Parse(b)
	require.NoError(t, err)
	raw, err := tile.Layers()[0].Feature(0)
	require.NoError(t, err)
	return raw
}

func TestFeatureProperties(t *testing.T) {
	id := uint64(42)
	raw := firstFeature(t, vttest.Feature{
		ID:   &id,
		Type: vt.GeometryTypePoint,
		Properties: map[string]interface{}{
			"name":   "Fountain",
			"height": 12.5,
			"floors": int64(-3),
			"count":  uint64(7),
			"ratio":  float32(0.5),
			"public": true,
		},
		Rings: [][]vt.Point{{{X: 1, Y: 1}}},
	})

	assert.True(t, raw.HasID)
	assert.Equal(t, id, raw.ID)
	expected := map[string]interface{}{
		"name":   "Fountain",
		"height": 12.5,
		"floors": int64(-3),
		"count":  uint64(7),
		"ratio":  0.5,
		"public": true,
	}
	assert.Equal(t, expected, raw.Properties())

	raw.Properties()["layer"] = "test"
	assert.Equal(t, "test", raw.Properties()["layer"])
}

func TestLoadGeometryLineString(t *testing.T) {
	raw := firstFeature(t, vttest.Feature{
		Type:  vt.GeometryTypeLineString,
		Rings: [][]vt.Point{{{X: 2, Y: 2}, {X: 2, Y: 10}, {X: 10, Y: 10}}},
	})
	rings, err := raw.LoadGeometry()
	require.NoError(t, err)
	assert.Equal(t, [][]vt.Point{{{X: 2, Y: 2}, {X: 2, Y: 10}, {X: 10, Y: 10}}}, rings)
}

func TestLoadGeometryMultiPoint(t *testing.T) {
	// MoveTo(2) +(5,7) +(-2,1)
	raw := rawFeature(t, vt.GeometryTypePoint, []uint32{
		vttest.Command(1, 2),
		uint32(protowire.EncodeZigZag(5)), uint32(protowire.EncodeZigZag(7)),
		uint32(protowire.EncodeZigZag(-2)), uint32(protowire.EncodeZigZag(1)),
	})
	rings, err := raw.LoadGeometry()
	require.NoError(t, err)
	assert.Equal(t, [][]vt.Point{{{X: 5, Y: 7}}, {{X: 3, Y: 8}}}, rings)
}

func TestLoadGeometryClosePath(t *testing.T) {
	raw := firstFeature(t, vttest.Feature{
		Type:      vt.GeometryTypePolygon,
		Rings:     [][]vt.Point{{{X: 3, Y: 6}, {X: 8, Y: 12}, {X: 20, Y: 34}}},
		ClosePath: true,
	})
	rings, err := raw.LoadGeometry()
	require.NoError(t, err)
	assert.Equal(t, [][]vt.Point{{{X: 3, Y: 6}, {X: 8, Y: 12}, {X: 20, Y: 34}, {X: 3, Y: 6}}}, rings)
}

func TestLoadGeometryEmpty(t *testing.T) {
	raw := firstFeature(t, vttest.Feature{Type: vt.GeometryTypeUnknown})
	rings, err := raw.LoadGeometry()
	require.NoError(t, err)
	assert.Empty(t, rings)
}

func TestLoadGeometryUnknownCommand(t *testing.T) {
	raw := rawFeature(t, vt.GeometryTypeLineString, []uint32{vttest.Command(3, 1), 0, 0})
	_, err := raw.LoadGeometry()
	assert.Error(t, err)
}

func TestLoadGeometryLineToFirst(t *testing.T) {
	raw := rawFeature(t, vt.GeometryTypeLineString, []uint32{vttest.Command(2, 1), 2, 2})
	_, err := raw.LoadGeometry()
	assert.Error(t, err)
}

func TestLoadGeometryMissingParameters(t *testing.T) {
	raw := rawFeature(t, vt.GeometryTypeLineString, []uint32{vttest.Command(1, 1), 2})
	_, err := raw.LoadGeometry()
	assert.Error(t, err)
}
