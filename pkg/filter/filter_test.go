// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
	"github.com/spatialcurrent/go-mvt/pkg/feature"
	"github.com/spatialcurrent/go-mvt/pkg/geom"
)

func TestEqualTo(t *testing.T) {
	properties := map[string]interface{}{"class": "park", "rank": int64(3)}
	assert.True(t, (&EqualTo{Key: "class", Value: "park"}).Evaluate(properties))
	assert.False(t, (&EqualTo{Key: "class", Value: "forest"}).Evaluate(properties))
	assert.True(t, (&EqualTo{Key: "rank", Value: int64(3)}).Evaluate(properties))
	assert.True(t, (&EqualTo{Key: "rank", Value: "3"}).Evaluate(properties))
	assert.False(t, (&EqualTo{Key: "rank", Value: 3.5}).Evaluate(properties))
	assert.False(t, (&EqualTo{Key: "missing", Value: "park"}).Evaluate(properties))
}

func TestLogical(t *testing.T) {
	properties := map[string]interface{}{"class": "park", "layer": "landuse"}
	park := &EqualTo{Key: "class", Value: "park"}
	forest := &EqualTo{Key: "class", Value: "forest"}
	landuse := &EqualTo{Key: "layer", Value: "landuse"}

	and, err := NewAnd(park, landuse)
	require.NoError(t, err)
	assert.True(t, and.Evaluate(properties))

	and, err = NewAnd(forest, landuse)
	require.NoError(t, err)
	assert.False(t, and.Evaluate(properties))

	or, err := NewOr(forest, landuse)
	require.NoError(t, err)
	assert.True(t, or.Evaluate(properties))

	or, err = NewOr(forest, &Not{Condition: landuse})
	require.NoError(t, err)
	assert.False(t, or.Evaluate(properties))
}

func TestLogicalTooFewConditions(t *testing.T) {
	_, err := NewOr(&EqualTo{Key: "a", Value: "b"})
	require.Error(t, err)
	assert.IsType(t, &rerrors.ErrInvalidParameter{}, err)

	_, err = NewAnd()
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	features := []feature.Interface{
		&feature.FlyweightFeature{Type: geom.KindPoint, Properties: map[string]interface{}{"layer": "roads", "n": "1"}},
		&feature.FlyweightFeature{Type: geom.KindPoint, Properties: map[string]interface{}{"layer": "water", "n": "2"}},
		&feature.FlyweightFeature{Type: geom.KindPoint, Properties: map[string]interface{}{"layer": "roads", "n": "3"}},
	}
	matched := Apply(features, &EqualTo{Key: "layer", Value: "roads"})
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].Values()["n"])
	assert.Equal(t, "3", matched[1].Values()["n"])
}
