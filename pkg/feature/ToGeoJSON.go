// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mvt/pkg/geom"
)

// ToGeoJSON converts a feature into a GeoJSON feature.  The property stored
// under geometryName is left out of the GeoJSON properties.
func ToGeoJSON(f Interface, geometryName string) (*geojson.Feature, error) {
	g := &geom.Geometry{Kind: f.GeometryKind(), FlatCoordinates: f.Flat(), Ends: f.RingEnds()}
	o, err := g.Orb()
	if err != nil {
		return nil, errors.Wrap(err, "error converting geometry")
	}
	gf := geojson.NewFeature(o)
	for k, v := range f.Values() {
		if k == geometryName {
			if _, ok := v.(*geom.Geometry); ok {
				continue
			}
		}
		gf.Properties[k] = v
	}
	return gf, nil
}

// NewFeatureCollection converts the features in order.
func NewFeatureCollection(features []Interface, geometryName string) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for i, f := range features {
		gf, err := ToGeoJSON(f, geometryName)
		if err != nil {
			return nil, errors.Wrapf(err, "error converting feature %d", i)
		}
		fc.Append(gf)
	}
	return fc, nil
}
