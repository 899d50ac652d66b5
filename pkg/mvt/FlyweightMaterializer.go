// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mvt

import (
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mvt/pkg/feature"
	"github.com/spatialcurrent/go-mvt/pkg/geom"
	"github.com/spatialcurrent/go-mvt/pkg/vt"
)

// FlyweightMaterializer builds flyweight features.  The layer name is written
// into the property map of the raw feature, which the flyweight feature then
// shares.  Geometries are never transformed.
type FlyweightMaterializer struct {
	LayerName string
}

func (m *FlyweightMaterializer) Materialize(raw *vt.Feature, layer string) (feature.Interface, error) {
	rings, err := raw.LoadGeometry()
	if err != nil {
		return nil, errors.Wrap(err, "error loading geometry")
	}
	g := geom.NewGeometry(raw.Type, rings)
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid geometry")
	}

	properties := raw.Properties()
	properties[m.LayerName] = layer

	return &feature.FlyweightFeature{
		Type:            g.Kind,
		FlatCoordinates: g.FlatCoordinates,
		Ends:            g.Ends,
		Properties:      properties,
	}, nil
}
