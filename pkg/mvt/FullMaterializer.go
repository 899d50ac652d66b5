// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mvt

import (
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mvt/pkg/feature"
	"github.com/spatialcurrent/go-mvt/pkg/geom"
	"github.com/spatialcurrent/go-mvt/pkg/proj"
	"github.com/spatialcurrent/go-mvt/pkg/vt"
)

// FullMaterializer builds features that own a copy of the raw properties.
type FullMaterializer struct {
	GeometryName      string
	LayerName         string
	Transform         geom.TransformFunc
	Tile              *maptile.Tile
	FeatureProjection proj.Projection
	// tile transforms by extent
	transforms map[uint32]geom.TransformFunc
}

func NewFullMaterializer(options *Options, ro *ReadOptions) *FullMaterializer {
	m := &FullMaterializer{
		GeometryName: options.GeometryName,
		LayerName:    options.LayerName,
		transforms:   map[uint32]geom.TransformFunc{},
	}
	if ro != nil {
		m.Transform = ro.Transform
		m.Tile = ro.Tile
		m.FeatureProjection = ro.FeatureProjection
	}
	return m
}

func (m *FullMaterializer) transformFor(extent uint32) (geom.TransformFunc, error) {
	if m.Transform != nil {
		return m.Transform, nil
	}
	if m.Tile == nil || len(m.FeatureProjection.Code) == 0 || m.FeatureProjection.IsTilePixels() {
		return nil, nil
	}
	if fn, ok := m.transforms[extent]; ok {
		return fn, nil
	}
	fn, err := proj.NewTileTransform(&proj.NewTileTransformInput{
		Tile:       *m.Tile,
		Extent:     extent,
		Projection: m.FeatureProjection,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error creating tile transform")
	}
	if m.transforms == nil {
		m.transforms = map[uint32]geom.TransformFunc{}
	}
	m.transforms[extent] = fn
	return fn, nil
}

func (m *FullMaterializer) Materialize(raw *vt.Feature, layer string) (feature.Interface, error) {
	source := raw.Properties()
	values := make(map[string]interface{}, len(source)+2)
	for k, v := range source {
		values[k] = v
	}
	values[m.LayerName] = layer

	f := feature.NewFeature(values, m.GeometryName)

	if raw.Type == vt.GeometryTypeUnknown {
		return f, nil
	}

	rings, err := raw.LoadGeometry()
	if err != nil {
		return nil, errors.Wrap(err, "error loading geometry")
	}
	g := geom.NewGeometry(raw.Type, rings)
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid geometry")
	}

	fn, err := m.transformFor(raw.Extent())
	if err != nil {
		return nil, err
	}
	if fn != nil {
		g.Transform(fn)
	}

	f.SetGeometry(g)
	return f, nil
}
