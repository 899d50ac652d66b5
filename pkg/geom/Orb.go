// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geom

import (
	"github.com/paulmach/orb"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
)

// Orb builds the orb container matching the kind of the geometry.
// KindNone returns a nil geometry.
func (g *Geometry) Orb() (orb.Geometry, error) {
	switch g.Kind {
	case KindNone:
		return nil, nil
	case KindPoint:
		if len(g.FlatCoordinates) < Stride {
			return orb.Point{}, nil
		}
		return orb.Point{g.FlatCoordinates[0], g.FlatCoordinates[1]}, nil
	case KindMultiPoint:
		return orb.MultiPoint(points(g.FlatCoordinates)), nil
	case KindLineString:
		return orb.LineString(points(g.FlatCoordinates)), nil
	case KindMultiLineString:
		mls := make(orb.MultiLineString, 0, len(g.Ends))
		for i := range g.Ends {
			mls = append(mls, orb.LineString(points(g.Ring(i))))
		}
		return mls, nil
	case KindPolygon:
		p := make(orb.Polygon, 0, len(g.Ends))
		for i := range g.Ends {
			p = append(p, orb.Ring(points(g.Ring(i))))
		}
		return p, nil
	}
	return nil, &rerrors.ErrUnknownGeometryKind{Value: g.Kind}
}

func points(flat []float64) []orb.Point {
	pts := make([]orb.Point, 0, len(flat)/Stride)
	for i := 0; i+1 < len(flat); i += Stride {
		pts = append(pts, orb.Point{flat[i], flat[i+1]})
	}
	return pts
}
