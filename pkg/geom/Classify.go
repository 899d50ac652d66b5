// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geom

import (
	"github.com/spatialcurrent/go-mvt/pkg/vt"
)

// Classify maps a type tag and ring count to a geometry kind.
//
// Points and lines split on one ring versus many.  Every other non-zero tag is
// a polygon regardless of ring count; exterior and interior rings are not told
// apart, so multi polygons come back as a single polygon.
func Classify(tag vt.GeometryType, ringCount int) Kind {
	switch tag {
	case vt.GeometryTypeUnknown:
		return KindNone
	case vt.GeometryTypePoint:
		if ringCount == 1 {
			return KindPoint
		}
		return KindMultiPoint
	case vt.GeometryTypeLineString:
		if ringCount == 1 {
			return KindLineString
		}
		return KindMultiLineString
	}
	return KindPolygon
}
