// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package vt

// GeometryType is the type tag carried by every feature in a tile.
type GeometryType uint32

const (
	GeometryTypeUnknown    GeometryType = 0
	GeometryTypePoint      GeometryType = 1
	GeometryTypeLineString GeometryType = 2
	GeometryTypePolygon    GeometryType = 3
)

func (t GeometryType) String() string {
	switch t {
	case GeometryTypeUnknown:
		return "UNKNOWN"
	case GeometryTypePoint:
		return "POINT"
	case GeometryTypeLineString:
		return "LINESTRING"
	case GeometryTypePolygon:
		return "POLYGON"
	}
	return "UNKNOWN"
}
