// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geom

import (
	"encoding/json"
	"fmt"
)

// Kind is the geometry type inferred for a feature.
type Kind uint8

const (
	KindNone Kind = iota
	KindPoint
	KindMultiPoint
	KindLineString
	KindMultiLineString
	// KindPolygon also carries multi polygons as a polygon with several exterior rings.
	KindPolygon
)

const (
	TypeNameNone            = "None"
	TypeNamePoint           = "Point"
	TypeNameMultiPoint      = "MultiPoint"
	TypeNameLineString      = "LineString"
	TypeNameMultiLineString = "MultiLineString"
	TypeNamePolygon         = "Polygon"
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return TypeNameNone
	case KindPoint:
		return TypeNamePoint
	case KindMultiPoint:
		return TypeNameMultiPoint
	case KindLineString:
		return TypeNameLineString
	case KindMultiLineString:
		return TypeNameMultiLineString
	case KindPolygon:
		return TypeNamePolygon
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
