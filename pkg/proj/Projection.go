// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package proj

import (
	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
)

const (
	UnitsTilePixels = "tile-pixels"
	UnitsMeters     = "m"
	UnitsDegrees    = "degrees"
)

// Projection names a coordinate reference system and the units positions are expressed in.
type Projection struct {
	Code  string `json:"code" yaml:"code"`
	Units string `json:"units" yaml:"units"`
}

var (
	// TilePixels is the projection of every decoded geometry until it is transformed.
	TilePixels = Projection{Code: "EPSG:3857", Units: UnitsTilePixels}
	EPSG3857   = Projection{Code: "EPSG:3857", Units: UnitsMeters}
	EPSG4326   = Projection{Code: "EPSG:4326", Units: UnitsDegrees}
)

func (p Projection) IsTilePixels() bool {
	return p.Units == UnitsTilePixels
}

// Parse returns the geographic projection with the given code.
func Parse(code string) (Projection, error) {
	switch code {
	case EPSG3857.Code:
		return EPSG3857, nil
	case EPSG4326.Code:
		return EPSG4326, nil
	}
	return Projection{}, &rerrors.ErrInvalidParameter{Name: "projection", Value: code}
}
