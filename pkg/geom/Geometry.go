// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geom

import (
	"github.com/pkg/errors"
)

// Stride is the number of values per position in a flat coordinate buffer.
const Stride = 2

// Geometry is a decoded geometry.  Every kind shares the same payload, a flat
// buffer of interleaved x and y values and the offsets into that buffer where
// each ring ends.
type Geometry struct {
	Kind            Kind      `json:"type"`
	FlatCoordinates []float64 `json:"flatCoordinates"`
	Ends            []int     `json:"ends"`
}

func (g *Geometry) Type() string {
	return g.Kind.String()
}

func (g *Geometry) NumRings() int {
	return len(g.Ends)
}

// Ring returns the slice of the flat buffer holding ring i.
func (g *Geometry) Ring(i int) []float64 {
	start := 0
	if i > 0 {
		start = g.Ends[i-1]
	}
	return g.FlatCoordinates[start:g.Ends[i]]
}

func (g *Geometry) Clone() *Geometry {
	flat := make([]float64, len(g.FlatCoordinates))
	copy(flat, g.FlatCoordinates)
	ends := make([]int, len(g.Ends))
	copy(ends, g.Ends)
	return &Geometry{Kind: g.Kind, FlatCoordinates: flat, Ends: ends}
}

// Validate checks the ring offsets against the flat buffer.  Offsets may repeat
// when a ring is empty but never decrease.
func (g *Geometry) Validate() error {
	if len(g.FlatCoordinates)%Stride != 0 {
		return errors.Errorf("flat coordinates have odd length %d", len(g.FlatCoordinates))
	}
	if len(g.Ends) == 0 {
		if len(g.FlatCoordinates) != 0 {
			return errors.Errorf("%d flat coordinates without ring ends", len(g.FlatCoordinates))
		}
		return nil
	}
	previous := 0
	for i, end := range g.Ends {
		if end < previous {
			return errors.Errorf("ring end %d at index %d is before previous end %d", end, i, previous)
		}
		if end%Stride != 0 {
			return errors.Errorf("ring end %d at index %d is not a multiple of %d", end, i, Stride)
		}
		previous = end
	}
	if previous != len(g.FlatCoordinates) {
		return errors.Errorf("last ring end %d does not match flat coordinates length %d", previous, len(g.FlatCoordinates))
	}
	return nil
}
