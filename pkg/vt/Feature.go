// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package vt

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Feature is a raw feature of a layer.
//
// The property map is built on the first call to Properties and the same map is
// returned afterwards, so callers that write to it are writing to the feature.
type Feature struct {
	ID         uint64
	HasID      bool
	Type       GeometryType
	layer      *Layer
	tags       []uint32
	geometry   []uint32
	properties map[string]interface{}
}

func parseFeature(b []byte, layer *Layer) (*Feature, error) {
	f := &Feature{
		layer:    layer,
		tags:     make([]uint32, 0),
		geometry: make([]uint32, 0),
	}
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return nil, err
		}
		b = b[n:]
		switch {
		case num == featureIDField && typ == protowire.VarintType:
			v, n, err := consumeVarint(b, num)
			if err != nil {
				return nil, err
			}
			f.ID = v
			f.HasID = true
			b = b[n:]
		case num == featureTypeField && typ == protowire.VarintType:
			v, n, err := consumeVarint(b, num)
			if err != nil {
				return nil, err
			}
			f.Type = GeometryType(v)
			b = b[n:]
		case num == featureTagsField:
			f.tags, n, err = consumeUint32s(b, num, typ, f.tags)
			if err != nil {
				return nil, err
			}
			b = b[n:]
		case num == featureGeometryField:
			f.geometry, n, err = consumeUint32s(b, num, typ, f.geometry)
			if err != nil {
				return nil, err
			}
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return nil, err
			}
			b = b[n:]
		}
	}

	if len(f.tags)%2 != 0 {
		return nil, errors.Errorf("odd number of tags (%d)", len(f.tags))
	}
	for i := 0; i < len(f.tags); i += 2 {
		if int(f.tags[i]) >= len(layer.Keys) {
			return nil, errors.Errorf("key index %d out of range, layer has %d keys", f.tags[i], len(layer.Keys))
		}
		if int(f.tags[i+1]) >= len(layer.Values) {
			return nil, errors.Errorf("value index %d out of range, layer has %d values", f.tags[i+1], len(layer.Values))
		}
	}

	return f, nil
}

// Properties returns the attributes of the feature keyed by name.
func (f *Feature) Properties() map[string]interface{} {
	if f.properties == nil {
		f.properties = make(map[string]interface{}, len(f.tags)/2)
		for i := 0; i < len(f.tags); i += 2 {
			f.properties[f.layer.Keys[f.tags[i]]] = f.layer.Values[f.tags[i+1]]
		}
	}
	return f.properties
}

// Extent returns the extent of the layer the feature belongs to.
func (f *Feature) Extent() uint32 {
	return f.layer.Extent
}

// LoadGeometry interprets the command stream of the feature.
//
// Every MoveTo starts a new ring, so a multi point yields one ring per point.
// ClosePath appends a copy of the first point of the current ring.
func (f *Feature) LoadGeometry() ([][]Point, error) {
	rings := make([][]Point, 0)
	var ring []Point
	x, y := 0, 0
	g := f.geometry
	for i := 0; i < len(g); {
		cmd := g[i] & 0x7
		count := int(g[i] >> 3)
		i++
		switch cmd {
		case cmdMoveTo, cmdLineTo:
			if i+2*count > len(g) {
				return nil, errors.Errorf("command %d at index %d needs %d parameters, only %d remain", cmd, i-1, 2*count, len(g)-i)
			}
			for j := 0; j < count; j++ {
				x += int(protowire.DecodeZigZag(uint64(g[i])))
				y += int(protowire.DecodeZigZag(uint64(g[i+1])))
				i += 2
				if cmd == cmdMoveTo {
					if ring != nil {
						rings = append(rings, ring)
					}
					ring = make([]Point, 0, 4)
				} else if ring == nil {
					return nil, errors.Errorf("line to at index %d before any move to", i-2)
				}
				ring = append(ring, Point{X: x, Y: y})
			}
		case cmdClosePath:
			for j := 0; j < count; j++ {
				if len(ring) > 0 {
					ring = append(ring, ring[0])
				}
			}
		default:
			return nil, errors.Errorf("unknown command %d at index %d", cmd, i-1)
		}
	}
	if ring != nil {
		rings = append(rings, ring)
	}
	return rings, nil
}
