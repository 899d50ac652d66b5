// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package vttest encodes small vector tiles for tests.
package vttest

import (
	"math"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/spatialcurrent/go-mvt/pkg/vt"
)

type Feature struct {
	ID         *uint64
	Type       vt.GeometryType
	Rings      [][]vt.Point
	Properties map[string]interface{}
	// ClosePath ends every ring with a close path command.
	ClosePath bool
}

type Layer struct {
	Name     string
	Version  uint32
	Extent   uint32
	Features []Feature
}

// Encode returns the encoded tile containing the given layers in order.
func Encode(layers ...Layer) []byte {
	b := make([]byte, 0)
	for _, l := range layers {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeLayer(l))
	}
	return b
}

func encodeLayer(l Layer) []byte {
	keys := make([]string, 0)
	keyIndex := map[string]int{}
	values := make([][]byte, 0)

	features := make([][]byte, 0, len(l.Features))
	for _, f := range l.Features {
		tags := make([]uint32, 0)
		names := make([]string, 0, len(f.Properties))
		for k := range f.Properties {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			i, ok := keyIndex[k]
			if !ok {
				i = len(keys)
				keyIndex[k] = i
				keys = append(keys, k)
			}
			tags = append(tags, uint32(i), uint32(len(values)))
			values = append(values, encodeValue(f.Properties[k]))
		}
		features = append(features, encodeFeature(f, tags))
	}

	b := make([]byte, 0)
	version := l.Version
	if version == 0 {
		version = 2
	}
	b = protowire.AppendTag(b, 15, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(version))
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, l.Name)
	for _, f := range features {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, f)
	}
	for _, k := range keys {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, k)
	}
	for _, v := range values {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, v)
	}
	if l.Extent != 0 {
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(l.Extent))
	}
	return b
}

func encodeFeature(f Feature, tags []uint32) []byte {
	b := make([]byte, 0)
	if f.ID != nil {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, *f.ID)
	}
	if len(tags) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, packUint32s(tags))
	}
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.Type))
	if len(f.Rings) > 0 {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, packUint32s(EncodeGeometry(f.Rings, f.ClosePath)))
	}
	return b
}

// EncodeGeometry returns the command stream for the rings.
func EncodeGeometry(rings [][]vt.Point, closePath bool) []uint32 {
	cmds := make([]uint32, 0)
	x, y := 0, 0
	param := func(p vt.Point) {
		cmds = append(cmds,
			uint32(protowire.EncodeZigZag(int64(p.X-x))),
			uint32(protowire.EncodeZigZag(int64(p.Y-y))))
		x, y = p.X, p.Y
	}
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		cmds = append(cmds, Command(1, 1))
		param(ring[0])
		if len(ring) > 1 {
			cmds = append(cmds, Command(2, len(ring)-1))
			for _, p := range ring[1:] {
				param(p)
			}
		}
		if closePath {
			cmds = append(cmds, Command(7, 1))
		}
	}
	return cmds
}

// Command packs a command id and count into a command integer.
func Command(id uint32, count int) uint32 {
	return (id & 0x7) | (uint32(count) << 3)
}

func packUint32s(values []uint32) []byte {
	b := make([]byte, 0, len(values))
	for _, v := range values {
		b = protowire.AppendVarint(b, uint64(v))
	}
	return b
}

func encodeValue(v interface{}) []byte {
	b := make([]byte, 0)
	switch v := v.(type) {
	case string:
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, v)
	case float32:
		b = protowire.AppendTag(b, 2, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(v))
	case float64:
		b = protowire.AppendTag(b, 3, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(v))
	case int:
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(v)))
	case int64:
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v))
	case uint64:
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, v)
	case bool:
		b = protowire.AppendTag(b, 7, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(v))
	}
	return b
}
