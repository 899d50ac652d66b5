// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package vt parses Mapbox vector tiles into read-only views of layers and raw features.
//
// The views are lazy.  A layer keeps the encoded bytes of its features and a feature
// only decodes its command stream when LoadGeometry is called.
package vt

import (
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	DefaultExtent  = uint32(4096)
	DefaultVersion = uint32(1)
)

// field numbers from vector_tile.proto
const (
	tileLayersField protowire.Number = 3

	layerVersionField  protowire.Number = 15
	layerNameField     protowire.Number = 1
	layerFeaturesField protowire.Number = 2
	layerKeysField     protowire.Number = 3
	layerValuesField   protowire.Number = 4
	layerExtentField   protowire.Number = 5

	featureIDField       protowire.Number = 1
	featureTagsField     protowire.Number = 2
	featureTypeField     protowire.Number = 3
	featureGeometryField protowire.Number = 4

	valueStringField protowire.Number = 1
	valueFloatField  protowire.Number = 2
	valueDoubleField protowire.Number = 3
	valueIntField    protowire.Number = 4
	valueUintField   protowire.Number = 5
	valueSintField   protowire.Number = 6
	valueBoolField   protowire.Number = 7
)

const (
	cmdMoveTo    = uint32(1)
	cmdLineTo    = uint32(2)
	cmdClosePath = uint32(7)
)
