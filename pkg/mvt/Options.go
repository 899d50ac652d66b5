// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mvt

import (
	"github.com/sirupsen/logrus"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
)

const (
	DefaultGeometryName = "geometry"
	DefaultLayerName    = "layer"
)

// Options configures a Reader.
type Options struct {
	// Layers is the allow-list of layer names.  Nil reads every layer.
	Layers []string
	// GeometryName is the property key of the geometry of full features.
	GeometryName string
	// LayerName is the property key the layer name is written to.
	LayerName string
	// Flyweight selects flyweight features instead of full features.
	Flyweight bool
	Logger    logrus.FieldLogger
}

func NewDefaultOptions() *Options {
	return &Options{
		Layers:       nil,
		GeometryName: DefaultGeometryName,
		LayerName:    DefaultLayerName,
		Flyweight:    false,
	}
}

// Validate rejects empty keys and a layer key equal to the geometry key, since the layer name would overwrite the geometry.
func (o *Options) Validate() error {
	if len(o.GeometryName) == 0 {
		return &rerrors.ErrInvalidParameter{Name: "GeometryName", Value: o.GeometryName}
	}
	if len(o.LayerName) == 0 {
		return &rerrors.ErrInvalidParameter{Name: "LayerName", Value: o.LayerName}
	}
	if o.GeometryName == o.LayerName {
		return &rerrors.ErrInvalidParameter{Name: "LayerName", Value: o.LayerName}
	}
	return nil
}
