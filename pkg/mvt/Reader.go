// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package mvt reads features from Mapbox vector tiles.
package mvt

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
	"github.com/spatialcurrent/go-mvt/pkg/feature"
	"github.com/spatialcurrent/go-mvt/pkg/proj"
	"github.com/spatialcurrent/go-mvt/pkg/vt"
)

// Reader decodes tiles into features.  A Reader holds no state between calls
// besides its options, so one tile may be read any number of times.
type Reader struct {
	geometryName string
	layerName    string
	flyweight    bool
	logger       logrus.FieldLogger

	mutex  sync.RWMutex
	layers []string
}

func NewReader(options *Options) (*Reader, error) {
	if options == nil {
		options = NewDefaultOptions()
	}
	err := options.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid reader options")
	}
	logger := options.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	r := &Reader{
		geometryName: options.GeometryName,
		layerName:    options.LayerName,
		flyweight:    options.Flyweight,
		logger:       logger,
	}
	r.SetLayers(options.Layers)
	return r, nil
}

// SetLayers replaces the layers features are read from.  Nil reads every layer.
func (r *Reader) SetLayers(layers []string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if layers == nil {
		r.layers = nil
		return
	}
	r.layers = append(make([]string, 0, len(layers)), layers...)
}

// Layers returns the current allow-list, or nil when every layer is read.
func (r *Reader) Layers() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if r.layers == nil {
		return nil
	}
	return append(make([]string, 0, len(r.layers)), r.layers...)
}

// GeometryName returns the property key full features store their geometry under.
func (r *Reader) GeometryName() string {
	return r.geometryName
}

// ReadProjection returns the projection of decoded geometries, tile pixels.
func (r *Reader) ReadProjection(source interface{}) proj.Projection {
	return proj.TilePixels
}

func (r *Reader) materializer(ro *ReadOptions) Materializer {
	if r.flyweight {
		return &FlyweightMaterializer{LayerName: r.layerName}
	}
	return NewFullMaterializer(&Options{GeometryName: r.geometryName, LayerName: r.layerName}, ro)
}

// ReadFeatures decodes every feature of the selected layers.  The source must be a []byte.
// Features are returned in layer order and then in feature order.  All features
// are full features, or all are flyweight features, depending on the options of the reader.
func (r *Reader) ReadFeatures(source interface{}, ro *ReadOptions) ([]feature.Interface, error) {
	b, ok := source.([]byte)
	if !ok {
		return nil, &rerrors.ErrInvalidSource{Value: source}
	}

	var allowed map[string]struct{}
	if layers := r.Layers(); layers != nil {
		allowed = make(map[string]struct{}, len(layers))
		for _, name := range layers {
			allowed[name] = struct{}{}
		}
	}

	tile, err := vt.Parse(b)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing tile")
	}

	m := r.materializer(ro)

	features := make([]feature.Interface, 0)
	for _, layer := range tile.Layers() {
		if allowed != nil {
			if _, ok := allowed[layer.Name]; !ok {
				r.logger.WithField("layer", layer.Name).Debug("skipping layer")
				continue
			}
		}
		for i := 0; i < layer.Len(); i++ {
			raw, err := layer.Feature(i)
			if err != nil {
				return nil, errors.Wrapf(err, "error reading feature %d of layer %q", i, layer.Name)
			}
			f, err := m.Materialize(raw, layer.Name)
			if err != nil {
				return nil, errors.Wrapf(err, "error materializing feature %d of layer %q", i, layer.Name)
			}
			features = append(features, f)
		}
		r.logger.WithFields(logrus.Fields{
			"layer":    layer.Name,
			"features": layer.Len(),
			"extent":   layer.Extent,
		}).Debug("read layer")
	}

	return features, nil
}
