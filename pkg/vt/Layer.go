// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package vt

import (
	"strconv"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
)

// Layer is a named group of features sharing one extent.
type Layer struct {
	Name     string
	Version  uint32
	Extent   uint32
	Keys     []string
	Values   []interface{}
	features [][]byte
}

func parseLayer(b []byte) (*Layer, error) {
	l := &Layer{
		Version:  DefaultVersion,
		Extent:   DefaultExtent,
		Keys:     make([]string, 0),
		Values:   make([]interface{}, 0),
		features: make([][]byte, 0),
	}
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return nil, err
		}
		b = b[n:]
		switch {
		case num == layerNameField && typ == protowire.BytesType:
			v, n, err := consumeBytes(b, num)
			if err != nil {
				return nil, err
			}
			l.Name = string(v)
			b = b[n:]
		case num == layerFeaturesField && typ == protowire.BytesType:
			v, n, err := consumeBytes(b, num)
			if err != nil {
				return nil, err
			}
			l.features = append(l.features, v)
			b = b[n:]
		case num == layerKeysField && typ == protowire.BytesType:
			v, n, err := consumeBytes(b, num)
			if err != nil {
				return nil, err
			}
			l.Keys = append(l.Keys, string(v))
			b = b[n:]
		case num == layerValuesField && typ == protowire.BytesType:
			v, n, err := consumeBytes(b, num)
			if err != nil {
				return nil, err
			}
			value, err := parseValue(v)
			if err != nil {
				return nil, errors.Wrapf(err, "error parsing value %d", len(l.Values))
			}
			l.Values = append(l.Values, value)
			b = b[n:]
		case num == layerExtentField && typ == protowire.VarintType:
			v, n, err := consumeVarint(b, num)
			if err != nil {
				return nil, err
			}
			l.Extent = uint32(v)
			b = b[n:]
		case num == layerVersionField && typ == protowire.VarintType:
			v, n, err := consumeVarint(b, num)
			if err != nil {
				return nil, err
			}
			l.Version = uint32(v)
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return nil, err
			}
			b = b[n:]
		}
	}
	return l, nil
}

// Len returns the number of features in the layer.
func (l *Layer) Len() int {
	return len(l.features)
}

// Feature parses the feature at index i.  Every call returns a new view.
func (l *Layer) Feature(i int) (*Feature, error) {
	if i < 0 || i >= len(l.features) {
		return nil, &rerrors.ErrMissingObject{Type: "feature", Name: strconv.Itoa(i)}
	}
	f, err := parseFeature(l.features[i], l)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing feature %d in layer %q", i, l.Name)
	}
	return f, nil
}
