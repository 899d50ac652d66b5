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

// Tile is a read-only view over an encoded vector tile.
type Tile struct {
	layers []*Layer
}

// Parse reads the layers of an encoded tile.  Layers are returned in the order they are encoded.
func Parse(b []byte) (*Tile, error) {
	t := &Tile{layers: make([]*Layer, 0)}
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return nil, errors.Wrap(err, "error parsing tile")
		}
		b = b[n:]
		if num == tileLayersField && typ == protowire.BytesType {
			v, n, err := consumeBytes(b, num)
			if err != nil {
				return nil, errors.Wrap(err, "error parsing tile")
			}
			l, err := parseLayer(v)
			if err != nil {
				return nil, errors.Wrapf(err, "error parsing layer %d", len(t.layers))
			}
			t.layers = append(t.layers, l)
			b = b[n:]
			continue
		}
		n, err = skipField(b, num, typ)
		if err != nil {
			return nil, errors.Wrap(err, "error parsing tile")
		}
		b = b[n:]
	}
	return t, nil
}

func (t *Tile) Layers() []*Layer {
	return t.layers
}

// Layer returns the first layer with the given name.
func (t *Tile) Layer(name string) (*Layer, bool) {
	for _, l := range t.layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

func (t *Tile) LayerNames() []string {
	names := make([]string, 0, len(t.layers))
	for _, l := range t.layers {
		names = append(names, l.Name)
	}
	return names
}
