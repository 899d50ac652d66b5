// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

var gzipMagic = []byte{0x1f, 0x8b}

type ReadTileInput struct {
	Uri         string
	Compression string
	Stdin       io.Reader
}

// ReadTile reads the bytes of a tile, decompressing gzip tiles.
func ReadTile(input *ReadTileInput) ([]byte, error) {
	var b []byte
	var err error
	if input.Uri == DefaultInputURI || input.Uri == "-" {
		b, err = io.ReadAll(input.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "error reading from stdin")
		}
	} else {
		b, err = os.ReadFile(input.Uri)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading tile from %q", input.Uri)
		}
	}

	switch input.Compression {
	case CompressionNone:
		return b, nil
	case CompressionGzip:
	default:
		if !bytes.HasPrefix(b, gzipMagic) {
			return b, nil
		}
	}

	gr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "error creating gzip reader")
	}
	defer gr.Close()
	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, errors.Wrap(err, "error decompressing tile")
	}
	return out, nil
}
