// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"encoding/json"
	"io"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

func WriteFeatureCollection(w io.Writer, fc *geojson.FeatureCollection, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(fc, "", "  ")
	} else {
		b, err = fc.MarshalJSON()
	}
	if err != nil {
		return errors.Wrap(err, "error marshaling feature collection")
	}
	_, err = w.Write(append(b, '\n'))
	if err != nil {
		return errors.Wrap(err, "error writing feature collection")
	}
	return nil
}
