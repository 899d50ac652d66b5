// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mvt

import (
	"github.com/spatialcurrent/go-mvt/pkg/feature"
	"github.com/spatialcurrent/go-mvt/pkg/vt"
)

// Materializer turns a raw feature of a layer into an output record.
type Materializer interface {
	Materialize(raw *vt.Feature, layer string) (feature.Interface, error)
}
