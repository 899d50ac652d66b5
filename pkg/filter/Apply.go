// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package filter

import (
	"github.com/spatialcurrent/go-mvt/pkg/feature"
)

// Apply returns the features whose values match, keeping their order.
func Apply(features []feature.Interface, f Filter) []feature.Interface {
	matched := make([]feature.Interface, 0, len(features))
	for _, x := range features {
		if f.Evaluate(x.Values()) {
			matched = append(matched, x)
		}
	}
	return matched
}
