// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

import (
	"github.com/spf13/viper"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
)

// CheckInputConfig checks the input configuration.
func CheckInputConfig(v *viper.Viper) error {
	if len(v.GetString(FlagInputURI)) == 0 {
		return &rerrors.ErrInvalidParameter{Name: FlagInputURI, Value: ""}
	}
	compression := v.GetString(FlagInputCompression)
	if len(compression) == 0 {
		return nil
	}
	for _, alg := range Algorithms {
		if alg == compression {
			return nil
		}
	}
	return &rerrors.ErrInvalidParameter{Name: FlagInputCompression, Value: compression}
}
