// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/spf13/viper"

	rerrors "github.com/spatialcurrent/go-mvt/pkg/errors"
)

// CheckLoggingConfig checks the logging configuration.  An unset format falls back to DefaultLogFormat.
func CheckLoggingConfig(v *viper.Viper) error {
	format := v.GetString(FlagLogFormat)
	if len(format) == 0 {
		return nil
	}
	for _, f := range LogFormats {
		if f == format {
			return nil
		}
	}
	return &rerrors.ErrInvalidParameter{Name: FlagLogFormat, Value: format}
}
