// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package decode

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mvt/pkg/cli/input"
	"github.com/spatialcurrent/go-mvt/pkg/cli/logging"
)

// CheckDecodeConfig checks the decode configuration.
func CheckDecodeConfig(v *viper.Viper) error {
	err := input.CheckInputConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with input configuration")
	}
	err = logging.CheckLoggingConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with logging configuration")
	}
	if len(v.GetString(FlagProjection)) > 0 && len(v.GetString(FlagTile)) == 0 {
		return ErrMissingTile
	}
	if len(v.GetString(FlagProjection)) > 0 && v.GetBool(FlagFlyweight) {
		return ErrFlyweightProjection
	}
	return nil
}
