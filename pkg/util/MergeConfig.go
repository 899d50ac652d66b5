// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// MergeConfig merges the config file at configUri into v.  The format is taken
// from the file extension.
func MergeConfig(v *viper.Viper, configUri string) error {
	configFormat := strings.TrimPrefix(filepath.Ext(configUri), ".")
	if len(configFormat) == 0 {
		return errors.Errorf("cannot infer config format from uri %q", configUri)
	}
	v.SetConfigType(configFormat)

	configBytes, err := os.ReadFile(configUri)
	if err != nil {
		return errors.Wrapf(err, "error reading config from uri %q", configUri)
	}

	if len(configBytes) > 0 {
		err = v.MergeConfig(bytes.NewReader(configBytes))
		if err != nil {
			return errors.Wrapf(err, "error merging config from uri %q", configUri)
		}
	}
	return nil
}
