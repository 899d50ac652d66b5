// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"github.com/spf13/viper"
)

// MergeConfigs merges each config file in order, later files taking precedence.
func MergeConfigs(v *viper.Viper, configUris []string) error {
	for _, configUri := range configUris {
		err := MergeConfig(v, configUri)
		if err != nil {
			return err
		}
	}
	return nil
}
