// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/go-mvt/pkg/cli/logging"
)

// InitRootFlags initializes the root flags.
func InitRootFlags(flag *pflag.FlagSet) {
	logging.InitLoggingFlags(flag)

	flag.StringArrayP("config-uri", "", []string{}, "the uri(s) to the config file")
}
