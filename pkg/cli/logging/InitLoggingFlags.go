// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"strings"

	"github.com/spf13/pflag"
)

// InitLoggingFlags initializes the logging flags.
func InitLoggingFlags(flag *pflag.FlagSet) {
	flag.BoolP(FlagVerbose, "v", false, "print debug output to stderr")
	flag.String(FlagLogFormat, DefaultLogFormat, "log format, one of: "+strings.Join(LogFormats, ", "))
}
