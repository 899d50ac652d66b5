// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

import (
	"strings"

	"github.com/spf13/pflag"
)

// InitInputFlags initializes the input flags.
func InitInputFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagInputURI, "i", DefaultInputURI, "the input uri, a path or stdin")
	flag.String(FlagInputCompression, "", "the input compression algorithm, one of: "+strings.Join(Algorithms, ", ")+".  Detected when blank.")
}
