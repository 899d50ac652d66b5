// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

const (
	FlagInputURI         string = "input-uri"
	FlagInputCompression string = "input-compression"

	DefaultInputURI = "stdin"

	CompressionNone = "none"
	CompressionGzip = "gzip"
)

// Algorithms are the supported input compression algorithms.  An empty
// compression detects gzip from the first bytes of the input.
var Algorithms = []string{CompressionNone, CompressionGzip}
