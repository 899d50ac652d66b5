// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

const (
	FlagLogFormat = "log-format"
	FlagVerbose   = "verbose"

	DefaultLogFormat = "text"
)

var LogFormats = []string{"text", "json"}
