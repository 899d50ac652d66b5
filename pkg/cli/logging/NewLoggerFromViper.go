// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// NewLoggerFromViper returns a new logger writing to w from the viper configuration.
func NewLoggerFromViper(v *viper.Viper, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if v.GetString(FlagLogFormat) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	if v.GetBool(FlagVerbose) {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
