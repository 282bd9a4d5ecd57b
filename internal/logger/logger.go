/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced when
// nativ is embedded in other tooling.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetVerbose lowers the level so Debug messages are emitted.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}
