// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below for compatibility with existing calls.
var L = clog.New(os.Stderr)

// SetDebug switches the package logger between info and debug level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}

// Debug logs a debug-level message with key-value pairs.
func Debug(msg string, keyvals ...interface{}) {
	L.Debug(msg, keyvals...)
}

// Info logs an info-level message with key-value pairs.
func Info(msg string, keyvals ...interface{}) {
	L.Info(msg, keyvals...)
}

// Warn logs a warning-level message with key-value pairs.
func Warn(msg string, keyvals ...interface{}) {
	L.Warn(msg, keyvals...)
}

// Error logs an error-level message with key-value pairs.
func Error(msg string, keyvals ...interface{}) {
	L.Error(msg, keyvals...)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
