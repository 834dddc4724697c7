// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

var traceEnabled bool

var levels = map[string]log.Level{
	"trace": log.DebugLevel, // trace rides on debug with its own tag
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

// InitLogger configures Apex from the JCMP_LOG env variable. Diagnostics go
// to stderr so comparison results on stdout stay pipeable.
func InitLogger() {
	want := strings.ToLower(os.Getenv("JCMP_LOG"))
	traceEnabled = want == "trace"

	level, ok := levels[want]
	if !ok {
		level = log.ErrorLevel
	}

	log.SetHandler(&lineHandler{})
	log.SetLevel(level)
}

// lineHandler renders one timestamped line per entry with a single-letter
// level tag.
type lineHandler struct{}

func (h *lineHandler) HandleLog(e *log.Entry) error {
	tag := "?"
	message := e.Message
	if rest, found := strings.CutPrefix(message, "TRACE: "); found {
		tag = "T"
		message = rest
	} else {
		switch e.Level {
		case log.DebugLevel:
			tag = "D"
		case log.InfoLevel:
			tag = "I"
		case log.WarnLevel:
			tag = "W"
		case log.ErrorLevel:
			tag = "E"
		case log.FatalLevel:
			tag = "F"
		}
	}
	fmt.Fprintf(os.Stderr, "%s %s %s\n", time.Now().Format("2006-01-02 15:04:05"), tag, message)
	return nil
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug("TRACE: " + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry carrying err.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
