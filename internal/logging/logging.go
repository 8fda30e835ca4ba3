// SPDX-License-Identifier: MIT
// Package: turing/internal/logging
//
// logging.go — logrus logger construction for the CLI.
//
// Contract:
//   • Timestamps use "2006-01-02 15:04:05".
//   • An explicit level wins; an empty level means info, or debug when verbose.
//   • Errors: ErrLevel for an unknown level name.

package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// TimestampFormat is the layout of every log line's timestamp.
const TimestampFormat = "2006-01-02 15:04:05"

// ErrLevel indicates an unknown log level name.
var ErrLevel = errors.New("logging: unknown level")

// New returns a text logger writing to w.
func New(level string, verbose bool, w io.Writer) (*logrus.Logger, error) {
	lvl, err := ParseLevel(level, verbose)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})

	return log, nil
}

// ParseLevel resolves a level name, falling back on the verbose switch
// when the name is empty.
func ParseLevel(level string, verbose bool) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		if verbose {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	}

	return logrus.InfoLevel, fmt.Errorf("ParseLevel: %q: %w", level, ErrLevel)
}
