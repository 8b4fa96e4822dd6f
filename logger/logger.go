// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logger provides the root logger shared by kcut components.
//
// The default logger writes zerolog console output to stderr and is a
// nop under go test.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		log = zerolog.Nop()
	}
}

// SetOutput changes the output of the root logger.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// Set overrides the root logger.
func Set(l zerolog.Logger) {
	log = l
}

// Disable turns logging off.
func Disable() {
	log = zerolog.Nop()
}

// Logger returns the root logger.
func Logger() zerolog.Logger {
	return log
}
