// Copyright 2019 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRootLoggerEvents(t *testing.T) {
	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	defer Disable()

	// callers bind the root logger to a local before emitting
	log := Logger()
	log.Debug().Int("k", 4).Msg("enumerated cuts")
	log.Error().Msg("kcut failed")

	s := buf.String()
	if !strings.Contains(s, "enumerated cuts") {
		t.Errorf("debug event missing from %q", s)
	}
	if !strings.Contains(s, "kcut failed") {
		t.Errorf("error event missing from %q", s)
	}
}

func TestDisable(t *testing.T) {
	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	Disable()
	log := Logger()
	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}
