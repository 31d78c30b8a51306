// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      log.Level
	}{
		{-1, log.WarnLevel},
		{0, log.WarnLevel},
		{1, log.InfoLevel},
		{2, log.DebugLevel},
		{3, log.DebugLevel},
		{7, log.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: NewHandler(&buf), Level: log.InfoLevel}

	logger.Debug("hidden")
	logger.Info("writing to cache")
	logger.WithError(errors.New("boom")).Warn("failed")

	assert.Equal(t, "INFO: writing to cache\nWARN: failed error=boom\n", buf.String())
}
