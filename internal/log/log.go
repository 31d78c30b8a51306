// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
)

// InitLogger installs the custom handler writing to stderr at warn level.
// SetVerbosity raises the level once flags are parsed.
func InitLogger() {
	log.SetHandler(NewHandler(os.Stderr))
	log.SetLevel(log.WarnLevel)
}

// LevelFor maps the number of -v flags to a level. Apex has nothing below
// debug, so two or more all log everything.
func LevelFor(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.WarnLevel
	case verbosity == 1:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

// SetVerbosity sets the global level from a -v count.
func SetVerbosity(verbosity int) {
	log.SetLevel(LevelFor(verbosity))
}

// CustomHandler writes "LEVEL: message" lines, followed by any fields.
type CustomHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHandler returns a handler writing to w.
func NewHandler(w io.Writer) *CustomHandler {
	return &CustomHandler{w: w}
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", level, e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}
