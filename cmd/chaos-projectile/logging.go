package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "chaos-projectile.log"
)

// setupLogging routes the stdlib logger away from the raw terminal.
// With debug disabled all log output is discarded; with debug enabled it
// goes to logs/chaos-projectile.log and the open file is returned for the
// caller to close.
func setupLogging(debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}
