package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const logDir = "logs"

// setupLogging discards all log output unless debug is set, in which
// case it writes to a fresh file under ./logs. Returns the file for the
// caller to close, or nil.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.Create(filepath.Join(logDir, "bubble-fighter.log"))
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.Print("debug logging started")
	return f
}
