package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "vi-pong.log"
	maxLogSize  = 10 << 20 // rotate above 10 MiB
)

// setupLogging routes the standard logger to logs/vi-pong.log when debug is set
// Otherwise all log output is discarded; tcell owns stdout and stderr while the game runs
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-pong-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			// Truncate instead of growing without bound
			os.Remove(path)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("[MAIN] logging started, pid %d", os.Getpid())
	return f
}
