package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile = "logs/skill-orbit.log"
	maxLogSizeMB   = 10
	maxLogBackups  = 3
)

// setupLogging builds the process logger
// The terminal belongs to tcell, so logs only ever go to a rotating file
// An empty path discards everything; the returned closer is nil in that case
func setupLogging(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB, // megabytes
		MaxBackups: maxLogBackups,
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, out, nil
}
