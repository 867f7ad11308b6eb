// Package applog builds the slog.Logger that cmd/cratepackd hands to the
// HTTP server, configured from a level name and optional log file. The
// package keeps no global logger and has no init-time side effects beyond
// what New is asked to do; the packing core itself never logs.
package applog

import (
	"io"
	"log/slog"
	"os"
)

// New builds a *slog.Logger writing to stdout and, if logFile is non-empty,
// also appending to that file. Unknown level names fall back to info.
func New(level, logFile string) (*slog.Logger, error) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	writers := []io.Writer{os.Stdout}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, f)
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler), nil
}
