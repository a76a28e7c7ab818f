// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-api-gate application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// The logger is constructed once at process start and passed by reference to
// every component that needs it; request-scoped loggers are obtained via
// FromContext or FromRequest.
//
// Output goes to three sinks at once: a colorized console, a combined log
// file receiving every emitted record, and an error log file receiving only
// error-level records. File sinks are plain text lines, never JSON.
package logger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelHTTP is the level used for per-request access log entries. It sits
// below Debug so that the production minimum of Warn filters access lines
// out together with debug output; in development the minimum level is
// LevelHTTP itself, so everything is emitted.
const LevelHTTP = zerolog.TraceLevel

// Config controls sink placement and verbosity of a Logger.
type Config struct {
	// Development selects the verbose profile: every level down to LevelHTTP
	// is emitted. When false only Warn and Error reach the sinks.
	Development bool

	// Dir is the directory holding both log files. Created if missing.
	// Defaults to "logs".
	Dir string

	// ErrorFile is the file name of the error-only sink inside Dir.
	// Defaults to "error.log".
	ErrorFile string

	// CombinedFile is the file name of the all-levels sink inside Dir.
	// Defaults to "combined.log".
	CombinedFile string
}

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	files []*os.File
}

// NewLogger constructs the process-wide *Logger for the given role label
// (e.g. "server").
//
// The logger is configured with:
//   - minimum level LevelHTTP in development, Warn otherwise;
//   - a "role" field set to role;
//   - a timestamp on every entry;
//   - a colorized console sink plus two append-only plain-text file sinks
//     (all levels, and errors only).
//
// The returned logger owns its file handles; call Close during shutdown.
func NewLogger(role string, cfg Config) (*Logger, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	errName := cfg.ErrorFile
	if errName == "" {
		errName = "error.log"
	}
	combName := cfg.CombinedFile
	if combName == "" {
		combName = "combined.log"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating log directory: %w", err)
	}

	combFile, err := os.OpenFile(filepath.Join(dir, combName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening combined log file: %w", err)
	}

	errFile, err := os.OpenFile(filepath.Join(dir, errName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		combFile.Close()
		return nil, fmt.Errorf("error opening error log file: %w", err)
	}

	console := zerolog.ConsoleWriter{
		Out:         os.Stdout,
		TimeFormat:  time.RFC3339,
		FormatLevel: formatLevel(false),
	}
	combined := zerolog.ConsoleWriter{
		Out:         combFile,
		NoColor:     true,
		TimeFormat:  time.RFC3339,
		FormatLevel: formatLevel(true),
	}
	errorsOnly := &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
			Out:         errFile,
			NoColor:     true,
			TimeFormat:  time.RFC3339,
			FormatLevel: formatLevel(true),
		}},
		Level: zerolog.ErrorLevel,
	}

	level := zerolog.WarnLevel
	if cfg.Development {
		level = LevelHTTP
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, combined, errorsOnly)).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{Logger: logger, files: []*os.File{combFile, errFile}}, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// HTTP starts a new access-log event at [LevelHTTP]. It is used by the
// request logging middleware; application code should prefer the standard
// Debug/Info/Warn/Error methods.
func (l *Logger) HTTP() *zerolog.Event {
	return l.WithLevel(LevelHTTP)
}

// Close closes the file sinks owned by the logger. The logger must not be
// used once Close has been called.
func (l *Logger) Close() error {
	var errs []error
	for _, f := range l.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger(), files: l.files}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// formatLevel renders the level column as "<level>:". The trace slot is
// shown as "http" because it is reserved for access log entries.
func formatLevel(noColor bool) func(i any) string {
	return func(i any) string {
		name, _ := i.(string)
		if name == zerolog.LevelTraceValue {
			name = "http"
		}
		if name == "" {
			name = "???"
		}
		if noColor {
			return name + ":"
		}

		var color int
		switch name {
		case "error", "fatal", "panic":
			color = 31 // red
		case "warn":
			color = 33 // yellow
		case "info":
			color = 32 // green
		case "http":
			color = 35 // magenta
		case "debug":
			color = 36 // cyan
		}
		if color == 0 {
			return name + ":"
		}
		return fmt.Sprintf("\x1b[%dm%s\x1b[0m:", color, strings.ToLower(name))
	}
}
