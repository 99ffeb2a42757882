// Package logging builds slog loggers the way every localuuid package expects
// them.
package logging

import (
	"io"
	"log/slog"
	"os"
)

const (
	defaultLevel      = LevelInfo
	defaultAddSource  = false
	defaultIsJSON     = true
	defaultSetDefault = false
)

// LoggerOptions holds configuration for the logger.
type LoggerOptions struct {
	Level      Level
	AddSource  bool
	IsJSON     bool
	SetDefault bool
	Writer     io.Writer
}

// LoggerOption functional options pattern for logger configuration.
type LoggerOption func(*LoggerOptions)

// NewLogger creates a logger with JSON or text output.
func NewLogger(opts ...LoggerOption) *Logger {
	config := &LoggerOptions{
		Level:      defaultLevel,
		AddSource:  defaultAddSource,
		IsJSON:     defaultIsJSON,
		SetDefault: defaultSetDefault,
		Writer:     os.Stderr,
	}

	for _, opt := range opts {
		opt(config)
	}

	options := &HandlerOptions{
		AddSource: config.AddSource,
		Level:     config.Level,
	}

	var h Handler = NewTextHandler(config.Writer, options)
	if config.IsJSON {
		h = NewJSONHandler(config.Writer, options)
	}

	logger := New(h)
	if config.SetDefault {
		SetDefault(logger)
	}

	return logger
}

// WithLevel sets the log level (e.g., "debug"). Unknown levels fall back to info.
func WithLevel(level string) LoggerOption {
	return func(o *LoggerOptions) {
		var l Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			slog.Default().Error(
				"failed to parse log level",
				slog.String("input", level),
				slog.String("default", "info"),
				ErrAttr(err),
			)
			l = LevelInfo
		}
		o.Level = l
	}
}

// WithAddSource enables/disables source file logging.
func WithAddSource(addSource bool) LoggerOption {
	return func(o *LoggerOptions) {
		o.AddSource = addSource
	}
}

// WithIsJSON sets the output format to JSON.
func WithIsJSON(isJSON bool) LoggerOption {
	return func(o *LoggerOptions) {
		o.IsJSON = isJSON
	}
}

// WithSetDefault installs the logger as the slog default.
func WithSetDefault(setDefault bool) LoggerOption {
	return func(o *LoggerOptions) {
		o.SetDefault = setDefault
	}
}

// WithWriter redirects output (default: os.Stderr). A nil writer is ignored.
func WithWriter(w io.Writer) LoggerOption {
	return func(o *LoggerOptions) {
		if w != nil {
			o.Writer = w
		}
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return New(NewTextHandler(io.Discard, &HandlerOptions{Level: LevelError + 1}))
}

// Default returns the global default logger.
func Default() *Logger {
	return slog.Default()
}
