// ============================================================================
// mathemascii - AsciiMath to MathML
// ============================================================================
//
// Package:     logging
// Description: Factory functions for service and CLI loggers
// Author:      mathemascii authors
// Created:     2026-10-04
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	mmlog "github.com/mathemascii/mathemascii/foundation/core/log"
	"github.com/mathemascii/mathemascii/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service or command name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "console"
	Format string

	// File additionally receives every entry when set
	File string

	// Output defaults to stderr
	Output io.Writer

	AdditionalOutputs []io.Writer
}

var (
	filesMu sync.Mutex
	files   = map[string]*os.File{}
)

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// FromConfig derives a logger configuration from the general settings
func FromConfig(general config.GeneralConfig, serviceName string) LoggerConfig {
	cfg := DefaultLoggerConfig(serviceName)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	return cfg
}

// NewLogger creates a foundation logger. A log file that cannot be opened
// is skipped and reported through the returned logger.
func NewLogger(cfg LoggerConfig) *mmlog.Logger {
	level, _ := mmlog.ParseLevel(cfg.Level)
	format, _ := mmlog.ParseFormat(cfg.Format)

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	writers := []io.Writer{output}
	var fileErr error
	if cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, f)
		}
	}
	writers = append(writers, cfg.AdditionalOutputs...)
	if len(writers) > 1 {
		output = io.MultiWriter(writers...)
	}

	logger := mmlog.NewWithConfig(mmlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
	if fileErr != nil {
		logger.WarnWithErr("log file disabled", fileErr, mmlog.Fields{"file": cfg.File})
	}
	return logger
}

// NewSimpleLogger creates a text logger at info level
func NewSimpleLogger(serviceName string) *mmlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// openLogFile opens path for appending, once per path
func openLogFile(path string) (*os.File, error) {
	filesMu.Lock()
	defer filesMu.Unlock()

	if f, ok := files[path]; ok {
		return f, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	files[path] = f
	return f, nil
}

// CloseFiles closes every log file opened by NewLogger
func CloseFiles() error {
	filesMu.Lock()
	defer filesMu.Unlock()

	var first error
	for path, f := range files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(files, path)
	}
	return first
}

// Compatibility layer for code logging key/value pairs

// Logger wraps the foundation logger with a key/value API
type Logger struct {
	*mmlog.Logger
	name string
}

// New creates a key/value logger writing text to stderr
func New(name string) *Logger {
	return &Logger{Logger: NewSimpleLogger(name), name: name}
}

// Wrap adapts an existing foundation logger
func Wrap(logger *mmlog.Logger, name string) *Logger {
	return &Logger{Logger: logger.WithName(name), name: name}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level mmlog.Level) *Logger {
	return &Logger{Logger: l.Logger.WithLevel(level), name: l.name}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to fields; a trailing key without a
// value and non-string keys are dropped
func toFields(keysAndValues ...interface{}) mmlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mmlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
