// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on completion.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a running timer
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" with the elapsed time. Only the first
// call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, t.operation+" failed", err)
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil || !level.ShouldLog(t.logger.level) {
		return elapsed
	}

	entry := NewEntry(level, message)
	entry.Logger = t.logger.name
	entry.RequestID = t.logger.requestID
	entry.Error = err
	entry.Duration = elapsed
	entry.Fields = t.logger.contextFields.Merge(t.fields)
	entry.Fields["operation"] = t.operation
	t.logger.write(entry)

	return elapsed
}

// IsRunning reports whether Stop has not been called yet
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
