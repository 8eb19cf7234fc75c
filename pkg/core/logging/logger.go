// ============================================================================
// precalc - Precise chained arithmetic
// ============================================================================
//
// Package:     logging
// Description: Key-value logger on top of the Foundation logger
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	mdwlog "github.com/msto63/precalc/foundation/core/log"
)

// Logger wraps the Foundation logger with key-value logging methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a key-value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name), name)
}

// Wrap adds key-value methods to an existing Foundation logger
func Wrap(logger *mdwlog.Logger, name string) *Logger {
	return &Logger{
		Logger: logger,
		name:   name,
	}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// WithCorrelationID returns a logger that tags every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.WithCorrelationID(id),
		name:   l.name,
	}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level mdwlog.Level) *Logger {
	return &Logger{
		Logger: l.Logger.WithLevel(level),
		name:   l.name,
	}
}

// With returns a logger that adds the key-value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// Trace logs a trace message with key-value pairs
func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.Logger.Trace(msg, toFields(keysAndValues...))
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// WarnWithErr logs a warning carrying err with key-value pairs
func (l *Logger) WarnWithErr(msg string, err error, keysAndValues ...interface{}) {
	l.Logger.WarnWithErr(msg, err, toFields(keysAndValues...))
}

// ErrorWithErr logs an error carrying err with key-value pairs
func (l *Logger) ErrorWithErr(msg string, err error, keysAndValues ...interface{}) {
	l.Logger.ErrorWithErr(msg, err, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
