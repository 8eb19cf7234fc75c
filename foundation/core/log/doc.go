// Package log provides structured logging for precalc.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with JSON, text and logfmt
//              output, persistent context fields and a correlation id. The
//              calculator's boundary diagnostics and the command line front
//              end log through it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Dropped async mode, timers and console colors
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelWarn,
//		Format: log.FormatText,
//		Name:   "precalc",
//	}).WithCorrelationID(id)
//
//	logger.Warn("value exceeds the safe integer range",
//		log.Float64("value", v).With("operator", "times"))
package log
