// Package error provides the structured error type used across precalc.
//
// Package: error
// Title: Structured Error Type
// Description: Errors carry a code, a severity, the failing operation and
//              free-form details so callers can branch on the code and the
//              logger can render the context as fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced to the codes used by the calculator, config and CLI
//
// Usage:
//
//	err := error.New("precision out of range").
//		WithCode(error.CodeValueOutOfRange).
//		WithOperation("mathx.NewWithConfig").
//		WithDetail("precision", 42)
//
//	if error.HasCode(err, error.CodeValueOutOfRange) {
//		// reject the configuration
//	}
package error
