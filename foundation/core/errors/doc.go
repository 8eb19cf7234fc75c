// Package errors provides the shared error constructors used by the
// precalc packages.
//
// Package: errors
// Title: Shared Error Constructors
// Description: Wraps the structured error type from foundation/core/error
//              in a fluent ErrorBuilder and a set of helpers with stable
//              codes, so every module reports invalid input, range and
//              configuration problems the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-18 v0.2.0: Module helpers for mathx and config
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleMathx).
//		Operation("divide").
//		Message("no operand could be coerced").
//		Code(errors.CodeMathxNoSeedOperand).
//		Build()
package errors
