// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides chained float64 arithmetic that is
//              accurate for decimal fractions, plus JavaScript compatible
//              number formatting.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Rewritten around the scaled float64 Calculator

// Package mathx provides decimal-accurate arithmetic on float64.
//
// Package: mathx
// Title: Precise Chained Arithmetic
// Description: Plain float64 arithmetic gives 0.1 + 0.2 = 0.30000000000000004
//              because decimal fractions have no exact binary form. mathx
//              shifts each operand to an integer by a power of ten, computes
//              on integers (exact below 2^53) and shifts the result back.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Overview
//
// A Calculator owns one accumulator. Plus, Minus, Times and Divide fold
// their operands into it from left to right and return the calculator, so
// calls chain. ToPrecision and ToFixed read the result without changing it.
//
//	c := mathx.New(mathx.Number(0.1)).Plus(mathx.Number(0.2))
//	c.ToPrecision() // 0.3
//
//	mathx.New(mathx.Number(10)).Plus(mathx.Number(5)).Times(mathx.Number(2)).ToFixed() // "30.00"
//
// Operands
//
// An Operand is a number (Number), a numeric string (Text) or another
// calculator (Ref). Operands that do not coerce to a finite float64 are
// skipped. When the accumulator is still unset, the first operand that
// coerces seeds it; if none does, Err reports MATHX_NO_SEED_OPERAND and the
// calculator ignores further operations until Reset.
//
// Zero
//
// Adding or subtracting 0 leaves the accumulator unchanged. Multiplying or
// dividing by 0 gives 0; division by zero never produces an infinity.
//
// Formatting
//
// The conversions follow JavaScript's Number methods so results match the
// browser side of an application byte for byte:
//
//   - FormatNumber: Number#toString
//   - RoundSignificant: Number#toPrecision, parsed back to float64
//   - FormatFixed: Number#toFixed
//   - MantissaLen: digits after the point of FormatNumber minus its exponent
//
// Rounding is done on the exact binary value with ties away from zero, so
// FormatFixed(1.005, 2) is "1.00" (1.005 is stored as 1.00499...).
//
// Configuration
//
// Config sets the significant digits (default 15, range 1 to 20), the
// fraction digits of ToFixed (default 2, range 0 to 20) and an optional
// diagnostic for values beyond ±(2^53-1). NewWithConfig rejects values out
// of range; per-call arguments to ToPrecision and ToFixed are clamped.
//
// Boundary diagnostic
//
// With EnableCheckBoundary every scaled operand, scaled intermediate and
// final result outside the safe integer range raises a BoundaryEvent. It
// goes to Config.BoundaryHandler, or to the default logger as a warning when
// no handler is set. The computed value is never changed.
//
// Concurrency
//
// A Calculator is not safe for concurrent use. The package level functions
// are.
package mathx
