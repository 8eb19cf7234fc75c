// File: benchmark_test.go
// Title: Performance Benchmarks for MathX Functions
// Description: Benchmarks for the scaled operations and the number text
//              conversions, with native float64 arithmetic as baseline.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-18 v0.2.0: Benchmarks for the chained calculator

package mathx

import (
	"testing"
)

var benchSink float64

// Baseline
func BenchmarkNativeAdd(b *testing.B) {
	x, y := 123.456, 789.123
	for i := 0; i < b.N; i++ {
		benchSink = x + y
	}
}

// Benchmark the four scaled operations
func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Add(123.456, 789.123)
	}
}

func BenchmarkSub(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Sub(123.456, 789.123)
	}
}

func BenchmarkMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Mul(123.456, 789.123)
	}
}

func BenchmarkDiv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Div(123.456, 789.123)
	}
}

func BenchmarkChain(b *testing.B) {
	operands := Numbers(0.1, 0.2, 0.3, 0.4, 0.5)
	for i := 0; i < b.N; i++ {
		benchSink = New().Plus(operands...).Times(Number(1.5)).ToPrecision()
	}
}

// Benchmark text conversions
func BenchmarkMantissaLen(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = float64(MantissaLen(123.456789))
	}
}

func BenchmarkRoundSignificant(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = RoundSignificant(0.30000000000000004, 15)
	}
}

func BenchmarkFormatFixed(b *testing.B) {
	var s string
	for i := 0; i < b.N; i++ {
		s = FormatFixed(123.456789, 2)
	}
	_ = s
}
