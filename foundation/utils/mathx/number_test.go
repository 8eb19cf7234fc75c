// File: number_test.go
// Title: Unit Tests for Number Text Conversions
// Description: Tests for FormatNumber, MantissaLen, RoundSignificant and
//              FormatFixed, including exponent notation, ties, carries and
//              negative zero.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial test implementation

package mathx

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"integer", 42, "42"},
		{"negative fraction", -1.5, "-1.5"},
		{"binary noise", 0.1 + 0.2, "0.30000000000000004"},
		{"large plain", 1e20, "100000000000000000000"},
		{"large exponent", 1e21, "1e+21"},
		{"large exponent with fraction", 1.5e300, "1.5e+300"},
		{"small plain", 1e-6, "0.000001"},
		{"small exponent", 1e-7, "1e-7"},
		{"small exponent with fraction", 1.23e-18, "1.23e-18"},
		{"smallest subnormal", 5e-324, "5e-324"},
		{"plain with point", 123.456, "123.456"},
		{"NaN", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.input); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMantissaLen(t *testing.T) {
	tests := []struct {
		input float64
		want  int
	}{
		{0, 0},
		{1, 0},
		{1200, 0},
		{0.1, 1},
		{-2.75, 2},
		{1.25, 2},
		{0.30000000000000004, 17},
		{1e-7, 7},
		{1.5e-7, 8},
		{2.1337983389e-12, 22},
		{1e21, 0},
		{1.23e25, 0},
		{math.NaN(), 0},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		if got := MantissaLen(tt.input); got != tt.want {
			t.Errorf("MantissaLen(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		name      string
		input     float64
		precision int
		want      float64
	}{
		{"strips binary noise", 0.30000000000000004, 15, 0.3},
		{"rounds up", 123.456, 4, 123.5},
		{"exact binary value above tie", 123.45, 4, 123.5},
		{"exact binary value below tie", 1.005, 3, 1},
		{"small value", 0.000123456, 3, 0.000123},
		{"tie away from zero", 2.5, 1, 3},
		{"negative tie away from zero", -2.5, 1, -3},
		{"carry adds a digit", 9.99, 2, 10},
		{"carry on large value", 99999, 2, 100000},
		{"already short", 1e21, 5, 1e21},
		{"zero", 0, 5, 0},
		{"precision below range clamps to 1", 123, 0, 100},
		{"precision above 15 keeps the value", 1.0 / 3, 20, 1.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundSignificant(tt.input, tt.precision); got != tt.want {
				t.Errorf("RoundSignificant(%v, %d) = %v, want %v", tt.input, tt.precision, got, tt.want)
			}
		})
	}

	if got := RoundSignificant(math.NaN(), 3); !math.IsNaN(got) {
		t.Errorf("RoundSignificant(NaN) = %v, want NaN", got)
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		digits int
		want   string
	}{
		{"two digits", 3.14159, 2, "3.14"},
		{"no digits", 3.14159, 0, "3"},
		{"padding", 123.456, 5, "123.45600"},
		{"exact binary value below tie", 1.005, 2, "1.00"},
		{"exact binary value below tie again", 1.45, 1, "1.4"},
		{"tie up", 2.5, 0, "3"},
		{"half", 0.5, 0, "1"},
		{"below half", 0.4, 0, "0"},
		{"negative tie", -2.5, 0, "-3"},
		{"negative", -1.5, 0, "-2"},
		{"negative rounding to zero keeps sign", -0.001, 2, "-0.00"},
		{"negative zero", math.Copysign(0, -1), 2, "0.00"},
		{"zero", 0, 2, "0.00"},
		{"zero no digits", 0, 0, "0"},
		{"tiny", 0.0000001, 2, "0.00"},
		{"small rounds up", 0.0005, 3, "0.001"},
		{"small rounds down", 0.000001, 3, "0.000"},
		{"carry into integer part", 9.996, 2, "10.00"},
		{"digits clamp to 20", 1.5, 25, "1.50000000000000000000"},
		{"large falls back to number text", 1e21, 2, "1e+21"},
		{"NaN", math.NaN(), 2, "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFixed(tt.input, tt.digits); got != tt.want {
				t.Errorf("FormatFixed(%v, %d) = %q, want %q", tt.input, tt.digits, got, tt.want)
			}
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		digits string
		n      int
		want   string
	}{
		{"12345", 3, "123"},
		{"12355", 3, "124"},
		{"1995", 3, "200"},
		{"9995", 3, "1000"},
		{"5", 0, "1"},
		{"4", 0, ""},
		{"12", 4, "1200"},
		{"12", -1, ""},
	}

	for _, tt := range tests {
		if got := roundHalfUp(tt.digits, tt.n); got != tt.want {
			t.Errorf("roundHalfUp(%q, %d) = %q, want %q", tt.digits, tt.n, got, tt.want)
		}
	}
}
