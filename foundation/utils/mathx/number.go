// File: number.go
// Title: Decimal Text Conversions for float64
// Description: Shortest round-trip number text, mantissa length, significant
//              digit rounding and fixed-point formatting. Rounding works on
//              the exact binary value of a float64 and breaks ties away from
//              zero, which is what JavaScript's toPrecision and toFixed do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with rounding modes for Decimal
// - 2026-10-18 v0.2.0: float64 text conversions for the chained calculator

package mathx

import (
	"math"
	"strconv"
	"strings"
)

// exactDigitsPrecision is large enough for FormatFloat to print every
// float64 without rounding.
const exactDigitsPrecision = 767

// FormatNumber renders f the way JavaScript's Number#toString does: the
// shortest digits that round-trip, in plain notation for decimal exponents
// in [-7, 21) and in exponent notation ("1.5e-7", "1e+21") outside it.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	digits, exp := splitDigits(strconv.FormatFloat(f, 'e', -1, 64))
	k := len(digits)
	n := exp + 1 // position of the decimal point relative to the digits

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	expSign := "+"
	if e < 0 {
		expSign = "-"
		e = -e
	}
	coefficient := digits[:1]
	if k > 1 {
		coefficient += "." + digits[1:]
	}
	return sign + coefficient + "e" + expSign + strconv.Itoa(e)
}

// MantissaLen returns how many places the decimal point of f has to move
// right for f to become an integer. It reads the digits after the point in
// FormatNumber's output and subtracts the exponent, so 1.25 gives 2,
// 1.5e-7 gives 8 and 1e21 gives 0. NaN and infinities give 0.
func MantissaLen(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	coefficient, exponent := FormatNumber(f), 0
	if i := strings.IndexAny(coefficient, "eE"); i >= 0 {
		exponent, _ = strconv.Atoi(coefficient[i+1:])
		coefficient = coefficient[:i]
	}

	fracLen := 0
	if i := strings.IndexByte(coefficient, '.'); i >= 0 {
		fracLen = len(coefficient) - i - 1
	}

	if n := fracLen - exponent; n > 0 {
		return n
	}
	return 0
}

// RoundSignificant rounds f to precision significant digits and parses the
// result back to a float64. Precision is clamped to
// [MinPrecision, MaxPrecision]. Zero, NaN and infinities are returned as is.
func RoundSignificant(f float64, precision int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	precision = clamp(precision, MinPrecision, MaxPrecision)

	// A value whose shortest form already fits is its own nearest
	// representation at 15 digits or less.
	if precision <= 15 {
		shortest, _ := splitDigits(strconv.FormatFloat(math.Abs(f), 'e', -1, 64))
		if len(shortest) <= precision {
			return f
		}
	}

	digits, exp := exactDigits(f)
	if len(digits) <= precision {
		return f
	}

	rounded := roundHalfUp(digits, precision)
	if len(rounded) > precision {
		rounded = rounded[:precision]
		exp++
	}

	text := rounded[:1]
	if len(rounded) > 1 {
		text += "." + rounded[1:]
	}
	if f < 0 {
		text = "-" + text
	}

	result, err := strconv.ParseFloat(text+"e"+strconv.Itoa(exp), 64)
	if err != nil {
		return f
	}
	return result
}

// FormatFixed renders f with exactly fractionDigits digits after the decimal
// point, like JavaScript's Number#toFixed. Negative values keep their sign
// even when they round to zero ("-0.00"); magnitudes of 1e21 and above fall
// back to FormatNumber. fractionDigits is clamped to
// [MinFractionDigits, MaxFractionDigits].
func FormatFixed(f float64, fractionDigits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1e21 {
		return FormatNumber(f)
	}
	fractionDigits = clamp(fractionDigits, MinFractionDigits, MaxFractionDigits)

	sign := ""
	if f < 0 {
		sign = "-"
	}

	integer := ""
	if f != 0 {
		digits, exp := exactDigits(f)
		integer = roundHalfUp(digits, exp+1+fractionDigits)
	}

	if fractionDigits == 0 {
		if integer == "" {
			integer = "0"
		}
		return sign + integer
	}

	if pad := fractionDigits + 1 - len(integer); pad > 0 {
		integer = strings.Repeat("0", pad) + integer
	}
	point := len(integer) - fractionDigits
	return sign + integer[:point] + "." + integer[point:]
}

// exactDigits returns every significant digit of |f| without trailing
// zeros, and the decimal exponent of the first digit.
func exactDigits(f float64) (string, int) {
	digits, exp := splitDigits(strconv.FormatFloat(math.Abs(f), 'e', exactDigitsPrecision, 64))
	return strings.TrimRight(digits, "0"), exp
}

// splitDigits takes FormatFloat 'e' output ("d.ddde±xx") apart into its
// digit string and exponent.
func splitDigits(s string) (string, int) {
	mantissa, exponent := s, 0
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		exponent, _ = strconv.Atoi(s[i+1:])
		mantissa = s[:i]
	}
	return strings.Replace(mantissa, ".", "", 1), exponent
}

// roundHalfUp keeps the first n digits, rounding half away from zero on the
// remainder. The result is one digit longer than n when the rounding
// carries out of the first digit, and empty when n < 0 or when n == 0 and
// the value rounds down.
func roundHalfUp(digits string, n int) string {
	if n < 0 {
		return ""
	}
	if n >= len(digits) {
		return digits + strings.Repeat("0", n-len(digits))
	}

	kept := []byte(digits[:n])
	if digits[n] < '5' {
		return string(kept)
	}

	for i := n - 1; i >= 0; i-- {
		if kept[i] != '9' {
			kept[i]++
			return string(kept)
		}
		kept[i] = '0'
	}
	return "1" + string(kept)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
