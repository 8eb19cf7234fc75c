// File: operand.go
// Title: Calculator Operands
// Description: Operand is a closed variant over a number, a numeric text
//              and another Calculator. Float is the single coercion rule
//              used when an operand is folded into an accumulator.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package mathx

import (
	"math"
	"strconv"
	"strings"
)

type operandKind uint8

const (
	kindNumber operandKind = iota
	kindText
	kindRef
)

// Operand is a value that can be combined with an accumulator. Build it with
// Number, Text or Ref; the zero Operand is the number 0.
type Operand struct {
	kind operandKind
	num  float64
	text string
	ref  *Calculator
}

// Number wraps a float64
func Number(f float64) Operand {
	return Operand{kind: kindNumber, num: f}
}

// Numbers wraps each float64
func Numbers(fs ...float64) []Operand {
	operands := make([]Operand, len(fs))
	for i, f := range fs {
		operands[i] = Number(f)
	}
	return operands
}

// Text wraps a numeric string such as "0.1", "-3e-7" or " 42 ". Only what
// strconv.ParseFloat accepts is coercible.
func Text(s string) Operand {
	return Operand{kind: kindText, text: s}
}

// Ref wraps another calculator. The operand reads that calculator's
// accumulator at the time it is folded, not its formatted output.
func Ref(c *Calculator) Operand {
	return Operand{kind: kindRef, ref: c}
}

// Float coerces the operand to a finite float64. ok is false for NaN or
// infinite numbers, for blank or unparseable text, and for a nil or unset
// referenced calculator.
func (o Operand) Float() (value float64, ok bool) {
	switch o.kind {
	case kindNumber:
		value = o.num
	case kindText:
		s := strings.TrimSpace(o.text)
		if s == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		value = v
	case kindRef:
		if o.ref == nil {
			return 0, false
		}
		v, set := o.ref.Value()
		if !set {
			return 0, false
		}
		value = v
	default:
		return 0, false
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// String describes the operand for diagnostics
func (o Operand) String() string {
	switch o.kind {
	case kindText:
		return strconv.Quote(o.text)
	case kindRef:
		if o.ref == nil {
			return "ref(nil)"
		}
		return "ref(" + o.ref.String() + ")"
	default:
		return FormatNumber(o.num)
	}
}
