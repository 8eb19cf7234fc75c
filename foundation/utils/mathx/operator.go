// File: operator.go
// Title: Chain Operators
// Description: The four operators a Calculator folds operands with, and
//              their text forms.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package mathx

import (
	"fmt"
	"strings"

	mdwerrors "github.com/msto63/precalc/foundation/core/errors"
)

// Operator selects the binary operation Apply folds operands with.
type Operator int

const (
	OpPlus Operator = iota + 1
	OpMinus
	OpTimes
	OpDivide
)

// String returns the operator name
func (op Operator) String() string {
	switch op {
	case OpPlus:
		return "plus"
	case OpMinus:
		return "minus"
	case OpTimes:
		return "times"
	case OpDivide:
		return "divide"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// Symbol returns the arithmetic sign of the operator
func (op Operator) Symbol() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "x"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// IsValid reports whether op is one of the four defined operators
func (op Operator) IsValid() bool {
	return op >= OpPlus && op <= OpDivide
}

// ParseOperator accepts the operator names and their signs, case
// insensitive: plus/+, minus/-, times/x/*, divide//.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plus", "+":
		return OpPlus, nil
	case "minus", "-":
		return OpMinus, nil
	case "times", "x", "*":
		return OpTimes, nil
	case "divide", "/":
		return OpDivide, nil
	default:
		return 0, mdwerrors.MathxUnknownOperator(s)
	}
}
