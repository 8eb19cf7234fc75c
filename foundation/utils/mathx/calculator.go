// File: calculator.go
// Title: Chained Precise Calculator
// Description: Calculator folds operands into an accumulator with plus,
//              minus, times and divide. Each operation shifts its operands
//              to integers by a power of ten, computes on the integers and
//              shifts the result back, which removes the representation
//              error of decimal fractions such as 0.1 + 0.2.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation
// - 2026-10-18 v0.2.1: Native fallback when a scaled value overflows

package mathx

import (
	"math"

	mdwerrors "github.com/msto63/precalc/foundation/core/errors"
	"github.com/msto63/precalc/foundation/core/log"
)

// maxScale is the largest power of ten math.Pow10 returns finite. Operands
// that need a larger shift, or whose scaled values overflow, are computed
// natively and reported through the boundary check.
const maxScale = 308

// Calculator holds one accumulator and folds operands into it. Methods
// mutate the receiver and return it for chaining. A Calculator is not safe
// for concurrent use; use Clone to hand a copy to another goroutine.
type Calculator struct {
	value float64
	set   bool
	cfg   Config
	err   error
}

// New returns a calculator with DefaultConfig. The first coercible initial
// operand seeds the accumulator; without one it stays unset and reads as 0.
func New(initial ...Operand) *Calculator {
	c := &Calculator{cfg: DefaultConfig()}
	c.seed(initial)
	return c
}

// NewWithConfig returns a calculator using cfg, or an error with code
// MATHX_CONFIG_OUT_OF_RANGE when cfg does not validate.
func NewWithConfig(cfg Config, initial ...Operand) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Calculator{cfg: cfg}
	c.seed(initial)
	return c, nil
}

// MustNewWithConfig is like NewWithConfig but panics on an invalid config
func MustNewWithConfig(cfg Config, initial ...Operand) *Calculator {
	c, err := NewWithConfig(cfg, initial...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Calculator) seed(initial []Operand) {
	for _, operand := range initial {
		if v, ok := operand.Float(); ok {
			c.value, c.set = v, true
			return
		}
	}
}

// Plus adds the operands to the accumulator from left to right
func (c *Calculator) Plus(operands ...Operand) *Calculator {
	return c.Apply(OpPlus, operands...)
}

// Minus subtracts the operands from the accumulator from left to right
func (c *Calculator) Minus(operands ...Operand) *Calculator {
	return c.Apply(OpMinus, operands...)
}

// Times multiplies the accumulator by the operands from left to right
func (c *Calculator) Times(operands ...Operand) *Calculator {
	return c.Apply(OpTimes, operands...)
}

// Divide divides the accumulator by the operands from left to right.
// Dividing by zero yields 0.
func (c *Calculator) Divide(operands ...Operand) *Calculator {
	return c.Apply(OpDivide, operands...)
}

// Apply folds operands into the accumulator with op.
//
// An unset accumulator is seeded by the first coercible operand and the fold
// continues with the rest. When none of the operands is coercible the
// accumulator stays unset and Err reports MATHX_NO_SEED_OPERAND. Operands
// that do not coerce are skipped during the fold. Adding or subtracting 0
// leaves the value unchanged; multiplying or dividing by 0 gives 0.
//
// After an error every Apply is a no-op until Reset.
func (c *Calculator) Apply(op Operator, operands ...Operand) *Calculator {
	if c.err != nil || len(operands) == 0 {
		return c
	}
	if !op.IsValid() {
		c.err = mdwerrors.MathxUnknownOperator(op.String())
		return c
	}

	acc, ok := c.value, c.set
	rest := operands
	for !ok && len(rest) > 0 {
		acc, ok = rest[0].Float()
		rest = rest[1:]
	}
	if !ok {
		c.err = mdwerrors.MathxNoSeedOperand(op.String(), len(operands))
		return c
	}

	for _, operand := range rest {
		n, ok := operand.Float()
		if !ok {
			continue
		}
		next := c.fold(op, acc, n)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			c.err = mdwerrors.MathxNonFinite(op.String(), n)
			break
		}
		acc = next
	}

	c.checkBoundary(op, StageResult, acc)
	c.value, c.set = acc, true
	return c
}

func (c *Calculator) fold(op Operator, acc, n float64) float64 {
	switch op {
	case OpPlus:
		if n == 0 {
			return acc
		}
		return c.plus(acc, n)
	case OpMinus:
		if n == 0 {
			return acc
		}
		return c.minus(acc, n)
	case OpTimes:
		if n == 0 {
			return 0
		}
		return c.times(op, acc, n)
	case OpDivide:
		if n == 0 {
			return 0
		}
		return c.divide(acc, n)
	}
	return acc
}

// scale shifts f left by l decimal places and snaps it to the integer it
// represents.
func scale(f float64, l int) float64 {
	return math.Round(f * math.Pow10(l))
}

func (c *Calculator) times(op Operator, n1, n2 float64) float64 {
	l1, l2 := MantissaLen(n1), MantissaLen(n2)
	if l1+l2 > maxScale {
		return c.native(op, OpTimes, n1, n2, math.Inf(1))
	}

	a1, a2 := scale(n1, l1), scale(n2, l2)
	product := a1 * a2
	if isInf(product) {
		return c.native(op, OpTimes, n1, n2, product)
	}
	c.checkBoundary(op, StageOperand, a1)
	c.checkBoundary(op, StageOperand, a2)
	c.checkBoundary(op, StageIntermediate, product)

	return product / math.Pow10(l1+l2)
}

func (c *Calculator) divide(n1, n2 float64) float64 {
	l1, l2 := MantissaLen(n1), MantissaLen(n2)
	if l1 > maxScale || l2 > maxScale {
		return c.native(OpDivide, OpDivide, n1, n2, math.Inf(1))
	}

	a1, a2 := scale(n1, l1), scale(n2, l2)
	c.checkBoundary(OpDivide, StageOperand, a1)
	c.checkBoundary(OpDivide, StageOperand, a2)

	quotient := RoundSignificant(a1/a2, c.cfg.EffectivePrecision())
	return c.times(OpDivide, quotient, math.Pow10(l2-l1))
}

func (c *Calculator) plus(n1, n2 float64) float64 {
	return c.sum(OpPlus, n1, n2)
}

func (c *Calculator) minus(n1, n2 float64) float64 {
	return c.sum(OpMinus, n1, -n2)
}

// sum adds n1 and n2 on a common decimal scale. Subtraction arrives here
// with n2 negated, which is exact.
func (c *Calculator) sum(op Operator, n1, n2 float64) float64 {
	l := max(MantissaLen(n1), MantissaLen(n2))
	if l > maxScale {
		return c.native(op, OpPlus, n1, n2, math.Inf(1))
	}
	magnification := math.Pow10(l)

	a1, a2 := shift(n1, magnification), shift(n2, magnification)
	total := a1 + a2
	for _, v := range []float64{a1, a2, total} {
		if isInf(v) {
			return c.native(op, OpPlus, n1, n2, v)
		}
	}
	c.checkBoundary(op, StageOperand, a1)
	c.checkBoundary(op, StageOperand, a2)
	c.checkBoundary(op, StageIntermediate, total)

	return total / magnification
}

// native computes n1 <kind> n2 without decimal scaling. It is used when a
// scaled value would leave the float64 range; that value is reported as an
// intermediate boundary event because the native result may carry binary
// representation error.
func (c *Calculator) native(op, kind Operator, n1, n2, overflow float64) float64 {
	c.checkBoundary(op, StageIntermediate, overflow)
	switch kind {
	case OpTimes:
		return n1 * n2
	case OpDivide:
		return n1 / n2
	default:
		return n1 + n2
	}
}

// shift multiplies n by magnification after snapping n to its own decimal
// scale, so the result is the integer the decimal digits of n represent.
func shift(n, magnification float64) float64 {
	l := MantissaLen(n)
	return scale(n, l) * magnification / math.Pow10(l)
}

func isInf(v float64) bool {
	return math.IsInf(v, 0)
}

func (c *Calculator) checkBoundary(op Operator, stage BoundaryStage, v float64) {
	if !c.cfg.EnableCheckBoundary || (v >= MinSafeInteger && v <= MaxSafeInteger) {
		return
	}

	event := BoundaryEvent{Operator: op, Stage: stage, Value: v}
	if c.cfg.BoundaryHandler != nil {
		c.cfg.BoundaryHandler(event)
		return
	}
	log.GetDefault().Warn("value is out of the safe integer range, the result may be inaccurate", log.Fields{
		"operator": op.String(),
		"stage":    stage.String(),
		"value":    FormatNumber(v),
	})
}

// ToPrecision returns the accumulator rounded to precision significant
// digits, or to the configured precision when none or 0 is given. Values
// are clamped to [MinPrecision, MaxPrecision]. An unset accumulator reads
// as 0. The accumulator is not modified.
func (c *Calculator) ToPrecision(precision ...int) float64 {
	p := c.cfg.EffectivePrecision()
	if len(precision) > 0 && precision[0] != 0 {
		p = clamp(precision[0], MinPrecision, MaxPrecision)
	}
	return RoundSignificant(c.current(), p)
}

// ToFixed rounds the accumulator to the configured precision and renders
// it with fractionDigits digits after the point, or the configured count
// when none is given. Values are clamped to
// [MinFractionDigits, MaxFractionDigits]. An unset accumulator reads as 0.
// The accumulator is not modified.
func (c *Calculator) ToFixed(fractionDigits ...int) string {
	d := c.cfg.FractionDigits
	if len(fractionDigits) > 0 {
		d = clamp(fractionDigits[0], MinFractionDigits, MaxFractionDigits)
	}
	return FormatFixed(RoundSignificant(c.current(), c.cfg.EffectivePrecision()), d)
}

// Value returns the accumulator and whether it has been set
func (c *Calculator) Value() (float64, bool) {
	return c.value, c.set
}

// Err returns the error that stopped the chain, if any
func (c *Calculator) Err() error {
	return c.err
}

// Config returns the settings the calculator was built with
func (c *Calculator) Config() Config {
	return c.cfg
}

// Reset clears the accumulator and the error; the config is kept
func (c *Calculator) Reset() *Calculator {
	c.value, c.set, c.err = 0, false, nil
	return c
}

// Clone returns an independent copy of the calculator
func (c *Calculator) Clone() *Calculator {
	clone := *c
	return &clone
}

// String renders the accumulator with FormatNumber; "0" when unset
func (c *Calculator) String() string {
	return FormatNumber(c.current())
}

func (c *Calculator) current() float64 {
	if !c.set {
		return 0
	}
	return c.value
}

// Add returns a + b computed with the default configuration. Non-finite
// arguments are skipped like any operand that does not coerce.
func Add(a, b float64) float64 {
	return New(Number(a)).Plus(Number(b)).current()
}

// Sub returns a - b computed with the default configuration
func Sub(a, b float64) float64 {
	return New(Number(a)).Minus(Number(b)).current()
}

// Mul returns a * b computed with the default configuration
func Mul(a, b float64) float64 {
	return New(Number(a)).Times(Number(b)).current()
}

// Div returns a / b computed with the default configuration; 0 when b is 0
func Div(a, b float64) float64 {
	return New(Number(a)).Divide(Number(b)).current()
}
