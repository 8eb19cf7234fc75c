// File: config.go
// Title: Calculator Configuration
// Description: Per-instance settings for a Calculator and the boundary
//              diagnostic hook.
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

	mdwerrors "github.com/msto63/precalc/foundation/core/errors"
)

// Defaults and accepted ranges of the configuration values.
const (
	DefaultPrecision      = 15
	DefaultFractionDigits = 2

	MinPrecision      = 1
	MaxPrecision      = 20
	MinFractionDigits = 0
	MaxFractionDigits = 20
)

// Largest magnitude a float64 holds with every integer below it exact.
const (
	MaxSafeInteger = 1<<53 - 1
	MinSafeInteger = -MaxSafeInteger
)

// BoundaryStage tells where in an operation a boundary event was raised.
type BoundaryStage int

const (
	// StageOperand is an operand after scaling to an integer
	StageOperand BoundaryStage = iota
	// StageIntermediate is the scaled result before it is scaled back
	StageIntermediate
	// StageResult is the folded value about to become the accumulator
	StageResult
)

// String returns the stage name
func (s BoundaryStage) String() string {
	switch s {
	case StageOperand:
		return "operand"
	case StageIntermediate:
		return "intermediate"
	case StageResult:
		return "result"
	default:
		return fmt.Sprintf("BoundaryStage(%d)", int(s))
	}
}

// BoundaryEvent describes a value outside [MinSafeInteger, MaxSafeInteger].
// From that point on the result may have lost precision.
type BoundaryEvent struct {
	Operator Operator
	Stage    BoundaryStage
	Value    float64
}

// String renders the event as a one-line diagnostic
func (e BoundaryEvent) String() string {
	return fmt.Sprintf("%s: %s %s is out of the safe integer range, the result may be inaccurate",
		e.Operator, e.Stage, FormatNumber(e.Value))
}

// BoundaryHandler receives boundary events. It must not call back into the
// calculator that raised the event.
type BoundaryHandler func(BoundaryEvent)

// Config holds the settings of one Calculator. It is copied at construction
// and never changes afterwards. Start from DefaultConfig: the zero value
// has FractionDigits 0.
type Config struct {
	// Precision is the significant digit count used by ToPrecision, ToFixed
	// and the quotient rounding of Divide. 0 selects DefaultPrecision.
	Precision int

	// FractionDigits is the digit count after the point used by ToFixed.
	FractionDigits int

	// EnableCheckBoundary turns on the safe integer diagnostic.
	EnableCheckBoundary bool

	// BoundaryHandler receives the diagnostic. When nil, events are logged
	// as warnings on the default logger.
	BoundaryHandler BoundaryHandler
}

// DefaultConfig returns precision 15, two fraction digits and no boundary check
func DefaultConfig() Config {
	return Config{
		Precision:      DefaultPrecision,
		FractionDigits: DefaultFractionDigits,
	}
}

// Validate rejects a precision outside [MinPrecision, MaxPrecision] (0 is
// allowed and means default) and fraction digits outside
// [MinFractionDigits, MaxFractionDigits].
func (c Config) Validate() error {
	if c.Precision != 0 && (c.Precision < MinPrecision || c.Precision > MaxPrecision) {
		return mdwerrors.MathxConfigOutOfRange("precision", c.Precision, MinPrecision, MaxPrecision)
	}
	if c.FractionDigits < MinFractionDigits || c.FractionDigits > MaxFractionDigits {
		return mdwerrors.MathxConfigOutOfRange("fraction_digits", c.FractionDigits, MinFractionDigits, MaxFractionDigits)
	}
	return nil
}

// EffectivePrecision resolves a Precision of 0 to DefaultPrecision
func (c Config) EffectivePrecision() int {
	if c.Precision == 0 {
		return DefaultPrecision
	}
	return c.Precision
}
