// File: example_test.go
// Title: Example Tests for MathX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-18 v0.2.0: Examples for the chained calculator

package mathx_test

import (
	"fmt"

	"github.com/msto63/precalc/foundation/utils/mathx"
)

func ExampleNew() {
	fmt.Println(0.1 + 0.2)
	fmt.Println(mathx.New(mathx.Number(0.1)).Plus(mathx.Number(0.2)).ToPrecision())
	// Output:
	// 0.30000000000000004
	// 0.3
}

func ExampleCalculator_Plus() {
	c := mathx.New(mathx.Number(10)).
		Plus(mathx.Number(5)).
		Times(mathx.Number(2))

	fmt.Println(c)
	// Output:
	// 30
}

func ExampleCalculator_Divide() {
	fmt.Println(mathx.New(mathx.Number(1)).Divide(mathx.Number(3)).ToPrecision())
	fmt.Println(mathx.New(mathx.Number(5)).Divide(mathx.Number(0)).ToPrecision())
	// Output:
	// 0.333333333333333
	// 0
}

func ExampleCalculator_ToFixed() {
	c := mathx.New(mathx.Number(3.14159))

	fmt.Println(c.ToFixed())
	fmt.Println(c.ToFixed(0))
	fmt.Println(c.ToFixed(4))
	// Output:
	// 3.14
	// 3
	// 3.1416
}

func ExampleText() {
	c := mathx.New(mathx.Text("19.99")).
		Times(mathx.Text("3"), mathx.Text("n/a")).
		Minus(mathx.Number(0.97))

	fmt.Println(c.ToFixed())
	// Output:
	// 59.00
}

func ExampleRef() {
	subtotal := mathx.New(mathx.Number(4.35)).Times(mathx.Number(100))
	total := mathx.New(mathx.Number(0.65)).Plus(mathx.Ref(subtotal))

	fmt.Println(subtotal, total)
	// Output:
	// 435 435.65
}

func ExampleFormatNumber() {
	fmt.Println(mathx.FormatNumber(1.5e-7))
	fmt.Println(mathx.FormatNumber(123456789012345680000))
	fmt.Println(mathx.FormatNumber(1e21))
	// Output:
	// 1.5e-7
	// 123456789012345680000
	// 1e+21
}

func ExampleMantissaLen() {
	fmt.Println(mathx.MantissaLen(1.25), mathx.MantissaLen(1.5e-7), mathx.MantissaLen(1200))
	// Output:
	// 2 8 0
}
