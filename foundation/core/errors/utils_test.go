// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the ErrorBuilder and the module helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18

package errors

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/precalc/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Expected operation 'testmodule.test_op', got %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message and code", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()

		if err.Message() != "testmodule.test_op failed" {
			t.Errorf("Expected auto-generated message, got %q", err.Message())
		}
		if err.Code() != "TESTMODULE_TEST_OP_FAILED" {
			t.Errorf("Expected auto-generated code, got %q", err.Code())
		}

		bare := NewErrorBuilder("testmodule").Build()
		if bare.Code() != "TESTMODULE_ERROR" {
			t.Errorf("Expected module code, got %q", bare.Code())
		}
	})
}

func TestOutOfRange(t *testing.T) {
	err := OutOfRange(ModuleConfig, "validate", 42, 1, 20)

	if !strings.HasPrefix(err.Error(), "validation failed:") {
		t.Errorf("Expected validation prefix, got %q", err.Error())
	}
	if err.Code() != CodeOutOfRange {
		t.Errorf("Expected code %s, got %s", CodeOutOfRange, err.Code())
	}
	if ExtractModule(err) != ModuleConfig {
		t.Errorf("Expected module %q, got %q", ModuleConfig, ExtractModule(err))
	}
}

func TestMathxHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  *mdwerror.Error
		code string
	}{
		{"no seed operand", MathxNoSeedOperand("plus", 3), CodeMathxNoSeedOperand},
		{"config out of range", MathxConfigOutOfRange("precision", 42, 1, 20), CodeMathxConfigOutOfRange},
		{"unknown operator", MathxUnknownOperator("modulo"), CodeMathxUnknownOperator},
		{"non-finite result", MathxNonFinite("times", 10), CodeMathxNonFinite},
		{"operation failed", OperationFailed(ModuleMathx, "apply", errors.New("x")), CodeMathxOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.err.Code()) != tt.code {
				t.Errorf("Code() = %s, want %s", tt.err.Code(), tt.code)
			}
			if ExtractModule(tt.err) != ModuleMathx {
				t.Errorf("module = %q, want %q", ExtractModule(tt.err), ModuleMathx)
			}
		})
	}

	err := MathxConfigOutOfRange("precision", 42, 1, 20)
	if err.Error() != "precision 42 out of range [1, 20]" {
		t.Errorf("Error() = %q", err.Error())
	}
	if v, _ := err.Detail("value"); v != 42 {
		t.Errorf("value detail = %v", v)
	}
}

func TestConfigHelpers(t *testing.T) {
	notFound := ConfigNotFound("/etc/precalc.toml")
	if notFound.Code() != CodeConfigNotFound {
		t.Errorf("Code() = %s", notFound.Code())
	}

	cause := errors.New("toml: line 3: expected value")
	parse := ConfigParseFailed("precalc.toml", "toml", cause)
	if !errors.Is(parse, cause) {
		t.Error("ConfigParseFailed should wrap its cause")
	}
	if parse.Code() != CodeConfigParseFailed {
		t.Errorf("Code() = %s", parse.Code())
	}

	invalid := ConfigInvalid(MathxConfigOutOfRange("fraction_digits", 30, 0, 20))
	if !mdwerror.HasCode(invalid, CodeConfigInvalid) {
		t.Error("expected CONFIG_INVALID on the outer error")
	}
	if !mdwerror.HasCode(invalid, CodeMathxConfigOutOfRange) {
		t.Error("expected the range code to stay reachable through the chain")
	}
}

func TestInvalidInputAndFormat(t *testing.T) {
	in := InvalidInput(ModuleCLI, "eval", "abc", "number")
	if in.Code() != CodeInvalidInput {
		t.Errorf("Code() = %s", in.Code())
	}
	if v, _ := in.Detail("expected"); v != "number" {
		t.Errorf("expected detail = %v", v)
	}

	f := InvalidFormat(ModuleConfig, "ini", "toml or yaml")
	if f.Code() != CodeInvalidFormat {
		t.Errorf("Code() = %s", f.Code())
	}
	if ExtractDetails(errors.New("plain")) != nil {
		t.Error("ExtractDetails(plain) should be nil")
	}
}
