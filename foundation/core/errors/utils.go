// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent ErrorBuilder and the standard error constructors used
//              by mathx, config and the command line front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-18 v0.2.0: Calculator and configuration helpers

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/precalc/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	op := eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
		op = eb.module + "." + eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(mdwerror.Code(eb.code)).
		WithOperation(op).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(getOperationErrorCode(module)).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// MathX convenience functions

// MathxNoSeedOperand reports a chained operation on an empty accumulator
// whose operands all failed coercion.
func MathxNoSeedOperand(operation string, operands int) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("no operand could seed the accumulator").
		Code(CodeMathxNoSeedOperand).
		Detail("operands", operands).
		Severity(mdwerror.SeverityLow).
		Build()
}

// MathxConfigOutOfRange reports a calculator setting outside its accepted range
func MathxConfigOutOfRange(field string, value, min, max int) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation("configure").
		Messagef("%s %d out of range [%d, %d]", field, value, min, max).
		Code(CodeMathxConfigOutOfRange).
		Detail("field", field).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// MathxUnknownOperator reports an operator name that does not parse
func MathxUnknownOperator(name string) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation("parse_operator").
		Messagef("unknown operator %q", name).
		Code(CodeMathxUnknownOperator).
		Detail("input", name).
		Detail("expected", "plus, minus, times or divide").
		Severity(mdwerror.SeverityLow).
		Build()
}

// MathxNonFinite reports an operation whose result left the float64 range
func MathxNonFinite(operation string, operand float64) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("result is not a finite number").
		Code(CodeMathxNonFinite).
		Detail("operand", operand).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// Config convenience functions

// ConfigNotFound reports a missing configuration file
func ConfigNotFound(path string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("config file not found: %s", path).
		Code(CodeConfigNotFound).
		Detail("path", path).
		Build()
}

// ConfigParseFailed wraps a decoder error for the given file
func ConfigParseFailed(path, format string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Message("failed to parse config").
		Cause(cause).
		Code(CodeConfigParseFailed).
		Detail("path", path).
		Detail("format", format).
		Build()
}

// ConfigInvalid wraps a validation failure of a loaded configuration
func ConfigInvalid(cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Message("invalid configuration").
		Cause(cause).
		Code(CodeConfigInvalid).
		Build()
}
