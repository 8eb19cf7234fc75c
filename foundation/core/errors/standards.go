// File: standards.go
// Title: Error Standards
// Description: Module identifiers and error codes shared by the precalc
//              packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Codes for the chained calculator and its configuration

package errors

import "strings"

// Module identifiers for error categorization
const (
	ModuleMathx  = "mathx"
	ModuleConfig = "config"
	ModuleCLI    = "cli"
)

// Standardized error codes
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// mathx
	CodeMathxNoSeedOperand    = "MATHX_NO_SEED_OPERAND"
	CodeMathxConfigOutOfRange = "MATHX_CONFIG_OUT_OF_RANGE"
	CodeMathxUnknownOperator  = "MATHX_UNKNOWN_OPERATOR"
	CodeMathxNonFinite        = "MATHX_NON_FINITE_RESULT"
	CodeMathxOperationFailed  = "MATHX_OPERATION_FAILED"

	// config
	CodeConfigNotFound        = "CONFIG_NOT_FOUND"
	CodeConfigParseFailed     = "CONFIG_PARSE_FAILED"
	CodeConfigInvalid         = "CONFIG_INVALID"
	CodeConfigOperationFailed = "CONFIG_OPERATION_FAILED"
)

// getModuleErrorCode derives a code from module and operation when none is set
func getModuleErrorCode(module, operation string) string {
	if operation == "" {
		return strings.ToUpper(module) + "_ERROR"
	}
	return strings.ToUpper(module) + "_" + strings.ToUpper(operation) + "_FAILED"
}

// getOperationErrorCode returns the module-specific "operation failed" code
func getOperationErrorCode(module string) string {
	switch module {
	case ModuleMathx:
		return CodeMathxOperationFailed
	case ModuleConfig:
		return CodeConfigOperationFailed
	default:
		return CodeOperationFailed
	}
}
