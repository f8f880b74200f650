// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured errors for the arith module.
//
// UserError carries what went wrong, why it happened and how to fix it,
// plus an exit code for tools that embed the module and surface its
// failures to a terminal.
//
// # Usage Example
//
//	_, err := arith.Divide(5, 0)
//	var ue *errors.UserError
//	if stderrors.As(err, &ue) {
//	    fmt.Fprint(os.Stderr, ue.Format(false))
//	}
//	// Output (with colors):
//	// Error: Cannot divide by zero
//	// Cause: The divisor is zero
//	// Fix:   Pass a non-zero divisor
//
// For JSON output:
//
//	json.NewEncoder(os.Stderr).Encode(ue.ToJSON())
//	// {"error":"Cannot divide by zero","cause":"The divisor is zero",...,"exit_code":4}
//
// # Exit Codes
//
//   - ExitSuccess (0): Successful execution
//   - ExitInput (4): Invalid operands (zero divisor)
//   - ExitInternal (10): Internal errors (bugs)
package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInput indicates invalid operands, such as a zero divisor.
	ExitInput = 4

	// ExitInternal indicates internal errors.
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10
)

// UserError represents an error with structured context for end users.
//
// It provides three levels of information:
//   - Message: What went wrong
//   - Cause: Why it happened
//   - Fix: How to fix it
type UserError struct {
	// Message describes what went wrong. It is the whole of Error() when
	// no underlying error is wrapped.
	Message string

	// Cause explains why the error occurred.
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// ExitCode is the exit code an embedding tool should use.
	ExitCode int

	// Err is the underlying error (optional).
	Err error

	// origin is the sentinel this error was cloned from.
	origin *UserError
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *UserError) Unwrap() error {
	return e.Err
}

// Clone returns a copy of e that still matches e under errors.Is.
//
// Package-level sentinels hand out clones so that a caller mutating the
// error it received cannot change what later callers see.
func (e *UserError) Clone() *UserError {
	c := *e
	if c.origin == nil {
		c.origin = e
	}
	return &c
}

// Is reports whether target is the sentinel e was cloned from.
func (e *UserError) Is(target error) bool {
	return e.origin != nil && target == error(e.origin)
}

// NewInputError creates an input validation error with exit code ExitInput.
//
// Input errors describe operands the operation cannot accept and do not
// wrap an underlying error.
//
// Example:
//
//	var ErrDivisionByZero = NewInputError(
//	    "Cannot divide by zero",
//	    "The divisor is zero",
//	    "Pass a non-zero divisor",
//	)
func NewInputError(msg, cause, fix string) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInput,
	}
}

// NewInternalError creates an internal error with exit code ExitInternal.
//
// Use this for failures that indicate a bug or a misconfigured environment,
// such as a metric collector that cannot be registered.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInternal,
		Err:      err,
	}
}

// ExitCode returns the exit code for err.
//
// A nil error maps to ExitSuccess. If err is or wraps a UserError, its
// ExitCode is returned. Any other error maps to ExitInternal.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ue *UserError
	if stderrors.As(err, &ue) {
		return ue.ExitCode
	}
	return ExitInternal
}

// Format returns a formatted error message for terminal display.
//
// Error is red and bold, Cause is yellow and Fix is green. Color output
// respects the NO_COLOR environment variable and can be disabled with
// noColor. Empty Cause or Fix fields are omitted.
//
// Colors are built per call and never touch the global color.NoColor, so
// one UserError can be formatted from several goroutines.
func (e *UserError) Format(noColor bool) string {
	colorError := color.New(color.FgRed, color.Bold)
	colorCause := color.New(color.FgYellow)
	colorFix := color.New(color.FgGreen)

	if noColor || os.Getenv("NO_COLOR") != "" {
		colorError.DisableColor()
		colorCause.DisableColor()
		colorFix.DisableColor()
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}
