package model

import (
	"errors"
	"fmt"

	"github.com/shinji-kodama/ss7calc/internal/pointcode"
)

// ExitCode defines the CLI exit codes. Scripts can use them to tell a
// malformed invocation from a bad point code or an unreadable file.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsage indicates malformed flags or a missing point code value.
	ExitUsage ExitCode = 2

	// ExitInvalidPointCode indicates that at least one point code could not
	// be parsed or was out of range.
	ExitInvalidPointCode ExitCode = 3

	// ExitIOError indicates an input or output file could not be used.
	ExitIOError ExitCode = 4

	// ExitConfigError indicates the configuration file is missing or invalid.
	ExitConfigError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// WrapPointCodeError wraps an error returned by package pointcode. Parse,
// format and range failures map to ExitInvalidPointCode; anything else
// (including StateError, which signals a caller bug) maps to
// ExitGeneralError.
func WrapPointCodeError(message string, err error) *CLIError {
	var (
		parseErr  *pointcode.ParseError
		formatErr *pointcode.FormatError
		rangeErr  *pointcode.RangeError
	)
	if errors.As(err, &parseErr) || errors.As(err, &formatErr) || errors.As(err, &rangeErr) {
		return WrapCLIError(ExitInvalidPointCode, message, err)
	}
	return WrapCLIError(ExitGeneralError, message, err)
}
