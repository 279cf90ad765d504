// Package cli provides shared configuration and utilities for the tsmaint CLI.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/tsdbkit/tsmaint"
)

// Exit codes. One per error kind so CI wrappers can tell a missing input
// from a broken manifest without parsing stderr.
const (
	ExitSuccess           = 0
	ExitGeneral           = 1
	ExitConfig            = 2
	ExitMissingResource   = 3
	ExitMalformedManifest = 4
	ExitWriteFailure      = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitWithError prints the error and exits with the appropriate code.
func ExitWithError(err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", exitErr.Error())
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(ExitGeneral)
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}

// PipelineError classifies err against the tsmaint error taxonomy and wraps
// it with the matching exit code. Unrecognized errors exit with
// ExitGeneral.
func PipelineError(msg string, err error) *ExitError {
	code := ExitGeneral
	switch {
	case tsmaint.IsMissingResourceErr(err):
		code = ExitMissingResource
	case tsmaint.IsMalformedManifestErr(err):
		code = ExitMalformedManifest
	case tsmaint.IsWriteFailureErr(err):
		code = ExitWriteFailure
	}
	return &ExitError{Code: code, Message: msg, Err: err}
}
