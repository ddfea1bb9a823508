// Package errors provides error handling for jobs.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints printed by the CLI
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "check the path in am.toml")
//
//	// Classify
//	if errors.IsParseError(err) {
//	    // malformed jobs file
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel error kinds. Every failure that reaches the CLI is marked with
// exactly one of these; check with errors.Is or the Is*Error helpers.
var (
	// ErrRead indicates the jobs file is missing or unreadable
	ErrRead = New("read error")

	// ErrParse indicates the jobs file is not well-formed
	ErrParse = New("parse error")

	// ErrRender indicates a terminal rendering call rejected its input
	ErrRender = New("render error")

	// ErrInvalidConfig indicates a configuration value failed validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsReadError checks if an error is or wraps ErrRead
func IsReadError(err error) bool {
	return err != nil && Is(err, ErrRead)
}

// IsParseError checks if an error is or wraps ErrParse
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsRenderError checks if an error is or wraps ErrRender
func IsRenderError(err error) bool {
	return err != nil && Is(err, ErrRender)
}

// IsInvalidConfigError checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfigError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}

// WrapRead marks err as a read failure for path. The original cause stays
// reachable, so errors.Is(err, fs.ErrNotExist) keeps working.
func WrapRead(err error, path string) error {
	if err == nil {
		return nil
	}
	return WithHintf(
		Wrapf(Mark(err, ErrRead), "failed to read %s", path),
		"check that %s exists and is readable, or point jobs.path at another file", path)
}

// WrapParse marks err as a parse failure for path.
func WrapParse(err error, path string) error {
	if err == nil {
		return nil
	}
	return Wrapf(Mark(err, ErrParse), "failed to parse %s", path)
}

// NewParseError creates a parse error with a formatted message
func NewParseError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrParse)
}

// WrapRender marks err as a rendering failure with context.
func WrapRender(err error, context string) error {
	if err == nil {
		return nil
	}
	return Wrap(Mark(err, ErrRender), context)
}

// NewRenderError creates a render error with a formatted message
func NewRenderError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrRender)
}

// NewInvalidConfigError creates a configuration error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidConfig)
}
