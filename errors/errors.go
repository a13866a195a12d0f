// Package errors provides error handling for the classifier generator.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
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
//	// Check failure kinds
//	if errors.Is(err, errors.ErrSourceUnavailable) {
//	    // canonical data source is not installed
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions and invariant violations
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Failure taxonomy for a generation run. Every failure the generator can
// produce wraps exactly one of these sentinels; all of them are fatal to the
// run and none are retried internally. Check with errors.Is().
var (
	// ErrSourceUnavailable indicates the canonical classifier data source
	// (the installed trove_classifiers distribution, or a snapshot file)
	// is not present or not importable.
	ErrSourceUnavailable = New("classifier source unavailable")

	// ErrMalformedSource indicates the data source was reachable but did not
	// have the expected shape (undecodable payload, missing version, empty or
	// duplicated classifier list).
	ErrMalformedSource = New("malformed classifier source")

	// ErrCollisionUnresolvable indicates name disambiguation could not
	// terminate. Unreachable for any bounded classifier set; treated as an
	// invariant violation, not a recoverable condition.
	ErrCollisionUnresolvable = New("unresolvable identifier collision")

	// ErrWriteFailed indicates the generated artifact could not be committed
	// to the output location. The prior artifact is left untouched.
	ErrWriteFailed = New("failed to write generated artifact")
)

// IsSourceUnavailable checks if an error is or wraps ErrSourceUnavailable.
func IsSourceUnavailable(err error) bool {
	return err != nil && Is(err, ErrSourceUnavailable)
}

// IsMalformedSource checks if an error is or wraps ErrMalformedSource.
func IsMalformedSource(err error) bool {
	return err != nil && Is(err, ErrMalformedSource)
}

// IsWriteFailed checks if an error is or wraps ErrWriteFailed.
func IsWriteFailed(err error) bool {
	return err != nil && Is(err, ErrWriteFailed)
}
