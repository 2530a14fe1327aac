// Package toolerr defines the error taxonomy shared by the lifemcp toolsets.
//
// Two sentinel categories exist: [ErrInvalidArgument] for inputs that fail a
// tool's declared validation rules, and [ErrUpstreamFailure] for failures of
// the one outbound dependency (the congestion-data API). Domain code builds
// errors with [Invalidf] and [Upstreamf] so callers can classify them with
// [errors.Is] or the IsInvalidArgument / IsUpstreamFailure shorthands.
package toolerr

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks inputs rejected by a tool's validation rules, such
// as a non-positive principal, a malformed slash pair, or an unsupported
// logarithm base. Errors built with [Invalidf] wrap this sentinel so callers
// can use [errors.Is] to inspect the category.
//
// Example:
//
//	if toolerr.IsInvalidArgument(err) {
//	    // reject the call, do not retry
//	}
var ErrInvalidArgument = errors.New("lifemcp: invalid argument")

// ErrUpstreamFailure marks failures of the outbound congestion-data request:
// network errors, non-2xx responses, and malformed or empty JSON payloads.
// Errors built with [Upstreamf] wrap this sentinel. Upstream failures are
// propagated to the caller without retry.
var ErrUpstreamFailure = errors.New("lifemcp: upstream failure")

// Invalidf returns an error wrapping [ErrInvalidArgument] with a descriptive,
// caller-facing message.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Upstreamf returns an error wrapping [ErrUpstreamFailure] with a descriptive,
// caller-facing message.
func Upstreamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUpstreamFailure, fmt.Sprintf(format, args...))
}

// IsInvalidArgument reports whether err wraps [ErrInvalidArgument].
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUpstreamFailure reports whether err wraps [ErrUpstreamFailure].
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrUpstreamFailure)
}
