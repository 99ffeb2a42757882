// Package errors provides utilities for creating, combining, and inspecting errors.
// It builds on the standard errors package and adds multi-error support via go-multierror.
package errors

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// New creates a new error with the given message.
// Returns nil if msg is empty.
func New(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}

// Wrap wraps an error with a message, preserving the original as a cause.
// If err is nil, returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Append combines errors into a single multi-error. Nil errors are skipped,
// so the result stays nil when every input is nil.
func Append(err error, errs ...error) error {
	var merr *multierror.Error
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	for _, e := range errs {
		if e != nil {
			merr = multierror.Append(merr, e)
		}
	}
	return merr.ErrorOrNil()
}

// Flatten simplifies nested multi-errors into a single level.
// If err is not a multi-error, returns it unchanged.
func Flatten(err error) error {
	return multierror.Flatten(err)
}

// Errors returns the individual errors held by err.
// A plain error yields a one-element slice, nil yields nil.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(Flatten(err), &merr) {
		return merr.WrappedErrors()
	}
	return []error{err}
}

// Is reports whether err or any error in its chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to cast err to the type of target, returning true if successful.
// The target must be a pointer to an error type (e.g., *MyError).
func As(err error, target any) bool {
	return errors.As(err, target)
}
