// Package grferrors provides the error-wrapping primitives used throughout
// the rest of the module, thin enough that call sites read like stdlib
// errors but keep stack traces on the way up.
package grferrors

import "github.com/pkg/errors"

// Errorf formats according to a format specifier and returns the string as
// an error with a stack trace attached at the point it's called.
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// New returns an error with the supplied message and a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Wrapf annotates err with a message and a stack trace taken at the point
// it's called. Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace taken at the point it's
// called. Returns nil if err is nil.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// Cause returns the underlying cause of err, if possible.
func Cause(err error) error {
	return errors.Cause(err)
}

// ConfigInvalid reports that a Config failed validation.
type ConfigInvalid struct {
	Reason string
}

func (e *ConfigInvalid) Error() string {
	return "invalid configuration: " + e.Reason
}

// ShapeMismatch reports a prediction whose length didn't match what the
// strategy declared. It signals a programmer error in a prediction
// strategy and is always fatal.
type ShapeMismatch struct {
	Expected int
	Actual   int
}

func (e *ShapeMismatch) Error() string {
	return errors.Errorf("prediction shape mismatch: expected length %d, got %d", e.Expected, e.Actual).Error()
}
