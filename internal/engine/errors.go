package engine

import (
	"errors"
	"fmt"

	"github.com/dshills/optscope/internal/optval"
)

// Sentinel errors for matching with errors.Is. Each concrete error
// type below reports itself as one of these.
var (
	// ErrValidation covers malformed or conflicting requests, unknown
	// or hidden options, and unsupported scopes.
	ErrValidation = errors.New("validation failed")

	// ErrTypeMismatch indicates the value kind does not match the
	// option's declared kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrSwitch indicates a window switch failed. This is the only
	// infrastructure-level failure.
	ErrSwitch = errors.New("switch failed")

	// ErrApply indicates a post-store side effect failed. The stored
	// value is kept.
	ErrApply = errors.New("apply failed")

	// ErrProbe indicates the ephemeral probe document could not be
	// created or initialized.
	ErrProbe = errors.New("probe failed")
)

// ValidationError describes a rejected request.
type ValidationError struct {
	Msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Msg
}

// Is implements error matching for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// validationf builds a ValidationError.
func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// TypeError describes a value whose kind does not match the option.
type TypeError struct {
	Option string
	Want   optval.Kind
	Got    optval.Kind
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid value for option %q: expected %s, got %s", e.Option, e.Want, e.Got)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// SwitchError describes a failed window switch.
type SwitchError struct {
	Err error
}

// Error implements the error interface.
func (e *SwitchError) Error() string {
	return "problem while switching windows"
}

// Unwrap returns the underlying error.
func (e *SwitchError) Unwrap() error {
	return e.Err
}

// Is implements error matching for SwitchError.
func (e *SwitchError) Is(target error) bool {
	return target == ErrSwitch
}

// ApplyError describes a failed post-store side effect. The stored
// value has already changed.
type ApplyError struct {
	Option string
	Err    error
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	return fmt.Sprintf("could not apply option %q: %v", e.Option, e.Err)
}

// Unwrap returns the underlying error.
func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Is implements error matching for ApplyError.
func (e *ApplyError) Is(target error) bool {
	return target == ErrApply
}

// ProbeError describes a failed filetype probe.
type ProbeError struct {
	Msg string
	Err error
}

// Error implements the error interface.
func (e *ProbeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Is implements error matching for ProbeError.
func (e *ProbeError) Is(target error) bool {
	return target == ErrProbe
}
