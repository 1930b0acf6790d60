// Package errors provides error handling for loreweave.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints on recoverable failures
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
//	// Check errors
//	if errors.Is(err, errors.ErrResolution) {
//	    // entity-level failure, recoverable
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
	Is          = crdb.Is
	IsAny       = crdb.IsAny
	As          = crdb.As
	Unwrap      = crdb.Unwrap
	UnwrapAll   = crdb.UnwrapAll
	GetAllHints = crdb.GetAllHints
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the generator's failure taxonomy.
// Use these with errors.Is() for type-safe error checking.
//
// Resolution and cyclic-inheritance failures are recoverable at entity
// granularity: the driver skips the offending entity and keeps going.
// Write failures are fatal for the whole run.
var (
	// ErrResolution indicates a field's declared type has no placeholder rule
	ErrResolution = New("type resolution failed")

	// ErrCyclicInheritance indicates a base chain revisited an entity already on the walk stack
	ErrCyclicInheritance = New("cyclic inheritance")

	// ErrWrite indicates the output destination is not writable
	ErrWrite = New("write failed")

	// ErrUnknownEntity indicates a model reference names an entity the catalog does not define
	ErrUnknownEntity = New("unknown entity")
)

// NewResolutionError creates a resolution error identifying the field and its raw type.
func NewResolutionError(entity, field, typeDesc string) error {
	return Wrap(ErrResolution, Newf("%s.%s: unresolvable type %s", entity, field, typeDesc).Error())
}

// NewCyclicInheritanceError creates a cycle error naming the entity that closed the cycle.
func NewCyclicInheritanceError(entity string, stack []string) error {
	err := Wrap(ErrCyclicInheritance, Newf("base chain revisits %s", entity).Error())
	for _, s := range stack {
		err = WithDetailf(err, "on walk stack: %s", s)
	}
	return err
}

// WrapWrite wraps a filesystem error as a fatal write error with context.
func WrapWrite(err error, context string) error {
	return Wrap(Wrap(ErrWrite, err.Error()), context)
}

// IsResolutionError checks if an error is or wraps ErrResolution
func IsResolutionError(err error) bool {
	return err != nil && Is(err, ErrResolution)
}

// IsCyclicInheritanceError checks if an error is or wraps ErrCyclicInheritance
func IsCyclicInheritanceError(err error) bool {
	return err != nil && Is(err, ErrCyclicInheritance)
}

// IsWriteError checks if an error is or wraps ErrWrite
func IsWriteError(err error) bool {
	return err != nil && Is(err, ErrWrite)
}

// IsEntityError reports whether an error is recoverable at entity granularity.
// Entity-level errors are collected into the run report; anything else aborts.
func IsEntityError(err error) bool {
	return err != nil && IsAny(err, ErrResolution, ErrCyclicInheritance, ErrUnknownEntity)
}
