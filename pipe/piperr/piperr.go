// Package piperr defines the error kinds shared by every iterflow package.
// All failures raised by pipeline operations are built from these kinds so
// callers can classify them with errors.Is without depending on message text.
package piperr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Each error produced by an iterflow operation matches
// exactly one of these under errors.Is.
var (
	// ErrOutOfRange reports positional access beyond collection bounds in a
	// context that cannot silently clamp.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument reports an argument outside an operation's documented
	// domain, such as a zero range step or a non-positive chunk size.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyCollection reports an aggregate invoked on an empty image with
	// no fallback value.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrUnimplemented reports an operation reserved for a future revision.
	ErrUnimplemented = errors.New("not implemented")

	// ErrTypeMismatch reports an image whose shape has no documented behavior
	// for the requested operation.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Error carries the failing operation name alongside its kind and detail.
type Error struct {
	Kind error  // one of the sentinel kinds above
	Op   string // operation that raised the error, e.g. "chunk.Every"
	Msg  string // human-readable detail
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Msg)
}

// Unwrap exposes the kind so errors.Is(err, ErrInvalidArgument) works.
func (e *Error) Unwrap() error {
	return e.Kind
}

// New builds an Error of the given kind for the named operation.
func New(kind error, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// OutOfRange is shorthand for New(ErrOutOfRange, op, ...).
func OutOfRange(op, format string, args ...any) *Error {
	return New(ErrOutOfRange, op, format, args...)
}

// InvalidArgument is shorthand for New(ErrInvalidArgument, op, ...).
func InvalidArgument(op, format string, args ...any) *Error {
	return New(ErrInvalidArgument, op, format, args...)
}

// EmptyCollection is shorthand for New(ErrEmptyCollection, op, ...).
func EmptyCollection(op string) *Error {
	return &Error{Kind: ErrEmptyCollection, Op: op}
}

// Unimplemented is shorthand for New(ErrUnimplemented, op, ...).
func Unimplemented(op, msg string) *Error {
	return &Error{Kind: ErrUnimplemented, Op: op, Msg: msg}
}

// TypeMismatch is shorthand for New(ErrTypeMismatch, op, ...).
func TypeMismatch(op, format string, args ...any) *Error {
	return New(ErrTypeMismatch, op, format, args...)
}
