// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package verr defines the error taxonomy shared by every layer of
// the simulator, in the teacher's own style of formatted,
// single-purpose error constructors (compare cpmech/gosl/chk.Err),
// but tagged with a Kind so callers can branch on errors.Is.
package verr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error by where in the pipeline it originates.
type Kind int

const (
	// MisconfiguredProgram marks a parameter bound violated before any
	// work starts (max<min, zero step count, zero temperature, zero
	// cool rate, zero field, zero field step).
	MisconfiguredProgram Kind = iota
	// UnsupportedCombination marks an invalid pairing requested at
	// driver dispatch, e.g. Wolff with a non-Ising model.
	UnsupportedCombination
	// NotImplemented marks a placeholder feature, e.g. a unit cell
	// loaded from a file path.
	NotImplemented
	// IOFailure marks a file open/create/write/rename failure, or an
	// underlying columnar-library failure.
	IOFailure
	// ConfigParse marks a failure to deserialize or serialize the
	// configuration.
	ConfigParse
	// LatticeError marks a failure propagated from the lattice
	// collaborator.
	LatticeError
)

func (k Kind) String() string {
	switch k {
	case MisconfiguredProgram:
		return "misconfigured program"
	case UnsupportedCombination:
		return "unsupported combination"
	case NotImplemented:
		return "not implemented"
	case IOFailure:
		return "io failure"
	case ConfigParse:
		return "config parse"
	case LatticeError:
		return "lattice error"
	default:
		return "unknown error"
	}
}

// Error is a typed, optionally-wrapping error. Two Errors compare
// equal under errors.Is when they share a Kind, regardless of
// message, so callers can test `errors.Is(err, verr.New(verr.NotImplemented, ""))`.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

// New builds an Error of the given kind with a chk.Err-style formatted
// message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around a lower-level cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, verr.New(kind, "")) works regardless of message.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// Of reports whether err is (or wraps) an Error of the given kind.
func Of(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
