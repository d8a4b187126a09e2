// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIsMatchesByKindNotMessage(t *testing.T) {
	a := New(MisconfiguredProgram, "max temperature %v less than min %v", 1.0, 2.0)
	b := New(MisconfiguredProgram, "a different message entirely")
	if !errors.Is(a, b) {
		t.Fatalf("expected errors of the same kind to match")
	}
}

func TestErrorsIsRejectsDifferentKind(t *testing.T) {
	a := New(MisconfiguredProgram, "msg")
	b := New(IOFailure, "msg")
	if errors.Is(a, b) {
		t.Fatalf("expected errors of different kinds not to match")
	}
}

func TestOfUnwrapsThroughFmtErrorf(t *testing.T) {
	base := New(LatticeError, "bad unit cell")
	wrapped := fmt.Errorf("loading lattice: %w", base)
	if !Of(wrapped, LatticeError) {
		t.Fatalf("expected Of to see through fmt.Errorf wrapping")
	}
}

func TestWrapPreservesCauseForUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(IOFailure, cause, "writing %s", "observables.parquet")
	if !errors.Is(err, cause) {
		t.Fatalf("expected Unwrap to expose the original cause")
	}
}
