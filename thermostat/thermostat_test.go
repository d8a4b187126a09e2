// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermostat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/odarbelaeze/vegas/spin"
)

func TestNewClampsTemperature(t *testing.T) {
	th := New(-1, spin.ZeroField(spin.IsingKind{}))
	if th.Temperature() < epsilon {
		t.Fatalf("expected clamped temperature >= epsilon, got %v", th.Temperature())
	}
}

func TestWithTemperaturePreservesField(t *testing.T) {
	field := spin.Field{Orientation: spin.IsingKind{}.Up(), Magnitude: 2.5}
	th := New(3.0, field)
	th2 := th.WithTemperature(1.0)
	chk.Scalar(t, "temperature", 1e-15, th2.Temperature(), 1.0)
	chk.Scalar(t, "field magnitude unchanged", 1e-15, th2.Field().Magnitude, 2.5)
}

func TestNearZero(t *testing.T) {
	th := NearZero(spin.IsingKind{})
	chk.Scalar(t, "field magnitude", 1e-15, th.Field().Magnitude, 0)
}
