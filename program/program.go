// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package program drives a machine.Machine through parameter sweeps:
// a single relaxation, a temperature ramp, or a field hysteresis loop.
package program

import (
	"math/rand/v2"

	"github.com/odarbelaeze/vegas/machine"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
	"github.com/odarbelaeze/vegas/verr"
)

// epsilon mirrors the clamp threshold thermostat uses internally
// (f64::EPSILON), so parameter validation rejects the same "zero"
// values the thermostat would otherwise silently clamp.
const epsilon = 2.220446049250313e-16

// Program drives a Machine through a sequence of thermostat mutations
// and relax/measure windows. Validation happens before any work: a
// Program must reject an invalid parameter set without touching the
// machine.
type Program interface {
	Run(rng *rand.Rand, m *machine.Machine) error
}

// fieldAlong builds a signed scalar field into a spin.Field: positive
// values point along Up, negative values along Down, magnitude is the
// absolute value. This is how HysteresisLoop's single scalar field
// parameter becomes the oriented Field the Hamiltonian layer expects.
func fieldAlong(kind spin.Kind, value float64) spin.Field {
	if value == 0 {
		return spin.ZeroField(kind)
	}
	if value > 0 {
		return spin.Field{Orientation: kind.Up(), Magnitude: value}
	}
	return spin.Field{Orientation: kind.Down(), Magnitude: -value}
}
