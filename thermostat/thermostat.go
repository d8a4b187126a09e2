// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermostat represents the thermal bath a sampler couples to:
// a temperature and an external field.
package thermostat

import "github.com/odarbelaeze/vegas/spin"

// epsilon is the smallest positive float64 such that 1+epsilon > 1,
// the same clamp value the original implementation uses (f64::EPSILON).
const epsilon = 2.220446049250313e-16

// Thermostat is an immutable-with-builder bath descriptor: temperature
// and external field. Machine replaces it wholesale between phases; it
// never mutates one in place.
type Thermostat struct {
	temperature float64
	field       spin.Field
}

// New builds a thermostat, clamping the temperature to at least
// epsilon.
func New(temperature float64, field spin.Field) Thermostat {
	return Thermostat{temperature: clamp(temperature), field: field}
}

// NearZero returns a thermostat at the lowest representable
// temperature and zero field.
func NearZero(kind spin.Kind) Thermostat {
	return Thermostat{temperature: epsilon, field: spin.ZeroField(kind)}
}

// WithTemperature returns a copy of t with a new (clamped) temperature.
func (t Thermostat) WithTemperature(temperature float64) Thermostat {
	t.temperature = clamp(temperature)
	return t
}

// WithField returns a copy of t with a new field.
func (t Thermostat) WithField(field spin.Field) Thermostat {
	t.field = field
	return t
}

// Temperature returns the bath temperature.
func (t Thermostat) Temperature() float64 { return t.temperature }

// Field returns the external field.
func (t Thermostat) Field() spin.Field { return t.field }

func clamp(temperature float64) float64 {
	if temperature < epsilon {
		return epsilon
	}
	return temperature
}
