// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"math"
	"math/rand/v2"

	"github.com/odarbelaeze/vegas/machine"
	"github.com/odarbelaeze/vegas/verr"
)

// HysteresisLoop sweeps the external field through three legs — up to
// MaxField, down to -MaxField, and back up to MaxField — relaxing and
// measuring at every rung, to trace out a hysteresis loop at a fixed
// temperature.
type HysteresisLoop struct {
	Steps       int
	Relax       int
	Temperature float64
	MaxField    float64
	FieldStep   float64
}

// DefaultHysteresisLoop returns the program's default parameters.
func DefaultHysteresisLoop() HysteresisLoop {
	return HysteresisLoop{
		Steps:       1000,
		Relax:       1000,
		Temperature: 3.0,
		MaxField:    1.0,
		FieldStep:   0.1,
	}
}

// Run validates parameters, fixes the temperature, then sweeps the
// field up, down, and back up, relaxing and measuring at each rung.
func (h HysteresisLoop) Run(rng *rand.Rand, m *machine.Machine) error {
	if h.Steps < 1 {
		return verr.New(verr.MisconfiguredProgram, "hysteresis loop requires at least one measurement step, got %v", h.Steps)
	}
	if h.Temperature < epsilon {
		return verr.New(verr.MisconfiguredProgram, "hysteresis loop temperature must be greater than zero, got %v", h.Temperature)
	}
	if h.MaxField < epsilon {
		return verr.New(verr.MisconfiguredProgram, "max field must be greater than zero, got %v", h.MaxField)
	}
	if h.FieldStep < epsilon {
		return verr.New(verr.MisconfiguredProgram, "field step must be greater than zero, got %v", h.FieldStep)
	}

	kind := m.State().Kind()
	m.SetThermostat(m.Thermostat().WithTemperature(h.Temperature))

	rung := func(field float64) error {
		m.SetThermostat(m.Thermostat().WithField(fieldAlong(kind, field)))
		if err := m.RelaxFor(rng, h.Relax); err != nil {
			return err
		}
		return m.MeasureFor(rng, h.Steps)
	}

	// nUp is the number of FieldStep increments from 0 to MaxField,
	// rounded to the nearest integer so each rung's field is derived
	// from an integer index instead of an accumulated sum, which would
	// drift under repeated floating-point addition/subtraction.
	nUp := int(math.Round(h.MaxField / h.FieldStep))

	// Leg 1: 0 up to and including MaxField.
	for i := 0; i <= nUp; i++ {
		if err := rung(float64(i) * h.FieldStep); err != nil {
			return err
		}
	}

	// Leg 2: MaxField down to and including -MaxField, re-measuring the
	// MaxField point leg 1 already recorded.
	for i := 0; i <= 2*nUp; i++ {
		if err := rung(h.MaxField - float64(i)*h.FieldStep); err != nil {
			return err
		}
	}

	// Leg 3: -MaxField back up, re-measuring the -MaxField point leg 2
	// already recorded but stopping one step short of MaxField so the
	// loop doesn't re-measure the point leg 1 already recorded.
	for i := 0; i < 2*nUp; i++ {
		if err := rung(-h.MaxField + float64(i)*h.FieldStep); err != nil {
			return err
		}
	}
	return nil
}
