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

// CoolDown ramps the temperature down from MaxTemperature to
// MinTemperature in steps of CoolRate, relaxing and measuring at each
// rung. It is the workhorse for locating a critical temperature.
type CoolDown struct {
	MaxTemperature float64
	MinTemperature float64
	CoolRate       float64
	Relax          int
	Steps          int
}

// DefaultCoolDown returns the program's default parameters.
func DefaultCoolDown() CoolDown {
	return CoolDown{
		MaxTemperature: 3.0,
		MinTemperature: 0.1,
		CoolRate:       0.1,
		Relax:          1000,
		Steps:          20000,
	}
}

// Run validates parameters, then repeats {set temperature; relax;
// measure; cool} starting at MaxTemperature, stopping after the
// iteration in which the temperature drops below MinTemperature.
func (c CoolDown) Run(rng *rand.Rand, m *machine.Machine) error {
	if c.MaxTemperature < c.MinTemperature {
		return verr.New(verr.MisconfiguredProgram, "max temperature %v is less than min temperature %v", c.MaxTemperature, c.MinTemperature)
	}
	if c.Steps < 1 {
		return verr.New(verr.MisconfiguredProgram, "cool down requires at least one measurement step, got %v", c.Steps)
	}
	if c.MinTemperature < epsilon {
		return verr.New(verr.MisconfiguredProgram, "min temperature must be greater than zero, got %v", c.MinTemperature)
	}
	if c.CoolRate < epsilon {
		return verr.New(verr.MisconfiguredProgram, "cool rate must be greater than zero, got %v", c.CoolRate)
	}

	// rungs is the number of temperatures from MaxTemperature down to
	// (and including) MinTemperature in CoolRate decrements. The ratio
	// is rounded down, with a small tolerance so that a ratio which is
	// whole up to floating-point error still counts its last rung; the
	// loop bound is then an integer instead of a floating-point
	// comparison against an accumulated sum, which drifts under
	// repeated subtraction.
	rungs := int(math.Floor((c.MaxTemperature-c.MinTemperature)/c.CoolRate+1e-9)) + 1
	for i := 0; i < rungs; i++ {
		temperature := c.MaxTemperature - float64(i)*c.CoolRate
		m.SetThermostat(m.Thermostat().WithTemperature(temperature))
		if err := m.RelaxFor(rng, c.Relax); err != nil {
			return err
		}
		if err := m.MeasureFor(rng, c.Steps); err != nil {
			return err
		}
	}
	return nil
}
