// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"math/rand/v2"

	"github.com/odarbelaeze/vegas/machine"
	"github.com/odarbelaeze/vegas/verr"
)

// Relax brings the system to equilibrium at a single temperature.
type Relax struct {
	Steps       int
	Temperature float64
}

// DefaultRelax returns the program's default parameters.
func DefaultRelax() Relax {
	return Relax{Steps: 1000, Temperature: 3.0}
}

// Run validates parameters, sets the machine's temperature, then
// relaxes for Steps sweeps.
func (r Relax) Run(rng *rand.Rand, m *machine.Machine) error {
	if r.Steps < 1 {
		return verr.New(verr.MisconfiguredProgram, "relax requires at least one step, got %v", r.Steps)
	}
	if r.Temperature < epsilon {
		return verr.New(verr.MisconfiguredProgram, "relax temperature must be greater than zero, got %v", r.Temperature)
	}
	m.SetThermostat(m.Thermostat().WithTemperature(r.Temperature))
	return m.RelaxFor(rng, r.Steps)
}
