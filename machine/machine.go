// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package machine orchestrates a single simulation run: it owns the
// thermostat, Hamiltonian, integrator, instrument list and state, and
// drives relaxation and measurement windows.
package machine

import (
	"fmt"
	"math/rand/v2"

	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/instrument"
	"github.com/odarbelaeze/vegas/integrator"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// Machine exclusively owns every component of a simulation run. No
// locks are needed: control flows downward only, from Program to
// Machine to Integrator/Instrument, and nothing here is shared across
// goroutines.
type Machine struct {
	thermostat  thermostat.Thermostat
	hamiltonian hamiltonian.Hamiltonian
	integrator  integrator.Integrator
	instruments []instrument.Instrument
	state       *spin.State
}

// New builds a Machine ready to relax and measure.
func New(
	th thermostat.Thermostat,
	h hamiltonian.Hamiltonian,
	integ integrator.Integrator,
	instruments []instrument.Instrument,
	state *spin.State,
) *Machine {
	return &Machine{
		thermostat:  th,
		hamiltonian: h,
		integrator:  integ,
		instruments: instruments,
		state:       state,
	}
}

// Thermostat returns the machine's current thermostat.
func (m *Machine) Thermostat() thermostat.Thermostat {
	return m.thermostat
}

// SetThermostat replaces the machine's thermostat. Programs use this
// to mutate temperature and field between measurement windows.
func (m *Machine) SetThermostat(th thermostat.Thermostat) {
	m.thermostat = th
}

// State returns the machine's current state, borrowed read-only.
func (m *Machine) State() *spin.State {
	return m.state
}

// run advances the state by steps sweeps, notifying every instrument
// after each one. The first instrument error aborts the rest of the
// instrument list for that step and is returned immediately.
func (m *Machine) run(rng *rand.Rand, steps int) error {
	for i := 0; i < steps; i++ {
		m.state = m.integrator.Step(rng, m.thermostat, m.hamiltonian, m.state)
		for _, inst := range m.instruments {
			if err := inst.AfterStep(m.state); err != nil {
				return fmt.Errorf("after step %d: %w", i, err)
			}
		}
	}
	return nil
}

// RelaxFor runs steps sweeps inside a relaxation window, calling
// OnRelaxStart before and OnRelaxEnd after on every instrument.
func (m *Machine) RelaxFor(rng *rand.Rand, steps int) error {
	for _, inst := range m.instruments {
		if err := inst.OnRelaxStart(m.thermostat, m.hamiltonian, m.state); err != nil {
			return fmt.Errorf("on relax start: %w", err)
		}
	}
	if err := m.run(rng, steps); err != nil {
		return err
	}
	for _, inst := range m.instruments {
		if err := inst.OnRelaxEnd(); err != nil {
			return fmt.Errorf("on relax end: %w", err)
		}
	}
	return nil
}

// MeasureFor runs steps sweeps inside a measurement window, calling
// OnMeasureStart before and OnMeasureEnd after on every instrument.
func (m *Machine) MeasureFor(rng *rand.Rand, steps int) error {
	for _, inst := range m.instruments {
		if err := inst.OnMeasureStart(m.thermostat, m.hamiltonian, m.state); err != nil {
			return fmt.Errorf("on measure start: %w", err)
		}
	}
	if err := m.run(rng, steps); err != nil {
		return err
	}
	for _, inst := range m.instruments {
		if err := inst.OnMeasureEnd(); err != nil {
			return fmt.Errorf("on measure end: %w", err)
		}
	}
	return nil
}
