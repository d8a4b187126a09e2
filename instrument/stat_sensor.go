// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"github.com/cpmech/gosl/io"

	"github.com/odarbelaeze/vegas/accumulator"
	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// StatSensor accumulates per-step energy and magnetization during a
// measurement window and, once the window closes, prints a single
// fixed-precision text line to standard output: temperature, field
// magnitude, mean energy, energy susceptibility, mean magnetization,
// magnetization susceptibility, Binder cumulant.
type StatSensor struct {
	Nop

	energyAcc        *accumulator.Accumulator
	magnetizationAcc *accumulator.Accumulator

	thermostat  thermostat.Thermostat
	hamiltonian hamiltonian.Hamiltonian
	n           int
	measuring   bool
}

// NewStatSensor returns a StatSensor ready to attach to a Machine.
func NewStatSensor() *StatSensor {
	return &StatSensor{
		energyAcc:        accumulator.New(),
		magnetizationAcc: accumulator.New(),
	}
}

// OnMeasureStart remembers the thermostat, Hamiltonian and site count
// for the window that is about to begin.
func (s *StatSensor) OnMeasureStart(th thermostat.Thermostat, h hamiltonian.Hamiltonian, state *spin.State) error {
	s.thermostat = th
	s.hamiltonian = h
	s.n = state.Len()
	s.measuring = true
	return nil
}

// AfterStep folds the current total energy and magnetization into the
// running accumulators, but only while a measurement window is open.
func (s *StatSensor) AfterStep(state *spin.State) error {
	if !s.measuring {
		return nil
	}
	energy := s.hamiltonian.TotalEnergy(s.thermostat, state)
	magnetization := state.Magnetization().Magnitude
	s.energyAcc.Collect(energy)
	s.magnetizationAcc.Collect(magnetization)
	return nil
}

// OnMeasureEnd prints the accumulated statistics and resets for the
// next window.
func (s *StatSensor) OnMeasureEnd() error {
	if s.measuring && s.n > 0 {
		temp := s.thermostat.Temperature()
		io.Pf(
			"%.16f %.16f %.16f %.16f %.16f %.16f %.16f\n",
			temp,
			s.thermostat.Field().Magnitude,
			s.energyAcc.Mean(),
			s.energyAcc.Variance()/(float64(s.n)*temp*temp),
			s.magnetizationAcc.Mean(),
			s.magnetizationAcc.Variance()/(float64(s.n)*temp),
			s.magnetizationAcc.BinderCumulant(),
		)
	}
	s.thermostat = thermostat.Thermostat{}
	s.hamiltonian = nil
	s.n = 0
	s.measuring = false
	s.energyAcc = accumulator.New()
	s.magnetizationAcc = accumulator.New()
	return nil
}
