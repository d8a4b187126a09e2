// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package instrument hooks into the simulation kernel at well-defined
// points to accumulate statistics and persist observations.
package instrument

import (
	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// Instrument observes a Machine through five lifecycle hooks. A
// failure from any hook aborts the rest of that hook's instrument
// list and surfaces to the caller.
type Instrument interface {
	OnRelaxStart(th thermostat.Thermostat, h hamiltonian.Hamiltonian, state *spin.State) error
	OnRelaxEnd() error
	OnMeasureStart(th thermostat.Thermostat, h hamiltonian.Hamiltonian, state *spin.State) error
	OnMeasureEnd() error
	AfterStep(state *spin.State) error
}

// Closer is implemented by instruments that buffer output in memory
// and need a final flush; callers invoke it once after a simulation
// finishes running. StatSensor does not implement it: it publishes
// incrementally, one line per measurement window.
type Closer interface {
	Close() error
}

// Nop implements every hook as a no-op. Concrete sensors embed it so
// they only need to override the hooks they care about.
type Nop struct{}

func (Nop) OnRelaxStart(thermostat.Thermostat, hamiltonian.Hamiltonian, *spin.State) error {
	return nil
}
func (Nop) OnRelaxEnd() error { return nil }
func (Nop) OnMeasureStart(thermostat.Thermostat, hamiltonian.Hamiltonian, *spin.State) error {
	return nil
}
func (Nop) OnMeasureEnd() error         { return nil }
func (Nop) AfterStep(*spin.State) error { return nil }

var _ Instrument = Nop{}
