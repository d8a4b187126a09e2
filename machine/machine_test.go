// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package machine

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/instrument"
	"github.com/odarbelaeze/vegas/integrator"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

type countingInstrument struct {
	instrument.Nop
	relaxStarts, relaxEnds     int
	measureStarts, measureEnds int
	steps                      int
}

func (c *countingInstrument) OnRelaxStart(thermostat.Thermostat, hamiltonian.Hamiltonian, *spin.State) error {
	c.relaxStarts++
	return nil
}
func (c *countingInstrument) OnRelaxEnd() error { c.relaxEnds++; return nil }
func (c *countingInstrument) OnMeasureStart(thermostat.Thermostat, hamiltonian.Hamiltonian, *spin.State) error {
	c.measureStarts++
	return nil
}
func (c *countingInstrument) OnMeasureEnd() error        { c.measureEnds++; return nil }
func (c *countingInstrument) AfterStep(*spin.State) error { c.steps++; return nil }

func TestRelaxForCallsEachRelaxHookOnceAndAfterStepPerSweep(t *testing.T) {
	kind := spin.IsingKind{}
	state := spin.RandWithSize(kind, rand.New(rand.NewPCG(1, 2)), 16)
	th := thermostat.New(2.0, spin.ZeroField(kind))
	counter := &countingInstrument{}
	m := New(th, hamiltonian.Gauge{Value: 0}, integrator.MetropolisFlipIntegrator{}, []instrument.Instrument{counter}, state)

	if err := m.RelaxFor(rand.New(rand.NewPCG(3, 4)), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(counter.relaxStarts, 1)
	chk.IntAssert(counter.relaxEnds, 1)
	chk.IntAssert(counter.steps, 5)
	chk.IntAssert(counter.measureStarts, 0)
}

func TestMeasureForCallsEachMeasureHookOnceAndAfterStepPerSweep(t *testing.T) {
	kind := spin.IsingKind{}
	state := spin.RandWithSize(kind, rand.New(rand.NewPCG(1, 2)), 16)
	th := thermostat.New(2.0, spin.ZeroField(kind))
	counter := &countingInstrument{}
	m := New(th, hamiltonian.Gauge{Value: 0}, integrator.MetropolisFlipIntegrator{}, []instrument.Instrument{counter}, state)

	if err := m.MeasureFor(rand.New(rand.NewPCG(3, 4)), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(counter.measureStarts, 1)
	chk.IntAssert(counter.measureEnds, 1)
	chk.IntAssert(counter.steps, 7)
}

// orderedInstrument appends its own name to a shared log on every hook,
// so a test can assert the relative firing order across instruments.
type orderedInstrument struct {
	instrument.Nop
	name string
	log  *[]string
}

func (o orderedInstrument) OnRelaxStart(thermostat.Thermostat, hamiltonian.Hamiltonian, *spin.State) error {
	*o.log = append(*o.log, o.name+":relaxStart")
	return nil
}
func (o orderedInstrument) OnRelaxEnd() error {
	*o.log = append(*o.log, o.name+":relaxEnd")
	return nil
}
func (o orderedInstrument) AfterStep(*spin.State) error {
	*o.log = append(*o.log, o.name+":afterStep")
	return nil
}

func TestRelaxForFiresEachHookInInstrumentListOrder(t *testing.T) {
	kind := spin.IsingKind{}
	state := spin.RandWithSize(kind, rand.New(rand.NewPCG(1, 2)), 8)
	th := thermostat.New(2.0, spin.ZeroField(kind))
	var log []string
	a := orderedInstrument{name: "A", log: &log}
	b := orderedInstrument{name: "B", log: &log}
	m := New(th, hamiltonian.Gauge{Value: 0}, integrator.MetropolisFlipIntegrator{}, []instrument.Instrument{a, b}, state)

	if err := m.RelaxFor(rand.New(rand.NewPCG(3, 4)), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"A:relaxStart", "B:relaxStart",
		"A:afterStep", "B:afterStep",
		"A:afterStep", "B:afterStep",
		"A:relaxEnd", "B:relaxEnd",
	}
	if len(log) != len(want) {
		t.Fatalf("hook order mismatch: got %v want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("hook order mismatch at %d: got %v want %v", i, log, want)
		}
	}
}

type failingInstrument struct {
	instrument.Nop
}

func (failingInstrument) AfterStep(*spin.State) error {
	return errors.New("boom")
}

func TestRelaxForSurfacesInstrumentError(t *testing.T) {
	kind := spin.IsingKind{}
	state := spin.RandWithSize(kind, rand.New(rand.NewPCG(1, 2)), 8)
	th := thermostat.New(2.0, spin.ZeroField(kind))
	m := New(th, hamiltonian.Gauge{Value: 0}, integrator.MetropolisFlipIntegrator{}, []instrument.Instrument{failingInstrument{}}, state)

	if err := m.RelaxFor(rand.New(rand.NewPCG(3, 4)), 3); err == nil {
		t.Fatalf("expected an error from the failing instrument")
	}
}

func TestSetThermostatReplacesIt(t *testing.T) {
	kind := spin.IsingKind{}
	state := spin.UpWithSize(kind, 4)
	m := New(thermostat.New(1.0, spin.ZeroField(kind)), hamiltonian.Gauge{}, integrator.MetropolisFlipIntegrator{}, nil, state)
	m.SetThermostat(thermostat.New(5.0, spin.ZeroField(kind)))
	chk.Scalar(t, "temperature", 1e-15, m.Thermostat().Temperature(), 5.0)
}
