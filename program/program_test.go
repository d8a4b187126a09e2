// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"math/rand/v2"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/instrument"
	"github.com/odarbelaeze/vegas/integrator"
	"github.com/odarbelaeze/vegas/machine"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// rungCounter counts measurement windows, one per rung of a program's
// field or temperature sweep.
type rungCounter struct {
	instrument.Nop
	rungs int
}

func (r *rungCounter) OnMeasureEnd() error {
	r.rungs++
	return nil
}

func newMachine(counter instrument.Instrument) *machine.Machine {
	kind := spin.IsingKind{}
	state := spin.RandWithSize(kind, rand.New(rand.NewPCG(1, 2)), 16)
	th := thermostat.New(3.0, spin.ZeroField(kind))
	insts := []instrument.Instrument{}
	if counter != nil {
		insts = append(insts, counter)
	}
	return machine.New(th, hamiltonian.Gauge{Value: 0}, integrator.MetropolisFlipIntegrator{}, insts, state)
}

func TestRelaxRejectsZeroSteps(t *testing.T) {
	r := Relax{Steps: 0, Temperature: 3.0}
	err := r.Run(rand.New(rand.NewPCG(1, 1)), newMachine(nil))
	if err == nil {
		t.Fatalf("expected an error for zero steps")
	}
}

func TestRelaxRejectsNonPositiveTemperature(t *testing.T) {
	r := Relax{Steps: 10, Temperature: 0}
	err := r.Run(rand.New(rand.NewPCG(1, 1)), newMachine(nil))
	if err == nil {
		t.Fatalf("expected an error for zero temperature")
	}
}

func TestRelaxSetsTemperatureAndRelaxes(t *testing.T) {
	counter := &rungCounter{}
	m := newMachine(counter)
	r := Relax{Steps: 5, Temperature: 7.0}
	if err := r.Run(rand.New(rand.NewPCG(2, 2)), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "temperature", 1e-15, m.Thermostat().Temperature(), 7.0)
	chk.IntAssert(counter.rungs, 0)
}

func TestCoolDownRejectsInvertedBounds(t *testing.T) {
	c := CoolDown{MaxTemperature: 0.1, MinTemperature: 3.0, CoolRate: 0.1, Relax: 1, Steps: 1}
	if err := c.Run(rand.New(rand.NewPCG(1, 1)), newMachine(nil)); err == nil {
		t.Fatalf("expected an error for max < min")
	}
}

func TestCoolDownRejectsZeroSteps(t *testing.T) {
	c := DefaultCoolDown()
	c.Steps = 0
	if err := c.Run(rand.New(rand.NewPCG(1, 1)), newMachine(nil)); err == nil {
		t.Fatalf("expected an error for zero steps")
	}
}

func TestCoolDownRejectsNonPositiveCoolRate(t *testing.T) {
	c := DefaultCoolDown()
	c.CoolRate = 0
	if err := c.Run(rand.New(rand.NewPCG(1, 1)), newMachine(nil)); err == nil {
		t.Fatalf("expected an error for zero cool rate")
	}
}

// TestCoolDownEmitsOneRungPerTemperatureStep exercises the documented
// end-to-end scenario: MaxTemperature=3.0, MinTemperature=0.1,
// CoolRate=0.1 ramps through 30 rungs (3.0, 2.9, ..., 0.1).
func TestCoolDownEmitsOneRungPerTemperatureStep(t *testing.T) {
	counter := &rungCounter{}
	m := newMachine(counter)
	c := CoolDown{MaxTemperature: 3.0, MinTemperature: 0.1, CoolRate: 0.1, Relax: 0, Steps: 1}
	if err := c.Run(rand.New(rand.NewPCG(3, 3)), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(counter.rungs, 30)
}

// temperatureLog records the thermostat's temperature at every measure
// window, so a test can inspect the full ramp a CoolDown traced.
type temperatureLog struct {
	instrument.Nop
	temperatures []float64
	last         func() float64
}

func (l *temperatureLog) OnMeasureStart(_ thermostat.Thermostat, _ hamiltonian.Hamiltonian, _ *spin.State) error {
	l.temperatures = append(l.temperatures, l.last())
	return nil
}

// TestCoolDownTerminalTemperatureBracketsMinTemperature checks the
// termination bound directly: the ramp's last measured rung sits at
// MinTemperature, and the next (unmeasured) candidate rung would have
// undershot it by exactly one cool rate step.
func TestCoolDownTerminalTemperatureBracketsMinTemperature(t *testing.T) {
	var m *machine.Machine
	log := &temperatureLog{last: func() float64 { return m.Thermostat().Temperature() }}
	m = newMachine(log)
	c := CoolDown{MaxTemperature: 3.0, MinTemperature: 0.1, CoolRate: 0.1, Relax: 0, Steps: 1}
	if err := c.Run(rand.New(rand.NewPCG(3, 3)), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const tol = 1e-9
	last := log.temperatures[len(log.temperatures)-1]
	nextCandidate := last - c.CoolRate
	if !(nextCandidate < c.MinTemperature+tol) {
		t.Fatalf("expected the unmeasured next rung %v to fall below MinTemperature %v", nextCandidate, c.MinTemperature)
	}
	if !(c.MinTemperature <= nextCandidate+c.CoolRate+tol) {
		t.Fatalf("MinTemperature %v should be within one cool rate step of the unmeasured rung %v", c.MinTemperature, nextCandidate)
	}
}

func TestHysteresisLoopRejectsZeroMaxField(t *testing.T) {
	h := DefaultHysteresisLoop()
	h.MaxField = 0
	if err := h.Run(rand.New(rand.NewPCG(1, 1)), newMachine(nil)); err == nil {
		t.Fatalf("expected an error for zero max field")
	}
}

func TestHysteresisLoopRejectsZeroFieldStep(t *testing.T) {
	h := DefaultHysteresisLoop()
	h.FieldStep = 0
	if err := h.Run(rand.New(rand.NewPCG(1, 1)), newMachine(nil)); err == nil {
		t.Fatalf("expected an error for zero field step")
	}
}

// TestHysteresisLoopEmitsElevenTwentyOneTwentyRungs exercises the
// documented three-leg scenario: MaxField=1.0, FieldStep=0.1 produces
// 11 rungs on the way up, 21 on the way down, and 20 on the way back
// up (stopping short of re-measuring the point leg 1 already covered).
func TestHysteresisLoopEmitsElevenTwentyOneTwentyRungs(t *testing.T) {
	counter := &rungCounter{}
	m := newMachine(counter)
	h := HysteresisLoop{Steps: 1, Relax: 1, Temperature: 3.0, MaxField: 1.0, FieldStep: 0.1}
	if err := h.Run(rand.New(rand.NewPCG(4, 4)), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(counter.rungs, 11+21+20)
}
