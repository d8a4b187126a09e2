// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrator implements the single-sweep state-update
// strategies: Metropolis with random reorientation, Metropolis with
// spin flip, and Wolff cluster flip.
package integrator

import (
	"math"
	"math/rand/v2"

	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// Integrator advances a State by one sweep under a Hamiltonian and a
// Thermostat. It mutates state in place and returns the same pointer,
// matching the Machine's exclusive ownership of it.
type Integrator interface {
	Step(rng *rand.Rand, th thermostat.Thermostat, h hamiltonian.Hamiltonian, state *spin.State) *spin.State
}

// acceptanceProbability is the Metropolis criterion min(1, exp(-deltaE/T)).
func acceptanceProbability(deltaE, temperature float64) float64 {
	if deltaE <= 0 {
		return 1
	}
	return math.Exp(-deltaE / temperature)
}

// sweep runs n trial moves, each proposing a replacement for the spin
// at a uniformly chosen site via propose, accepting by the Metropolis
// criterion.
func sweep(rng *rand.Rand, th thermostat.Thermostat, h hamiltonian.Hamiltonian, state *spin.State, propose func(spin.Spin) spin.Spin) *spin.State {
	n := state.Len()
	temp := th.Temperature()
	for step := 0; step < n; step++ {
		site := rng.IntN(n)
		old := state.At(site)
		oldEnergy := h.Energy(th, state, site)
		state.SetAt(site, propose(old))
		newEnergy := h.Energy(th, state, site)
		delta := newEnergy - oldEnergy
		if delta <= 0 {
			continue
		}
		if rng.Float64() < acceptanceProbability(delta, temp) {
			continue
		}
		state.SetAt(site, old)
	}
	return state
}

// MetropolisIntegrator proposes a freshly-drawn random spin at each
// trial site.
type MetropolisIntegrator struct{}

// Step runs one sweep of random-reorientation trial moves.
func (MetropolisIntegrator) Step(rng *rand.Rand, th thermostat.Thermostat, h hamiltonian.Hamiltonian, state *spin.State) *spin.State {
	kind := state.Kind()
	return sweep(rng, th, h, state, func(spin.Spin) spin.Spin {
		return kind.Rand(rng)
	})
}

// MetropolisFlipIntegrator proposes flipping the current spin at each
// trial site. Required for Ising spins: reorientation only ever draws
// from {up, down}, so flip is what makes the chain irreducible.
type MetropolisFlipIntegrator struct{}

// Step runs one sweep of flip trial moves.
func (MetropolisFlipIntegrator) Step(rng *rand.Rand, th thermostat.Thermostat, h hamiltonian.Hamiltonian, state *spin.State) *spin.State {
	return sweep(rng, th, h, state, func(s spin.Spin) spin.Spin {
		return s.(spin.Flipper).Flip()
	})
}
