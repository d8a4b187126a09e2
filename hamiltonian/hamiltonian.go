// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hamiltonian implements the energy components of the system:
// polymorphic contributions that can be aggregated into a total energy
// of a State under a Thermostat.
package hamiltonian

import (
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// Hamiltonian is an energy component characterized by the fact that it
// can compute the energy contributed by a single site.
type Hamiltonian interface {
	// Energy returns the portion of the total energy that depends on
	// the spin at index. For pairwise terms this must include both
	// endpoints of every edge touching index, so that acceptance tests
	// built on local energy differences stay correct.
	Energy(th thermostat.Thermostat, state *spin.State, index int) float64

	// TotalEnergy returns the energy of the whole state. The default
	// implementation (see Sum over per-site energies in totalEnergyOf)
	// is correct for on-site terms; pairwise terms must override it to
	// avoid double counting.
	TotalEnergy(th thermostat.Thermostat, state *spin.State) float64
}

// totalEnergyOf sums Energy(i) over every site. The on-site
// Hamiltonians UniaxialAnisotropy and ZeemanEnergy use this directly as
// their TotalEnergy; Gauge computes its closed form n * Value instead.
func totalEnergyOf(h Hamiltonian, th thermostat.Thermostat, state *spin.State) float64 {
	var total float64
	for i := 0; i < state.Len(); i++ {
		total += h.Energy(th, state, i)
	}
	return total
}

// Sum flattens a list of Hamiltonians into a single left-leaning
// Compound tree, the Go analogue of the original's `hamiltonian!` macro
// (spec.md §9 design note (a)).
func Sum(components ...Hamiltonian) Hamiltonian {
	switch len(components) {
	case 0:
		return Gauge{Value: 0}
	case 1:
		return components[0]
	default:
		acc := components[0]
		for _, c := range components[1:] {
			acc = Compound{A: acc, B: c}
		}
		return acc
	}
}
