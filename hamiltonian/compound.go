// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hamiltonian

import (
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// Compound adds two Hamiltonians together, site by site. It is the
// binary building block behind Sum.
type Compound struct {
	A Hamiltonian
	B Hamiltonian
}

// Energy returns the combined per-site energy of both components.
func (c Compound) Energy(th thermostat.Thermostat, state *spin.State, index int) float64 {
	return c.A.Energy(th, state, index) + c.B.Energy(th, state, index)
}

// TotalEnergy returns the combined total energy of both components,
// deferring to each component's own TotalEnergy so pairwise terms
// keep their own double-counting correction.
func (c Compound) TotalEnergy(th thermostat.Thermostat, state *spin.State) float64 {
	return c.A.TotalEnergy(th, state) + c.B.TotalEnergy(th, state)
}
