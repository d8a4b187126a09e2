// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hamiltonian

import (
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// UniaxialAnisotropy couples every spin to the Easy axis, weighted by
// Strength: E_i = Strength * (s_i . Easy)^2. A negative Strength
// favors alignment along Easy; a positive one penalizes it.
type UniaxialAnisotropy struct {
	Strength float64
	Easy     spin.Spin
}

// Energy returns the anisotropy energy contributed by site index.
func (u UniaxialAnisotropy) Energy(_ thermostat.Thermostat, state *spin.State, index int) float64 {
	d := state.At(index).Dot(u.Easy)
	return u.Strength * d * d
}

// TotalEnergy sums Energy over every site; the term is purely on-site.
func (u UniaxialAnisotropy) TotalEnergy(th thermostat.Thermostat, state *spin.State) float64 {
	return totalEnergyOf(u, th, state)
}
