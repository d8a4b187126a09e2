// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hamiltonian

import (
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// ZeemanEnergy couples every spin to the thermostat's external field.
// Per site: E_i = -(s_i . field.Orientation) * field.Magnitude. The
// sign follows the resolved convention in DESIGN.md: a spin aligned
// with the field lowers the energy, matching the field's own sign,
// with no separate moment-size factor folded in beyond Magnitude.
type ZeemanEnergy struct{}

// Energy returns the Zeeman energy contributed by site index, read
// from the thermostat's current field.
func (z ZeemanEnergy) Energy(th thermostat.Thermostat, state *spin.State, index int) float64 {
	field := th.Field()
	return -state.At(index).Dot(field.Orientation) * field.Magnitude
}

// TotalEnergy sums Energy over every site; the term is purely on-site.
func (z ZeemanEnergy) TotalEnergy(th thermostat.Thermostat, state *spin.State) float64 {
	return totalEnergyOf(z, th, state)
}
