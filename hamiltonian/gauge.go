// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hamiltonian

import (
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// Gauge contributes a constant offset per site, independent of the
// state. It exists mostly to anchor a reference energy and as the
// identity element of Sum.
type Gauge struct {
	Value float64
}

// Energy returns the gauge constant for any site.
func (g Gauge) Energy(_ thermostat.Thermostat, _ *spin.State, _ int) float64 {
	return g.Value
}

// TotalEnergy returns n * Value.
func (g Gauge) TotalEnergy(_ thermostat.Thermostat, state *spin.State) float64 {
	return g.Value * float64(state.Len())
}
