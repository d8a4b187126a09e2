// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hamiltonian

import (
	"github.com/cpmech/gosl/la"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

// Coupling is one bond of a pairwise interaction: the constant J
// between sites A and B. Lattice.Couplings returns a slice of these so
// Exchange never needs to know how a lattice computes adjacency.
type Coupling struct {
	A, B int
	J    float64
}

// Exchange is the nearest-neighbour pairwise term: E = -J * (s_i . s_j)
// summed over bonds. It is assembled once, at construction, into a
// sparse symmetric compressed-column matrix so that Energy(i) only
// ever walks the bonds actually touching site i instead of scanning
// every bond in the lattice.
type Exchange struct {
	n   int
	mat *la.CCMatrix
}

// NewExchange builds an Exchange term over n sites from a list of
// couplings. Every coupling is entered twice (J at (A,B) and (B,A)) so
// the resulting matrix is symmetric, mirroring how the teacher
// assembles a symmetric Jacobian from local element contributions.
func NewExchange(n int, bonds []Coupling) Exchange {
	trip := new(la.Triplet)
	trip.Init(n, n, 2*len(bonds))
	for _, b := range bonds {
		trip.Put(b.A, b.B, b.J)
		trip.Put(b.B, b.A, b.J)
	}
	return Exchange{n: n, mat: trip.ToMatrix(nil)}
}

// Energy returns the exchange energy attributable to site index: the
// sum, over every bond incident to it, of -J * (s_index . s_neighbor).
// Walking column `index` of the compressed matrix visits exactly the
// neighbors of that site, so this is O(deg(index)) rather than O(n).
func (e Exchange) Energy(_ thermostat.Thermostat, state *spin.State, index int) float64 {
	var total float64
	here := state.At(index)
	start, end := e.mat.Ap[index], e.mat.Ap[index+1]
	for p := start; p < end; p++ {
		j := e.mat.Ai[p]
		J := e.mat.Ax[p]
		total += -J * here.Dot(state.At(j))
	}
	return total
}

// TotalEnergy sums Energy(i) over half of every bond, since each bond
// is counted once from each endpoint in Energy.
func (e Exchange) TotalEnergy(th thermostat.Thermostat, state *spin.State) float64 {
	return totalEnergyOf(e, th, state) / 2
}
