// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import "math/rand/v2"

// State is a dense, ordered sequence of spins of a single kind. It is
// exclusively owned by whatever holds it (the machine, during a
// simulation run) — instruments only borrow it through hook arguments.
type State struct {
	kind  Kind
	spins []Spin
}

// UpWithSize builds a State of n spins all set to Kind.Up().
func UpWithSize(kind Kind, n int) *State {
	return fillWithSize(kind, n, kind.Up())
}

// DownWithSize builds a State of n spins all set to Kind.Down().
func DownWithSize(kind Kind, n int) *State {
	return fillWithSize(kind, n, kind.Down())
}

func fillWithSize(kind Kind, n int, value Spin) *State {
	spins := make([]Spin, n)
	for i := range spins {
		spins[i] = value
	}
	return &State{kind: kind, spins: spins}
}

// RandWithSize builds a State of n independently random spins.
func RandWithSize(kind Kind, rng *rand.Rand, n int) *State {
	spins := make([]Spin, n)
	for i := range spins {
		spins[i] = kind.Rand(rng)
	}
	return &State{kind: kind, spins: spins}
}

// Kind returns the spin kind this state was built from.
func (s *State) Kind() Kind { return s.kind }

// Len returns the number of sites.
func (s *State) Len() int { return len(s.spins) }

// At returns the spin at index i.
func (s *State) At(i int) Spin { return s.spins[i] }

// SetAt replaces the spin at index i.
func (s *State) SetAt(i int, sp Spin) { s.spins[i] = sp }

// Magnetization computes the net moment on demand; it is never cached.
func (s *State) Magnetization() Field {
	var sx, sy, sz float64
	for _, sp := range s.spins {
		x, y, z := sp.Projections()
		sx += x
		sy += y
		sz += z
	}
	return s.kind.FromProjections(sx, sy, sz)
}

// Clone returns a deep, independent copy of the state.
func (s *State) Clone() *State {
	spins := make([]Spin, len(s.spins))
	copy(spins, s.spins)
	return &State{kind: s.kind, spins: spins}
}
