// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spin implements the magnetic moment primitives that a lattice
// site carries: the two-valued Ising spin and the unit-vector
// Heisenberg spin, plus the dense sequence of them that makes up a
// simulation state.
package spin

import "math/rand/v2"

// Spin is the capability set every concrete spin representation must
// provide. Implementations are small value types and are compared by
// dynamic type, not by identity.
type Spin interface {
	// Dot computes the inner product with another spin of the same
	// concrete kind. Panics if other is not the same concrete type.
	Dot(other Spin) float64

	// Projections returns the (sx, sy, sz) Cartesian components used to
	// fold many spins into a Field.
	Projections() (sx, sy, sz float64)
}

// Flipper is implemented by spins that admit a deterministic antipode.
type Flipper interface {
	Spin
	Flip() Spin
}

// Field is an oriented magnetic moment: a unit-ish orientation spin and
// a non-negative magnitude.
type Field struct {
	Orientation Spin
	Magnitude   float64
}

// Kind is a registry of the per-variant behavior that cannot be
// expressed as methods on Spin itself (construction has no receiver).
// It plays the role the teacher's element/model factories play
// (ele/factory.go): a value that knows how to allocate and interpret a
// family of otherwise-opaque values.
type Kind interface {
	// Up returns the reference "up" spin for this kind.
	Up() Spin
	// Down returns the reference "down" spin for this kind.
	Down() Spin
	// Rand draws a uniformly random spin of this kind.
	Rand(rng *rand.Rand) Spin
	// FromProjections folds accumulated (x, y, z) projections — e.g. a
	// sum over a State's spins — into a Field of this kind.
	FromProjections(x, y, z float64) Field
}

// ZeroField is the additive identity Field: zero magnitude, oriented up.
func ZeroField(kind Kind) Field {
	return Field{Orientation: kind.Up(), Magnitude: 0}
}
