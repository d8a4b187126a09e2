// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import "math/rand/v2"

// ising is the two-valued discrete spin. Values are ±1 so Dot and the
// projection onto z fall out of plain arithmetic.
type ising int8

const (
	isingUp   ising = 1
	isingDown ising = -1
)

// Dot returns 1 if both spins agree, -1 otherwise.
func (s ising) Dot(other Spin) float64 {
	o := other.(ising)
	if s == o {
		return 1
	}
	return -1
}

// Projections places the whole moment on the z axis.
func (s ising) Projections() (sx, sy, sz float64) {
	return 0, 0, float64(s)
}

// Flip returns the antipode.
func (s ising) Flip() Spin {
	return -s
}

// IsingKind is the Kind implementation for the Ising model.
type IsingKind struct{}

// Up returns IsingSpin::Up equivalent.
func (IsingKind) Up() Spin { return isingUp }

// Down returns IsingSpin::Down equivalent.
func (IsingKind) Down() Spin { return isingDown }

// Rand draws a fair coin.
func (IsingKind) Rand(rng *rand.Rand) Spin {
	if rng.Float64() < 0.5 {
		return isingUp
	}
	return isingDown
}

// FromProjections collapses a z-axis sum into (orientation, |Σsz|).
func (IsingKind) FromProjections(_, _, z float64) Field {
	magnitude := z
	orientation := isingUp
	if magnitude < 0 {
		magnitude = -magnitude
		orientation = isingDown
	}
	return Field{Orientation: orientation, Magnitude: magnitude}
}
