// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// heisenberg is a classical unit three-vector spin.
type heisenberg [3]float64

// Dot is the Euclidean inner product.
func (s heisenberg) Dot(other Spin) float64 {
	o := other.(heisenberg)
	return floats.Dot(s[:], o[:])
}

// Projections returns the vector's own components.
func (s heisenberg) Projections() (sx, sy, sz float64) {
	return s[0], s[1], s[2]
}

// Flip returns the antipodal orientation.
func (s heisenberg) Flip() Spin {
	return heisenberg{-s[0], -s[1], -s[2]}
}

// HeisenbergKind is the Kind implementation for the Heisenberg model.
type HeisenbergKind struct{}

// Up is the +z unit vector.
func (HeisenbergKind) Up() Spin { return heisenberg{0, 0, 1} }

// Down is the -z unit vector.
func (HeisenbergKind) Down() Spin { return heisenberg{0, 0, -1} }

// Rand draws a uniformly random point on the unit sphere using
// Marsaglia's rejection method: pick (u1, u2) uniformly in [-1, 1)^2
// until u1^2+u2^2 < 1, then map onto the sphere.
func (HeisenbergKind) Rand(rng *rand.Rand) Spin {
	for {
		u1 := 2*rng.Float64() - 1
		u2 := 2*rng.Float64() - 1
		s := u1*u1 + u2*u2
		if s < 1 {
			root := math.Sqrt(1 - s)
			return heisenberg{2 * u1 * root, 2 * u2 * root, 1 - 2*s}
		}
	}
}

// FromProjections normalizes a summed vector into an orientation and
// its magnitude. The zero vector maps to the up orientation with zero
// magnitude, matching Field::zero.
func (HeisenbergKind) FromProjections(x, y, z float64) Field {
	magnitude := math.Sqrt(x*x + y*y + z*z)
	if magnitude == 0 {
		return Field{Orientation: heisenberg{0, 0, 1}, Magnitude: 0}
	}
	return Field{
		Orientation: heisenberg{x / magnitude, y / magnitude, z / magnitude},
		Magnitude:   magnitude,
	}
}
