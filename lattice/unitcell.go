// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

// neighborOffset describes one nearest-neighbor bond of a unit cell:
// from basis site fromBasis to basis site toBasis, possibly in an
// adjacent cell offset by (dx, dy, dz) cells.
type neighborOffset struct {
	fromBasis, toBasis int
	dx, dy, dz         int
}

// UnitCell is a small basis of site positions plus the set of
// nearest-neighbor bonds that repeat with it. A is the lattice
// constant; it is carried for callers that need real-space geometry
// but is not otherwise used by Expand, which only needs topology.
type UnitCell struct {
	A         float64
	basisLen  int
	neighbors []neighborOffset
}

// SC returns the simple cubic unit cell: one site per cell, bonded to
// its six axis-aligned neighbors.
func SC(a float64) UnitCell {
	return UnitCell{
		A:        a,
		basisLen: 1,
		neighbors: []neighborOffset{
			{0, 0, 1, 0, 0},
			{0, 0, 0, 1, 0},
			{0, 0, 0, 0, 1},
		},
	}
}

// BCC returns the body-centered cubic unit cell: a corner site and a
// body-center site, the center bonded to its eight surrounding
// corners.
func BCC(a float64) UnitCell {
	return UnitCell{
		A:        a,
		basisLen: 2,
		neighbors: []neighborOffset{
			{0, 1, 0, 0, 0},
			{0, 1, -1, 0, 0},
			{0, 1, 0, -1, 0},
			{0, 1, 0, 0, -1},
			{0, 1, -1, -1, 0},
			{0, 1, -1, 0, -1},
			{0, 1, 0, -1, -1},
			{0, 1, -1, -1, -1},
		},
	}
}

// FCC returns the face-centered cubic unit cell: a corner site and
// three face-center sites, bonded to their twelve nearest neighbors.
func FCC(a float64) UnitCell {
	return UnitCell{
		A:        a,
		basisLen: 4,
		neighbors: []neighborOffset{
			{0, 1, 0, 0, 0}, {0, 1, -1, 0, 0}, {0, 1, 0, -1, 0}, {0, 1, -1, -1, 0},
			{0, 2, 0, 0, 0}, {0, 2, -1, 0, 0}, {0, 2, 0, 0, -1}, {0, 2, -1, 0, -1},
			{0, 3, 0, 0, 0}, {0, 3, 0, -1, 0}, {0, 3, 0, 0, -1}, {0, 3, 0, -1, -1},
			{1, 2, 0, 0, 0}, {1, 2, 0, 1, 0}, {1, 2, 0, 0, -1}, {1, 2, 0, 1, -1},
			{1, 3, 0, 0, 0}, {1, 3, 1, 0, 0}, {1, 3, 0, 0, -1}, {1, 3, 1, 0, -1},
			{2, 3, 0, 0, 0}, {2, 3, 1, 0, 0}, {2, 3, 0, -1, 0}, {2, 3, 1, -1, 0},
		},
	}
}

// Expand repeats the unit cell nx * ny * nz times under periodic
// boundary conditions in every direction, producing a Lattice with
// nx*ny*nz*basisLen sites. Cell indices advance the way lattice.rs's
// counter-with-carry SiteIterator advances (x fastest, then y, then
// z), wrapping modulo the corresponding extent to realize the default
// fully periodic boundary; DropX/DropY/DropZ later open a boundary by
// removing the bonds this wrap produced.
func (u UnitCell) Expand(nx, ny, nz int) *Lattice {
	n := nx * ny * nz * u.basisLen
	lat := &Lattice{
		graph: newGraph(n),
		n:     n,
		wrapX: make(map[Edge]bool),
		wrapY: make(map[Edge]bool),
		wrapZ: make(map[Edge]bool),
	}

	index := func(x, y, z, b int) int {
		return ((z*ny+y)*nx+x)*u.basisLen + b
	}

	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				for _, off := range u.neighbors {
					tx, wrapX := wrap(x+off.dx, nx)
					ty, wrapY := wrap(y+off.dy, ny)
					tz, wrapZ := wrap(z+off.dz, nz)
					a := index(x, y, z, off.fromBasis)
					b := index(tx, ty, tz, off.toBasis)
					lat.addBond(a, b, wrapX, wrapY, wrapZ)
				}
			}
		}
	}
	return lat
}

// wrap reduces v into [0, max) and reports whether it had to wrap
// around the periodic boundary to get there.
func wrap(v, max int) (int, bool) {
	if max <= 0 {
		return 0, false
	}
	wrapped := v < 0 || v >= max
	m := v % max
	if m < 0 {
		m += max
	}
	return m, wrapped
}
