// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/odarbelaeze/vegas/lattice"
	"github.com/odarbelaeze/vegas/verr"
)

// buildLattice realizes Sample into a concrete lattice.Lattice: pick
// the unit cell, expand it to the configured size, then drop the
// non-periodic axes.
func (s Sample) buildLattice() (*lattice.Lattice, error) {
	var cell lattice.UnitCell
	switch s.UnitCell.Name {
	case UnitCellBCC:
		cell = lattice.BCC(1.0)
	case UnitCellFCC:
		cell = lattice.FCC(1.0)
	case UnitCellSC, "":
		cell = lattice.SC(1.0)
	default:
		if s.UnitCell.Path != "" {
			return nil, verr.New(verr.NotImplemented, "unit cell from path %q is not implemented", s.UnitCell.Path)
		}
		return nil, verr.New(verr.ConfigParse, "unrecognized unit cell name %q", s.UnitCell.Name)
	}
	if s.UnitCell.Path != "" {
		return nil, verr.New(verr.NotImplemented, "unit cell from path %q is not implemented", s.UnitCell.Path)
	}

	lat := cell.Expand(s.Size.X, s.Size.Y, s.Size.Z)
	if !s.PBC.X {
		lat = lat.DropX()
	}
	if !s.PBC.Y {
		lat = lat.DropY()
	}
	if !s.PBC.Z {
		lat = lat.DropZ()
	}
	return lat, nil
}
