// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/odarbelaeze/vegas/program"
)

// ProgramName tags which of Stage's optional payloads is active,
// mirroring the `program` discriminant field of the TOML tagged
// union (`{ program = "Relax", ... }`).
type ProgramName string

const (
	ProgramRelax      ProgramName = "Relax"
	ProgramCoolDown   ProgramName = "CoolDown"
	ProgramHysteresis ProgramName = "Hysteresis"
)

// Stage is one entry of the `stages` array: a discriminant plus
// exactly one of the three program payloads, following TOML's lack of
// native tagged unions (`serde(tag = "program")` in the original).
type Stage struct {
	Program    ProgramName             `toml:"program"`
	Relax      *program.Relax          `toml:"relax,omitempty"`
	CoolDown   *program.CoolDown       `toml:"cooldown,omitempty"`
	Hysteresis *program.HysteresisLoop `toml:"hysteresis,omitempty"`
}

// asProgram returns the concrete program.Program this stage wraps.
func (s Stage) asProgram() program.Program {
	switch s.Program {
	case ProgramCoolDown:
		if s.CoolDown != nil {
			return *s.CoolDown
		}
		return program.DefaultCoolDown()
	case ProgramHysteresis:
		if s.Hysteresis != nil {
			return *s.Hysteresis
		}
		return program.DefaultHysteresisLoop()
	default:
		if s.Relax != nil {
			return *s.Relax
		}
		return program.DefaultRelax()
	}
}

func defaultRelaxStage() *program.Relax {
	r := program.DefaultRelax()
	return &r
}

func defaultCoolDownStage() *program.CoolDown {
	c := program.DefaultCoolDown()
	return &c
}
