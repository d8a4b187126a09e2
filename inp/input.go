// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.toml) configuration
// file: model, algorithm, sample geometry, stage list, and output paths.
package inp

// Model selects the spin kind a run simulates.
type Model string

const (
	ModelIsing      Model = "ising"
	ModelHeisenberg Model = "heisenberg"
)

// Algorithm selects the integrator a run drives the machine with.
type Algorithm string

const (
	AlgorithmMetropolis Algorithm = "metropolis"
	AlgorithmWolff      Algorithm = "wolff"
)

// UnitCellName names one of the built-in unit cell constructors.
type UnitCellName string

const (
	UnitCellSC  UnitCellName = "sc"
	UnitCellBCC UnitCellName = "bcc"
	UnitCellFCC UnitCellName = "fcc"
)

// UnitCell selects a unit cell either by name or by a path to a
// lattice description file. Only one of the two is set; Path, when
// present, takes priority, matching the TOML tagged-union shape
// (`sample.unitcell.name` or `sample.unitcell.path`).
type UnitCell struct {
	Name UnitCellName `toml:"name,omitempty"`
	Path string       `toml:"path,omitempty"`
}

// DefaultUnitCell returns the simple-cubic unit cell by name.
func DefaultUnitCell() UnitCell {
	return UnitCell{Name: UnitCellSC}
}

// UnitCellSize is the number of unit cells to tile along each axis.
type UnitCellSize struct {
	X int `toml:"x"`
	Y int `toml:"y"`
	Z int `toml:"z"`
}

// DefaultUnitCellSize returns a single unexpanded unit cell.
func DefaultUnitCellSize() UnitCellSize {
	return UnitCellSize{X: 1, Y: 1, Z: 1}
}

// PeriodicBoundaryConditions selects which axes wrap around.
type PeriodicBoundaryConditions struct {
	X bool `toml:"x"`
	Y bool `toml:"y"`
	Z bool `toml:"z"`
}

// DefaultPeriodicBoundaryConditions returns fully periodic boundaries.
func DefaultPeriodicBoundaryConditions() PeriodicBoundaryConditions {
	return PeriodicBoundaryConditions{X: true, Y: true, Z: true}
}

// ExchangeRandom is an optional alternative to the scalar exchange
// field: when exchange is absent and this is present, the exchange
// constant is drawn once, uniformly, from [Min, Max] at config-load
// time. A literal exchange value, when given, takes precedence and
// this is ignored. This does not touch the integrator's RNG — it is a
// one-time input transformation, not part of the sampler.
type ExchangeRandom struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Sample describes the lattice geometry a run is built on.
type Sample struct {
	UnitCell UnitCell                   `toml:"unitcell"`
	Size     UnitCellSize               `toml:"size"`
	PBC      PeriodicBoundaryConditions `toml:"pbc"`
}

// DefaultSample returns a single, fully periodic, simple-cubic cell.
func DefaultSample() Sample {
	return Sample{
		UnitCell: DefaultUnitCell(),
		Size:     DefaultUnitCellSize(),
		PBC:      DefaultPeriodicBoundaryConditions(),
	}
}

// StateOutput configures periodic spin-snapshot recording.
type StateOutput struct {
	Path      string `toml:"path"`
	Frequency int    `toml:"frequency"`
}

// Output configures the optional columnar writers a run starts
// alongside the always-on standard-output StatSensor.
type Output struct {
	Observables string       `toml:"observables,omitempty"`
	State       *StateOutput `toml:"state,omitempty"`
}

// DefaultOutput returns the same output paths the original driver
// writes to by default.
func DefaultOutput() *Output {
	return &Output{
		Observables: "./output.parquet",
		State:       &StateOutput{Path: "./state.parquet", Frequency: 1000},
	}
}

// Input is the TOML-deserialized root of a simulation run.
type Input struct {
	Model          Model           `toml:"model"`
	Algorithm      Algorithm       `toml:"algorithm"`
	Exchange       *float64        `toml:"exchange,omitempty"`
	ExchangeRandom *ExchangeRandom `toml:"exchange_random,omitempty"`
	Sample         Sample          `toml:"sample"`
	Stages         []Stage         `toml:"stages"`
	Output         *Output         `toml:"output,omitempty"`
}

// Default returns the configuration `vegas input` prints: an Ising
// model, Metropolis algorithm, a single simple-cubic cell, a short
// relaxation followed by a full cool-down, and both writers enabled.
func Default() Input {
	return Input{
		Model:     ModelIsing,
		Algorithm: AlgorithmMetropolis,
		Sample:    DefaultSample(),
		Stages: []Stage{
			{Program: ProgramRelax, Relax: defaultRelaxStage()},
			{Program: ProgramCoolDown, CoolDown: defaultCoolDownStage()},
		},
		Output: DefaultOutput(),
	}
}
