// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// vegas drives atomistic spin Monte Carlo simulations from the
// command line: print a default configuration, run one from a file
// or standard input, or run a quick benchmark on a cubic lattice.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/inp"
	"github.com/odarbelaeze/vegas/instrument"
	"github.com/odarbelaeze/vegas/integrator"
	"github.com/odarbelaeze/vegas/lattice"
	"github.com/odarbelaeze/vegas/machine"
	"github.com/odarbelaeze/vegas/program"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

func main() {
	seed := flag.Uint64("seed", 1, "seed for the PCG random generator, for reproducibility")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("vegas: %v\n", err)
			os.Exit(1)
		}
	}()

	args := flag.Args()
	if len(args) == 0 {
		chk.Panic("usage: vegas <input|run|bench> [args...]")
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	var err error
	switch args[0] {
	case "input":
		err = cmdInput()
	case "run":
		err = cmdRun(rng, args[1:])
	case "bench":
		err = cmdBench(rng, args[1:])
	default:
		chk.Panic("unknown subcommand %q", args[0])
	}
	if err != nil {
		io.PfRed("vegas: %v\n", err)
		os.Exit(1)
	}
}

func cmdInput() error {
	body, err := inp.Marshal(inp.Default())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(body)
	return err
}

func cmdRun(rng *rand.Rand, args []string) error {
	if len(args) == 0 {
		chk.Panic("usage: vegas run <path|->")
	}
	var f *os.File
	if args[0] == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
	}
	in, err := inp.Parse(f)
	if err != nil {
		return err
	}
	if err := in.Run(rng); err != nil {
		return err
	}
	io.Pfgreen("vegas: run completed\n")
	return nil
}

func cmdBench(rng *rand.Rand, args []string) error {
	if len(args) != 2 {
		chk.Panic("usage: vegas bench <ising|heisenberg> <length>")
	}
	var length int
	if _, err := fmt.Sscanf(args[1], "%d", &length); err != nil {
		chk.Panic("invalid length %q: %v", args[1], err)
	}

	switch args[0] {
	case "ising":
		return benchIsing(rng, length)
	case "heisenberg":
		return benchModel(rng, spin.HeisenbergKind{}, length, 2.5)
	default:
		chk.Panic("unknown bench model %q", args[0])
	}
	return nil
}

// benchIsing runs the Ising benchmark's tighter schedule: a fully
// periodic cube of side length, the flip integrator, and a slow cool
// from 2.8 down to 1.8.
func benchIsing(rng *rand.Rand, length int) error {
	kind := spin.IsingKind{}
	lat := lattice.SC(1.0).Expand(length, length, length)
	h := hamiltonian.NewExchange(lat.Sites(), lat.Couplings(1.0))
	insts := []instrument.Instrument{instrument.NewStatSensor()}
	th := thermostat.New(2.8, spin.ZeroField(kind))
	state := spin.RandWithSize(kind, rng, lat.Sites())
	m := machine.New(th, h, integrator.MetropolisFlipIntegrator{}, insts, state)

	relax := program.Relax{Steps: 500000, Temperature: 2.8}
	if err := relax.Run(rng, m); err != nil {
		return err
	}
	cool := program.CoolDown{
		MaxTemperature: 2.8,
		MinTemperature: 1.8,
		CoolRate:       0.05,
		Relax:          0,
		Steps:          500000,
	}
	return cool.Run(rng, m)
}

// benchModel mirrors the generic benchmark: a fully periodic cube,
// the non-flip Metropolis integrator, and a single cool-down ramp
// whose ceiling depends on the model.
func benchModel(rng *rand.Rand, kind spin.Kind, length int, maxTemperature float64) error {
	lat := lattice.SC(1.0).Expand(length, length, length)
	h := hamiltonian.NewExchange(lat.Sites(), lat.Couplings(1.0))
	insts := []instrument.Instrument{instrument.NewStatSensor()}
	th := thermostat.New(2.8, spin.ZeroField(kind))
	state := spin.RandWithSize(kind, rng, lat.Sites())
	m := machine.New(th, h, integrator.MetropolisIntegrator{}, insts, state)

	cool := program.CoolDown{
		MaxTemperature: maxTemperature,
		MinTemperature: 0.1,
		CoolRate:       0.1,
		Relax:          1000,
		Steps:          20000,
	}
	return cool.Run(rng, m)
}
