// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math/rand/v2"

	"github.com/cpmech/gosl/rnd"
	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/instrument"
	"github.com/odarbelaeze/vegas/integrator"
	"github.com/odarbelaeze/vegas/lattice"
	"github.com/odarbelaeze/vegas/machine"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
	"github.com/odarbelaeze/vegas/verr"
)

// exchangeConstant resolves the scalar exchange constant: the literal
// value when given, one uniform draw from ExchangeRandom's bounds when
// configured instead, or the original driver's own default of 1.0.
//
// The draw happens once, at config-resolution time, through gosl/rnd's
// own generator rather than the run's explicit *rand.Rand — this is
// input preparation, not part of the sampler the reproducibility
// invariant (spec.md §8, §9 "RNG ownership") governs.
func (in Input) exchangeConstant() float64 {
	if in.Exchange != nil {
		return *in.Exchange
	}
	if in.ExchangeRandom != nil {
		return rnd.Float64(in.ExchangeRandom.Min, in.ExchangeRandom.Max)
	}
	return 1.0
}

func (in Input) instruments() ([]instrument.Instrument, error) {
	insts := []instrument.Instrument{instrument.NewStatSensor()}
	if in.Output == nil {
		return insts, nil
	}
	if in.Output.Observables != "" {
		insts = append(insts, instrument.NewObservableSensor(in.Output.Observables))
	}
	if in.Output.State != nil {
		insts = append(insts, instrument.NewStateSensor(in.Output.State.Path, in.Output.State.Frequency))
	}
	return insts, nil
}

// closeInstruments releases every instrument implementing
// instrument.Closer, surfacing the first error encountered but
// attempting the rest regardless — a run that fails partway through
// should still flush whatever buffered writers it opened.
func closeInstruments(insts []instrument.Instrument) error {
	var first error
	for _, inst := range insts {
		closer, ok := inst.(instrument.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil && first == nil {
			first = verr.Wrap(verr.IOFailure, err, "closing instrument")
		}
	}
	return first
}

// Run builds the lattice, Hamiltonian, integrator and instrument list
// this configuration describes, then drives a machine.Machine through
// every stage in declaration order.
func (in Input) Run(rng *rand.Rand) error {
	lat, err := in.buildLattice()
	if err != nil {
		return err
	}

	exchange := in.exchangeConstant()

	switch in.Model {
	case ModelIsing, "":
		return runFor(spin.IsingKind{}, in, lat, exchange, rng)
	case ModelHeisenberg:
		if in.Algorithm == AlgorithmWolff {
			return verr.New(verr.UnsupportedCombination, "wolff algorithm is not implemented for the heisenberg model")
		}
		return runFor(spin.HeisenbergKind{}, in, lat, exchange, rng)
	default:
		return verr.New(verr.ConfigParse, "unrecognized model %q", in.Model)
	}
}

func runFor(kind spin.Kind, in Input, lat *lattice.Lattice, exchange float64, rng *rand.Rand) (err error) {
	h := hamiltonian.Sum(
		hamiltonian.NewExchange(lat.Sites(), lat.Couplings(exchange)),
		hamiltonian.ZeemanEnergy{},
	)

	integ, err := in.integratorFor(kind, lat, exchange)
	if err != nil {
		return err
	}

	insts, err := in.instruments()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeInstruments(insts); err == nil {
			err = closeErr
		}
	}()

	th := thermostat.New(2.8, spin.ZeroField(kind))
	state := spin.RandWithSize(kind, rng, lat.Sites())
	m := machine.New(th, h, integ, insts, state)

	for _, stage := range in.Stages {
		if err := stage.asProgram().Run(rng, m); err != nil {
			return err
		}
	}
	return nil
}

func (in Input) integratorFor(kind spin.Kind, lat *lattice.Lattice, exchange float64) (integrator.Integrator, error) {
	switch in.Algorithm {
	case AlgorithmWolff:
		if _, ok := kind.(spin.IsingKind); !ok {
			return nil, verr.New(verr.UnsupportedCombination, "wolff algorithm requires the ising model")
		}
		return integrator.WolffIntegrator{Exchange: exchange, Adjacency: lat}, nil
	case AlgorithmMetropolis, "":
		if _, ok := kind.(spin.IsingKind); ok {
			return integrator.MetropolisFlipIntegrator{}, nil
		}
		return integrator.MetropolisIntegrator{}, nil
	default:
		return nil, verr.New(verr.ConfigParse, "unrecognized algorithm %q", in.Algorithm)
	}
}
