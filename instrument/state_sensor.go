// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

var stateSchema = arrow.NewSchema([]arrow.Field{
	{Name: "relax", Type: arrow.FixedWidthTypes.Boolean},
	{Name: "stage", Type: arrow.PrimitiveTypes.Uint64},
	{Name: "step", Type: arrow.PrimitiveTypes.Uint64},
	{Name: "temperature", Type: arrow.PrimitiveTypes.Float64},
	{Name: "field", Type: arrow.PrimitiveTypes.Float64},
	{Name: "id", Type: arrow.PrimitiveTypes.Uint64},
	{Name: "sx", Type: arrow.PrimitiveTypes.Float64},
	{Name: "sy", Type: arrow.PrimitiveTypes.Float64},
	{Name: "sz", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// StateSensor writes one row per spin, every Frequency steps, during
// both relaxation and measurement. It is the only instrument whose
// output grows with the number of sites rather than the number of
// steps, so callers are expected to pick a Frequency that keeps the
// file a reasonable size.
type StateSensor struct {
	Nop

	path      string
	frequency int

	relaxB       *array.BooleanBuilder
	stageB       *array.Uint64Builder
	stepB        *array.Uint64Builder
	temperatureB *array.Float64Builder
	fieldB       *array.Float64Builder
	siteB        *array.Uint64Builder
	sxB, syB, szB *array.Float64Builder

	relax      bool
	stage      uint64
	step       uint64
	thermostat thermostat.Thermostat
}

// NewStateSensor returns a sensor that snapshots the full state every
// frequency steps and publishes it to path on Close.
func NewStateSensor(path string, frequency int) *StateSensor {
	mem := memory.NewGoAllocator()
	return &StateSensor{
		path:         path,
		frequency:    frequency,
		relaxB:       array.NewBooleanBuilder(mem),
		stageB:       array.NewUint64Builder(mem),
		stepB:        array.NewUint64Builder(mem),
		temperatureB: array.NewFloat64Builder(mem),
		fieldB:       array.NewFloat64Builder(mem),
		siteB:        array.NewUint64Builder(mem),
		sxB:          array.NewFloat64Builder(mem),
		syB:          array.NewFloat64Builder(mem),
		szB:          array.NewFloat64Builder(mem),
	}
}

// OnRelaxStart marks the beginning of a relaxation phase.
func (s *StateSensor) OnRelaxStart(th thermostat.Thermostat, _ hamiltonian.Hamiltonian, _ *spin.State) error {
	s.relax = true
	s.thermostat = th
	s.step = 0
	return nil
}

// OnRelaxEnd advances the stage counter.
func (s *StateSensor) OnRelaxEnd() error {
	s.stage++
	return nil
}

// OnMeasureStart marks the beginning of a measurement phase.
func (s *StateSensor) OnMeasureStart(th thermostat.Thermostat, _ hamiltonian.Hamiltonian, _ *spin.State) error {
	s.relax = false
	s.thermostat = th
	s.step = 0
	return nil
}

// OnMeasureEnd advances the stage counter.
func (s *StateSensor) OnMeasureEnd() error {
	s.stage++
	return nil
}

// AfterStep writes one row per spin, but only on steps that are a
// multiple of the configured frequency.
func (s *StateSensor) AfterStep(state *spin.State) error {
	if s.frequency <= 0 || s.step%uint64(s.frequency) != 0 {
		s.step++
		return nil
	}
	temp := s.thermostat.Temperature()
	field := s.thermostat.Field().Magnitude
	for site := 0; site < state.Len(); site++ {
		sx, sy, sz := state.At(site).Projections()
		s.relaxB.Append(s.relax)
		s.stageB.Append(s.stage)
		s.stepB.Append(s.step)
		s.temperatureB.Append(temp)
		s.fieldB.Append(field)
		s.siteB.Append(uint64(site))
		s.sxB.Append(sx)
		s.syB.Append(sy)
		s.szB.Append(sz)
	}
	s.step++
	return nil
}

// Close flushes every buffered row into a single Parquet file at the
// sensor's path, publishing it atomically.
func (s *StateSensor) Close() error {
	cols := []arrow.Array{
		s.relaxB.NewArray(),
		s.stageB.NewArray(),
		s.stepB.NewArray(),
		s.temperatureB.NewArray(),
		s.fieldB.NewArray(),
		s.siteB.NewArray(),
		s.sxB.NewArray(),
		s.syB.NewArray(),
		s.szB.NewArray(),
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	nrows := int64(cols[0].Len())
	record := array.NewRecord(stateSchema, cols, nrows)
	defer record.Release()

	return writeParquetAtomic(s.path, stateSchema, record)
}
