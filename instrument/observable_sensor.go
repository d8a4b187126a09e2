// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/odarbelaeze/vegas/hamiltonian"
	"github.com/odarbelaeze/vegas/spin"
	"github.com/odarbelaeze/vegas/thermostat"
)

var observableSchema = arrow.NewSchema([]arrow.Field{
	{Name: "relax", Type: arrow.FixedWidthTypes.Boolean},
	{Name: "stage", Type: arrow.PrimitiveTypes.Uint64},
	{Name: "step", Type: arrow.PrimitiveTypes.Uint64},
	{Name: "temperature", Type: arrow.PrimitiveTypes.Float64},
	{Name: "field", Type: arrow.PrimitiveTypes.Float64},
	{Name: "energy", Type: arrow.PrimitiveTypes.Float64},
	{Name: "magnetization", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// ObservableSensor records every per-step (energy, magnetization)
// reading, both during relaxation and measurement, tagged with which
// phase and stage produced it. It buffers rows in memory and flushes
// a single Parquet file on Close, published atomically via a
// temp-file-then-rename so a crash never leaves a half-written file
// at the destination path.
type ObservableSensor struct {
	Nop

	path string

	relaxB       *array.BooleanBuilder
	stageB       *array.Uint64Builder
	stepB        *array.Uint64Builder
	temperatureB *array.Float64Builder
	fieldB       *array.Float64Builder
	energyB      *array.Float64Builder
	magB         *array.Float64Builder

	relax       bool
	stage       uint64
	step        uint64
	thermostat  thermostat.Thermostat
	hamiltonian hamiltonian.Hamiltonian
}

// NewObservableSensor returns a sensor that will publish its
// accumulated readings to path on Close.
func NewObservableSensor(path string) *ObservableSensor {
	mem := memory.NewGoAllocator()
	return &ObservableSensor{
		path:         path,
		relaxB:       array.NewBooleanBuilder(mem),
		stageB:       array.NewUint64Builder(mem),
		stepB:        array.NewUint64Builder(mem),
		temperatureB: array.NewFloat64Builder(mem),
		fieldB:       array.NewFloat64Builder(mem),
		energyB:      array.NewFloat64Builder(mem),
		magB:         array.NewFloat64Builder(mem),
	}
}

// OnRelaxStart marks the beginning of a relaxation phase.
func (o *ObservableSensor) OnRelaxStart(th thermostat.Thermostat, h hamiltonian.Hamiltonian, _ *spin.State) error {
	o.relax = true
	o.thermostat = th
	o.hamiltonian = h
	o.step = 0
	return nil
}

// OnRelaxEnd advances the stage counter.
func (o *ObservableSensor) OnRelaxEnd() error {
	o.stage++
	return nil
}

// OnMeasureStart marks the beginning of a measurement phase.
func (o *ObservableSensor) OnMeasureStart(th thermostat.Thermostat, h hamiltonian.Hamiltonian, _ *spin.State) error {
	o.relax = false
	o.thermostat = th
	o.hamiltonian = h
	o.step = 0
	return nil
}

// OnMeasureEnd advances the stage counter.
func (o *ObservableSensor) OnMeasureEnd() error {
	o.stage++
	return nil
}

// AfterStep appends one row for the current step.
func (o *ObservableSensor) AfterStep(state *spin.State) error {
	energy := o.hamiltonian.TotalEnergy(o.thermostat, state)
	magnetization := state.Magnetization().Magnitude

	o.relaxB.Append(o.relax)
	o.stageB.Append(o.stage)
	o.stepB.Append(o.step)
	o.temperatureB.Append(o.thermostat.Temperature())
	o.fieldB.Append(o.thermostat.Field().Magnitude)
	o.energyB.Append(energy)
	o.magB.Append(magnetization)

	o.step++
	return nil
}

// Close flushes every buffered row into a single Parquet file at the
// sensor's path, publishing it atomically.
func (o *ObservableSensor) Close() error {
	cols := []arrow.Array{
		o.relaxB.NewArray(),
		o.stageB.NewArray(),
		o.stepB.NewArray(),
		o.temperatureB.NewArray(),
		o.fieldB.NewArray(),
		o.energyB.NewArray(),
		o.magB.NewArray(),
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	nrows := int64(cols[0].Len())
	record := array.NewRecord(observableSchema, cols, nrows)
	defer record.Release()

	return writeParquetAtomic(o.path, observableSchema, record)
}

// writeParquetAtomic writes a single record batch to a Parquet file
// at path + ".tmp", then renames it into place, so a failed write
// never corrupts an existing output.
func writeParquetAtomic(path string, schema *arrow.Schema, record arrow.Record) error {
	tmpPath := path + ".tmp"
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating temp output for %s: %w", path, err)
	}

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	writer, err := pqarrow.NewFileWriter(schema, tmp, props, pqarrow.DefaultWriterProps())
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("opening parquet writer for %s: %w", path, err)
	}

	if err := writer.WriteBuffered(record); err != nil {
		writer.Close()
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing parquet batch to %s: %w", path, err)
	}

	if err := writer.Close(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("closing parquet writer for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("publishing %s: %w", path, err)
	}
	return nil
}
