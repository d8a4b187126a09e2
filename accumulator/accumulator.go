// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package accumulator computes streaming statistical properties of a
// sequence of measurements without retaining the samples themselves.
package accumulator

// Accumulator tracks the running sums needed for mean, variance and
// the Binder cumulant of a stream of scalar measurements.
type Accumulator struct {
	sum       float64
	sumSq     float64
	sumFourth float64
	count     int
}

// New returns an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// Collect folds one more measurement into the running sums.
func (a *Accumulator) Collect(value float64) {
	a.sum += value
	a.sumSq += value * value
	a.sumFourth += value * value * value * value
	a.count++
}

// Count returns the number of measurements collected so far.
func (a *Accumulator) Count() int {
	return a.count
}

// Mean returns the arithmetic mean of the collected measurements.
func (a *Accumulator) Mean() float64 {
	return a.sum / float64(a.count)
}

// Variance returns the population variance of the collected
// measurements.
func (a *Accumulator) Variance() float64 {
	mean := a.Mean()
	return a.sumSq/float64(a.count) - mean*mean
}

// BinderCumulant returns the fourth-order Binder cumulant, a standard
// order-parameter estimator for locating phase transitions.
func (a *Accumulator) BinderCumulant() float64 {
	n := float64(a.count)
	second := a.sumSq / n
	fourth := a.sumFourth / n
	return 1.0 - fourth/(3.0*second*second)
}
