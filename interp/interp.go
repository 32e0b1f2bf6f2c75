// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package interp implements bidirectional piecewise-linear interpolation over
// a pair of parallel sample tables.
//
// The independent column x has a fixed step, so the bracket for a forward
// lookup is computed directly. The dependent column y is strictly increasing
// but not evenly spaced, so an inverse lookup uses a binary search.
package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// stepTolerance is the relative error accepted when checking that x has a
// fixed step.
const stepTolerance = 1e-9

var (
	errShortTable = errors.New("interp: table needs at least two points")
	errBadStep    = errors.New("interp: step must be positive")
)

// Linear interpolates between the two samples bracketing a query value.
//
// A Linear is immutable and safe for concurrent use.
type Linear struct {
	step float64
	x    []float64
	y    []float64
}

// New returns a Linear over the sample columns x and y. x must start at x[0]
// and increase by exactly step; y must be strictly increasing. Both slices
// are copied.
func New(step float64, x, y []float64) (*Linear, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("interp: column length mismatch %d != %d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, errShortTable
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, errBadStep
	}
	for i := range x {
		want := x[0] + float64(i)*step
		if math.Abs(x[i]-want) > stepTolerance*step {
			return nil, fmt.Errorf("interp: x[%d]=%g, expected %g", i, x[i], want)
		}
		if i > 0 && !(y[i] > y[i-1]) {
			return nil, fmt.Errorf("interp: y is not strictly increasing at index %d (%g <= %g)", i, y[i], y[i-1])
		}
	}
	l := &Linear{
		step: step,
		x:    make([]float64, len(x)),
		y:    make([]float64, len(y)),
	}
	copy(l.x, x)
	copy(l.y, y)
	return l, nil
}

// Forward returns y for xv.
//
// xv must lie in [X(0), X(Len()-1)). The caller enforces the range; a value
// outside of it panics.
func (l *Linear) Forward(xv float64) float64 {
	// Use floor, not truncation, so the bracket is right for any sign.
	i := int(math.Floor((xv-l.x[0])/l.step)) + 1
	// The division may round across a sample for fractional steps; settle
	// the bracket on the stored samples so x[i-1] <= xv < x[i].
	if i > 1 && i <= len(l.x) && xv < l.x[i-1] {
		i--
	} else if i >= 1 && i < len(l.x) && xv >= l.x[i] {
		i++
	}
	// Measured from the lower sample, so offset is 0 on a sample.
	offset := xv - l.x[i-1]
	y1, y2 := l.y[i-1], l.y[i]
	return y1 + (y2-y1)/l.step*offset
}

// Inverse returns x for yv.
//
// yv must lie in [Y(0), Y(Len()-1)). A value equal to a sample resolves to
// the segment starting at that sample.
func (l *Linear) Inverse(yv float64) float64 {
	i := sort.Search(len(l.y), func(i int) bool { return l.y[i] > yv })
	y1, y2 := l.y[i-1], l.y[i]
	return l.x[i-1] + l.step/(y2-y1)*(yv-y1)
}

// Step returns the fixed interval between x samples.
func (l *Linear) Step() float64 {
	return l.step
}

// Len returns the number of samples.
func (l *Linear) Len() int {
	return len(l.x)
}

// X returns the i-th independent sample.
func (l *Linear) X(i int) float64 {
	return l.x[i]
}

// Y returns the i-th dependent sample.
func (l *Linear) Y(i int) float64 {
	return l.y[i]
}

func (l *Linear) String() string {
	return fmt.Sprintf("interp.Linear{%d points, x=[%g..%g] step %g, y=[%g..%g]}",
		len(l.x), l.x[0], l.x[len(l.x)-1], l.step, l.y[0], l.y[len(l.y)-1])
}

var _ fmt.Stringer = &Linear{}
