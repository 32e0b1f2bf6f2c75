// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermocouple

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError through errors.Is.
var ErrOutOfRange = errors.New("thermocouple: value out of range")

// Bound identifies which end of a range a value violated.
type Bound int

const (
	// Below means the value was less than the inclusive minimum.
	Below Bound = iota
	// AtOrAbove means the value reached the exclusive maximum.
	AtOrAbove
)

func (b Bound) String() string {
	if b == Below {
		return "below minimum"
	}
	return "at or above maximum"
}

// RangeError is returned when a value lies outside the half-open domain
// [Min, Max) of the table axis it was looked up on.
type RangeError struct {
	Value float64
	Min   float64
	Max   float64
	// Unit is the axis unit, "°C" or "mV".
	Unit  string
	Bound Bound
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("thermocouple: %g%s out of range [%g%s, %g%s), %s",
		e.Value, e.Unit, e.Min, e.Unit, e.Max, e.Unit, e.Bound)
}

// Is implements errors.Is support for ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// checkRange returns a *RangeError unless min <= v < max. NaN always fails.
func checkRange(v, min, max float64, unit string) error {
	if min <= v && v < max {
		return nil
	}
	b := AtOrAbove
	if !(v >= min) {
		b = Below
	}
	return &RangeError{Value: v, Min: min, Max: max, Unit: unit, Bound: b}
}
