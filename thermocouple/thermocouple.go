// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermocouple

import (
	"errors"
	"fmt"
	"math"

	"github.com/GermanBionicSystems/thermocouple/interp"
)

const (
	unitDegrees    = "°C"
	unitMillivolts = "mV"
)

// Converter converts between junction temperature and thermoelectric voltage
// for one thermocouple type.
type Converter interface {
	// DegreesToMillivolts returns the junction voltage for a temperature.
	DegreesToMillivolts(degrees float64) (float64, error)
	// MillivoltsToDegrees returns the junction temperature for a voltage.
	MillivoltsToDegrees(mv float64) (float64, error)
	// CompensatedTemperature returns the sense junction temperature given the
	// reference junction temperature and the measured junction voltage.
	CompensatedTemperature(reference, mv float64) (float64, error)
}

// Table is the calibration data of one thermocouple type.
//
// The degrees column is implicit: MinDegrees + i*Step for every entry of
// Millivolts. The declared bounds define the half-open domains accepted by the
// conversions and must lie within the table.
type Table struct {
	// Name of the thermocouple type, e.g. "Type K".
	Name string
	// Scale is the temperature scale of the degrees column.
	Scale string
	// Step is the interval between degree samples.
	Step          float64
	MinDegrees    float64
	MaxDegrees    float64
	MinMillivolts float64
	MaxMillivolts float64
	// Millivolts is the voltage at each degree sample, strictly increasing.
	Millivolts []float64
}

// Degrees returns the implicit degrees column.
func (t *Table) Degrees() []float64 {
	d := make([]float64, len(t.Millivolts))
	for i := range d {
		d[i] = t.MinDegrees + float64(i)*t.Step
	}
	return d
}

// Curve is the Converter implementation shared by every thermocouple type; a
// type only differs by the Table it is built from.
//
// A Curve is immutable and safe for concurrent use.
type Curve struct {
	table  Table
	interp *interp.Linear
}

// New returns a Curve for the calibration table t. The table is copied.
func New(t *Table) (*Curve, error) {
	if t == nil {
		return nil, errors.New("thermocouple: nil table")
	}
	if !(t.Step > 0) {
		return nil, fmt.Errorf("thermocouple: %s: invalid step %g", t.Name, t.Step)
	}
	n := (t.MaxDegrees-t.MinDegrees)/t.Step + 1
	if n != math.Trunc(n) || int(n) != len(t.Millivolts) {
		return nil, fmt.Errorf("thermocouple: %s: %d millivolt entries for %g..%g step %g", t.Name, len(t.Millivolts), t.MinDegrees, t.MaxDegrees, t.Step)
	}
	l, err := interp.New(t.Step, t.Degrees(), t.Millivolts)
	if err != nil {
		return nil, fmt.Errorf("thermocouple: %s: %w", t.Name, err)
	}
	first, last := t.Millivolts[0], t.Millivolts[len(t.Millivolts)-1]
	if t.MinMillivolts < first || t.MaxMillivolts > last || t.MinMillivolts >= t.MaxMillivolts {
		return nil, fmt.Errorf("thermocouple: %s: millivolt bounds [%g, %g) outside table [%g, %g]", t.Name, t.MinMillivolts, t.MaxMillivolts, first, last)
	}
	c := &Curve{table: *t, interp: l}
	c.table.Millivolts = append([]float64(nil), t.Millivolts...)
	return c, nil
}

// DegreesToMillivolts implements Converter.
//
// degrees must be in [MinDegrees, MaxDegrees).
func (c *Curve) DegreesToMillivolts(degrees float64) (float64, error) {
	if err := checkRange(degrees, c.table.MinDegrees, c.table.MaxDegrees, unitDegrees); err != nil {
		return 0, err
	}
	return c.interp.Forward(degrees), nil
}

// MillivoltsToDegrees implements Converter.
//
// mv must be in [MinMillivolts, MaxMillivolts).
func (c *Curve) MillivoltsToDegrees(mv float64) (float64, error) {
	if err := checkRange(mv, c.table.MinMillivolts, c.table.MaxMillivolts, unitMillivolts); err != nil {
		return 0, err
	}
	return c.interp.Inverse(mv), nil
}

// CompensatedTemperature implements Converter.
//
// The returned *RangeError is the one of the failing stage: a °C error for an
// out of range reference, a mV error when the summed voltage is out of range.
func (c *Curve) CompensatedTemperature(reference, mv float64) (float64, error) {
	ref, err := c.DegreesToMillivolts(reference)
	if err != nil {
		return 0, err
	}
	return c.MillivoltsToDegrees(ref + mv)
}

// Name returns the thermocouple type name.
func (c *Curve) Name() string {
	return c.table.Name
}

// Scale returns the temperature scale of the curve.
func (c *Curve) Scale() string {
	return c.table.Scale
}

// Table returns a copy of the calibration table.
func (c *Curve) Table() Table {
	t := c.table
	t.Millivolts = append([]float64(nil), c.table.Millivolts...)
	return t
}

// Interpolator returns the underlying interpolator. It is read only.
func (c *Curve) Interpolator() *interp.Linear {
	return c.interp
}

func (c *Curve) String() string {
	return fmt.Sprintf("%s: %g..%g %s, %g..%g mV", c.table.Name, c.table.MinDegrees, c.table.MaxDegrees, c.table.Scale, c.table.MinMillivolts, c.table.MaxMillivolts)
}

var _ Converter = &Curve{}
var _ fmt.Stringer = &Curve{}
