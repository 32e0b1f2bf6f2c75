// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermocouple

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Compensated temperature for a 20°C reference and 14mV, from the table.
const compensated20C14mV = 362.0238095238095

func TestTypeKTable(t *testing.T) {
	tk := TypeK()
	if len(tk.Millivolts) != 165 {
		t.Fatalf("expected 165 entries, got %d", len(tk.Millivolts))
	}
	d := tk.Degrees()
	if d[0] != -270 || d[len(d)-1] != 1370 {
		t.Errorf("degrees column spans %g..%g", d[0], d[len(d)-1])
	}
	for i := 1; i < len(tk.Millivolts); i++ {
		if !(tk.Millivolts[i] > tk.Millivolts[i-1]) {
			t.Errorf("millivolts not strictly increasing at %d", i)
		}
	}
	// Every call returns a fresh table.
	tk.Millivolts[0] = 0
	if TypeK().Millivolts[0] != -6.458 {
		t.Error("TypeK() shares its backing array")
	}
}

func TestNewInvalid(t *testing.T) {
	good := func() *Table {
		return &Table{Name: "test", Scale: "Celsius", Step: 10, MinDegrees: 0, MaxDegrees: 20, MinMillivolts: 0, MaxMillivolts: 2, Millivolts: []float64{0, 1, 2}}
	}
	if _, err := New(good()); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		modify func(t *Table)
	}{
		{"zero step", func(t *Table) { t.Step = 0 }},
		{"length", func(t *Table) { t.Millivolts = t.Millivolts[:2] }},
		{"fractional span", func(t *Table) { t.MaxDegrees = 25 }},
		{"not monotonic", func(t *Table) { t.Millivolts[1] = 3 }},
		{"min mv below table", func(t *Table) { t.MinMillivolts = -1 }},
		{"max mv above table", func(t *Table) { t.MaxMillivolts = 2.5 }},
		{"empty mv range", func(t *Table) { t.MinMillivolts = 2 }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tbl := good()
			test.modify(tbl)
			if c, err := New(tbl); err == nil {
				t.Errorf("expected error, got %s", c)
			}
		})
	}
	if _, err := New(nil); err == nil {
		t.Error("expected error for nil table")
	}
}

func TestExactAtSamples(t *testing.T) {
	c := NewTypeK()
	tbl := c.Table()
	d := tbl.Degrees()
	for i := 0; i < len(d)-1; i++ {
		mv, err := c.DegreesToMillivolts(d[i])
		if err != nil {
			t.Fatal(err)
		}
		if mv != tbl.Millivolts[i] {
			t.Errorf("DegreesToMillivolts(%g)=%g, expected %g", d[i], mv, tbl.Millivolts[i])
		}
		if tbl.Millivolts[i] >= tbl.MaxMillivolts {
			continue
		}
		deg, err := c.MillivoltsToDegrees(tbl.Millivolts[i])
		if err != nil {
			t.Fatal(err)
		}
		if deg != d[i] {
			t.Errorf("MillivoltsToDegrees(%g)=%g, expected %g", tbl.Millivolts[i], deg, d[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c := NewTypeK()
	for d := -269.75; d < 1370; d += 0.5 {
		mv, err := c.DegreesToMillivolts(d)
		if err != nil {
			t.Fatal(err)
		}
		got, err := c.MillivoltsToDegrees(mv)
		if err != nil {
			t.Fatalf("MillivoltsToDegrees(%g): %v", mv, err)
		}
		if math.Abs(got-d) > 1e-9 {
			t.Errorf("round trip %g -> %gmV -> %g", d, mv, got)
		}
	}
}

func TestMonotonic(t *testing.T) {
	c := NewTypeK()
	last := math.Inf(-1)
	for d := -270.0; d < 1370; d += 0.25 {
		mv, err := c.DegreesToMillivolts(d)
		if err != nil {
			t.Fatal(err)
		}
		if mv < last {
			t.Fatalf("DegreesToMillivolts(%g)=%g < %g", d, mv, last)
		}
		last = mv
	}
}

func TestMidpoint(t *testing.T) {
	c := NewTypeK()
	tbl := c.Table()
	d := tbl.Degrees()
	for i := 0; i < len(d)-1; i++ {
		got, err := c.DegreesToMillivolts(d[i] + tbl.Step/2)
		if err != nil {
			t.Fatal(err)
		}
		want := (tbl.Millivolts[i] + tbl.Millivolts[i+1]) / 2
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("midpoint of %g..%g: %g, expected %g", d[i], d[i+1], got, want)
		}
	}
}

func TestBoundaries(t *testing.T) {
	c := NewTypeK()
	tests := []struct {
		name  string
		f     func(float64) (float64, error)
		in    float64
		want  *RangeError
		wantV float64
	}{
		{"min degrees", c.DegreesToMillivolts, -270, nil, -6.458},
		{"below min degrees", c.DegreesToMillivolts, -270.000001, &RangeError{Value: -270.000001, Min: -270, Max: 1370, Unit: "°C", Bound: Below}, 0},
		{"max degrees", c.DegreesToMillivolts, 1370, &RangeError{Value: 1370, Min: -270, Max: 1370, Unit: "°C", Bound: AtOrAbove}, 0},
		{"nan degrees", c.DegreesToMillivolts, math.NaN(), nil, 0},
		{"min mv", c.MillivoltsToDegrees, -6.458, nil, -270},
		{"below min mv", c.MillivoltsToDegrees, -6.5, &RangeError{Value: -6.5, Min: -6.458, Max: 54.818, Unit: "mV", Bound: Below}, 0},
		{"max mv", c.MillivoltsToDegrees, 54.818, &RangeError{Value: 54.818, Min: -6.458, Max: 54.818, Unit: "mV", Bound: AtOrAbove}, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.f(test.in)
			if math.IsNaN(test.in) {
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("expected ErrOutOfRange, got %v", err)
				}
				return
			}
			if test.want == nil {
				if err != nil {
					t.Fatal(err)
				}
				if got != test.wantV {
					t.Errorf("got %g, expected %g", got, test.wantV)
				}
				return
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RangeError, got %v", err)
			}
			if diff := cmp.Diff(test.want, re); diff != "" {
				t.Errorf("RangeError mismatch (-want +got):\n%s", diff)
			}
			t.Log(err)
		})
	}
}

func TestCompensatedTemperature(t *testing.T) {
	c := NewTypeK()
	mv, err := c.DegreesToMillivolts(20)
	if err != nil {
		t.Fatal(err)
	}
	if mv != 0.798 {
		t.Errorf("DegreesToMillivolts(20)=%g, expected 0.798", mv)
	}
	got, err := c.CompensatedTemperature(20, 14)
	if err != nil {
		t.Fatal(err)
	}
	want, err := c.MillivoltsToDegrees(0.798 + 14)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("CompensatedTemperature(20, 14)=%g, MillivoltsToDegrees(14.798)=%g", got, want)
	}
	if math.Abs(got-compensated20C14mV) > 1e-9 {
		t.Errorf("CompensatedTemperature(20, 14)=%.10f, expected %.10f", got, compensated20C14mV)
	}
}

func TestCompensatedTemperatureOutOfRange(t *testing.T) {
	c := NewTypeK()
	tests := []struct {
		name      string
		reference float64
		mv        float64
		unit      string
		bound     Bound
		value     float64
	}{
		{"sum above max", 20, 60, "mV", AtOrAbove, 60.798},
		{"sum below min", 20, -8, "mV", Below, -7.202},
		{"reference above max", 1400, 0, "°C", AtOrAbove, 1400},
		{"reference below min", -300, 0, "°C", Below, -300},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := c.CompensatedTemperature(test.reference, test.mv)
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RangeError, got %v", err)
			}
			if re.Unit != test.unit || re.Bound != test.bound {
				t.Errorf("got %s, expected unit %s %s", re, test.unit, test.bound)
			}
			if math.Abs(re.Value-test.value) > 1e-9 {
				t.Errorf("error value %g, expected %g", re.Value, test.value)
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Error("errors.Is(err, ErrOutOfRange) = false")
			}
		})
	}
}

func TestCurveAccessors(t *testing.T) {
	c := NewTypeK()
	if c.Name() != "Type K" || c.Scale() != "Celsius" {
		t.Errorf("unexpected name %q scale %q", c.Name(), c.Scale())
	}
	tbl := c.Table()
	tbl.Millivolts[29] = 0
	if mv, _ := c.DegreesToMillivolts(20); mv != 0.798 {
		t.Error("Table() returned an alias of the curve data")
	}
	if n := c.Interpolator().Len(); n != 165 {
		t.Errorf("Interpolator().Len()=%d", n)
	}
	s := c.String()
	t.Log(s)
	if len(s) == 0 {
		t.Error("invalid String() result")
	}
}
