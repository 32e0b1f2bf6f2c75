// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermocouple

import (
	"math"

	"periph.io/x/conn/v3/physic"
)

// Potential converts millivolts to a physic.ElectricPotential, rounded to the
// nearest nanovolt.
func Potential(mv float64) physic.ElectricPotential {
	return physic.ElectricPotential(math.Round(mv * float64(physic.MilliVolt)))
}

// Millivolts converts a physic.ElectricPotential to millivolts.
func Millivolts(v physic.ElectricPotential) float64 {
	return float64(v) / float64(physic.MilliVolt)
}

// Celsius converts degrees Celsius to a physic.Temperature, rounded to the
// nearest nanokelvin.
func Celsius(degrees float64) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(math.Round(degrees*float64(physic.Celsius)))
}

// Sense returns the sense junction temperature for a reference junction
// temperature and the measured junction voltage.
func Sense(c Converter, reference physic.Temperature, v physic.ElectricPotential) (physic.Temperature, error) {
	d, err := c.CompensatedTemperature(reference.Celsius(), Millivolts(v))
	if err != nil {
		return 0, err
	}
	return Celsius(d), nil
}
