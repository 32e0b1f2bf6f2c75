// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermocouple converts between junction temperature and
// thermoelectric voltage using a reference calibration table, and computes
// cold-junction compensated temperatures.
//
// A thermocouple measures the temperature difference between its sense
// junction and its reference (cold) junction. To get the absolute sense
// temperature, the voltage equivalent of the reference temperature is added to
// the measured voltage and the sum is converted back to degrees:
//
//	T = mV→°C( °C→mV(Tref) + Vmeasured )
//
// Conversions interpolate linearly between the decade points of the NIST
// ITS-90 reference tables, so the result has the table's resolution, not the
// full polynomial accuracy.
//
// Probe combines a Converter with a Voltmeter (typically an ADC such as the
// MCP3421) and a physic.SenseEnv measuring the cold junction into a
// physic.SenseEnv reporting the sense junction temperature.
//
// Reference tables
//
//	https://srdata.nist.gov/its90/download/type_k.tab
package thermocouple
