// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermocouple

// typeKMillivolts holds the Type K decade points, -270°C to 1370°C.
var typeKMillivolts = [...]float64{
	-6.458, -6.441, -6.404, -6.344, -6.262, -6.158, -6.035, -5.891,
	-5.730, -5.550, -5.354, -5.141, -4.913, -4.669, -4.411, -4.138, -3.852, -3.554,
	-3.243, -2.920, -2.587, -2.243, -1.889, -1.527, -1.156, -0.778, -0.392, 0.000,
	0.397, 0.798, 1.203, 1.612, 2.023, 2.436, 2.851, 3.267, 3.682, 4.096, 4.509,
	4.920, 5.328, 5.735, 6.138, 6.540, 6.941, 7.340, 7.739, 8.138, 8.539, 8.940,
	9.343, 9.747, 10.153, 10.561, 10.971, 11.382, 11.795, 12.209, 12.624, 13.040,
	13.457, 13.874, 14.293, 14.713, 15.133, 15.554, 15.975, 16.397, 16.820, 17.243,
	17.667, 18.091, 18.516, 18.941, 19.366, 19.792, 20.218, 20.644, 21.071, 21.497,
	21.924, 22.350, 22.776, 23.203, 23.629, 24.055, 24.480, 24.905, 25.330, 25.755,
	26.179, 26.602, 27.025, 27.447, 27.869, 28.289, 28.710, 29.129, 29.548, 29.965,
	30.382, 30.798, 31.213, 31.628, 32.041, 32.453, 32.865, 33.275, 33.685, 34.093,
	34.501, 34.908, 35.313, 35.718, 36.121, 36.524, 36.925, 37.326, 37.725, 38.124,
	38.522, 38.918, 39.314, 39.708, 40.101, 40.494, 40.885, 41.276, 41.665, 42.053,
	42.440, 42.826, 43.211, 43.595, 43.978, 44.359, 44.740, 45.119, 45.497, 45.873,
	46.249, 46.623, 46.995, 47.367, 47.737, 48.105, 48.473, 48.838, 49.202, 49.565,
	49.926, 50.286, 50.644, 51.000, 51.355, 51.708, 52.060, 52.410, 52.759, 53.106,
	53.451, 53.795, 54.138, 54.479, 54.819,
}

// TypeK returns the Type K (chromel/alumel) calibration table.
//
// The millivolt domain stops at 54.818mV, just under the 1370°C entry.
func TypeK() *Table {
	mv := typeKMillivolts
	return &Table{
		Name:          "Type K",
		Scale:         "Celsius",
		Step:          10,
		MinDegrees:    -270,
		MaxDegrees:    1370,
		MinMillivolts: -6.458,
		MaxMillivolts: 54.818,
		Millivolts:    mv[:],
	}
}

// NewTypeK returns a Curve for a Type K thermocouple.
func NewTypeK() *Curve {
	c, err := New(TypeK())
	if err != nil {
		// The table is compiled in; this can only fail on a bad edit.
		panic(err)
	}
	return c
}
