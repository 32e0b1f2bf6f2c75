// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tcplot visualizes thermocouple calibration curves and readings.
//
// Curve renders the calibration samples and the interpolated curve into an
// image, in either direction. Strip is a 1D display.Drawer writing to a
// terminal with ANSI colors; Gradient and Bar build images for it.
package tcplot
