// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermocouple is a container for the thermocouple packages.
//
// interp holds the table interpolation, thermocouple the conversions and
// cold-junction compensation, mcp3421 an ADC driver to read a junction and
// tcplot the visualization helpers.
package thermocouple
