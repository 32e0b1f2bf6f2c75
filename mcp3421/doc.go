// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// mcp3421 provides a driver for the Microchip MCP3421 18-bit delta-sigma
// I2C ADC. Its differential input, programmable gain and µV resolution make
// it a common front end for thermocouples.
//
// Resolution: 1mV (12 bits) to 15.625µV (18 bits), divided by the PGA gain.
//
// Range: ±2.048V / gain
//
// The driver uses one-shot conversions, so the device idles between reads.
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://ww1.microchip.com/downloads/en/DeviceDoc/22003e.pdf
package mcp3421
