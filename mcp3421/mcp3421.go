// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp3421

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Resolution selects the sample rate and number of bits of a conversion.
type Resolution byte

// Gain is the programmable gain amplifier setting.
type Gain byte

const (
	// 240 samples per second.
	Bits12 Resolution = iota
	// 60 samples per second.
	Bits14
	// 15 samples per second.
	Bits16
	// 3.75 samples per second.
	Bits18
)

const (
	// x1, ±2.048V full scale.
	Gain1 Gain = iota
	// x2, ±1.024V full scale.
	Gain2
	// x4, ±512mV full scale.
	Gain4
	// x8, ±256mV full scale.
	Gain8
)

const (
	// DefaultAddress is the factory address of the MCP3421A0. Other variants
	// use 0x69 to 0x6F.
	DefaultAddress uint16 = 0x68

	// Configuration register bits.
	_CONFIG_READY      byte = 1 << 7
	_RATE_POS               = 2

	// Number of extra reads while waiting for a conversion to complete.
	maxRetries = 3
)

// ErrNotReady is returned when a conversion did not complete in time.
var ErrNotReady = errors.New("mcp3421: conversion not ready")

// Size of one count at gain 1, per resolution.
var lsb = []physic.ElectricPotential{
	physic.MilliVolt,
	250 * physic.MicroVolt,
	62_500 * physic.NanoVolt,
	15_625 * physic.NanoVolt,
}

// Conversion time per resolution, with some margin over the datasheet
// maximum.
var conversionTimes = []time.Duration{
	5 * time.Millisecond,
	18 * time.Millisecond,
	72 * time.Millisecond,
	290 * time.Millisecond,
}

// Opts represents configurable options for the MCP3421.
type Opts struct {
	Resolution Resolution
	Gain       Gain
}

// DefaultOpts is the configuration suited to a thermocouple: 18 bits, x8
// gain, for a ±256mV full scale at 1.95µV per count.
var DefaultOpts = Opts{Resolution: Bits18, Gain: Gain8}

// Dev represents a MCP3421 ADC.
type Dev struct {
	d    *i2c.Dev
	mu   sync.Mutex
	opts Opts
}

// NewI2C returns a new MCP3421 using the specified bus and address. If opts
// is nil, DefaultOpts is used.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Resolution > Bits18 {
		return nil, fmt.Errorf("mcp3421: invalid resolution %d", opts.Resolution)
	}
	if opts.Gain > Gain8 {
		return nil, fmt.Errorf("mcp3421: invalid gain %d", opts.Gain)
	}
	dev := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, opts: *opts}
	// Load the configuration without starting a conversion.
	if err := dev.d.Tx([]byte{dev.config()}, nil); err != nil {
		return nil, fmt.Errorf("mcp3421: init %w", err)
	}
	return dev, nil
}

// config returns the one-shot configuration byte, RDY clear.
func (dev *Dev) config() byte {
	return byte(dev.opts.Resolution)<<_RATE_POS | byte(dev.opts.Gain)
}

// SensePotential starts a one-shot conversion and returns the measured
// differential input voltage.
func (dev *Dev) SensePotential() (physic.ElectricPotential, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()

	if err := dev.d.Tx([]byte{dev.config() | _CONFIG_READY}, nil); err != nil {
		return 0, fmt.Errorf("mcp3421: start conversion %w", err)
	}
	wait := conversionTimes[dev.opts.Resolution]
	time.Sleep(wait)

	r := make([]byte, 3)
	if dev.opts.Resolution == Bits18 {
		r = make([]byte, 4)
	}
	for try := 0; try <= maxRetries; try++ {
		if try > 0 {
			time.Sleep(wait / 4)
		}
		if err := dev.d.Tx(nil, r); err != nil {
			return 0, fmt.Errorf("mcp3421: read %w", err)
		}
		// RDY reads back as 0 once the result register holds the new sample.
		if r[len(r)-1]&_CONFIG_READY == 0 {
			return countToPotential(r, dev.opts), nil
		}
	}
	return 0, ErrNotReady
}

// countToPotential converts the raw output code to a voltage.
func countToPotential(r []byte, opts Opts) physic.ElectricPotential {
	var count int64
	if opts.Resolution == Bits18 {
		// The upper bits of the first byte repeat the sign bit.
		count = int64(int32(uint32(r[0])<<24|uint32(r[1])<<16|uint32(r[2])<<8) >> 8)
	} else {
		count = int64(int16(uint16(r[0])<<8 | uint16(r[1])))
	}
	return physic.ElectricPotential(count * int64(lsb[opts.Resolution]) / (1 << opts.Gain))
}

// Precision returns the voltage of one count for the configured resolution
// and gain.
func (dev *Dev) Precision() physic.ElectricPotential {
	return lsb[dev.opts.Resolution] / physic.ElectricPotential(1<<dev.opts.Gain)
}

// Halt implements conn.Resource. One-shot conversions leave the device idle,
// so there is nothing to stop.
func (dev *Dev) Halt() error {
	return nil
}

func (dev *Dev) String() string {
	return fmt.Sprintf("mcp3421: %s", dev.d.String())
}

var _ conn.Resource = &Dev{}
