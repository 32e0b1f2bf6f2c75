// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermocouple

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
)

// Voltmeter measures the thermocouple junction voltage.
type Voltmeter interface {
	conn.Resource
	// SensePotential returns the measured voltage.
	SensePotential() (physic.ElectricPotential, error)
}

// MinimumInterval is the shortest interval accepted by SenseContinuous.
const MinimumInterval = 100 * time.Millisecond

// Precision of the decade tables.
const tablePrecision = 100 * physic.MilliKelvin

// Probe is a thermocouple with its measurement chain: a Voltmeter reading the
// junction voltage and a sensor measuring the reference junction.
type Probe struct {
	c        Converter
	v        Voltmeter
	ref      physic.SenseEnv
	mu       sync.Mutex
	shutdown chan struct{}
}

// NewProbe returns a Probe converting with c, reading the junction voltage
// from v and the cold junction temperature from ref.
func NewProbe(c Converter, v Voltmeter, ref physic.SenseEnv) *Probe {
	return &Probe{c: c, v: v, ref: ref}
}

// Sense reads the reference temperature and the junction voltage and writes
// the compensated temperature to env. Implements physic.SenseEnv.
//
// A *RangeError is returned as is, so callers can use errors.Is with
// ErrOutOfRange to tell an open or overloaded probe from a bus failure.
func (p *Probe) Sense(env *physic.Env) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	refEnv := physic.Env{}
	if err := p.ref.Sense(&refEnv); err != nil {
		return fmt.Errorf("thermocouple: reference junction: %w", err)
	}
	v, err := p.v.SensePotential()
	if err != nil {
		return fmt.Errorf("thermocouple: junction voltage: %w", err)
	}
	t, err := Sense(p.c, refEnv.Temperature, v)
	if err != nil {
		return err
	}
	env.Temperature = t
	return nil
}

// SenseContinuous reads the probe every interval and writes the value to the
// returned channel. Readings that fail are skipped. Call Halt() to stop.
// Implements physic.SenseEnv.
func (p *Probe) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < MinimumInterval {
		return nil, fmt.Errorf("thermocouple: invalid duration %s, minimum %s", interval, MinimumInterval)
	}
	p.mu.Lock()
	if p.shutdown != nil {
		p.mu.Unlock()
		return nil, errors.New("thermocouple: already sensing continuously")
	}
	p.shutdown = make(chan struct{})
	shutdown := p.shutdown
	p.mu.Unlock()

	channelSize := 16
	channel := make(chan physic.Env, channelSize)
	go func(channel chan physic.Env, shutdown <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(channel)
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := p.Sense(&e); err == nil && len(channel) < channelSize {
					channel <- e
				}
			}
		}
	}(channel, shutdown)
	return channel, nil
}

// Precision implements physic.SenseEnv.
//
// It reports the resolution of the interpolated table, not the accuracy of
// the thermocouple.
func (p *Probe) Precision(env *physic.Env) {
	env.Temperature = tablePrecision
	env.Pressure = 0
	env.Humidity = 0
}

// Halt stops a SenseContinuous operation in progress and halts the voltmeter
// and the reference sensor. Implements conn.Resource.
func (p *Probe) Halt() error {
	p.mu.Lock()
	if p.shutdown != nil {
		close(p.shutdown)
		p.shutdown = nil
	}
	p.mu.Unlock()
	errV := p.v.Halt()
	errRef := p.ref.Halt()
	if errV != nil {
		return errV
	}
	return errRef
}

func (p *Probe) String() string {
	return fmt.Sprintf("thermocouple: %v via %s, reference %s", p.c, p.v, p.ref)
}

// FixedReference is a physic.SenseEnv reporting a constant temperature, for
// a reference junction held at a known temperature such as an ice bath.
type FixedReference physic.Temperature

// Sense implements physic.SenseEnv.
func (f FixedReference) Sense(env *physic.Env) error {
	env.Temperature = physic.Temperature(f)
	return nil
}

// SenseContinuous implements physic.SenseEnv. It is not supported.
func (f FixedReference) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	return nil, errors.New("thermocouple: fixed reference does not sense continuously")
}

// Precision implements physic.SenseEnv.
func (f FixedReference) Precision(env *physic.Env) {
	env.Temperature = 0
	env.Pressure = 0
	env.Humidity = 0
}

// Halt implements conn.Resource.
func (f FixedReference) Halt() error {
	return nil
}

func (f FixedReference) String() string {
	return fmt.Sprintf("fixed %s", physic.Temperature(f))
}

var _ conn.Resource = &Probe{}
var _ physic.SenseEnv = &Probe{}
var _ physic.SenseEnv = FixedReference(0)
