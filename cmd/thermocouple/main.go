// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// thermocouple computes cold-junction compensated Type K temperatures, either
// from a voltage given on the command line or read from a MCP3421 ADC.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/GermanBionicSystems/thermocouple/mcp3421"
	"github.com/GermanBionicSystems/thermocouple/tcplot"
	"github.com/GermanBionicSystems/thermocouple/thermocouple"
	"github.com/spf13/viper"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	ref := flag.Float64("ref", 20, "reference (cold) junction temperature in °C")
	mv := flag.Float64("mv", 14, "measured junction voltage in mV")
	adc := flag.Bool("adc", false, "read the junction voltage from a MCP3421 instead of -mv")
	cj := flag.String("cj", "fixed", "cold junction sensor with -adc: fixed (use -ref) or bmxx80")
	cjAddr := flag.Int("cj-addr", 0x76, "cold junction sensor I²C address")
	i2cID := flag.String("i2c", "", "I²C bus to use")
	addr := flag.Int("addr", int(mcp3421.DefaultAddress), "MCP3421 I²C address")
	plot := flag.String("plot", "", "save the calibration curve to this PNG file")
	inverse := flag.Bool("inverse", false, "plot millivolts to degrees")
	strip := flag.Int("strip", 0, "show the reading as a heat bar of this many cells")
	level := flag.String("log-level", "WARNING", "log level: DEBUG, INFO, WARNING or ERROR")
	verbose := flag.Bool("v", false, "verbose mode, same as -log-level DEBUG")
	configFile := flag.String("config", "", "configuration file; keys are flag names")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if err := loadConfig(flag.CommandLine, viper.New(), *configFile); err != nil {
		return err
	}
	if *verbose {
		*level = "DEBUG"
	}
	if err := initLogging(*level); err != nil {
		return err
	}

	tc := thermocouple.NewTypeK()
	logger.Infof("using %s", tc)

	if *plot != "" {
		opts := tcplot.DefaultOpts
		if *inverse {
			opts.Direction = tcplot.MillivoltsToDegrees
		}
		if err := tcplot.SavePNG(*plot, tc, &opts); err != nil {
			return err
		}
		logger.Infof("saved %s", *plot)
	}

	var degrees float64
	if *adc {
		if _, err := host.Init(); err != nil {
			return err
		}
		bus, err := i2creg.Open(*i2cID)
		if err != nil {
			return err
		}
		defer bus.Close()
		dev, err := mcp3421.NewI2C(bus, uint16(*addr), nil)
		if err != nil {
			return err
		}
		logger.Debugf("%s, precision %s", dev, dev.Precision())
		cjSensor, err := coldJunction(bus, *cj, uint16(*cjAddr), *ref)
		if err != nil {
			return err
		}
		probe := thermocouple.NewProbe(tc, dev, cjSensor)
		defer probe.Halt()
		env := physic.Env{}
		if err := probe.Sense(&env); err != nil {
			return err
		}
		degrees = env.Temperature.Celsius()
		logger.Infof("probe reading %s", env.Temperature)
	} else {
		var err error
		if degrees, err = tc.CompensatedTemperature(*ref, *mv); err != nil {
			return err
		}
	}
	fmt.Printf("thermocouple temperature is %.2f %s\n", degrees, tc.Scale())

	if *strip > 0 {
		return showStrip(tc, degrees, *strip)
	}
	return nil
}

// coldJunction returns the sensor measuring the reference junction.
func coldJunction(bus i2c.Bus, name string, addr uint16, ref float64) (physic.SenseEnv, error) {
	switch name {
	case "fixed":
		return thermocouple.FixedReference(thermocouple.Celsius(ref)), nil
	case "bmxx80":
		d, err := bmxx80.NewI2C(bus, addr, &bmxx80.DefaultOpts)
		if err != nil {
			return nil, fmt.Errorf("cold junction: %w", err)
		}
		logger.Debugf("cold junction %s", d)
		return d, nil
	default:
		return nil, fmt.Errorf("unknown cold junction sensor %q", name)
	}
}

func showStrip(tc *thermocouple.Curve, degrees float64, n int) error {
	img, err := tcplot.Bar(tc, degrees, n)
	if err != nil {
		return err
	}
	s, err := tcplot.NewStrip(&tcplot.StripOpts{X: n})
	if err != nil {
		return err
	}
	if err := s.Draw(s.Bounds(), img, image.Point{}); err != nil {
		return err
	}
	return s.Halt()
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "%s.\n", err)
		os.Exit(1)
	}
}
