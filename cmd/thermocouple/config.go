// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/spf13/viper"
)

// loadConfig reads the optional configuration file and applies its values to
// every flag not given on the command line. Keys are the flag names.
func loadConfig(fs *flag.FlagSet, v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if err != nil || set[f.Name] || !v.IsSet(f.Name) {
			return
		}
		if e := f.Value.Set(v.GetString(f.Name)); e != nil {
			err = fmt.Errorf("config key %q: %w", f.Name, e)
		}
	})
	return err
}
