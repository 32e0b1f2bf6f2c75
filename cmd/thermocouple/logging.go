// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/op/go-logging"
)

var logger = logging.MustGetLogger("thermocouple")

var format = logging.MustStringFormatter(
	"%{time:15:04:05.000} %{level:.4s} ▶ %{message}",
)

// initLogging sends log records at level and above to stderr.
func initLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}
