//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package config holds the module's configuration, read from an optional
// TOML file and overlaid onto built-in defaults, the same defaults-then-
// overlay pattern the teacher's internal/config.Setup uses. A missing or
// malformed config file is never fatal (spec.md section 7's "config load
// failures fall back to defaults with a warning, never panic"): Setup
// just logs and keeps the defaults.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the TOML config file, relative to the working
// directory unless overridden by -config on the command line.
var ConfFile = "./brainybishop.toml"

// Settings is the process-wide configuration, populated by Setup.
var Settings = conf{
	LogLevel:     5,
	VerifyMagics: false,
	PerftWorkers: 0,
}

var initialized = false

type conf struct {
	// LogLevel is a go-logging Level value (0=CRITICAL .. 5=DEBUG).
	LogLevel int `toml:"log_level"`

	// VerifyMagics runs board.VerifyMagics() once at startup as a
	// self-check before the first position is ever parsed.
	VerifyMagics bool `toml:"verify_magics"`

	// PerftWorkers caps how many root moves DivideConcurrent evaluates in
	// parallel; 0 means "let errgroup's default apply", i.e. unbounded.
	PerftWorkers int `toml:"perft_workers"`
}

// Setup loads ConfFile over the built-in defaults. Call once at startup;
// later calls are no-ops.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found or invalid, using defaults:", err)
	}
	initialized = true
}
