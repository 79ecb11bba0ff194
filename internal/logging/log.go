//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package logging is a thin wrapper over "github.com/op/go-logging" that
// configures the module's loggers with a consistent backend and format,
// the same way the teacher's logging package does, trimmed to the two
// loggers this module actually needs: one for general engine-core
// messages and one for perft/divide runs.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"
)

var (
	standardLog *logging.Logger
	perftLog    *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	perftLog = logging.MustGetLogger("perft")
}

// Get returns the standard logger, configured at the given level
// (0=CRITICAL .. 5=DEBUG, matching go-logging's Level values).
func Get(level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetPerftLog returns the logger cmd/brainybishop's divide runner uses to
// report per-move node counts alongside its stdout output, at the given
// level.
func GetPerftLog(level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	perftLog.SetBackend(leveled)
	return perftLog
}
