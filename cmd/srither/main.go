// srither - a Slither Link puzzle solver.
// Copyright (C) 2015 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Command srither solves, tests, and benchmarks Slither Link puzzles.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	shutdownOnSignal()

	if len(os.Args) < 2 {
		usage()
		os.Exit(exitUsage)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "test":
		err = runTest(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "srither: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(exitUsage)
	}

	if err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(exitFailure)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: srither <command> [arguments]

commands:
  solve  [--all] <file>...     solve puzzles, printing each solution
  test   [--all] <file>...     solve puzzles, reporting pass/fail per file
  bench  [--cache] [--only-hardest N] <file>...
                                time solving a corpus of puzzles`)
}

// exit codes: 0 success, 1 a command ran but reported failure
// (e.g. an unsatisfiable or ambiguous puzzle in test mode), 2 bad
// usage - a small fixed vocabulary of "why we're exiting",
// covering the three outcomes a batch CLI actually needs to
// distinguish.
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// shutdownOnSignal logs and exits on SIGINT/SIGTERM, catch-everything
// signal handling trimmed to the two signals a batch CLI actually
// needs to treat specially.
func shutdownOnSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-c
		log.WithField("signal", s).Warn("exiting: caught signal")
		os.Exit(exitFailure)
	}()
}
