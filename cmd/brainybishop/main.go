//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// brainybishop is a thin command-line entry point over the engine core:
// it loads config, parses a FEN, and runs a perft (optionally with a
// per-move divide breakdown). It intentionally has no UCI loop, search,
// or evaluation - those are out of this module's scope (spec.md section
// 1's Non-goals).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vilhelmbergsoe/brainybishop/internal/board"
	"github.com/vilhelmbergsoe/brainybishop/internal/config"
	"github.com/vilhelmbergsoe/brainybishop/internal/logging"
	"github.com/vilhelmbergsoe/brainybishop/internal/perft"
	"github.com/vilhelmbergsoe/brainybishop/internal/position"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./brainybishop.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFEN, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "perft search depth")
	divide := flag.Bool("divide", false, "report a per-root-move node count breakdown instead of a single total")
	concurrent := flag.Bool("concurrent", false, "run the divide breakdown concurrently across root moves")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	log := logging.Get(config.Settings.LogLevel)

	if config.Settings.VerifyMagics {
		if !board.VerifyMagics() {
			log.Error("magic bitboard self-check failed")
			os.Exit(1)
		}
		log.Info("magic bitboard self-check passed")
	}

	p, err := position.ParseFEN(*fen)
	if err != nil {
		log.Errorf("invalid FEN %q: %v", *fen, err)
		os.Exit(1)
	}

	start := time.Now()

	if *divide {
		runDivide(p, *depth, *concurrent, config.Settings.PerftWorkers)
	} else {
		s := perft.Perft(p, *depth)
		out.Printf("perft(%d) from %q\n", *depth, *fen)
		out.Printf("nodes: %d  captures: %d  en passant: %d  castles: %d  promotions: %d  checks: %d\n",
			s.Nodes, s.Captures, s.EnPassant, s.Castles, s.Promotions, s.Checks)
	}

	elapsed := time.Since(start)
	out.Printf("time: %s\n", elapsed)
}

func runDivide(p position.Position, depth int, concurrent bool, maxWorkers int) {
	perftLog := logging.GetPerftLog(config.Settings.LogLevel)

	var result map[string]uint64
	if concurrent {
		var err error
		result, err = perft.DivideConcurrent(context.Background(), p, depth, maxWorkers)
		if err != nil {
			fmt.Fprintln(os.Stderr, "divide failed:", err)
			os.Exit(1)
		}
	} else {
		result = perft.Divide(p, depth)
	}

	var total uint64
	for _, move := range perft.SortedMoves(result) {
		nodes := result[move]
		total += nodes
		perftLog.Infof("%s: %d", move, nodes)
		out.Printf("%s: %d\n", move, nodes)
	}
	out.Printf("total: %d\n", total)
}
