//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package perft counts the leaf nodes of the legal move tree to a fixed
// depth, the standard way to validate a move generator against known-good
// node counts (SPEC_FULL.md section 4.L). Grounded on the teacher's
// internal/movegen/perft.go for the Stats shape and divide reporting,
// generalized to run over this module's pure, value-typed Position
// instead of the teacher's mutable DoMove/UndoMove position.
package perft

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vilhelmbergsoe/brainybishop/internal/attacks"
	"github.com/vilhelmbergsoe/brainybishop/internal/board"
	"github.com/vilhelmbergsoe/brainybishop/internal/movegen"
	"github.com/vilhelmbergsoe/brainybishop/internal/position"
)

// Stats is the result of a Perft run.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Perft walks the legal move tree from p to the given depth and returns
// aggregate counts. Depth 0 counts the root position itself as one node
// with no further breakdown.
func Perft(p position.Position, depth int) Stats {
	var s Stats
	if depth == 0 {
		s.Nodes = 1
		return s
	}
	walk(p, depth, &s)
	return s
}

func walk(p position.Position, depth int, s *Stats) {
	ml := movegen.GenerateLegalMoves(&p)
	if depth == 1 {
		s.Nodes += uint64(ml.Len())
		for i := 0; i < ml.Len(); i++ {
			m := ml.At(i)
			if m.IsCapture() {
				s.Captures++
			}
			if m.IsEnPassant() {
				s.EnPassant++
			}
			if m.IsCastle() {
				s.Castles++
			}
			if m.IsPromotion() {
				s.Promotions++
			}
			child := p.Apply(m)
			if childInCheck(&child) {
				s.Checks++
			}
		}
		return
	}
	for i := 0; i < ml.Len(); i++ {
		child := p.Apply(ml.At(i))
		walk(child, depth-1, s)
	}
}

// childInCheck reports whether the side to move in child is in check -
// equivalently, whether the move that produced child gave check.
func childInCheck(child *position.Position) bool {
	us := child.SideToMove()
	them := us.Opponent()
	king := child.KingSquare(us)

	var oppPieces [board.PtLength]board.Bitboard
	for pt := board.Pawn; pt <= board.King; pt++ {
		oppPieces[pt] = child.Pieces(pt, them)
	}
	return attacks.AttackersTo(us, king, child.OccupancyAll(), oppPieces) != board.BbZero
}

// Divide runs Perft at depth-1 for every legal root move and reports the
// per-move leaf count, keyed by UCI move text - the standard debugging
// tool for isolating which root move a move generator gets wrong.
func Divide(p position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}
	ml := movegen.GenerateLegalMoves(&p)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		child := p.Apply(m)
		result[m.UCI()] = Perft(child, depth-1).Nodes
	}
	return result
}

// DivideConcurrent is Divide, fanned out across root moves with
// golang.org/x/sync/errgroup (SPEC_FULL.md section 5): each goroutine
// owns an independent Position value produced by Apply, so there is no
// shared mutable state to synchronize and no risk of one root move's
// search observing another's. It is the only place in this module that
// spawns goroutines; ctx cancellation is honored between root moves but
// Perft itself is not cancellable mid-subtree.
//
// maxWorkers bounds how many root moves are evaluated concurrently, via
// errgroup.Group.SetLimit; maxWorkers <= 0 leaves the group unbounded,
// one goroutine per root move (config.Settings.PerftWorkers's "0 means
// unbounded" default).
func DivideConcurrent(ctx context.Context, p position.Position, depth int, maxWorkers int) (map[string]uint64, error) {
	result := make(map[string]uint64)
	if depth == 0 {
		return result, nil
	}
	ml := movegen.GenerateLegalMoves(&p)

	type entry struct {
		move  string
		nodes uint64
	}
	entries := make([]entry, ml.Len())

	g, ctx := errgroup.WithContext(ctx)
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}
	for i := 0; i < ml.Len(); i++ {
		i := i
		m := ml.At(i)
		child := p.Apply(m)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			entries[i] = entry{move: m.UCI(), nodes: Perft(child, depth-1).Nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, e := range entries {
		result[e.move] = e.nodes
	}
	return result, nil
}

// SortedMoves returns the UCI move keys of a divide report in sorted
// order, used by cmd/brainybishop to print a stable, readable report.
func SortedMoves(divide map[string]uint64) []string {
	keys := make([]string, 0, len(divide))
	for k := range divide {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
