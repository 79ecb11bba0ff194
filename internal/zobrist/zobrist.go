//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package zobrist holds the random constant tables used to maintain a
// position's incremental hash key (SPEC_FULL.md section 4.K). Not part of
// spec.md's core, but grounded in the teacher's position.Key field and
// reused here because a chess core built to be exercised by a future
// search/transposition-table collaborator needs a hash, and the teacher
// already carries one.
package zobrist

import "github.com/vilhelmbergsoe/brainybishop/internal/board"

// Key is a 64-bit Zobrist hash of a position.
type Key uint64

// Piece[piece][square], Castling[right-bit-index], EnPassantFile[file] and
// SideToMove are XORed in and out incrementally by position.Apply.
var (
	Piece         [board.PcLength][board.SqLength]Key
	Castling      [4]Key
	EnPassantFile [board.FileLength]Key
	SideToMove    Key
)

// prng is Stockfish's xorshift64star generator, reused here (rather than
// math/rand) so the table is reproducible across platforms and Go versions
// given the same seed.
type prng struct {
	s uint64
}

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	rng := newPrng(1070372)
	for pc := 0; pc < board.PcLength; pc++ {
		for sq := 0; sq < board.SqLength; sq++ {
			Piece[pc][sq] = Key(rng.next())
		}
	}
	for i := range Castling {
		Castling[i] = Key(rng.next())
	}
	for f := range EnPassantFile {
		EnPassantFile[f] = Key(rng.next())
	}
	SideToMove = Key(rng.next())
}
