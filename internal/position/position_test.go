//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilhelmbergsoe/brainybishop/internal/board"
)

func TestStartingPositionFENRoundTrip(t *testing.T) {
	p, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, StartFEN, p.FEN())
}

func TestKiwipeteFENRoundTrip(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := ParseFEN(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.FEN())
}

func TestNewIsStartingPosition(t *testing.T) {
	p := New()
	assert.Equal(t, StartFEN, p.FEN())
}

func TestOccupancyConsistentWithPieces(t *testing.T) {
	p := New()
	for sq := board.Square(0); sq < board.SqLength; sq++ {
		pc := p.PieceAt(sq)
		hasWhite := p.Occupancy(board.White).Has(sq)
		hasBlack := p.Occupancy(board.Black).Has(sq)
		hasAny := p.OccupancyAll().Has(sq)

		if pc == board.PieceNone {
			assert.False(t, hasWhite)
			assert.False(t, hasBlack)
			assert.False(t, hasAny)
			continue
		}
		assert.True(t, hasAny)
		if pc.Color() == board.White {
			assert.True(t, hasWhite)
			assert.False(t, hasBlack)
		} else {
			assert.True(t, hasBlack)
			assert.False(t, hasWhite)
		}
	}
}

func TestParseFENRejectsWrongFieldCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.ErrorIs(t, err, ErrWrongFieldCount)
}

func TestParseFENRejectsBadPlacement(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1")
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestParseFENRejectsMissingKing(t *testing.T) {
	_, err := ParseFEN("rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq - 0 1")
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestParseFENRejectsBadSide(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.ErrorIs(t, err, ErrInvalidSide)
}

func TestParseFENRejectsBadCastling(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XYZq - 0 1")
	assert.ErrorIs(t, err, ErrInvalidCastling)
}

func TestParseFENRejectsBadEnPassant(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1")
	assert.ErrorIs(t, err, ErrInvalidEnPassant)
}

func TestParseFENRejectsBadCounter(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1")
	assert.ErrorIs(t, err, ErrInvalidCounter)
}

func TestKingSquareIsLocated(t *testing.T) {
	p := New()
	e1, _ := board.ParseSquare("e1")
	e8, _ := board.ParseSquare("e8")
	assert.Equal(t, e1, p.KingSquare(board.White))
	assert.Equal(t, e8, p.KingSquare(board.Black))
}
