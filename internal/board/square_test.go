//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareAlgebraicRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "h1", "a8", "h8", "e4", "d5"} {
		sq, err := ParseSquare(s)
		require.NoError(t, err)
		assert.Equal(t, s, sq.String())
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "i1", "a9", "a0", "aa", "11"} {
		_, err := ParseSquare(s)
		assert.Error(t, err, s)
	}
}

func TestCanonicalSquareNumbering(t *testing.T) {
	assert.Equal(t, Square(0), SquareOf(FileA, Rank1))
	assert.Equal(t, Square(7), SquareOf(FileH, Rank1))
	assert.Equal(t, Square(56), SquareOf(FileA, Rank8))
	assert.Equal(t, Square(63), SquareOf(FileH, Rank8))
}

func TestPieceCanonicalIndexing(t *testing.T) {
	assert.Equal(t, Piece(0), NewPiece(Pawn, White))
	assert.Equal(t, Piece(5), NewPiece(King, White))
	assert.Equal(t, Piece(6), NewPiece(Pawn, Black))
	assert.Equal(t, Piece(11), NewPiece(King, Black))
}

func TestPieceFromChar(t *testing.T) {
	p, ok := PieceFromChar('P')
	require.True(t, ok)
	assert.Equal(t, White, p.Color())
	assert.Equal(t, Pawn, p.Type())

	p, ok = PieceFromChar('n')
	require.True(t, ok)
	assert.Equal(t, Black, p.Color())
	assert.Equal(t, Knight, p.Type())

	_, ok = PieceFromChar('x')
	assert.False(t, ok)
}
