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

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	p := New()
	before := p.FEN()

	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	_ = p.Apply(board.NewMove(e2, e4, board.FlagDoublePush))

	assert.Equal(t, before, p.FEN(), "Apply must not mutate the receiver")
}

func TestApplyDoublePushSetsEnPassantSquare(t *testing.T) {
	p := New()
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	e3, _ := board.ParseSquare("e3")

	next := p.Apply(board.NewMove(e2, e4, board.FlagDoublePush))
	assert.Equal(t, e3, next.EnPassantSquare())
	assert.Equal(t, board.Black, next.SideToMove())
}

func TestApplyEnPassantRemovesCapturedPawn(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	e5, _ := board.ParseSquare("e5")
	d6, _ := board.ParseSquare("d6")
	d5, _ := board.ParseSquare("d5")

	next := p.Apply(board.NewMove(e5, d6, board.FlagEnPassant))
	assert.Equal(t, board.PieceNone, next.PieceAt(d5))
	assert.Equal(t, board.NewPiece(board.Pawn, board.White), next.PieceAt(d6))
}

func TestApplyPromotionReplacesPawn(t *testing.T) {
	p, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	a7, _ := board.ParseSquare("a7")
	a8, _ := board.ParseSquare("a8")

	next := p.Apply(board.NewMove(a7, a8, board.FlagPromotion(board.Queen)))
	assert.Equal(t, board.NewPiece(board.Queen, board.White), next.PieceAt(a8))
}

func TestApplyCastleMovesBothKingAndRook(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	e1, _ := board.ParseSquare("e1")
	g1, _ := board.ParseSquare("g1")
	f1, _ := board.ParseSquare("f1")
	h1, _ := board.ParseSquare("h1")

	next := p.Apply(board.NewMove(e1, g1, board.FlagCastleK))
	assert.Equal(t, board.NewPiece(board.King, board.White), next.PieceAt(g1))
	assert.Equal(t, board.NewPiece(board.Rook, board.White), next.PieceAt(f1))
	assert.Equal(t, board.PieceNone, next.PieceAt(e1))
	assert.Equal(t, board.PieceNone, next.PieceAt(h1))
	assert.Equal(t, board.CastleNone, next.Castling())
}

func TestApplyRookMoveLosesOneCastlingRight(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	a1, _ := board.ParseSquare("a1")
	a4, _ := board.ParseSquare("a4")

	next := p.Apply(board.NewMove(a1, a4, board.FlagQuiet))
	assert.False(t, next.Castling().Has(board.CastleWQ))
	assert.True(t, next.Castling().Has(board.CastleWK))
}

func TestApplyCaptureResetsHalfmoveClock(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/4p3/3P4/8/8/4K3 w - - 12 10")
	require.NoError(t, err)
	d4, _ := board.ParseSquare("d4")
	e5, _ := board.ParseSquare("e5")

	next := p.Apply(board.NewMove(d4, e5, board.FlagCapture))
	assert.Equal(t, 0, next.HalfmoveClock())
}

func TestApplyQuietKingMoveIncrementsHalfmoveClock(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 3 1")
	require.NoError(t, err)
	e1, _ := board.ParseSquare("e1")
	f1, _ := board.ParseSquare("f1")

	next := p.Apply(board.NewMove(e1, f1, board.FlagQuiet))
	assert.Equal(t, 4, next.HalfmoveClock())
}

func TestApplyIncrementsFullmoveNumberOnlyAfterBlack(t *testing.T) {
	p := New()
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	afterWhite := p.Apply(board.NewMove(e2, e4, board.FlagDoublePush))
	assert.Equal(t, 1, afterWhite.FullmoveNumber())

	e7, _ := board.ParseSquare("e7")
	e5, _ := board.ParseSquare("e5")
	afterBlack := afterWhite.Apply(board.NewMove(e7, e5, board.FlagDoublePush))
	assert.Equal(t, 2, afterBlack.FullmoveNumber())
}

func TestApplyKeyChangesAndIsDeterministic(t *testing.T) {
	p := New()
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")

	next1 := p.Apply(board.NewMove(e2, e4, board.FlagDoublePush))
	next2 := p.Apply(board.NewMove(e2, e4, board.FlagDoublePush))

	assert.NotEqual(t, p.Key(), next1.Key())
	assert.Equal(t, next1.Key(), next2.Key())
}

func TestKeyMatchesFreshParseOfResultingFEN(t *testing.T) {
	p := New()
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	next := p.Apply(board.NewMove(e2, e4, board.FlagDoublePush))

	reparsed, err := ParseFEN(next.FEN())
	require.NoError(t, err)
	assert.Equal(t, reparsed.Key(), next.Key())
}

func TestApplyUCIRejectsIllegalMove(t *testing.T) {
	p := New()
	var legal board.MoveList
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	legal.Add(board.NewMove(e2, e4, board.FlagDoublePush))

	_, err := p.ApplyUCI("a2a3", legal)
	assert.ErrorIs(t, err, ErrIllegalMove)

	next, err := p.ApplyUCI("e2e4", legal)
	require.NoError(t, err)
	assert.Equal(t, board.Black, next.SideToMove())
}

