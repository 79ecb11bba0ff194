//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"github.com/vilhelmbergsoe/brainybishop/internal/board"
	"github.com/vilhelmbergsoe/brainybishop/internal/zobrist"
)

// Apply returns the position resulting from playing m, a move assumed to
// have been produced by movegen for this exact position (spec.md section
// 4.J). Unlike the teacher's Position.DoMove, which mutates the receiver
// in place and relies on a paired UndoMove plus a history stack, Apply
// takes the receiver by value - Go copies the array-valued fields for
// free - mutates the copy, and returns it. The original p is untouched, so
// callers (perft's recursion, for one) can fan a single
// parent position out to many children without any of them observing each
// other's side effects.
func (p Position) Apply(m board.Move) Position {
	us := p.sideToMove
	them := us.Opponent()
	from := m.From()
	to := m.To()
	flag := m.Flag()

	moved := p.clear(from)

	// En-passant target is only ever alive for one ply.
	if p.epSquare != board.SquareNone {
		p.key ^= zobrist.EnPassantFile[p.epSquare.File()]
	}
	p.epSquare = board.SquareNone

	switch {
	case flag == board.FlagEnPassant:
		capSq := board.SquareOf(to.File(), from.Rank())
		p.clear(capSq)
		p.put(to, moved)
	case m.IsPromotion():
		if m.IsCapture() {
			p.clear(to)
		}
		p.put(to, board.NewPiece(m.PromotionType(), us))
	default:
		if m.IsCapture() {
			p.clear(to)
		}
		p.put(to, moved)
	}

	if flag == board.FlagCastleK || flag == board.FlagCastleQ {
		rookFrom, rookTo := castleRookSquares(us, flag)
		rook := p.clear(rookFrom)
		p.put(rookTo, rook)
	}

	if flag == board.FlagDoublePush {
		mid := board.SquareOf(from.File(), (from.Rank()+to.Rank())/2)
		p.epSquare = mid
		p.key ^= zobrist.EnPassantFile[mid.File()]
	}

	p.updateCastlingRights(moved, from, to)

	if moved.Type() == board.Pawn || m.IsCapture() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if us == board.Black {
		p.fullmoveNumber++
	}

	p.sideToMove = them
	p.key ^= zobrist.SideToMove

	return p
}

// castleRookSquares returns the rook's home and destination squares for
// the given side and castle flag.
func castleRookSquares(us board.Color, flag board.MoveFlag) (from, to board.Square) {
	if us == board.White {
		if flag == board.FlagCastleK {
			return board.WRookKHome, board.Square(5) // f1
		}
		return board.WRookQHome, board.Square(3) // d1
	}
	if flag == board.FlagCastleK {
		return board.BRookKHome, board.Square(61) // f8
	}
	return board.BRookQHome, board.Square(59) // d8
}

// updateCastlingRights clears whichever rights are lost by moved leaving
// from (a king move loses both of its own rights; a rook leaving its home
// square loses one) or by a rook being captured on to.
func (p *Position) updateCastlingRights(moved board.Piece, from, to board.Square) {
	lost := board.RightsLostBySquare(from) | board.RightsLostBySquare(to)
	if moved.Type() == board.King {
		lost |= board.RightsLostByKingMove(moved.Color())
	}
	if lost == board.CastleNone {
		return
	}
	for i := 0; i < 4; i++ {
		bit := board.CastlingRights(1 << uint(i))
		if lost.Has(bit) && p.castling.Has(bit) {
			p.castling &^= bit
			p.key ^= zobrist.Castling[i]
		}
	}
}

// ApplyUCI looks up a UCI move string in legal, the caller-supplied list of
// legal moves for p, and applies the match, returning ErrIllegalMove if
// uciMove does not match any move in legal.
func (p Position) ApplyUCI(uciMove string, legal board.MoveList) (Position, error) {
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.UCI() == uciMove {
			return p.Apply(m), nil
		}
	}
	return Position{}, ErrIllegalMove
}
