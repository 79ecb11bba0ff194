//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import "errors"

// Parse error taxonomy, spec.md section 7. The FEN parser returns the
// first of these it encounters and does not attempt to continue parsing.
var (
	ErrInvalidPlacement = errors.New("invalid placement field")
	ErrInvalidSide      = errors.New("invalid side to move field")
	ErrInvalidCastling  = errors.New("invalid castling rights field")
	ErrInvalidEnPassant = errors.New("invalid en passant field")
	ErrInvalidCounter   = errors.New("invalid halfmove/fullmove counter field")
	ErrWrongFieldCount  = errors.New("fen must have exactly six fields")

	// ErrIllegalMove is returned by ApplyUCI when the given UCI move text
	// does not match any move in the legal move list it was checked
	// against (spec.md section 7's InvalidMove case).
	ErrIllegalMove = errors.New("illegal move")
)
