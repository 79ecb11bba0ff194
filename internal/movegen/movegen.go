//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package movegen generates fully legal moves for a position in a single
// pass (spec.md section 4.I), rather than the teacher's
// GeneratePseudoLegalMoves-then-filter-by-simulated-apply approach: each
// candidate is masked against attacks.Info's CheckMask and PinMasks as it
// is produced, so an illegal move is never placed in the list to begin
// with. The per-piece-kind loop shape (pawns, then knights/bishops/
// rooks/queens, then the king, then castling) and the moveslice-style
// "just append to a flat list" usage are grounded on the teacher's
// generatePawnMoves/generateCastling/generateKingMoves/generateMoves.
package movegen

import (
	"github.com/vilhelmbergsoe/brainybishop/internal/attacks"
	"github.com/vilhelmbergsoe/brainybishop/internal/board"
	"github.com/vilhelmbergsoe/brainybishop/internal/position"
)

// GenerateLegalMoves returns every legal move for the side to move in p.
func GenerateLegalMoves(p *position.Position) board.MoveList {
	var ml board.MoveList

	us := p.SideToMove()
	them := us.Opponent()
	king := p.KingSquare(us)
	occupied := p.OccupancyAll()

	var oppPieces [board.PtLength]board.Bitboard
	for pt := board.Pawn; pt <= board.King; pt++ {
		oppPieces[pt] = p.Pieces(pt, them)
	}
	info := attacks.Compute(us, king, occupied, oppPieces)

	generatePawnMoves(p, us, info, &ml)
	generatePieceMoves(p, us, board.Knight, info, &ml)
	generatePieceMoves(p, us, board.Bishop, info, &ml)
	generatePieceMoves(p, us, board.Rook, info, &ml)
	generatePieceMoves(p, us, board.Queen, info, &ml)
	generateKingMoves(p, us, info, &ml)
	// Castling is only legal with zero checkers, so skip the (more
	// expensive) through-check scan when that's already known false.
	if info.Checkers == board.BbZero {
		generateCastling(p, us, info, &ml)
	}

	return ml
}

// HasLegalMove reports whether the side to move has at least one legal
// move, for callers testing for checkmate or stalemate (spec.md section
// 4.I edge cases). It generates the full move list and checks its length;
// it does not stop at the first legal move found.
func HasLegalMove(p *position.Position) bool {
	ml := GenerateLegalMoves(p)
	return ml.Len() > 0
}

// generatePieceMoves emits every legal move for knights, bishops, rooks
// and queens of color us: each piece's destinations are its pseudo-attack
// set, minus our own pieces, filtered by the check mask and (if pinned)
// its own pin mask.
func generatePieceMoves(p *position.Position, us board.Color, pt board.PieceType, info attacks.Info, ml *board.MoveList) {
	ownOccupied := p.Occupancy(us)
	occupied := p.OccupancyAll()

	pieces := p.Pieces(pt, us)
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := board.AttacksBb(pt, from, occupied) &^ ownOccupied
		targets &= info.CheckMask
		targets &= info.PinMasks[from]

		for targets != 0 {
			to := targets.PopLsb()
			flag := board.FlagQuiet
			if occupied.Has(to) {
				flag = board.FlagCapture
			}
			ml.Add(board.NewMove(from, to, flag))
		}
	}
}

// generateKingMoves emits every legal king move: a normal destination
// square not attacked by the opponent. Unlike the other piece loops, the
// king is never restricted by CheckMask or PinMasks - it is the one piece
// that may always step off its own pin (there is none) and must itself
// step out of check.
func generateKingMoves(p *position.Position, us board.Color, info attacks.Info, ml *board.MoveList) {
	from := p.KingSquare(us)
	ownOccupied := p.Occupancy(us)
	occupied := p.OccupancyAll()

	targets := board.KingAttacks(from) &^ ownOccupied &^ info.OpponentAttacks
	for targets != 0 {
		to := targets.PopLsb()
		flag := board.FlagQuiet
		if occupied.Has(to) {
			flag = board.FlagCapture
		}
		ml.Add(board.NewMove(from, to, flag))
	}
}

// generatePawnMoves emits single and double pushes, diagonal captures, en
// passant, and promotions (to all four piece types, on both a push and a
// capture), each filtered by CheckMask and the moving pawn's PinMask.
func generatePawnMoves(p *position.Position, us board.Color, info attacks.Info, ml *board.MoveList) {
	them := us.Opponent()
	occupied := p.OccupancyAll()
	theirs := p.Occupancy(them)
	pawns := p.Pieces(board.Pawn, us)

	promoRank := board.Rank8
	startRank := board.Rank2
	forward := func(b board.Bitboard) board.Bitboard { return b.North() }
	if us == board.Black {
		promoRank = board.Rank1
		startRank = board.Rank7
		forward = func(b board.Bitboard) board.Bitboard { return b.South() }
	}

	for bb := pawns; bb != 0; {
		from := bb.PopLsb()
		pinMask := info.PinMasks[from]

		single := forward(from.Bb()) &^ occupied
		if single != 0 {
			to := single.Lsb()
			if single&info.CheckMask != 0 && single&pinMask != 0 {
				addPawnMove(ml, from, to, to.Rank() == promoRank, false)
			}
			if from.Rank() == startRank {
				double := forward(single) &^ occupied
				if double != 0 && double&info.CheckMask != 0 && double&pinMask != 0 {
					ml.Add(board.NewMove(from, double.Lsb(), board.FlagDoublePush))
				}
			}
		}

		captures := board.PawnAttacks(us, from) & theirs & info.CheckMask & pinMask
		for captures != 0 {
			to := captures.PopLsb()
			addPawnMove(ml, from, to, to.Rank() == promoRank, true)
		}

		if p.EnPassantSquare() != board.SquareNone {
			generateEnPassant(p, us, from, pinMask, info, ml)
		}
	}
}

// addPawnMove appends one pawn destination, expanding it to the four
// under/over-promotion moves if isPromo.
func addPawnMove(ml *board.MoveList, from, to board.Square, isPromo, isCapture bool) {
	if !isPromo {
		flag := board.FlagQuiet
		if isCapture {
			flag = board.FlagCapture
		}
		ml.Add(board.NewMove(from, to, flag))
		return
	}
	for _, pt := range [4]board.PieceType{board.Knight, board.Bishop, board.Rook, board.Queen} {
		flag := board.FlagPromotion(pt)
		if isCapture {
			flag = board.FlagPromotionCapture(pt)
		}
		ml.Add(board.NewMove(from, to, flag))
	}
}

// generateEnPassant handles the capture's discovered-check edge case
// (spec.md section 4.I): removing both the capturing and captured pawns
// can expose the king to a rook or queen along the rank, which neither
// CheckMask nor the capturing pawn's own PinMask would catch, so it is
// verified by re-running the check scan against the resulting occupancy.
func generateEnPassant(p *position.Position, us board.Color, from board.Square, pinMask board.Bitboard, info attacks.Info, ml *board.MoveList) {
	ep := p.EnPassantSquare()
	if board.PawnAttacks(us, from)&ep.Bb() == 0 {
		return
	}

	them := us.Opponent()
	capturedSq := board.SquareOf(ep.File(), from.Rank())

	legalByMask := ep.Bb()&info.CheckMask != 0 || capturedSq.Bb()&info.CheckMask != 0
	if !legalByMask {
		return
	}
	if ep.Bb()&pinMask == 0 {
		return
	}

	occAfter := p.OccupancyAll() &^ from.Bb() &^ capturedSq.Bb() | ep.Bb()
	king := p.KingSquare(us)
	if king.Rank() == from.Rank() {
		var oppPieces [board.PtLength]board.Bitboard
		for pt := board.Pawn; pt <= board.King; pt++ {
			oppPieces[pt] = p.Pieces(pt, them)
		}
		if attacks.AttackersTo(us, king, occAfter, oppPieces)&(oppPieces[board.Rook]|oppPieces[board.Queen]) != 0 {
			return
		}
	}

	ml.Add(board.NewMove(from, ep, board.FlagEnPassant))
}

// generateCastling emits the two castling moves (king/queen side) that
// are currently legal: the rights bit is set, the squares between king
// and rook are empty, and neither the king's start, transit, nor landing
// square is attacked by the opponent (spec.md section 4.I).
func generateCastling(p *position.Position, us board.Color, info attacks.Info, ml *board.MoveList) {
	occupied := p.OccupancyAll()
	rights := p.Castling()

	type castle struct {
		right          board.CastlingRights
		kingTo, rookTo board.Square
		empty, transit board.Bitboard
	}

	var candidates []castle
	if us == board.White {
		candidates = []castle{
			{board.CastleWK, board.Square(6), board.Square(5), squaresBetween(board.Square(5), board.Square(6)), squaresBetween(board.Square(4), board.Square(6))},
			{board.CastleWQ, board.Square(2), board.Square(3), squaresBetween(board.Square(1), board.Square(3)), squaresBetween(board.Square(2), board.Square(4))},
		}
	} else {
		candidates = []castle{
			{board.CastleBK, board.Square(62), board.Square(61), squaresBetween(board.Square(61), board.Square(62)), squaresBetween(board.Square(60), board.Square(62))},
			{board.CastleBQ, board.Square(58), board.Square(59), squaresBetween(board.Square(57), board.Square(59)), squaresBetween(board.Square(58), board.Square(60))},
		}
	}

	king := p.KingSquare(us)
	for _, c := range candidates {
		if !rights.Has(c.right) {
			continue
		}
		if c.empty&occupied != 0 {
			continue
		}
		if c.transit&info.OpponentAttacks != 0 {
			continue
		}
		flag := board.FlagCastleK
		if c.right == board.CastleWQ || c.right == board.CastleBQ {
			flag = board.FlagCastleQ
		}
		ml.Add(board.NewMove(king, c.kingTo, flag))
	}
}

// squaresBetween returns the inclusive range [a, b] (a <= b) as a
// bitboard of squares on the back rank; used to build the "must be
// empty" and "must not be attacked" masks for castling.
func squaresBetween(a, b board.Square) board.Bitboard {
	var bb board.Bitboard
	for sq := a; sq <= b; sq++ {
		bb = bb.Push(sq)
	}
	return bb
}
