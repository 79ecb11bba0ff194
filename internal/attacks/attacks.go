//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package attacks computes the check and pin information that movegen
// filters candidate moves against: which squares the opponent attacks,
// which pieces currently give check, and which of our own pieces are
// pinned to our king (spec.md section 4.H). Grounded on the pin-detection
// shape of Bubblyworld/dragontoothmg's generatePinnedMoves and the
// check-mask idea from Blunder's move generator, both consulted
// alongside the teacher's own attacks.go for the attacked-squares query
// this package exposes.
package attacks

import "github.com/vilhelmbergsoe/brainybishop/internal/board"

// Info is the check/pin analysis for the side to move in one position.
type Info struct {
	// OpponentAttacks is every square the opponent attacks, computed with
	// our own king removed from the occupancy so sliding attacks see
	// through it - a king may not step along the ray of a checking slider.
	OpponentAttacks board.Bitboard

	// Checkers is the set of opponent pieces currently giving check.
	Checkers board.Bitboard

	// CheckMask restricts where a non-king move may land: BbAll when not
	// in check, the checker's square plus the squares between it and the
	// king when in check by exactly one piece (block or capture), and
	// BbZero when in check by two or more pieces (only the king may move).
	CheckMask board.Bitboard

	// PinMasks[sq], for each of our own pieces on sq, restricts it to the
	// full rank, file or diagonal through the king and the pinning piece
	// (board.Line, both endpoints included) if sq is pinned, or BbAll
	// otherwise.
	PinMasks [board.SqLength]board.Bitboard
}

// Compute analyzes the position for the side to move, identified by us,
// our king square king, the full board occupancy occupied, and the
// opponent's per-piece-type bitboards.
func Compute(us board.Color, king board.Square, occupied board.Bitboard, opp [board.PtLength]board.Bitboard) Info {
	them := us.Opponent()

	var info Info
	occupiedNoKing := occupied &^ king.Bb()
	info.OpponentAttacks = attackedSquares(them, occupiedNoKing, opp)

	info.Checkers = AttackersTo(us, king, occupied, opp)

	switch info.Checkers.PopCount() {
	case 0:
		info.CheckMask = board.BbAll
	case 1:
		checker := info.Checkers.Lsb()
		info.CheckMask = checker.Bb() | board.Between(king, checker)
	default:
		info.CheckMask = board.BbZero
	}

	for sq := board.Square(0); sq < board.SqLength; sq++ {
		info.PinMasks[sq] = board.BbAll
	}
	computePins(&info, us, king, occupied, opp)

	return info
}

// attackedSquares unions the attack bitboards of every piece of color c,
// used to build OpponentAttacks (king-safety checks) over occupied.
func attackedSquares(c board.Color, occupied board.Bitboard, pieces [board.PtLength]board.Bitboard) board.Bitboard {
	var attacked board.Bitboard

	pawns := pieces[board.Pawn]
	for pawns != 0 {
		sq := pawns.PopLsb()
		attacked |= board.PawnAttacks(c, sq)
	}
	for pt := board.Knight; pt <= board.King; pt++ {
		bb := pieces[pt]
		for bb != 0 {
			sq := bb.PopLsb()
			attacked |= board.AttacksBb(pt, sq, occupied)
		}
	}
	return attacked
}

// AttackersTo returns every opposing piece (encoded in pieces) that
// attacks sq, given the full board occupancy and the color defending sq
// (needed to resolve pawn attack direction). Used for Checkers (sq = our
// king, defender = us), by movegen's en-passant discovered-check test, and
// by perft's check counting.
func AttackersTo(defender board.Color, sq board.Square, occupied board.Bitboard, pieces [board.PtLength]board.Bitboard) board.Bitboard {
	var attackers board.Bitboard
	attackers |= board.KnightAttacks(sq) & pieces[board.Knight]
	attackers |= board.KingAttacks(sq) & pieces[board.King]
	attackers |= board.BishopAttacks(sq, occupied) & (pieces[board.Bishop] | pieces[board.Queen])
	attackers |= board.RookAttacks(sq, occupied) & (pieces[board.Rook] | pieces[board.Queen])
	// An enemy pawn attacks sq from exactly the squares a defender-colored
	// pawn standing on sq would itself attack diagonally forward - the
	// attack relation is symmetric under a color flip.
	attackers |= board.PawnAttacks(defender, sq) & pieces[board.Pawn]
	return attackers
}

// computePins walks each sliding ray from king outward; if exactly one of
// our own pieces sits between the king and an enemy slider of the
// matching geometry (bishop/queen on a diagonal, rook/queen on a
// rank/file), that piece is pinned to the line between them.
func computePins(info *Info, us board.Color, king board.Square, occupied board.Bitboard, opp [board.PtLength]board.Bitboard) {
	ownOccupied := occupied &^ (opp[board.Pawn] | opp[board.Knight] | opp[board.Bishop] | opp[board.Rook] | opp[board.Queen] | opp[board.King])

	diagonalSliders := opp[board.Bishop] | opp[board.Queen]
	straightSliders := opp[board.Rook] | opp[board.Queen]

	// board.Line(king, sq) is non-zero whenever king and sq share ANY
	// rank, file, or diagonal - it doesn't know which. A bishop sharing
	// a rank/file with the king (but not a diagonal) is not a pinning
	// threat, and likewise a rook sharing a diagonal isn't one either, so
	// each scan must also check that the shared line's geometry actually
	// matches how that slider moves.
	scanForPins(info, king, occupied, ownOccupied, diagonalSliders, isDiagonal)
	scanForPins(info, king, occupied, ownOccupied, straightSliders, isStraight)
}

// isDiagonal reports whether a and b lie on a shared diagonal.
func isDiagonal(a, b board.Square) bool {
	return board.FileDistance(a.File(), b.File()) == board.RankDistance(a.Rank(), b.Rank())
}

// isStraight reports whether a and b lie on a shared rank or file.
func isStraight(a, b board.Square) bool {
	return a.File() == b.File() || a.Rank() == b.Rank()
}

// scanForPins finds pins along one slider geometry: for every enemy
// slider in sliders whose shared line with king actually matches that
// geometry (per matches), the line to the king is pinned through exactly
// one of our pieces if Between(king, slider) contains exactly one
// occupied square and that square is ours.
func scanForPins(info *Info, king board.Square, occupied, ownOccupied board.Bitboard, sliders board.Bitboard, matches func(a, b board.Square) bool) {
	for sliders != 0 {
		sq := sliders.PopLsb()
		if !matches(king, sq) {
			continue
		}
		line := board.Line(king, sq)
		if line == board.BbZero {
			continue
		}
		between := board.Between(king, sq)
		blockers := between & occupied
		if blockers.PopCount() != 1 {
			continue
		}
		if blockers&ownOccupied == 0 {
			continue
		}
		pinnedSq := blockers.Lsb()
		info.PinMasks[pinnedSq] = line
	}
}
