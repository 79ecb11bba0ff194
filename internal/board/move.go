//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package board

import "strings"

// MoveFlag is the 4-bit move kind encoded in a Move; spec.md section 3.
type MoveFlag uint16

// Move flag values. 8..11 are promotions to N/B/R/Q (no capture), 12..15
// are promotion-captures to the same four piece types.
const (
	FlagQuiet      MoveFlag = 0
	FlagDoublePush MoveFlag = 1
	FlagCastleK    MoveFlag = 2
	FlagCastleQ    MoveFlag = 3
	FlagCapture    MoveFlag = 4
	FlagEnPassant  MoveFlag = 5
	flagPromoBase  MoveFlag = 8
	flagPromoCapBase MoveFlag = 12
)

// FlagPromotion returns the promotion-without-capture flag for pt (Knight..Queen).
func FlagPromotion(pt PieceType) MoveFlag {
	return flagPromoBase + MoveFlag(pt-Knight)
}

// FlagPromotionCapture returns the promotion-with-capture flag for pt (Knight..Queen).
func FlagPromotionCapture(pt PieceType) MoveFlag {
	return flagPromoCapBase + MoveFlag(pt-Knight)
}

// Move is a packed 16-bit value: bits 0..5 = from, 6..11 = to, 12..15 = flag.
type Move uint16

// MoveNone is the null/invalid move.
const MoveNone Move = 0

const (
	fromMask  = 0x3F
	toShift   = 6
	toMask    = 0x3F << toShift
	flagShift = 12
)

// NewMove packs from, to and flag into a Move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(from) | Move(to)<<toShift | Move(flag)<<flagShift
}

// From returns the source square.
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Flag returns the move's 4-bit flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> flagShift)
}

// IsCapture reports whether the move captures a piece (ordinary capture,
// en-passant, or promotion-capture).
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEnPassant || f >= flagPromoCapBase
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= flagPromoBase
}

// IsCastle reports whether the move is a castle, either side.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleK || f == FlagCastleQ
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// PromotionType returns the piece type promoted to; only meaningful when
// IsPromotion is true.
func (m Move) PromotionType() PieceType {
	f := m.Flag()
	if f >= flagPromoCapBase {
		return Knight + PieceType(f-flagPromoCapBase)
	}
	return Knight + PieceType(f-flagPromoBase)
}

var promoChars = "nbrq"

// UCI renders the move in universal-chess-interface text form:
// "<from><to>[promo]".
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteByte(promoChars[m.PromotionType()-Knight])
	}
	return sb.String()
}
