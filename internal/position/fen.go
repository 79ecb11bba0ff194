//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"strconv"
	"strings"

	"github.com/vilhelmbergsoe/brainybishop/internal/board"
	"github.com/vilhelmbergsoe/brainybishop/internal/zobrist"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a Forsyth-Edwards Notation string into a Position.
// Validation is structural only, per spec.md section 4.F: it checks field
// shape and that each token is well-formed, not whether the resulting
// position is reachable from the start position by legal play. The first
// violation found aborts parsing with the matching sentinel error from
// errors.go.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, ErrWrongFieldCount
	}

	var p Position

	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}
	if err := parseSideToMove(&p, fields[1]); err != nil {
		return Position{}, err
	}
	if err := parseCastling(&p, fields[2]); err != nil {
		return Position{}, err
	}
	if err := parseEnPassant(&p, fields[3]); err != nil {
		return Position{}, err
	}
	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Position{}, ErrInvalidCounter
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Position{}, ErrInvalidCounter
	}
	p.halfmoveClock = halfmove
	p.fullmoveNumber = fullmove

	if p.sideToMove == board.Black {
		p.key ^= zobrist.SideToMove
	}
	if p.epSquare != board.SquareNone {
		p.key ^= zobrist.EnPassantFile[p.epSquare.File()]
	}
	for i := 0; i < 4; i++ {
		if p.castling.Has(board.CastlingRights(1 << uint(i))) {
			p.key ^= zobrist.Castling[i]
		}
	}

	return p, nil
}

func parsePlacement(p *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return ErrInvalidPlacement
	}
	// FEN lists ranks from 8 down to 1.
	for i, rankStr := range ranks {
		r := board.Rank(7 - i)
		f := board.FileA
		for _, c := range rankStr {
			if f > board.FileH {
				return ErrInvalidPlacement
			}
			if c >= '1' && c <= '8' {
				f += board.File(c - '0')
				continue
			}
			pc, ok := board.PieceFromChar(byte(c))
			if !ok {
				return ErrInvalidPlacement
			}
			p.put(board.SquareOf(f, r), pc)
			f++
		}
		if f != board.FileH+1 {
			return ErrInvalidPlacement
		}
	}
	if p.Pieces(board.King, board.White).PopCount() != 1 ||
		p.Pieces(board.King, board.Black).PopCount() != 1 {
		return ErrInvalidPlacement
	}
	return nil
}

func parseSideToMove(p *Position, field string) error {
	switch field {
	case "w":
		p.sideToMove = board.White
	case "b":
		p.sideToMove = board.Black
	default:
		return ErrInvalidSide
	}
	return nil
}

func parseCastling(p *Position, field string) error {
	if field == "-" {
		p.castling = board.CastleNone
		return nil
	}
	seen := map[byte]bool{}
	for i := 0; i < len(field); i++ {
		c := field[i]
		if seen[c] {
			return ErrInvalidCastling
		}
		seen[c] = true
		switch c {
		case 'K':
			p.castling |= board.CastleWK
		case 'Q':
			p.castling |= board.CastleWQ
		case 'k':
			p.castling |= board.CastleBK
		case 'q':
			p.castling |= board.CastleBQ
		default:
			return ErrInvalidCastling
		}
	}
	return nil
}

func parseEnPassant(p *Position, field string) error {
	if field == "-" {
		p.epSquare = board.SquareNone
		return nil
	}
	sq, err := board.ParseSquare(field)
	if err != nil {
		return ErrInvalidEnPassant
	}
	if sq.Rank() != board.Rank3 && sq.Rank() != board.Rank6 {
		return ErrInvalidEnPassant
	}
	p.epSquare = sq
	return nil
}

// FEN serializes the position back to Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := board.Rank8; r >= board.Rank1; r-- {
		empty := 0
		for f := board.FileA; f <= board.FileH; f++ {
			pc := p.PieceAt(board.SquareOf(f, r))
			if pc == board.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != board.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())

	sb.WriteByte(' ')
	if p.epSquare == board.SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epSquare.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))

	return sb.String()
}
