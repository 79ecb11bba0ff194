//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package board holds the bitboard-based representation of a chess position:
// squares, pieces, moves, and the precomputed attack tables (leaper, ray,
// and magic sliding attacks) that the move generator looks up against.
package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit k set means square k is a member.
type Bitboard uint64

// BbZero and BbAll are the empty and full bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File masks, one bit per rank on that file.
const (
	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7
)

// Rank masks, one bit per file on that rank.
const (
	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (1 * 8)
	Rank3Bb Bitboard = Rank1Bb << (2 * 8)
	Rank4Bb Bitboard = Rank1Bb << (3 * 8)
	Rank5Bb Bitboard = Rank1Bb << (4 * 8)
	Rank6Bb Bitboard = Rank1Bb << (5 * 8)
	Rank7Bb Bitboard = Rank1Bb << (6 * 8)
	Rank8Bb Bitboard = Rank1Bb << (7 * 8)
)

// notFileA etc. guard shifts that would otherwise wrap around the board edge.
const (
	notFileABb  = ^FileABb
	notFileHBb  = ^FileHBb
	notFileABBb = ^(FileABb | FileBBb)
	notFileGHBb = ^(FileGBb | FileHBb)
)

var fileBb = [8]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBb = [8]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}

// Has reports whether square sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Push sets sq in b.
func (b Bitboard) Push(sq Square) Bitboard {
	return b | sq.Bb()
}

// Pop clears sq in b.
func (b Bitboard) Pop(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant set square, or SquareNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SquareNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// North, south, east, west and the four diagonal shifts, each edge-guarded
// before the shift so bits never wrap to the opposite file (spec.md
// 9. DESIGN NOTES: "guarded before the shift, never after").
func (b Bitboard) North() Bitboard { return b << 8 }
func (b Bitboard) South() Bitboard { return b >> 8 }
func (b Bitboard) East() Bitboard  { return (b &^ FileHBb) << 1 }
func (b Bitboard) West() Bitboard  { return (b &^ FileABb) >> 1 }
func (b Bitboard) NoEa() Bitboard  { return (b &^ FileHBb) << 9 }
func (b Bitboard) NoWe() Bitboard  { return (b &^ FileABb) << 7 }
func (b Bitboard) SoEa() Bitboard  { return (b &^ FileHBb) >> 7 }
func (b Bitboard) SoWe() Bitboard  { return (b &^ FileABb) >> 9 }

// String renders the bitboard as a human-readable 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
