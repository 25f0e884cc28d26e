/*
 * chessframe - a chess position and move generation library in GO
 *
 * MIT License
 *
 * Copyright (c) 2024-2025 Zirconium419122
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package board

import (
	"fmt"
	"strings"

	. "github.com/Zirconium419122/chessframe/pkg/types"
)

// FromFen creates a board from a standard six field FEN string.
// Structurally invalid input is treated as a programmer error and
// panics - callers needing tolerant parsing must validate upstream.
func FromFen(fen string) *Board {
	b := New()

	parts := strings.Fields(fen)
	if len(parts) != 6 {
		panic(fmt.Sprintf("invalid FEN %q: expected 6 fields, got %d", fen, len(parts)))
	}

	b.parsePieces(parts[0])

	switch parts[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		panic(fmt.Sprintf("invalid FEN %q: bad active color %q", fen, parts[1]))
	}

	b.castlingRights = CastlingRightsFromFen(parts[2])

	if parts[3] != "-" {
		sq, err := SquareFromString(parts[3])
		if err != nil {
			panic(fmt.Sprintf("invalid FEN %q: bad en passant square %q", fen, parts[3]))
		}
		// store only when the side to move could actually capture
		b.setEnPassant(sq, b.sideToMove)
	}

	b.computeCheckAndPins(b.sideToMove)

	return b
}

// StartBoard creates a board with the standard starting position
func StartBoard() *Board {
	return FromFen(StartFen)
}

// parsePieces reads the piece placement field of a FEN - ranks 8 to 1
// separated by '/', files a to h, digits for empty runs
func (b *Board) parsePieces(placement string) {
	rank := Rank8
	file := FileA

	for i := 0; i < len(placement); i++ {
		ch := placement[i]
		switch {
		case ch == '/':
			rank--
			file = FileA
		case ch >= '1' && ch <= '8':
			file += File(ch - '0')
		default:
			color := Black
			if ch >= 'A' && ch <= 'Z' {
				color = White
			}
			piece := PieceFromChar(ch | 0x20)
			if piece == PieceNone || !rank.IsValid() || !file.IsValid() {
				panic(fmt.Sprintf("invalid FEN piece placement %q", placement))
			}
			b.xor(SquareOf(file, rank).Bb(), piece, color)
			file++
		}
	}
}

// ToFen returns the FEN string of the position. The board does not
// track move clocks, they are emitted as "0 1" - Game keeps the
// halfmove clock.
func (b *Board) ToFen() string {
	var sb strings.Builder

	for r := Rank8; r.IsValid(); r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			piece := b.GetPiece(sq)
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if b.occupancy[White].Has(sq) {
				sb.WriteByte(piece.Char() &^ 0x20)
			} else {
				sb.WriteByte(piece.Char())
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteString(" " + b.sideToMove.String())
	sb.WriteString(" " + b.castlingRights.String())
	sb.WriteString(" " + b.enPassantSquare.String())
	sb.WriteString(" 0 1")

	return sb.String()
}
