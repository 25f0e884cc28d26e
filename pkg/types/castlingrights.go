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

package types

import "strings"

// CastlingRights encodes the remaining castling rights of both colors
// in four bits - white kingside, white queenside, black kingside,
// black queenside.
type CastlingRights uint8

// Castling rights constants
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 0b0001
	CastlingWhiteOOO CastlingRights = 0b0010
	CastlingBlackOO  CastlingRights = 0b0100
	CastlingBlackOOO CastlingRights = 0b1000
	CastlingAny      CastlingRights = 0b1111
)

const castlingColorOffset = 2

// CastlingRightsFromFen reads castling rights from the fen field
// notation, e.g. "KQkq" or "-"
func CastlingRightsFromFen(s string) CastlingRights {
	cr := CastlingNone
	if strings.ContainsRune(s, 'K') {
		cr |= CastlingWhiteOO
	}
	if strings.ContainsRune(s, 'Q') {
		cr |= CastlingWhiteOOO
	}
	if strings.ContainsRune(s, 'k') {
		cr |= CastlingBlackOO
	}
	if strings.ContainsRune(s, 'q') {
		cr |= CastlingBlackOOO
	}
	return cr
}

// CastlingRightsForSquare returns the rights of the color which are
// bound to the square - all rights of the color for the king home
// square, the kingside right for the h-file rook home square and the
// queenside right for the a-file rook home square. Used to clear
// rights whenever a move touches one of these squares.
func CastlingRightsForSquare(c Color, sq Square) CastlingRights {
	switch sq {
	case SquareOf(FileE, c.BackRank()):
		return (CastlingWhiteOO | CastlingWhiteOOO) << (uint8(c) * castlingColorOffset)
	case SquareOf(FileH, c.BackRank()):
		return CastlingWhiteOO << (uint8(c) * castlingColorOffset)
	case SquareOf(FileA, c.BackRank()):
		return CastlingWhiteOOO << (uint8(c) * castlingColorOffset)
	}
	return CastlingNone
}

// Remove returns the rights with the given rights cleared
func (cr CastlingRights) Remove(remove CastlingRights) CastlingRights {
	return cr &^ remove
}

// CanCastle tests whether the color still holds the kingside or
// queenside right
func (cr CastlingRights) CanCastle(c Color, kingside bool) bool {
	right := CastlingWhiteOO
	if !kingside {
		right = CastlingWhiteOOO
	}
	return cr&(right<<(uint8(c)*castlingColorOffset)) != 0
}

// ColorBits returns the two rights bits of the color shifted down to
// the range 0-3. This is the index used for the castling zobrist keys.
func (cr CastlingRights) ColorBits(c Color) uint8 {
	return uint8(cr>>(uint8(c)*castlingColorOffset)) & 0b11
}

// String returns the fen field notation of the rights, e.g. "KQkq"
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr&CastlingWhiteOO != 0 {
		sb.WriteByte('K')
	}
	if cr&CastlingWhiteOOO != 0 {
		sb.WriteByte('Q')
	}
	if cr&CastlingBlackOO != 0 {
		sb.WriteByte('k')
	}
	if cr&CastlingBlackOOO != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}
