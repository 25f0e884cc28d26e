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

// GetPawnMoves returns the push targets of a pawn of the color on the
// square - single push and, from the second rank, the double push -
// ignoring any blockers
func GetPawnMoves(c Color, sq Square) Bitboard {
	return pawnMoves[c][sq]
}

// GetPawnAttacks returns the diagonal capture targets of a pawn of the
// color on the square
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetKnightMoves returns the move bitboard of a knight on the square
func GetKnightMoves(sq Square) Bitboard {
	return knightMoves[sq]
}

// GetKingMoves returns the move bitboard of a king on the square,
// castling excluded
func GetKingMoves(sq Square) Bitboard {
	return kingMoves[sq]
}

// GetCastleMoves returns the bitboard of the six squares taking part
// in castling king moves - the king home squares and the king landing
// squares c1, g1, c8 and g8
func GetCastleMoves() Bitboard {
	return castleMoves
}

// Between returns the squares strictly between the two squares on a
// shared rank, file or diagonal. Empty when the squares are not
// aligned or equal.
func Between(sq1, sq2 Square) Bitboard {
	return between[sq1][sq2]
}

// Tangent returns the full ray through the two squares, both squares
// included. Empty when the squares are not aligned.
func Tangent(sq1, sq2 Square) Bitboard {
	return tangent[sq1][sq2]
}

// GetBishopRays returns all squares a bishop on the square reaches on
// an empty board
func GetBishopRays(sq Square) Bitboard {
	return bishopRays[sq]
}

// GetRookRays returns all squares a rook on the square reaches on an
// empty board
func GetRookRays(sq Square) Bitboard {
	return rookRays[sq]
}
