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

// The zobrist keys are drawn from a seeded deterministic PRNG at table
// generation time (see cmd/tablegen) so that builds are reproducible
// and position hashes are stable across versions.

// ZobristPiece returns the zobrist key of a piece of a color on a square
func ZobristPiece(c Color, p Piece, sq Square) uint64 {
	return zobristPieces[c][p][sq]
}

// ZobristCastle returns the zobrist key of the castling rights of the
// color, indexed by the color's two rights bits
func ZobristCastle(cr CastlingRights, c Color) uint64 {
	return zobristCastle[c][cr.ColorBits(c)]
}

// ZobristEnPassant returns the zobrist key of an en passant target
// file for the capturing color
func ZobristEnPassant(f File, c Color) uint64 {
	return zobristEnPassant[c][f]
}

// ZobristSideToMove returns the key xored into the hash when black is
// to move
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}
