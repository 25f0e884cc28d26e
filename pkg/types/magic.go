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

// Magic holds the magic bitboard data for a single square and piece
// family. Attacks for an occupancy are found at
// table[Offset + ((occ & Mask) * Magic) >> Shift] in the flat attack
// table of the family ("fancy" magic bitboards).
type Magic struct {
	Mask   Bitboard
	Magic  uint64
	Shift  uint8
	Offset uint32
}

// Index calculates the index into the flat attack table for the
// given occupancy. The multiplication is wrapping 64 bit unsigned.
func (m *Magic) Index(occupied Bitboard) uint32 {
	return m.Offset + uint32((uint64(occupied&m.Mask)*m.Magic)>>m.Shift)
}

// GetBishopMoves returns the attack bitboard of a bishop on the square
// with the given board occupancy
func GetBishopMoves(sq Square, occupied Bitboard) Bitboard {
	return bishopMoves[bishopMagics[sq].Index(occupied)]
}

// GetRookMoves returns the attack bitboard of a rook on the square
// with the given board occupancy
func GetRookMoves(sq Square, occupied Bitboard) Bitboard {
	return rookMoves[rookMagics[sq].Index(occupied)]
}

// GetQueenMoves returns the attack bitboard of a queen on the square
// with the given board occupancy
func GetQueenMoves(sq Square, occupied Bitboard) Bitboard {
	return GetBishopMoves(sq, occupied) | GetRookMoves(sq, occupied)
}

// GetBishopMagic returns the magic descriptor of the square for the
// bishop family
func GetBishopMagic(sq Square) *Magic {
	return &bishopMagics[sq]
}

// GetRookMagic returns the magic descriptor of the square for the
// rook family
func GetRookMagic(sq Square) *Magic {
	return &rookMagics[sq]
}
