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

// Color represents the two sides in chess - white and black
type Color uint8

// Colors
const (
	White Color = iota
	Black
)

// Flip returns the opposite color
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks whether the color is a valid white or black value
func (c Color) IsValid() bool {
	return c < 2
}

// BackRank returns the back rank of the color, e.g. rank 1 for white
func (c Color) BackRank() Rank {
	if c == White {
		return Rank1
	}
	return Rank8
}

// SecondRank returns the pawn start rank of the color, the rank a
// double push starts from
func (c Color) SecondRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// FourthRank returns the rank a pawn double push of the color lands on
func (c Color) FourthRank() Rank {
	if c == White {
		return Rank4
	}
	return Rank5
}

// MoveDirection returns the direction pawns of the color move in
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// String returns a string representation of color as "w" or "b"
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}
