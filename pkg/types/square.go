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

// Square represents exactly one square on a chess board.
// Square index 0 is a1, index 63 is h8 (bit 8*rank + file).
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid checks if the value represents a valid square on a
// chess board (e.g. sq < 64)
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns a square from file and rank.
// Returns SqNone for invalid files or ranks.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(uint8(r)<<3 + uint8(f))
}

// SquareFromString parses a square from a two character string like
// "e4". Returns ErrInvalidSquare when the string is not a square.
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, ErrInvalidSquare
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return SqNone, ErrInvalidSquare
	}
	return SquareOf(File(s[0]-'a'), Rank(s[1]-'1')), nil
}

// Up returns the square north of this one or SqNone when
// moving off the board
func (sq Square) Up() Square {
	if sq.RankOf() == Rank8 {
		return SqNone
	}
	return sq + 8
}

// Down returns the square south of this one or SqNone when
// moving off the board
func (sq Square) Down() Square {
	if sq.RankOf() == Rank1 {
		return SqNone
	}
	return sq - 8
}

// Left returns the square west of this one or SqNone when
// moving off the board
func (sq Square) Left() Square {
	if sq.FileOf() == FileA {
		return SqNone
	}
	return sq - 1
}

// Right returns the square east of this one or SqNone when
// moving off the board
func (sq Square) Right() Square {
	if sq.FileOf() == FileH {
		return SqNone
	}
	return sq + 1
}

// Forward returns the square in the pawn move direction of the color
// or SqNone when moving off the board
func (sq Square) Forward(c Color) Square {
	if c == White {
		return sq.Up()
	}
	return sq.Down()
}

// Backward returns the square against the pawn move direction of the
// color or SqNone when moving off the board
func (sq Square) Backward(c Color) Square {
	if c == White {
		return sq.Down()
	}
	return sq.Up()
}

// WrappingForward returns the square in the pawn move direction of the
// color, saturating to the square itself at the board edge
func (sq Square) WrappingForward(c Color) Square {
	if next := sq.Forward(c); next != SqNone {
		return next
	}
	return sq
}

// WrappingBackward returns the square against the pawn move direction
// of the color, saturating to the square itself at the board edge
func (sq Square) WrappingBackward(c Color) Square {
	if next := sq.Backward(c); next != SqNone {
		return next
	}
	return sq
}

// String returns a string of the file letter and rank number (e.g. e5)
// or "-" if the square is not valid
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
