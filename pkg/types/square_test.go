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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFromString(t *testing.T) {
	assert := assert.New(t)

	sq, err := SquareFromString("e4")
	assert.NoError(err)
	assert.Equal(SqE4, sq)

	sq, err = SquareFromString("a1")
	assert.NoError(err)
	assert.Equal(SqA1, sq)

	sq, err = SquareFromString("h8")
	assert.NoError(err)
	assert.Equal(SqH8, sq)

	for _, invalid := range []string{"", "e", "e44", "i4", "e9", "E4", "44"} {
		_, err := SquareFromString(invalid)
		assert.ErrorIs(err, ErrInvalidSquare, "input %q", invalid)
	}
}

func TestSquareFileRank(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(FileE, SqE4.FileOf())
	assert.Equal(Rank4, SqE4.RankOf())
	assert.Equal(FileA, SqA1.FileOf())
	assert.Equal(Rank8, SqH8.RankOf())

	assert.Equal(SqE4, SquareOf(FileE, Rank4))
	assert.Equal(SqNone, SquareOf(FileNone, Rank4))
}

func TestSquareNeighbours(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SqE5, SqE4.Up())
	assert.Equal(SqE3, SqE4.Down())
	assert.Equal(SqD4, SqE4.Left())
	assert.Equal(SqF4, SqE4.Right())

	// neighbours saturate at the board edges
	assert.Equal(SqNone, SqE8.Up())
	assert.Equal(SqNone, SqE1.Down())
	assert.Equal(SqNone, SqA4.Left())
	assert.Equal(SqNone, SqH4.Right())
}

func TestSquareForwardBackward(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SqE3, SqE2.Forward(White))
	assert.Equal(SqE6, SqE7.Forward(Black))
	assert.Equal(SqE2, SqE3.Backward(White))
	assert.Equal(SqE7, SqE6.Backward(Black))

	assert.Equal(SqNone, SqE8.Forward(White))
	assert.Equal(SqE8, SqE8.WrappingForward(White))
	assert.Equal(SqE1, SqE1.WrappingBackward(White))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestFileRankFromString(t *testing.T) {
	assert := assert.New(t)

	f, err := FileFromString("c")
	assert.NoError(err)
	assert.Equal(FileC, f)
	_, err = FileFromString("x")
	assert.ErrorIs(err, ErrInvalidFile)

	r, err := RankFromString("6")
	assert.NoError(err)
	assert.Equal(Rank6, r)
	_, err = RankFromString("9")
	assert.ErrorIs(err, ErrInvalidRank)
}

func TestColor(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Black, White.Flip())
	assert.Equal(White, Black.Flip())
	assert.Equal(Rank1, White.BackRank())
	assert.Equal(Rank8, Black.BackRank())
	assert.Equal(Rank2, White.SecondRank())
	assert.Equal(Rank7, Black.SecondRank())
	assert.Equal(Rank4, White.FourthRank())
	assert.Equal(Rank5, Black.FourthRank())
}

func TestPieceFromChar(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Pawn, PieceFromChar('p'))
	assert.Equal(Queen, PieceFromChar('q'))
	assert.Equal(PieceNone, PieceFromChar('x'))
	assert.Equal(byte('n'), Knight.Char())
}
