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

func TestBitboardPushPop(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())

	b.PushSquare(SqA1)
	b.PushSquare(SqH8)
	assert.Equal(t, 3, b.PopCount())

	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, 2, b.PopCount())
}

func TestBitboardLsbMsb(t *testing.T) {
	assert := assert.New(t)

	b := SqE4.Bb() | SqB2.Bb() | SqG7.Bb()
	assert.Equal(SqB2, b.Lsb())
	assert.Equal(SqG7, b.Msb())

	assert.Equal(SqNone, BbZero.Lsb())
	assert.Equal(SqNone, BbZero.Msb())
}

func TestBitboardPopLsbIterationOrder(t *testing.T) {
	b := SqH8.Bb() | SqA1.Bb() | SqD4.Bb() | SqD5.Bb()

	var squares []Square
	for b != BbZero {
		squares = append(squares, b.PopLsb())
	}

	// ascending square index order
	assert.Equal(t, []Square{SqA1, SqD4, SqD5, SqH8}, squares)
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestBitboardToSquare(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		assert.Equal(t, sq, sq.Bb().ToSquare())
	}
}

func TestBitboardShift(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SqE5.Bb(), SqE4.Bb().Shift(North))
	assert.Equal(SqE3.Bb(), SqE4.Bb().Shift(South))
	assert.Equal(SqF4.Bb(), SqE4.Bb().Shift(East))
	assert.Equal(SqD4.Bb(), SqE4.Bb().Shift(West))
	assert.Equal(SqF5.Bb(), SqE4.Bb().Shift(Northeast))
	assert.Equal(SqD3.Bb(), SqE4.Bb().Shift(Southwest))

	// shifts off the edge erase the wrapping bits
	assert.Equal(BbZero, SqH4.Bb().Shift(East))
	assert.Equal(BbZero, SqA4.Bb().Shift(West))
	assert.Equal(BbZero, SqH8.Bb().Shift(Northeast))
	assert.Equal(BbZero, SqA1.Bb().Shift(Southwest))
	assert.Equal(BbZero, Rank8Bb.Shift(North))
	assert.Equal(BbZero, Rank1Bb.Shift(South))
}

func TestBitboardStringBoard(t *testing.T) {
	s := SqA1.Bb().StringBoard()
	assert.Contains(t, s, "X")
}
