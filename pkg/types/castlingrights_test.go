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

func TestCastlingRightsFromFen(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(CastlingAny, CastlingRightsFromFen("KQkq"))
	assert.Equal(CastlingNone, CastlingRightsFromFen("-"))
	assert.Equal(CastlingWhiteOO|CastlingBlackOOO, CastlingRightsFromFen("Kq"))
}

func TestCastlingRightsCanCastle(t *testing.T) {
	assert := assert.New(t)

	cr := CastlingAny
	assert.True(cr.CanCastle(White, true))
	assert.True(cr.CanCastle(White, false))
	assert.True(cr.CanCastle(Black, true))
	assert.True(cr.CanCastle(Black, false))

	cr = cr.Remove(CastlingWhiteOO | CastlingBlackOOO)
	assert.False(cr.CanCastle(White, true))
	assert.True(cr.CanCastle(White, false))
	assert.True(cr.CanCastle(Black, true))
	assert.False(cr.CanCastle(Black, false))
}

func TestCastlingRightsForSquare(t *testing.T) {
	assert := assert.New(t)

	// king home square clears both rights of the color
	assert.Equal(CastlingWhiteOO|CastlingWhiteOOO, CastlingRightsForSquare(White, SqE1))
	assert.Equal(CastlingBlackOO|CastlingBlackOOO, CastlingRightsForSquare(Black, SqE8))

	// rook home squares clear the matching right
	assert.Equal(CastlingWhiteOO, CastlingRightsForSquare(White, SqH1))
	assert.Equal(CastlingWhiteOOO, CastlingRightsForSquare(White, SqA1))
	assert.Equal(CastlingBlackOO, CastlingRightsForSquare(Black, SqH8))
	assert.Equal(CastlingBlackOOO, CastlingRightsForSquare(Black, SqA8))

	// other squares do not touch rights
	assert.Equal(CastlingNone, CastlingRightsForSquare(White, SqE4))
	assert.Equal(CastlingNone, CastlingRightsForSquare(Black, SqE1))
}

func TestCastlingRightsColorBits(t *testing.T) {
	assert := assert.New(t)

	cr := CastlingAny
	assert.Equal(uint8(0b11), cr.ColorBits(White))
	assert.Equal(uint8(0b11), cr.ColorBits(Black))

	cr = CastlingWhiteOO | CastlingBlackOOO
	assert.Equal(uint8(0b01), cr.ColorBits(White))
	assert.Equal(uint8(0b10), cr.ColorBits(Black))
}

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "KQkq", CastlingAny.String())
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "Kq", (CastlingWhiteOO | CastlingBlackOOO).String())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", NewMove(SqE2, SqE4).String())
	assert.Equal(t, "e7e8q", NewPromotionMove(SqE7, SqE8, Queen).String())
	assert.Equal(t, "a7a8n", NewPromotionMove(SqA7, SqA8, Knight).String())
}
