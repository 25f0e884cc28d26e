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

func TestPawnMoves(t *testing.T) {
	assert := assert.New(t)

	// single and double push from the second rank
	assert.Equal(SqE3.Bb()|SqE4.Bb(), GetPawnMoves(White, SqE2))
	assert.Equal(SqE6.Bb()|SqE5.Bb(), GetPawnMoves(Black, SqE7))

	// single push elsewhere
	assert.Equal(SqE5.Bb(), GetPawnMoves(White, SqE4))
	assert.Equal(SqE4.Bb(), GetPawnMoves(Black, SqE5))
}

func TestPawnAttacks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SqD5.Bb()|SqF5.Bb(), GetPawnAttacks(White, SqE4))
	assert.Equal(SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(Black, SqE4))

	// edge files only attack inward
	assert.Equal(SqB5.Bb(), GetPawnAttacks(White, SqA4))
	assert.Equal(SqG3.Bb(), GetPawnAttacks(Black, SqH4))
}

func TestKnightKingMoves(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(8, GetKnightMoves(SqE4).PopCount())
	assert.Equal(2, GetKnightMoves(SqA1).PopCount())
	assert.Equal(SqB3.Bb()|SqC2.Bb(), GetKnightMoves(SqA1))

	assert.Equal(8, GetKingMoves(SqE4).PopCount())
	assert.Equal(3, GetKingMoves(SqA1).PopCount())
}

func TestCastleMovesBb(t *testing.T) {
	expected := SqC1.Bb() | SqE1.Bb() | SqG1.Bb() | SqC8.Bb() | SqE8.Bb() | SqG8.Bb()
	assert.Equal(t, expected, GetCastleMoves())
}

func TestBetween(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SqB1.Bb()|SqC1.Bb()|SqD1.Bb(), Between(SqA1, SqE1))
	assert.Equal(SqB2.Bb()|SqC3.Bb(), Between(SqA1, SqD4))
	assert.Equal(BbZero, Between(SqA1, SqB3)) // not aligned
	assert.Equal(BbZero, Between(SqA1, SqA1))
	assert.Equal(BbZero, Between(SqA1, SqB2)) // adjacent

	// symmetric
	for _, pair := range [][2]Square{{SqA1, SqH8}, {SqE4, SqE8}, {SqC2, SqG2}} {
		assert.Equal(Between(pair[0], pair[1]), Between(pair[1], pair[0]))
	}
}

func TestTangent(t *testing.T) {
	assert := assert.New(t)

	// full ray through both squares, both included
	diag := Tangent(SqA1, SqD4)
	assert.True(diag.Has(SqA1))
	assert.True(diag.Has(SqD4))
	assert.True(diag.Has(SqH8))
	assert.False(diag.Has(SqA2))

	assert.Equal(Rank4.Bb(), Tangent(SqA4, SqC4))
	assert.Equal(BbZero, Tangent(SqA1, SqB3))
}

func TestRays(t *testing.T) {
	assert := assert.New(t)

	assert.Equal((Rank4.Bb()|FileE.Bb())&^SqE4.Bb(), GetRookRays(SqE4))
	assert.Equal(14, GetRookRays(SqE4).PopCount())
	assert.Equal(13, GetBishopRays(SqE4).PopCount())
	assert.Equal(7, GetBishopRays(SqA1).PopCount())
}

func TestAdjacentFiles(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(FileB.Bb(), FileA.AdjacentBb())
	assert.Equal(FileG.Bb(), FileH.AdjacentBb())
	assert.Equal(FileD.Bb()|FileF.Bb(), FileE.AdjacentBb())
}

func TestZobristKeys(t *testing.T) {
	assert := assert.New(t)

	// keys are stable, non zero and distinct between colors
	assert.NotZero(ZobristSideToMove())
	assert.NotZero(ZobristPiece(White, Pawn, SqE2))
	assert.NotEqual(ZobristPiece(White, Pawn, SqE2), ZobristPiece(Black, Pawn, SqE2))
	assert.NotEqual(ZobristPiece(White, Pawn, SqE2), ZobristPiece(White, Pawn, SqE3))

	// the castle key is selected by the color's two rights bits
	assert.Equal(ZobristCastle(CastlingAny, White), ZobristCastle(CastlingWhiteOO|CastlingWhiteOOO, White))
	assert.NotEqual(ZobristCastle(CastlingAny, White), ZobristCastle(CastlingWhiteOO, White))

	assert.NotEqual(ZobristEnPassant(FileA, White), ZobristEnPassant(FileB, White))
}
