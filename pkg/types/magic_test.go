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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveSlidingAttack is the reference ray walk the magic tables are
// checked against: step one square at a time, include the stepped-to
// square and stop after the first blocker
func naiveSlidingAttack(deltas [4][2]int, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range deltas {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for {
			f += d[0]
			r += d[1]
			if f < 0 || f > 7 || r < 0 || r > 7 {
				break
			}
			current := SquareOf(File(f), Rank(r))
			attack.PushSquare(current)
			if occupied.Has(current) {
				break
			}
		}
	}
	return attack
}

var (
	rookDeltas   = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

func TestMagicAttacksEmptyBoard(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		assert.Equal(t, GetRookRays(sq), GetRookMoves(sq, BbZero), "rook on %s", sq)
		assert.Equal(t, GetBishopRays(sq), GetBishopMoves(sq, BbZero), "bishop on %s", sq)
	}
}

func TestMagicAttacksRandomOccupancies(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 2_000; i++ {
		occ := Bitboard(rnd.Uint64() & rnd.Uint64()) // sparse-ish boards
		sq := Square(rnd.Intn(64))

		require.Equal(t, naiveSlidingAttack(rookDeltas, sq, occ), GetRookMoves(sq, occ),
			"rook on %s occ %x", sq, uint64(occ))
		require.Equal(t, naiveSlidingAttack(bishopDeltas, sq, occ), GetBishopMoves(sq, occ),
			"bishop on %s occ %x", sq, uint64(occ))
		require.Equal(t, GetRookMoves(sq, occ)|GetBishopMoves(sq, occ), GetQueenMoves(sq, occ))
	}
}

// TestMagicInjective enumerates every relevant blocker subset with the
// Carry-Rippler iteration and checks that the hashed table entry holds
// exactly the reference attack set - distinct subsets with distinct
// attack sets can therefore never collide
func TestMagicInjective(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, family := range []struct {
			magic  *Magic
			deltas [4][2]int
			lookup func(Square, Bitboard) Bitboard
		}{
			{GetRookMagic(sq), rookDeltas, GetRookMoves},
			{GetBishopMagic(sq), bishopDeltas, GetBishopMoves},
		} {
			require.Equal(t, uint8(64-family.magic.Mask.PopCount()), family.magic.Shift)

			subsets := 0
			blockers := BbZero
			for {
				require.Equal(t, naiveSlidingAttack(family.deltas, sq, blockers),
					family.lookup(sq, blockers), "square %s subset %x", sq, uint64(blockers))
				subsets++
				blockers = (blockers - family.magic.Mask) & family.magic.Mask
				if blockers == BbZero {
					break
				}
			}
			require.Equal(t, 1<<family.magic.Mask.PopCount(), subsets)
		}
	}
}

func TestMagicMasks(t *testing.T) {
	assert := assert.New(t)

	// rook mask excludes board edges and the square itself
	m := GetRookMagic(SqA1)
	assert.Equal(12, m.Mask.PopCount())
	assert.False(m.Mask.Has(SqA1))
	assert.False(m.Mask.Has(SqA8))
	assert.False(m.Mask.Has(SqH1))

	m = GetRookMagic(SqE4)
	assert.Equal(10, m.Mask.PopCount())

	// bishop mask excludes the outer ring
	m = GetBishopMagic(SqE4)
	assert.Equal(BbZero, m.Mask&^Bitboard(0x007E7E7E7E7E7E00))
	assert.Equal(9, m.Mask.PopCount())
}
