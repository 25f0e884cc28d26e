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

package tablegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Zirconium419122/chessframe/pkg/types"
)

func TestChaCha8Stream(t *testing.T) {
	// the generator must reproduce the stream the shipped zobrist keys
	// were drawn from
	rng := NewChaCha8(SeedSideToMove)
	assert.Equal(t, ZobristSideToMove(), rng.NextUint64())

	rng = NewChaCha8(SeedPieces)
	for c := White; c <= Black; c++ {
		for p := Pawn; p <= King; p++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				require.Equal(t, ZobristPiece(c, p, sq), rng.NextUint64(),
					"key mismatch at %v %v %s", c, p, sq)
			}
		}
	}
}

func TestChaCha8Deterministic(t *testing.T) {
	a := NewChaCha8(1)
	b := NewChaCha8(1)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.NextUint64(), b.NextUint64())
	}
	assert.NotEqual(t, NewChaCha8(1).NextUint64(), NewChaCha8(2).NextUint64())
}

func TestGenerateZobristMatchesShippedTables(t *testing.T) {
	z := GenerateZobrist()

	assert.Equal(t, ZobristSideToMove(), z.SideToMove)
	assert.Equal(t, ZobristPiece(White, Pawn, SqE2), z.Pieces[White][Pawn][SqE2])
	assert.Equal(t, ZobristPiece(Black, King, SqH8), z.Pieces[Black][King][SqH8])
	assert.Equal(t, ZobristCastle(CastlingAny, White), z.Castle[White][0b11])
	assert.Equal(t, ZobristEnPassant(FileH, Black), z.EnPassant[Black][FileH])
}

func TestGenerateTablesMatchesShippedTables(t *testing.T) {
	tables := GenerateTables()

	for sq := SqA1; sq <= SqH8; sq++ {
		require.Equal(t, GetKnightMoves(sq), tables.KnightMoves[sq], "knight %s", sq)
		require.Equal(t, GetKingMoves(sq), tables.KingMoves[sq], "king %s", sq)
		require.Equal(t, GetBishopRays(sq), tables.BishopRays[sq], "bishop rays %s", sq)
		require.Equal(t, GetRookRays(sq), tables.RookRays[sq], "rook rays %s", sq)
		for c := White; c <= Black; c++ {
			require.Equal(t, GetPawnMoves(c, sq), tables.PawnMoves[c][sq], "pawn moves %v %s", c, sq)
			require.Equal(t, GetPawnAttacks(c, sq), tables.PawnAttacks[c][sq], "pawn attacks %v %s", c, sq)
		}
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			require.Equal(t, Between(sq, sq2), tables.Between[sq][sq2], "between %s %s", sq, sq2)
			require.Equal(t, Tangent(sq, sq2), tables.Tangent[sq][sq2], "tangent %s %s", sq, sq2)
		}
	}
	assert.Equal(t, GetCastleMoves(), tables.CastleMoves)
}

func TestSubsets(t *testing.T) {
	assert := assert.New(t)

	mask := SqA1.Bb() | SqC3.Bb() | SqF6.Bb()
	subsets := Subsets(mask)

	// Carry-Rippler enumerates every subset exactly once
	assert.Len(subsets, 8)
	seen := make(map[Bitboard]bool)
	for _, subset := range subsets {
		assert.Equal(BbZero, subset&^mask)
		assert.False(seen[subset])
		seen[subset] = true
	}

	assert.Len(Subsets(BbZero), 1)
}

func TestMasks(t *testing.T) {
	assert := assert.New(t)

	// rook mask: file and rank without edges and the square itself
	mask := RookMask(SqA1)
	assert.Equal(12, mask.PopCount())
	assert.True(mask.Has(SqB1))
	assert.True(mask.Has(SqA2))
	assert.False(mask.Has(SqA1))
	assert.False(mask.Has(SqH1))
	assert.False(mask.Has(SqA8))

	assert.Equal(10, RookMask(SqE4).PopCount())

	// bishop mask: diagonals without the outer ring
	mask = BishopMask(SqE4)
	assert.Equal(9, mask.PopCount())
	assert.Equal(BbZero, mask&^Bitboard(0x007E7E7E7E7E7E00))
}

func TestSlidingAttack(t *testing.T) {
	assert := assert.New(t)

	// empty board
	assert.Equal(GetRookRays(SqE4), SlidingAttack(RookDirections(), SqE4, BbZero))
	assert.Equal(GetBishopRays(SqC1), SlidingAttack(BishopDirections(), SqC1, BbZero))

	// the first blocker is included, squares behind it are not
	attack := SlidingAttack(RookDirections(), SqE4, SqE6.Bb())
	assert.True(attack.Has(SqE5))
	assert.True(attack.Has(SqE6))
	assert.False(attack.Has(SqE7))
}

func TestFindMagic(t *testing.T) {
	mask := BishopMask(SqE4)
	magic, table, err := FindMagic(BishopDirections(), SqE4, mask, MagicSeed)
	require.NoError(t, err)

	assert.Equal(t, uint8(64-mask.PopCount()), magic.Shift)
	assert.Len(t, table, 1<<mask.PopCount())

	// every subset hashes to its reference attack set
	for _, blockers := range Subsets(mask) {
		require.Equal(t, SlidingAttack(BishopDirections(), SqE4, blockers),
			table[magic.Index(blockers)])
	}
}

func TestGenerateMagicsMatchesShippedTables(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full magic regeneration in short mode")
	}

	bishop, err := GenerateBishopMagics()
	require.NoError(t, err)
	rook, err := GenerateRookMagics()
	require.NoError(t, err)

	for sq := SqA1; sq <= SqH8; sq++ {
		require.Equal(t, *GetBishopMagic(sq), bishop.Magics[sq], "bishop magic %s", sq)
		require.Equal(t, *GetRookMagic(sq), rook.Magics[sq], "rook magic %s", sq)
	}

	// sampled attack lookups agree with the shipped flat tables
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, blockers := range []Bitboard{BbZero, SqD4.Bb() | SqE5.Bb(), BbAll} {
			require.Equal(t, GetBishopMoves(sq, blockers),
				bishop.Table[bishop.Magics[sq].Index(blockers)])
			require.Equal(t, GetRookMoves(sq, blockers),
				rook.Table[rook.Magics[sq].Index(blockers)])
		}
	}
}

func TestTrimmedSize(t *testing.T) {
	table := []Bitboard{1, 0, 2, 0, 0}
	assert.Equal(t, 3, TrimmedSize(table))
	assert.Equal(t, 0, TrimmedSize([]Bitboard{0, 0}))
}
