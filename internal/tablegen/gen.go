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

// Package tablegen computes every precomputed table of pkg/types the
// way the offline build pipeline does - ray walks, Carry-Rippler
// subset enumeration, the per-square magic search and the seeded
// zobrist key generation. cmd/tablegen drives it to emit the checked
// in *_gen.go sources; cmd/magicgen drives the interactive magic
// search.
package tablegen

import (
	"github.com/Zirconium419122/chessframe/internal/util"
	. "github.com/Zirconium419122/chessframe/pkg/types"
)

// Zobrist PRNG seeds. The keys shipped in pkg/types depend on them -
// changing a seed changes every position hash.
const (
	SeedSideToMove uint64 = 123456789
	SeedPieces     uint64 = 234567890
	SeedCastle     uint64 = 345678901
	SeedEnPassant  uint64 = 456789012
)

// Tables holds every non-magic table of the generation pipeline
type Tables struct {
	PawnMoves     [2][64]Bitboard
	PawnAttacks   [2][64]Bitboard
	KnightMoves   [64]Bitboard
	KingMoves     [64]Bitboard
	CastleMoves   Bitboard
	Ranks         [8]Bitboard
	Files         [8]Bitboard
	AdjacentFiles [8]Bitboard
	BishopRays    [64]Bitboard
	RookRays      [64]Bitboard
	Between       [64][64]Bitboard
	Tangent       [64][64]Bitboard
}

// Zobrist holds the generated zobrist key tables
type Zobrist struct {
	SideToMove uint64
	Pieces     [2][6][64]uint64
	Castle     [2][4]uint64
	EnPassant  [2][8]uint64
}

func diagonal(a, b Square) bool {
	return util.Abs(int(a.RankOf())-int(b.RankOf())) == util.Abs(int(a.FileOf())-int(b.FileOf()))
}

func orthogonal(a, b Square) bool {
	return a.RankOf() == b.RankOf() || a.FileOf() == b.FileOf()
}

// strictlyBetween reports whether test lies between start and end in
// square index order
func strictlyBetween(start, end, test Square) bool {
	if start < end {
		return start < test && test < end
	}
	return end < test && test < start
}

// GenerateTables computes all non-magic tables
func GenerateTables() *Tables {
	t := &Tables{}

	for sq := SqA1; sq <= SqH8; sq++ {
		t.Files[sq.FileOf()].PushSquare(sq)
		t.Ranks[sq.RankOf()].PushSquare(sq)
	}
	for f := FileA; f <= FileH; f++ {
		if f > FileA {
			t.AdjacentFiles[f] |= t.Files[f-1]
		}
		if f < FileH {
			t.AdjacentFiles[f] |= t.Files[f+1]
		}
	}

	for a := SqA1; a <= SqH8; a++ {
		for b := SqA1; b <= SqH8; b++ {
			dr := util.Abs(int(a.RankOf()) - int(b.RankOf()))
			df := util.Abs(int(a.FileOf()) - int(b.FileOf()))

			if (dr == 2 && df == 1) || (dr == 1 && df == 2) {
				t.KnightMoves[a].PushSquare(b)
			}
			if a != b && dr <= 1 && df <= 1 {
				t.KingMoves[a].PushSquare(b)
			}

			if a != b && diagonal(a, b) {
				t.BishopRays[a].PushSquare(b)
				for test := SqA1; test <= SqH8; test++ {
					if diagonal(a, test) && diagonal(b, test) {
						t.Tangent[a][b].PushSquare(test)
						if strictlyBetween(a, b, test) {
							t.Between[a][b].PushSquare(test)
						}
					}
				}
			} else if a != b && orthogonal(a, b) {
				t.RookRays[a].PushSquare(b)
				for test := SqA1; test <= SqH8; test++ {
					if orthogonal(a, test) && orthogonal(b, test) {
						t.Tangent[a][b].PushSquare(test)
						if strictlyBetween(a, b, test) {
							t.Between[a][b].PushSquare(test)
						}
					}
				}
			}
		}
	}

	t.CastleMoves = SqC1.Bb() | SqC8.Bb() | SqE1.Bb() | SqE8.Bb() | SqG1.Bb() | SqG8.Bb()

	for c := White; c <= Black; c++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			if sq.RankOf() == c.SecondRank() {
				one := sq.WrappingForward(c)
				t.PawnMoves[c][sq] = one.Bb() | one.WrappingForward(c).Bb()
			} else if forward := sq.Forward(c); forward != SqNone {
				t.PawnMoves[c][sq] = forward.Bb()
			}
			if forward := sq.Forward(c); forward != SqNone {
				if left := forward.Left(); left != SqNone {
					t.PawnAttacks[c][sq].PushSquare(left)
				}
				if right := forward.Right(); right != SqNone {
					t.PawnAttacks[c][sq].PushSquare(right)
				}
			}
		}
	}

	return t
}

// GenerateZobrist draws the zobrist key tables from the seeded PRNG
func GenerateZobrist() *Zobrist {
	z := &Zobrist{}

	rng := NewChaCha8(SeedSideToMove)
	z.SideToMove = rng.NextUint64()

	rng = NewChaCha8(SeedPieces)
	for c := 0; c < 2; c++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				z.Pieces[c][p][sq] = rng.NextUint64()
			}
		}
	}

	rng = NewChaCha8(SeedCastle)
	for c := 0; c < 2; c++ {
		for i := 0; i < 4; i++ {
			z.Castle[c][i] = rng.NextUint64()
		}
	}

	rng = NewChaCha8(SeedEnPassant)
	for c := 0; c < 2; c++ {
		for f := 0; f < 8; f++ {
			z.EnPassant[c][f] = rng.NextUint64()
		}
	}

	return z
}
