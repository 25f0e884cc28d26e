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
	"errors"

	. "github.com/Zirconium419122/chessframe/pkg/types"
)

// MagicSeed is the PRNG seed of the magic search. A fresh generator
// is seeded per square so each square's search is independent and
// reproducible.
const MagicSeed uint64 = 123456789

// maxSearchIterations bounds the candidates tried per square before
// the search is reported as failed
const maxSearchIterations = 1_000_000

// ErrNoMagicFound is returned when no collision free multiplier was
// found within the iteration cap
var ErrNoMagicFound = errors.New("failed to find magic")

// MagicTables is the result of a family's magic generation - the per
// square descriptors with ascending offsets and the flat attack table
// they index into
type MagicTables struct {
	Magics [64]Magic
	Table  []Bitboard
}

// RookDirections returns the four orthogonal stepping functions
func RookDirections() [4]func(Square) Square {
	return [4]func(Square) Square{
		Square.Up, Square.Right, Square.Down, Square.Left,
	}
}

// BishopDirections returns the four diagonal stepping functions
func BishopDirections() [4]func(Square) Square {
	northEast := func(sq Square) Square {
		if next := sq.Up(); next != SqNone {
			return next.Right()
		}
		return SqNone
	}
	southEast := func(sq Square) Square {
		if next := sq.Down(); next != SqNone {
			return next.Right()
		}
		return SqNone
	}
	southWest := func(sq Square) Square {
		if next := sq.Down(); next != SqNone {
			return next.Left()
		}
		return SqNone
	}
	northWest := func(sq Square) Square {
		if next := sq.Up(); next != SqNone {
			return next.Left()
		}
		return SqNone
	}
	return [4]func(Square) Square{northEast, southEast, southWest, northWest}
}

// SlidingAttack walks one square at a time along the given directions,
// ORs each stepped-to square into the result and stops after including
// the first blocker. This is the slow reference attack function the
// magic tables are built from and verified against.
func SlidingAttack(directions [4]func(Square) Square, sq Square, blockers Bitboard) Bitboard {
	attack := BbZero
	for _, step := range directions {
		for current := step(sq); current != SqNone; current = step(current) {
			attack.PushSquare(current)
			if blockers.Has(current) {
				break
			}
		}
	}
	return attack
}

// RookMask returns the relevant blocker mask of a rook on the square -
// its file and rank without the board edges and without the square
func RookMask(sq Square) Bitboard {
	const verticalMask Bitboard = 0x0001010101010100
	const horizontalMask Bitboard = 0x000000000000007E

	mask := verticalMask<<sq.FileOf() | horizontalMask<<(8*uint8(sq.RankOf()))
	mask.PopSquare(sq)
	return mask
}

// BishopMask returns the relevant blocker mask of a bishop on the
// square - its diagonals without the outer ring
func BishopMask(sq Square) Bitboard {
	return SlidingAttack(BishopDirections(), sq, BbZero) & 0x007E7E7E7E7E7E00
}

// Subsets enumerates every subset of the mask exactly once with the
// Carry-Rippler iteration next = (prev - mask) & mask
func Subsets(mask Bitboard) []Bitboard {
	subsets := make([]Bitboard, 0, 1<<mask.PopCount())
	subset := BbZero
	for {
		subsets = append(subsets, subset)
		subset = (subset - mask) & mask
		if subset == BbZero {
			break
		}
	}
	return subsets
}

// FindMagic searches a collision free magic multiplier for the square
// and returns the filled attack table. Candidates are drawn as the AND
// of three PRNG samples from a fresh generator. Deterministic for a
// given seed.
func FindMagic(directions [4]func(Square) Square, sq Square, mask Bitboard, seed uint64) (Magic, []Bitboard, error) {
	blockers := Subsets(mask)
	reference := make([]Bitboard, len(blockers))
	for i, b := range blockers {
		reference[i] = SlidingAttack(directions, sq, b)
	}

	shift := uint8(64 - mask.PopCount())
	size := 1 << mask.PopCount()
	used := make([]Bitboard, size)
	epoch := make([]int, size)

	rng := NewChaCha8(seed)

	for attempt := 1; attempt <= maxSearchIterations; attempt++ {
		magic := Magic{Mask: mask, Magic: rng.SparseUint64(), Shift: shift}

		ok := true
		for i, b := range blockers {
			idx := magic.Index(b)
			if epoch[idx] != attempt {
				epoch[idx] = attempt
				used[idx] = reference[i]
			} else if used[idx] != reference[i] {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		table := make([]Bitboard, size)
		for i, b := range blockers {
			table[magic.Index(b)] = reference[i]
		}
		return magic, table, nil
	}

	return Magic{}, nil, ErrNoMagicFound
}

// GenerateRookMagics runs the magic search for all squares of the rook
// family and flattens the per square tables into one array with
// ascending offsets
func GenerateRookMagics() (*MagicTables, error) {
	return generateMagics(RookDirections(), RookMask)
}

// GenerateBishopMagics runs the magic search for all squares of the
// bishop family
func GenerateBishopMagics() (*MagicTables, error) {
	return generateMagics(BishopDirections(), BishopMask)
}

func generateMagics(directions [4]func(Square) Square, maskOf func(Square) Bitboard) (*MagicTables, error) {
	result := &MagicTables{}
	for sq := SqA1; sq <= SqH8; sq++ {
		magic, table, err := FindMagic(directions, sq, maskOf(sq), MagicSeed)
		if err != nil {
			return nil, err
		}
		magic.Offset = uint32(len(result.Table))
		result.Magics[sq] = magic
		result.Table = append(result.Table, table...)
	}
	return result, nil
}

// TrimmedSize returns the size of the attack table after dropping
// unused trailing entries. The size minimising search of cmd/magicgen
// accepts a new magic only when its trimmed table is no larger.
func TrimmedSize(table []Bitboard) int {
	size := len(table)
	for size > 0 && table[size-1] == BbZero {
		size--
	}
	return size
}
