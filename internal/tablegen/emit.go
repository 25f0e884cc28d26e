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
	"fmt"
	"io"

	. "github.com/Zirconium419122/chessframe/pkg/types"
)

const genHeader = "// Code generated by chessframe tablegen; DO NOT EDIT.\n\npackage types\n\n"

func emitFlat(w io.Writer, values []Bitboard, perLine int) {
	for i, v := range values {
		if i%perLine == 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprintf(w, "0x%X,", uint64(v))
		if i%perLine == perLine-1 || i == len(values)-1 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
}

func emitArray(w io.Writer, name string, values []Bitboard, perLine int) {
	fmt.Fprintf(w, "var %s = [%d]Bitboard{\n", name, len(values))
	emitFlat(w, values, perLine)
	fmt.Fprint(w, "}\n\n")
}

func emitArray2(w io.Writer, name string, values [][]Bitboard, perLine int) {
	fmt.Fprintf(w, "var %s = [%d][%d]Bitboard{\n", name, len(values), len(values[0]))
	for _, row := range values {
		fmt.Fprint(w, "\t{\n")
		for i, v := range row {
			if i%perLine == 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprintf(w, "\t0x%X,", uint64(v))
			if i%perLine == perLine-1 || i == len(row)-1 {
				fmt.Fprintln(w)
			}
		}
		fmt.Fprint(w, "\t},\n")
	}
	fmt.Fprint(w, "}\n\n")
}

// EmitTables writes the non-magic tables as the generated source file
// tables_gen.go of pkg/types
func EmitTables(w io.Writer, t *Tables) {
	fmt.Fprint(w, genHeader)

	emitArray2(w, "pawnMoves", [][]Bitboard{t.PawnMoves[0][:], t.PawnMoves[1][:]}, 6)
	emitArray2(w, "pawnAttacks", [][]Bitboard{t.PawnAttacks[0][:], t.PawnAttacks[1][:]}, 6)
	emitArray(w, "knightMoves", t.KnightMoves[:], 4)
	emitArray(w, "kingMoves", t.KingMoves[:], 4)
	fmt.Fprintf(w, "const castleMoves Bitboard = 0x%X\n\n", uint64(t.CastleMoves))
	emitArray(w, "ranks", t.Ranks[:], 4)
	emitArray(w, "files", t.Files[:], 4)
	emitArray(w, "adjacentFiles", t.AdjacentFiles[:], 4)
	emitArray(w, "bishopRays", t.BishopRays[:], 4)
	emitArray(w, "rookRays", t.RookRays[:], 4)

	between := make([][]Bitboard, 64)
	tangent := make([][]Bitboard, 64)
	for i := 0; i < 64; i++ {
		between[i] = t.Between[i][:]
		tangent[i] = t.Tangent[i][:]
	}
	emitArray2(w, "between", between, 6)
	emitArray2(w, "tangent", tangent, 6)
}

// EmitZobrist writes the zobrist key tables as the generated source
// file zobrist_gen.go of pkg/types
func EmitZobrist(w io.Writer, z *Zobrist) {
	fmt.Fprint(w, genHeader)

	fmt.Fprintf(w, "const zobristSideToMove uint64 = 0x%X\n\n", z.SideToMove)

	fmt.Fprint(w, "var zobristPieces = [2][6][64]uint64{\n")
	for c := 0; c < 2; c++ {
		fmt.Fprint(w, "\t{\n")
		for p := 0; p < 6; p++ {
			fmt.Fprint(w, "\t\t{\n")
			for sq := 0; sq < 64; sq++ {
				if sq%4 == 0 {
					fmt.Fprint(w, "\t\t\t")
				}
				fmt.Fprintf(w, "0x%X,", z.Pieces[c][p][sq])
				if sq%4 == 3 {
					fmt.Fprintln(w)
				} else {
					fmt.Fprint(w, " ")
				}
			}
			fmt.Fprint(w, "\t\t},\n")
		}
		fmt.Fprint(w, "\t},\n")
	}
	fmt.Fprint(w, "}\n\n")

	fmt.Fprint(w, "var zobristCastle = [2][4]uint64{\n")
	for c := 0; c < 2; c++ {
		fmt.Fprintf(w, "\t{0x%X, 0x%X, 0x%X, 0x%X},\n",
			z.Castle[c][0], z.Castle[c][1], z.Castle[c][2], z.Castle[c][3])
	}
	fmt.Fprint(w, "}\n\n")

	fmt.Fprint(w, "var zobristEnPassant = [2][8]uint64{\n")
	for c := 0; c < 2; c++ {
		fmt.Fprint(w, "\t{")
		for f := 0; f < 8; f++ {
			if f > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "0x%X", z.EnPassant[c][f])
		}
		fmt.Fprint(w, "},\n")
	}
	fmt.Fprint(w, "}\n")
}

// EmitMagics writes the magic descriptors and flat attack tables of
// both families as the generated source file magics_gen.go of
// pkg/types
func EmitMagics(w io.Writer, bishop *MagicTables, rook *MagicTables) {
	fmt.Fprint(w, genHeader)

	emitMagicArray(w, "bishopMagics", &bishop.Magics)
	emitMagicArray(w, "rookMagics", &rook.Magics)
	emitArray(w, "bishopMoves", bishop.Table, 6)
	emitArray(w, "rookMoves", rook.Table, 6)
}

func emitMagicArray(w io.Writer, name string, magics *[64]Magic) {
	fmt.Fprintf(w, "var %s = [64]Magic{\n", name)
	for _, m := range magics {
		fmt.Fprintf(w, "\t{Mask: 0x%X, Magic: 0x%X, Shift: %d, Offset: %d},\n",
			uint64(m.Mask), m.Magic, m.Shift, m.Offset)
	}
	fmt.Fprint(w, "}\n\n")
}
