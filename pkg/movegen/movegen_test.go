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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zirconium419122/chessframe/pkg/board"
	. "github.com/Zirconium419122/chessframe/pkg/types"
)

func TestGenerateStartingPosition(t *testing.T) {
	b := board.StartBoard()

	pseudoLegal := GeneratePseudoLegalMoves(b, BbAll)
	assert.Len(t, pseudoLegal, 20)

	legal := GenerateLegalMoves(b)
	assert.Len(t, legal, 20)
}

func TestGenerateCaptureMask(t *testing.T) {
	// capture only generation via the enemy occupancy mask
	b := board.FromFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")

	captures := GeneratePseudoLegalMoves(b, b.Occupancy(Black))
	require.Len(t, captures, 1)
	assert.Equal(t, NewMove(SqE4, SqD5), captures[0])

	// the destination mask also filters quiet pawn pushes
	for _, mv := range captures {
		assert.True(t, b.Occupancy(Black).Has(mv.To))
	}
}

func TestGenerateEnPassantMove(t *testing.T) {
	b := board.FromFen("r1bqk2r/pppp1pb1/2n2np1/4p1Pp/2B1P3/3P1N2/PPP2P1P/RNBQK2R w KQkq h6 0 7")

	var found bool
	for _, mv := range GeneratePseudoLegalMoves(b, BbAll) {
		if mv == NewMove(SqG5, SqH6) {
			found = true
		}
	}
	assert.True(t, found, "en passant capture g5h6 not generated")
}

func TestGeneratePromotions(t *testing.T) {
	b := board.FromFen("8/1PK5/7b/6k1/8/8/8/8 w - - 0 1")

	var promotions []Move
	for _, mv := range GeneratePseudoLegalMoves(b, BbAll) {
		if mv.Promotion != PieceNone {
			promotions = append(promotions, mv)
		}
	}

	// four promotion moves replace the single pawn move
	require.Len(t, promotions, 4)
	assert.Equal(t, NewPromotionMove(SqB7, SqB8, Knight), promotions[0])
	assert.Equal(t, NewPromotionMove(SqB7, SqB8, Bishop), promotions[1])
	assert.Equal(t, NewPromotionMove(SqB7, SqB8, Rook), promotions[2])
	assert.Equal(t, NewPromotionMove(SqB7, SqB8, Queen), promotions[3])
}

func TestGenerateDoubleCheckOnlyKingMoves(t *testing.T) {
	// rook on h1 and bishop on h4 give double check
	b := board.FromFen("4k3/8/8/8/7b/8/8/4K2r w - - 0 1")
	require.Equal(t, uint8(2), b.Check())

	for _, mv := range GeneratePseudoLegalMoves(b, BbAll) {
		assert.Equal(t, SqE1, mv.From, "non king move %s generated in double check", mv)
	}
}

func TestGenerateCastlingMoves(t *testing.T) {
	b := board.FromFen("r1bqk2r/ppp2ppp/2np1n2/2b1p3/2B1P3/2PP1N2/PP3PPP/RNBQK2R w KQkq - 1 6")

	var castles []Move
	for _, mv := range GeneratePseudoLegalMoves(b, BbAll) {
		if mv.From == SqE1 && mv.To == SqG1 {
			castles = append(castles, mv)
		}
	}
	assert.Len(t, castles, 1)
}

func TestNoCastlingWhileInCheck(t *testing.T) {
	// black rook on e4 checks the king on e1
	b := board.FromFen("4k3/8/8/8/4r3/8/8/R3K2R w KQ - 0 1")
	require.True(t, b.InCheck())

	for _, mv := range GeneratePseudoLegalMoves(b, BbAll) {
		if mv.From == SqE1 {
			assert.NotEqual(t, SqG1, mv.To)
			assert.NotEqual(t, SqC1, mv.To)
		}
	}
}

// TestPseudoLegalSupersetOfLegal checks that applying any generated
// move either succeeds or fails exactly with ErrCannotMovePinned
func TestPseudoLegalSupersetOfLegal(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r1bqk2r/pppp1pb1/2n2np1/4p1Pp/2B1P3/3P1N2/PPP2P1P/RNBQK2R w KQkq h6 0 7",
	}

	for _, fen := range fens {
		b := board.FromFen(fen)
		legal := 0
		for _, mv := range GeneratePseudoLegalMoves(b, BbAll) {
			_, err := b.MakeMoveNew(mv)
			if err == nil {
				legal++
			} else {
				require.ErrorIs(t, err, board.ErrCannotMovePinned, "move %s on %s", mv, fen)
			}
		}
		assert.Equal(t, len(GenerateLegalMoves(b)), legal, "fen %s", fen)
	}
}

func TestKiwipeteMoveCount(t *testing.T) {
	b := board.FromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Len(t, GenerateLegalMoves(b), 48)
}
