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

// ///////////////////////////////////////////////////////////////
// Perft results from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

func TestStandardPerft(t *testing.T) {
	assert := assert.New(t)

	var results = [6]uint64{1, 20, 400, 8_902, 197_281, 4_865_609}

	perft := NewPerft()
	for depth := 1; depth <= 5; depth++ {
		assert.Equal(results[depth], perft.StartPerft(StartFen, depth, false),
			"depth %d", depth)
	}

	// depth 5 move type counters
	assert.Equal(uint64(82_719), perft.CaptureCounter)
	assert.Equal(uint64(258), perft.EnPassantCounter)
	assert.Equal(uint64(0), perft.CastleCounter)
	assert.Equal(uint64(0), perft.PromotionCounter)
}

func TestStandardPerftWithTT(t *testing.T) {
	perft := NewPerftTT(64)
	assert.Equal(t, uint64(4_865_609), perft.StartPerft(StartFen, 5, false))
}

func TestPerftAfterE2E4(t *testing.T) {
	b := board.StartBoard()
	newBoard, err := b.MakeMoveNew(NewMove(SqE2, SqE4))
	require.NoError(t, err)

	perft := NewPerft()
	assert.Equal(t, uint64(405_385), perft.Run(newBoard, 4))

	// the root split sums back to the full perft count
	var total uint64
	for _, mv := range GenerateLegalMoves(b) {
		child, err := b.MakeMoveNew(mv)
		require.NoError(t, err)
		total += NewPerft().Run(child, 4)
	}
	assert.Equal(t, uint64(4_865_609), total)
}

func TestKiwipetePerft(t *testing.T) {
	var results = [4]uint64{1, 48, 2_039, 97_862}

	perft := NewPerft()
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	for depth := 1; depth <= 3; depth++ {
		assert.Equal(t, results[depth], perft.StartPerft(fen, depth, false),
			"depth %d", depth)
	}
}

func TestPromotionPerft(t *testing.T) {
	var results = [4]uint64{1, 44, 1_486, 62_379}

	perft := NewPerft()
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	for depth := 1; depth <= 3; depth++ {
		assert.Equal(t, results[depth], perft.StartPerft(fen, depth, false),
			"depth %d", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	var results = [5]uint64{1, 14, 191, 2_812, 43_238}

	perft := NewPerft()
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	for depth := 1; depth <= 4; depth++ {
		assert.Equal(t, results[depth], perft.StartPerft(fen, depth, false),
			"depth %d", depth)
	}
}
