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

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Zirconium419122/chessframe/pkg/types"
)

func lastEvent(t *testing.T, g *Game) Event {
	t.Helper()
	require.NotEmpty(t, g.History())
	return g.History()[len(g.History())-1]
}

func TestNewGame(t *testing.T) {
	assert := assert.New(t)
	g := New()

	assert.Equal(uint64(0x1D0D28B8BD0816CA), g.Board().Hash())
	assert.Empty(g.History())
	assert.Len(g.Hashes(), 1)
	assert.Equal(0, g.Ply())
	assert.Equal(0, g.HalfMoves())
	assert.False(g.Ended())
}

func TestFromFenReadsHalfMoveClock(t *testing.T) {
	g := FromFen("5q2/5k2/7p/8/8/8/1B4Q1/6K1 w - - 3 3")
	assert.Equal(t, 3, g.HalfMoves())
}

func TestPlayMove(t *testing.T) {
	assert := assert.New(t)
	g := New()

	require.NoError(t, g.PlayMove(NewMove(SqE2, SqE4)))

	assert.Equal(1, g.Ply())
	assert.Len(g.History(), 1)
	assert.Len(g.Hashes(), 2)
	assert.Equal(Black, g.Board().SideToMove())
	// a pawn move resets the halfmove clock
	assert.Equal(0, g.HalfMoves())

	require.NoError(t, g.PlayMove(NewMove(SqG8, SqF6)))
	assert.Equal(1, g.HalfMoves())
}

func TestPlayMoveIllegalLeavesGameIntact(t *testing.T) {
	// the knight on e4 is pinned by the rook on e8
	g := FromFen("4r2k/8/8/8/4N3/8/8/4K3 w - - 0 1")
	before := *g.Board()

	err := g.PlayMove(NewMove(SqE4, SqC5))
	assert.Error(t, err)
	assert.Equal(t, before, *g.Board())
	assert.Empty(t, g.History())
	assert.Equal(t, 0, g.Ply())
}

func TestCheckmate(t *testing.T) {
	g := FromFen("7k/7p/7K/5Q2/8/8/8/8 w - - 0 1")

	require.NoError(t, g.PlayMove(NewMove(SqF5, SqF8)))

	assert.Equal(t, EventCheckmate, lastEvent(t, g).Kind)
	assert.True(t, g.Ended())
}

func TestStalemate(t *testing.T) {
	g := FromFen("7k/7p/7K/5Q2/8/8/8/8 w - - 0 1")

	require.NoError(t, g.PlayMove(NewMove(SqF5, SqF7)))

	assert.Equal(t, EventStalemate, lastEvent(t, g).Kind)
	assert.True(t, g.Ended())
}

func TestGameEnded(t *testing.T) {
	g := FromFen("7k/7p/7K/5Q2/8/8/8/8 w - - 0 1")
	require.NoError(t, g.PlayMove(NewMove(SqF5, SqF8)))

	err := g.PlayMove(NewMove(SqH6, SqG6))
	assert.ErrorIs(t, err, ErrGameEnded)
	assert.ErrorIs(t, g.Resign(White), ErrGameEnded)
	assert.ErrorIs(t, g.TimeoutBy(White), ErrGameEnded)
}

func TestThreefoldRepetition(t *testing.T) {
	g := FromFen("5q2/5k2/7p/8/8/8/1B4Q1/6K1 w - - 3 3")

	moves := []Move{
		NewMove(SqG2, SqF3), NewMove(SqF7, SqE8),
		NewMove(SqF3, SqC6), NewMove(SqE8, SqF7),
		NewMove(SqC6, SqF3), NewMove(SqF7, SqE8),
		NewMove(SqF3, SqC6), NewMove(SqE8, SqF7),
		NewMove(SqC6, SqF3),
	}
	for _, mv := range moves {
		require.NoError(t, g.PlayMove(mv), "move %s", mv)
	}

	assert.Equal(t, EventDrawByThreefoldRepetition, lastEvent(t, g).Kind)
	assert.True(t, g.Ended())
}

func TestFiftyMoveRule(t *testing.T) {
	// halfmove clock at 99, one more quiet move reaches 100
	g := FromFen("4k3/8/8/8/8/8/8/4KB2 w - - 99 80")

	require.NoError(t, g.PlayMove(NewMove(SqF1, SqC4)))

	assert.Equal(t, 100, g.HalfMoves())
	assert.Equal(t, EventDrawByFiftyMoveRule, lastEvent(t, g).Kind)
	assert.True(t, g.Ended())
}

func TestResignationAndTimeout(t *testing.T) {
	g := New()
	require.NoError(t, g.Resign(Black))
	event := lastEvent(t, g)
	assert.Equal(t, EventResignation, event.Kind)
	assert.Equal(t, Black, event.Color)
	assert.True(t, g.Ended())

	g2 := New()
	require.NoError(t, g2.TimeoutBy(White))
	assert.Equal(t, EventTimeout, lastEvent(t, g2).Kind)
}

func TestUndoPromotion(t *testing.T) {
	assert := assert.New(t)
	g := FromFen("8/1PK5/7b/6k1/8/8/8/8 w - - 0 1")

	require.NoError(t, g.PlayMove(NewPromotionMove(SqB7, SqB8, Queen)))
	assert.Equal(Queen, g.Board().GetPiece(SqB8))

	g.UndoMove()
	assert.Equal(PieceNone, g.Board().GetPiece(SqB8))
	assert.Equal(Pawn, g.Board().GetPiece(SqB7))
	assert.Equal(0, g.Ply())
	assert.Empty(g.History())
}

func TestUndoEnPassant(t *testing.T) {
	assert := assert.New(t)
	g := FromFen("r1bqk2r/pppp1pb1/2n2np1/4p1Pp/2B1P3/3P1N2/PPP2P1P/RNBQK2R w KQkq h6 0 7")
	require.Equal(t, Pawn, g.Board().GetPiece(SqH5))
	before := *g.Board()

	require.NoError(t, g.PlayMove(NewMove(SqG5, SqH6)))
	assert.Equal(PieceNone, g.Board().GetPiece(SqH5))

	g.UndoMove()
	assert.Equal(Pawn, g.Board().GetPiece(SqH5))
	assert.Equal(before, *g.Board())
}

func TestUndoCastling(t *testing.T) {
	assert := assert.New(t)
	g := FromFen("r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/3P1N2/PPP2PPP/RNBQK2R w KQkq - 1 5")
	require.Equal(t, PieceNone, g.Board().GetPiece(SqF1))
	before := *g.Board()

	require.NoError(t, g.PlayMove(NewMove(SqE1, SqG1)))
	assert.Equal(Rook, g.Board().GetPiece(SqF1))
	assert.Equal(King, g.Board().GetPiece(SqG1))

	g.UndoMove()
	assert.Equal(PieceNone, g.Board().GetPiece(SqF1))
	assert.Equal(PieceNone, g.Board().GetPiece(SqG1))
	assert.Equal(before, *g.Board())
}

func TestUndoRestoresHalfMoveClock(t *testing.T) {
	g := FromFen("4k3/8/8/8/8/8/8/4KB2 w - - 42 40")

	require.NoError(t, g.PlayMove(NewMove(SqF1, SqC4)))
	assert.Equal(t, 43, g.HalfMoves())

	g.UndoMove()
	assert.Equal(t, 42, g.HalfMoves())
}

func TestUndoWithoutMovesIsNoop(t *testing.T) {
	g := New()
	g.UndoMove()
	assert.Equal(t, 0, g.Ply())
}
