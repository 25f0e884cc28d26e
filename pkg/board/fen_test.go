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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Zirconium419122/chessframe/pkg/types"
)

func TestToFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqk2r/ppp2ppp/2np1n2/2b1p3/2B1P3/2PP1N2/PP3PPP/RNBQK2R w KQkq - 0 1",
		"7k/7p/7K/5Q2/8/8/8/8 w - - 0 1",
		"8/1PK5/7b/6k1/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 0 1",
	}
	for _, fen := range fens {
		assert.Equal(t, fen, FromFen(fen).ToFen(), "fen %s", fen)
	}
}

func TestToFenKeepsEnPassant(t *testing.T) {
	fen := "r1bqk2r/pppp1pb1/2n2np1/4p1Pp/2B1P3/3P1N2/PPP2P1P/RNBQK2R w KQkq h6 0 1"
	assert.Equal(t, fen, FromFen(fen).ToFen())
}

func TestFromFenRejectsMalformedInput(t *testing.T) {
	assert.Panics(t, func() { FromFen("only/one/field") })
	assert.Panics(t, func() { FromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1") })
	assert.Panics(t, func() { FromFen("rnbqkbnz/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1") })
	assert.Panics(t, func() { FromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1") })
}

func TestBoardString(t *testing.T) {
	s := StartBoard().String()
	assert.Contains(t, s, "| K ")
	assert.Contains(t, s, "| k ")
	assert.Contains(t, s, "| P ")
	assert.Contains(t, s, "a   b   c")
}
