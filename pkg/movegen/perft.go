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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zirconium419122/chessframe/internal/logging"
	"github.com/Zirconium419122/chessframe/pkg/board"
	"github.com/Zirconium419122/chessframe/pkg/transpositiontable"
	. "github.com/Zirconium419122/chessframe/pkg/types"
)

var out = message.NewPrinter(language.English)

// Perft walks the move tree of a position to a fixed depth and counts
// leaf nodes. It is the standard correctness benchmark for the move
// generator and the incremental board update.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnPassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	tt               *transpositiontable.Table[uint64]
	stopFlag         bool
}

// NewPerft creates a new Perft instance without a transposition table
func NewPerft() *Perft {
	return &Perft{}
}

// NewPerftTT creates a new Perft instance caching subtree counts in a
// transposition table of the given size
func NewPerftTT(sizeInMB int) *Perft {
	return &Perft{tt: transpositiontable.NewTableSizeMB[uint64](sizeInMB)}
}

// Stop stops a perft test currently running in another goroutine
func (p *Perft) Stop() {
	p.stopFlag = true
}

// StartPerft runs a perft test on the position to the given depth and
// returns the number of leaf nodes
func (p *Perft) StartPerft(fen string, depth int, divide bool) uint64 {
	p.stopFlag = false
	p.resetCounters()

	if depth <= 0 {
		depth = 1
	}

	b := board.FromFen(fen)

	log := logging.GetLog()
	log.Debugf("Performing perft on depth %d for %s", depth, fen)

	start := time.Now()
	result := p.perft(b, depth, divide)
	elapsed := time.Since(start)

	if p.stopFlag {
		out.Printf("Perft stopped\n")
		return 0
	}

	p.Nodes = result

	out.Printf("Perft depth %d: %d nodes in %s (%d nps)\n",
		depth, p.Nodes, elapsed, nps(p.Nodes, elapsed))

	return result
}

// Run counts the leaf nodes of the position to the given depth
// without printing a summary. The given board is not modified.
func (p *Perft) Run(b *board.Board, depth int) uint64 {
	p.stopFlag = false
	p.resetCounters()
	if depth <= 0 {
		depth = 1
	}
	p.Nodes = p.perft(b, depth, false)
	return p.Nodes
}

// StartPerftMulti runs perft tests from start depth to end depth
func (p *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	p.stopFlag = false
	for depth := startDepth; depth <= endDepth; depth++ {
		if p.stopFlag {
			out.Printf("Perft multi depth stopped\n")
			return
		}
		p.StartPerft(fen, depth, false)
	}
}

func (p *Perft) perft(b *board.Board, depth int, divide bool) uint64 {
	if p.tt != nil {
		if entry, ok := p.tt.Get(b.Hash()); ok && entry.Depth == uint8(depth) {
			return entry.Value
		}
	}

	var nodes uint64

	for _, mv := range GeneratePseudoLegalMoves(b, BbAll) {
		if p.stopFlag {
			return 0
		}

		// copy-make: an illegal move leaves the copy inconsistent and
		// it is simply dropped
		newBoard := *b
		md, err := newBoard.MakeMoveMetadata(mv)
		if err != nil {
			continue
		}

		var subNodes uint64
		if depth == 1 {
			subNodes = 1
			p.countMove(mv, md)
		} else {
			subNodes = p.perft(&newBoard, depth-1, false)
		}
		nodes += subNodes

		if divide {
			out.Printf("%s: %d\n", mv.String(), subNodes)
		}
	}

	if p.tt != nil {
		p.tt.Store(b.Hash(), nodes, uint8(depth))
	}

	return nodes
}

func (p *Perft) countMove(mv Move, md board.MoveMetadata) {
	switch md.Kind {
	case board.MoveCapture:
		p.CaptureCounter++
	case board.MoveEnPassant:
		p.CaptureCounter++
		p.EnPassantCounter++
	case board.MoveCastle:
		p.CastleCounter++
	}
	if mv.Promotion != PieceNone {
		p.PromotionCounter++
	}
}

func (p *Perft) resetCounters() {
	p.Nodes = 0
	p.CaptureCounter = 0
	p.EnPassantCounter = 0
	p.CastleCounter = 0
	p.PromotionCounter = 0
}

func nps(nodes uint64, elapsed time.Duration) uint64 {
	if elapsed.Nanoseconds() == 0 {
		return nodes
	}
	return nodes * uint64(time.Second) / uint64(elapsed.Nanoseconds())
}
