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

// perft drives the move generator over a position and counts leaf
// nodes - the standard correctness and speed benchmark. The library
// itself is single threaded; with -parallel the root moves are split
// over goroutines, each searching its own board copy, bounded by a
// weighted semaphore.
//
//	go run ./cmd/perft -depth 6
//	go run ./cmd/perft -fen "r3k2r/..." -depth 5 -divide
package main

import (
	"context"
	"flag"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zirconium419122/chessframe/internal/config"
	"github.com/Zirconium419122/chessframe/pkg/board"
	"github.com/Zirconium419122/chessframe/pkg/movegen"
	. "github.com/Zirconium419122/chessframe/pkg/types"
)

var out = message.NewPrinter(language.English)

func main() {
	fen := flag.String("fen", StartFen, "position to run perft on")
	depth := flag.Int("depth", 0, "search depth (default from config)")
	divide := flag.Bool("divide", false, "print per root move subtotals")
	ttSize := flag.Int("tt", 0, "transposition table size in MB, 0 disables")
	parallel := flag.Bool("parallel", false, "split root moves over goroutines")
	profileFlag := flag.Bool("profile", false, "write a cpu profile")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	config.Setup()
	if *depth <= 0 {
		*depth = config.Settings.Perft.Depth
	}

	if *parallel {
		parallelPerft(*fen, *depth)
		return
	}

	var perft *movegen.Perft
	if *ttSize > 0 {
		perft = movegen.NewPerftTT(*ttSize)
	} else {
		perft = movegen.NewPerft()
	}
	perft.StartPerft(*fen, *depth, *divide)
}

// parallelPerft splits the legal root moves over goroutines. Each
// goroutine searches its own board copy - boards are cheaply copyable
// so the single threaded library needs no internal locking.
func parallelPerft(fen string, depth int) {
	b := board.FromFen(fen)
	rootMoves := movegen.GenerateLegalMoves(b)

	var nodes atomic.Uint64
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	ctx := context.Background()
	var wg sync.WaitGroup

	start := time.Now()
	for _, mv := range rootMoves {
		newBoard, err := b.MakeMoveNew(mv)
		if err != nil {
			continue
		}
		wg.Add(1)
		_ = sem.Acquire(ctx, 1)
		go func(b *board.Board) {
			defer wg.Done()
			defer sem.Release(1)
			if depth <= 1 {
				nodes.Add(1)
				return
			}
			perft := movegen.NewPerft()
			nodes.Add(perft.Run(b, depth-1))
		}(newBoard)
	}
	wg.Wait()
	elapsed := time.Since(start)

	out.Printf("Parallel perft depth %d: %d nodes in %s\n", depth, nodes.Load(), elapsed)
}
