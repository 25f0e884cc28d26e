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

// magicgen searches magic bitboard multipliers for both slider
// families and emits them as the generated magics source of pkg/types.
//
// By default one collision free magic is found per square and the
// result is written. With -improve the search keeps running after the
// first solution, accepting only replacements whose trimmed attack
// table is no larger, until "stop" is read on stdin - this produces a
// smaller aggregate table. The per square searches run concurrently,
// bounded by a weighted semaphore.
//
//	go run ./cmd/magicgen -improve -out pkg/types/magics_gen.go
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zirconium419122/chessframe/internal/config"
	"github.com/Zirconium419122/chessframe/internal/logging"
	"github.com/Zirconium419122/chessframe/internal/tablegen"
	. "github.com/Zirconium419122/chessframe/pkg/types"
)

var out = message.NewPrinter(language.English)

// squareResult is the best magic found for one square so far
type squareResult struct {
	magic Magic
	table []Bitboard
}

func main() {
	outFile := flag.String("out", "", "file to write the generated magics to (default stdout)")
	improve := flag.Bool("improve", false, "keep searching for smaller tables until \"stop\" is read on stdin")
	profileFlag := flag.Bool("profile", false, "write a cpu profile")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	config.Setup()
	log := logging.GetLog()

	// stop flag set by a goroutine reading stdin
	var stop atomic.Bool
	if *improve {
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if scanner.Text() == "stop" {
					stop.Store(true)
					return
				}
			}
		}()
	}

	bishop := searchFamily(tablegen.BishopDirections(), tablegen.BishopMask, &stop, *improve)
	rook := searchFamily(tablegen.RookDirections(), tablegen.RookMask, &stop, *improve)

	bishopTables := flatten(bishop)
	rookTables := flatten(rook)

	out.Printf("bishop table %d entries, rook table %d entries\n",
		len(bishopTables.Table), len(rookTables.Table))

	w := bufio.NewWriter(os.Stdout)
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("cannot create %s: %v", *outFile, err)
		}
		defer f.Close()
		w = bufio.NewWriter(f)
	}
	tablegen.EmitMagics(w, bishopTables, rookTables)
	if err := w.Flush(); err != nil {
		log.Fatalf("write failed: %v", err)
	}
}

// searchFamily finds a magic per square, then - in improve mode -
// keeps redrawing candidates, keeping a replacement only when its
// trimmed table is no larger
func searchFamily(directions [4]func(Square) Square, maskOf func(Square) Bitboard,
	stop *atomic.Bool, improve bool) *[64]squareResult {

	log := logging.GetLog()
	results := &[64]squareResult{}

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	ctx := context.Background()
	var wg sync.WaitGroup

	for sq := SqA1; sq <= SqH8; sq++ {
		wg.Add(1)
		_ = sem.Acquire(ctx, 1)
		go func(sq Square) {
			defer wg.Done()
			defer sem.Release(1)

			mask := maskOf(sq)
			magic, table, err := tablegen.FindMagic(directions, sq, mask, config.Settings.Magic.Seed)
			if err != nil {
				log.Fatalf("no magic found for square %s", sq.String())
			}
			best := squareResult{magic: magic, table: table[:tablegen.TrimmedSize(table)]}

			for round := uint64(1); improve && !stop.Load(); round++ {
				candidate, table, err := tablegen.FindMagic(directions, sq, mask,
					config.Settings.Magic.Seed+round)
				if err != nil {
					continue
				}
				if size := tablegen.TrimmedSize(table); size <= len(best.table) {
					best = squareResult{magic: candidate, table: table[:size]}
				}
			}

			results[sq] = best
		}(sq)
	}
	wg.Wait()

	return results
}

// flatten concatenates the per square tables into one flat array and
// sets the ascending offsets
func flatten(results *[64]squareResult) *tablegen.MagicTables {
	tables := &tablegen.MagicTables{}
	for sq := SqA1; sq <= SqH8; sq++ {
		result := results[sq]
		result.magic.Offset = uint32(len(tables.Table))
		tables.Magics[sq] = result.magic
		tables.Table = append(tables.Table, result.table...)
	}
	return tables
}
