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

// tablegen regenerates the checked in generated sources of pkg/types:
// the static move and ray tables, the zobrist key tables and the magic
// bitboard descriptors with their flat attack tables. The output is
// fully deterministic - the PRNG seeds are fixed - so a regeneration
// never changes the shipped tables.
//
//	go run ./cmd/tablegen -out pkg/types
package main

import (
	"bufio"
	"flag"
	"os"
	"path/filepath"

	"github.com/Zirconium419122/chessframe/internal/logging"
	"github.com/Zirconium419122/chessframe/internal/tablegen"
)

func main() {
	out := flag.String("out", "pkg/types", "directory the generated files are written to")
	flag.Parse()

	log := logging.GetLog()

	writeFile(*out, "tables_gen.go", func(w *bufio.Writer) {
		tablegen.EmitTables(w, tablegen.GenerateTables())
	})
	log.Info("tables_gen.go written")

	writeFile(*out, "zobrist_gen.go", func(w *bufio.Writer) {
		tablegen.EmitZobrist(w, tablegen.GenerateZobrist())
	})
	log.Info("zobrist_gen.go written")

	bishop, err := tablegen.GenerateBishopMagics()
	if err != nil {
		log.Fatalf("bishop magic generation failed: %v", err)
	}
	rook, err := tablegen.GenerateRookMagics()
	if err != nil {
		log.Fatalf("rook magic generation failed: %v", err)
	}
	writeFile(*out, "magics_gen.go", func(w *bufio.Writer) {
		tablegen.EmitMagics(w, bishop, rook)
	})
	log.Infof("magics_gen.go written (bishop table %d, rook table %d entries)",
		len(bishop.Table), len(rook.Table))
}

func writeFile(dir, name string, emit func(w *bufio.Writer)) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		logging.GetLog().Fatalf("cannot create %s: %v", name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	emit(w)
	if err := w.Flush(); err != nil {
		logging.GetLog().Fatalf("cannot write %s: %v", name, err)
	}
}
