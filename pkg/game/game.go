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

// Package game implements the game layer of chessframe: a Board plus
// an append-only event log with detection of checkmate, stalemate,
// threefold repetition and the fifty move rule. Once a game ending
// event has been appended all further state changing calls fail with
// ErrGameEnded.
package game

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Zirconium419122/chessframe/pkg/board"
	"github.com/Zirconium419122/chessframe/pkg/movegen"
	. "github.com/Zirconium419122/chessframe/pkg/types"
)

// ErrGameEnded is returned when an operation is attempted on a game
// whose log already holds a terminal event
var ErrGameEnded = errors.New("game has already ended")

// EventKind discriminates the event log entries
type EventKind uint8

// Event kinds
const (
	EventMove EventKind = iota
	EventCheckmate
	EventStalemate
	EventDrawByThreefoldRepetition
	EventDrawByFiftyMoveRule
	EventResignation
	EventTimeout
)

// Event is a single entry of the game log. Move events carry the move
// and the metadata needed to undo it plus the halfmove clock before
// the move; Resignation and Timeout carry the color.
type Event struct {
	Kind          EventKind
	Move          Move
	Metadata      board.MoveMetadata
	PrevHalfMoves int
	Color         Color
}

// IsGameEnding reports whether the event terminates the game
func (e *Event) IsGameEnding() bool {
	return e.Kind != EventMove
}

// Game owns a board and the append-only event history of a game
type Game struct {
	board     *board.Board
	history   []Event
	hashes    []uint64
	ply       int
	halfMoves int
}

// New creates a game starting from the standard starting position
func New() *Game {
	return FromFen(StartFen)
}

// FromFen creates a game from a FEN string, reading the halfmove
// clock from the fifth field
func FromFen(fen string) *Game {
	b := board.FromFen(fen)
	halfMoves := 0
	if fields := strings.Fields(fen); len(fields) > 4 {
		if parsed, err := strconv.Atoi(fields[4]); err == nil {
			halfMoves = parsed
		}
	}
	return &Game{
		board:     b,
		hashes:    []uint64{b.Hash()},
		halfMoves: halfMoves,
	}
}

// Board returns the current board of the game
func (g *Game) Board() *board.Board {
	return g.board
}

// History returns the event log of the game
func (g *Game) History() []Event {
	return g.history
}

// Hashes returns the position hash history of the game
func (g *Game) Hashes() []uint64 {
	return g.hashes
}

// Ply returns the number of half moves played
func (g *Game) Ply() int {
	return g.ply
}

// HalfMoves returns the halfmove clock for the fifty move rule
func (g *Game) HalfMoves() int {
	return g.halfMoves
}

// Ended reports whether the game log holds a terminal event
func (g *Game) Ended() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	return last.IsGameEnding()
}

// Resign ends the game by resignation of the color
func (g *Game) Resign(c Color) error {
	if g.Ended() {
		return ErrGameEnded
	}
	g.history = append(g.history, Event{Kind: EventResignation, Color: c})
	return nil
}

// TimeoutBy ends the game by timeout of the color
func (g *Game) TimeoutBy(c Color) error {
	if g.Ended() {
		return ErrGameEnded
	}
	g.history = append(g.history, Event{Kind: EventTimeout, Color: c})
	return nil
}

// PlayMove plays a pseudo-legal move, appends it to the history and
// appends a terminal event when the move ends the game by checkmate,
// stalemate, threefold repetition or the fifty move rule. An illegal
// move leaves the game untouched and returns the board's error.
func (g *Game) PlayMove(mv Move) error {
	if g.Ended() {
		return ErrGameEnded
	}

	if err := g.makeMove(mv); err != nil {
		return err
	}

	lastMove := g.history[len(g.history)-1]
	if lastMove.Metadata.ResetsHalfMoveClock() {
		g.halfMoves = 0
	} else {
		g.halfMoves++
	}

	if len(movegen.GenerateLegalMoves(g.board)) == 0 {
		if g.board.InCheck() {
			g.history = append(g.history, Event{Kind: EventCheckmate})
		} else {
			g.history = append(g.history, Event{Kind: EventStalemate})
		}
		return nil
	}

	counts := make(map[uint64]int, len(g.hashes))
	for _, hash := range g.hashes {
		counts[hash]++
		if counts[hash] == 3 {
			g.history = append(g.history, Event{Kind: EventDrawByThreefoldRepetition})
			return nil
		}
	}

	if g.halfMoves >= 100 {
		g.history = append(g.history, Event{Kind: EventDrawByFiftyMoveRule})
	}

	return nil
}

// makeMove applies the move on a copy of the board so that a
// pseudo-legal but illegal move cannot corrupt the game, then commits
// the copy and records the move event and position hash
func (g *Game) makeMove(mv Move) error {
	newBoard := *g.board
	metadata, err := newBoard.MakeMoveMetadata(mv)
	if err != nil {
		return err
	}

	g.board = &newBoard
	g.history = append(g.history, Event{
		Kind:          EventMove,
		Move:          mv,
		Metadata:      metadata,
		PrevHalfMoves: g.halfMoves,
	})
	g.hashes = append(g.hashes, newBoard.Hash())
	g.ply++

	return nil
}

// UndoMove undoes the last played move, restoring the board bit for
// bit and truncating the history at the move - any terminal event
// appended after it is dropped as well
func (g *Game) UndoMove() {
	// find the last move event
	last := -1
	for i := len(g.history) - 1; i >= 0; i-- {
		if g.history[i].Kind == EventMove {
			last = i
			break
		}
	}
	if last < 0 {
		return
	}

	event := g.history[last]
	g.board.UnmakeMove(event.Move, event.Metadata)

	g.halfMoves = event.PrevHalfMoves
	g.history = g.history[:last]
	g.hashes = g.hashes[:len(g.hashes)-1]
	g.ply--
}
