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
	. "github.com/Zirconium419122/chessframe/pkg/types"
)

// MoveKind classifies a move made on the board for halfmove clock
// handling and for undo
type MoveKind uint8

// Move kinds
const (
	MoveQuiet MoveKind = iota
	MovePawn
	MoveCapture
	MoveEnPassant
	MoveCastle
)

// MoveMetadata captures the state MakeMoveMetadata destroys so that
// UnmakeMove can restore the board bit for bit.
type MoveMetadata struct {
	Kind               MoveKind
	Captured           Piece
	CapturedSquare     Square
	PrevEnPassant      Square
	PrevCastlingRights CastlingRights
	PrevCheck          uint8
	PrevPinned         Bitboard
}

// ResetsHalfMoveClock reports whether the move resets the fifty move
// rule counter - any pawn move or capture does
func (md *MoveMetadata) ResetsHalfMoveClock() bool {
	switch md.Kind {
	case MovePawn, MoveCapture, MoveEnPassant:
		return true
	}
	return false
}
