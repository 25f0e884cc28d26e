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

// Package movegen implements the pseudo-legal move generator of
// chessframe. Generation is mask filtered: callers pass BbAll for full
// generation or the enemy occupancy for capture only ("quiescence")
// generation. Generated moves are pseudo-legal - applying them through
// the board's MakeMove enforces legality as a postcondition.
package movegen

import (
	"github.com/Zirconium419122/chessframe/pkg/board"
	. "github.com/Zirconium419122/chessframe/pkg/types"
)

// maxMoves is the upper bound of moves in a chess position, used as
// the initial capacity of generated move lists
const maxMoves = 218

// GeneratePseudoLegalMoves returns every pseudo-legal move of the side
// to move whose destination lies in mask. In double check only king
// moves are generated. Castling is only generated when the side to
// move is not in check.
func GeneratePseudoLegalMoves(b *board.Board, mask Bitboard) []Move {
	moves := make([]Move, 0, maxMoves)

	us := b.SideToMove()
	them := us.Flip()
	allied := b.Occupancy(us)
	blockers := b.Combined()

	if b.Check() >= 2 {
		// double check - only the king can move
		kings := b.PiecesColor(King, us)
		for kings != BbZero {
			from := kings.PopLsb()
			targets := GetKingMoves(from) &^ allied & mask
			for targets != BbZero {
				moves = append(moves, NewMove(from, targets.PopLsb()))
			}
		}
		return moves
	}

	for _, piece := range []Piece{Knight, Bishop, Rook, Queen, King} {
		pieces := b.PiecesColor(piece, us)
		for pieces != BbZero {
			from := pieces.PopLsb()

			var targets Bitboard
			switch piece {
			case Knight:
				targets = GetKnightMoves(from)
			case Bishop:
				targets = GetBishopMoves(from, blockers)
			case Rook:
				targets = GetRookMoves(from, blockers)
			case Queen:
				targets = GetQueenMoves(from, blockers)
			case King:
				targets = GetKingMoves(from)
				if b.Check() < 1 {
					targets |= b.GenerateCastlingMoves()
				}
			}
			targets &= ^allied & mask

			for targets != BbZero {
				moves = append(moves, NewMove(from, targets.PopLsb()))
			}
		}
	}

	pawns := b.PiecesColor(Pawn, us)
	for pawns != BbZero {
		from := pawns.PopLsb()

		var targets Bitboard
		if from.WrappingForward(us).Bb()&^blockers != BbZero {
			targets = GetPawnMoves(us, from) &^ blockers
		}
		targets |= GetPawnAttacks(us, from) & b.Occupancy(them)
		targets &= mask

		for targets != BbZero {
			to := targets.PopLsb()
			if b.IsPromotion(to) {
				moves = append(moves,
					NewPromotionMove(from, to, Knight),
					NewPromotionMove(from, to, Bishop),
					NewPromotionMove(from, to, Rook),
					NewPromotionMove(from, to, Queen))
			} else {
				moves = append(moves, NewMove(from, to))
			}
		}
	}

	if enPassant := b.EnPassantSquare(); enPassant != SqNone && mask.Has(enPassant) {
		attackers := GetPawnAttacks(them, enPassant) & b.PiecesColor(Pawn, us)
		for attackers != BbZero {
			moves = append(moves, NewMove(attackers.PopLsb(), enPassant))
		}
	}

	return moves
}

// GenerateLegalMoves returns every strictly legal move of the side to
// move by filtering pseudo-legal generation through a trial copy-make
func GenerateLegalMoves(b *board.Board) []Move {
	pseudoLegal := GeneratePseudoLegalMoves(b, BbAll)
	legal := pseudoLegal[:0]
	for _, mv := range pseudoLegal {
		if _, err := b.MakeMoveNew(mv); err == nil {
			legal = append(legal, mv)
		}
	}
	return legal
}
