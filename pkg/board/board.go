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

// Package board implements the bitboard position model of chessframe.
// A Board aggregates per piece and per color bitboards, the zobrist
// hash, castling rights, the en passant target and the check and pin
// state of the side to move, and updates all of them incrementally on
// move application. Legality is a postcondition of MakeMove: a move
// that leaves the own king attacked is reported as ErrCannotMovePinned
// and the board must then be discarded.
package board

import (
	"strings"

	. "github.com/Zirconium419122/chessframe/pkg/types"
)

// Board represents a chess position
type Board struct {
	pieces          [PieceLength]Bitboard
	occupancy       [2]Bitboard
	combined        Bitboard
	pinned          Bitboard
	check           uint8
	hash            uint64
	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
}

// New creates an empty board with no pieces on it
func New() *Board {
	return &Board{
		enPassantSquare: SqNone,
		castlingRights:  CastlingAny,
	}
}

// ////////////////////////////////////////////////////
// Accessors
// ////////////////////////////////////////////////////

// Pieces returns the bitboard of the piece type for both colors
func (b *Board) Pieces(p Piece) Bitboard {
	return b.pieces[p]
}

// PiecesColor returns the bitboard of the piece type of the color
func (b *Board) PiecesColor(p Piece, c Color) Bitboard {
	return b.pieces[p] & b.occupancy[c]
}

// Occupancy returns the bitboard of all pieces of the color
func (b *Board) Occupancy(c Color) Bitboard {
	return b.occupancy[c]
}

// Combined returns the bitboard of all pieces on the board
func (b *Board) Combined() Bitboard {
	return b.combined
}

// Pinned returns the bitboard of the side to move's pieces which are
// absolutely pinned to their king
func (b *Board) Pinned() Bitboard {
	return b.pinned
}

// Check returns the number of pieces giving check to the side to move.
// A value of 2 or more means double check.
func (b *Board) Check() uint8 {
	return b.check
}

// InCheck reports whether the side to move is in check
func (b *Board) InCheck() bool {
	return b.check > 0
}

// SideToMove returns the color to move
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// CastlingRights returns the remaining castling rights
func (b *Board) CastlingRights() CastlingRights {
	return b.castlingRights
}

// EnPassantSquare returns the en passant target square or SqNone.
// The target is only set when an adjacent enemy pawn could actually
// capture on it.
func (b *Board) EnPassantSquare() Square {
	return b.enPassantSquare
}

// GetPiece returns the piece type on the square or PieceNone
func (b *Board) GetPiece(sq Square) Piece {
	if !b.combined.Has(sq) {
		return PieceNone
	}
	for p := Pawn; p <= King; p++ {
		if b.pieces[p].Has(sq) {
			return p
		}
	}
	return PieceNone
}

// Hash returns the zobrist hash of the position. The stored piece
// square hash is folded with the castling keys of both colors, the en
// passant file key and the side to move key so that positions which
// differ only in en passant availability or castling rights have
// distinct keys.
func (b *Board) Hash() uint64 {
	hash := b.hash
	if b.enPassantSquare != SqNone {
		hash ^= ZobristEnPassant(b.enPassantSquare.FileOf(), b.sideToMove.Flip())
	}
	hash ^= ZobristCastle(b.castlingRights, White)
	hash ^= ZobristCastle(b.castlingRights, Black)
	if b.sideToMove == Black {
		hash ^= ZobristSideToMove()
	}
	return hash
}

// ////////////////////////////////////////////////////
// State updates
// ////////////////////////////////////////////////////

// xor toggles the given single bit bitboard for the piece of the color
// on pieces, occupancy, combined and the piece square hash
func (b *Board) xor(bb Bitboard, p Piece, c Color) {
	b.pieces[p] ^= bb
	b.occupancy[c] ^= bb
	b.combined ^= bb
	b.hash ^= ZobristPiece(c, p, bb.ToSquare())
}

// RemoveCastlingRights clears the given rights
func (b *Board) RemoveCastlingRights(cr CastlingRights) {
	b.castlingRights = b.castlingRights.Remove(cr)
}

// setEnPassant stores the en passant target square if a pawn of the
// capturing color stands on an adjacent file next to the double pushed
// pawn. Otherwise the target stays unset.
func (b *Board) setEnPassant(sq Square, capturer Color) {
	pawnSq := sq.WrappingBackward(capturer)
	if sq.FileOf().AdjacentBb()&pawnSq.RankOf().Bb()&b.PiecesColor(Pawn, capturer) != BbZero {
		b.enPassantSquare = sq
	}
}

// computeCheckAndPins recomputes check and pinned from scratch for the
// given side: every enemy slider raying onto the king either checks
// (no piece between) or pins a single friendly piece between, and
// knight and pawn attackers add to the check count.
func (b *Board) computeCheckAndPins(us Color) {
	b.check = 0
	b.pinned = BbZero

	them := us.Flip()
	kingSq := b.PiecesColor(King, us).ToSquare()

	sliders := b.occupancy[them] &
		((GetBishopMoves(kingSq, BbZero) & (b.pieces[Bishop] | b.pieces[Queen])) |
			(GetRookMoves(kingSq, BbZero) & (b.pieces[Rook] | b.pieces[Queen])))

	for sliders != BbZero {
		sq := sliders.PopLsb()
		between := Between(sq, kingSq) & b.combined
		switch between.PopCount() {
		case 0:
			b.check++
		case 1:
			b.pinned |= between & b.occupancy[us]
		}
	}

	b.check += uint8((GetKnightMoves(kingSq) & b.PiecesColor(Knight, them)).PopCount())
	b.check += uint8((GetPawnAttacks(us, kingSq) & b.PiecesColor(Pawn, them)).PopCount())
}

// GetAttackers returns the bitboard of all enemy pieces attacking the
// square on the current occupancy - pawn attack reverse lookup,
// knight, magic bishop and rook lookups (queens appear in both slider
// queries) and king.
func (b *Board) GetAttackers(sq Square) Bitboard {
	them := b.sideToMove.Flip()

	bishops := b.PiecesColor(Bishop, them) | b.PiecesColor(Queen, them)
	rooks := b.PiecesColor(Rook, them) | b.PiecesColor(Queen, them)

	attackers := GetPawnAttacks(b.sideToMove, sq) & b.PiecesColor(Pawn, them)
	attackers |= GetKnightMoves(sq) & b.PiecesColor(Knight, them)
	attackers |= GetBishopMoves(sq, b.combined) & bishops
	attackers |= GetRookMoves(sq, b.combined) & rooks
	attackers |= GetKingMoves(sq) & b.PiecesColor(King, them)

	return attackers
}

// castleRookSquares returns the rook's corner square and its landing
// square for a castling king move of the color, selected by the
// king's destination file (g file: h rook to f, c file: a rook to d)
func castleRookSquares(c Color, to Square) (Square, Square) {
	if to.FileOf() >= FileE {
		return SquareOf(FileH, c.BackRank()), SquareOf(FileF, c.BackRank())
	}
	return SquareOf(FileA, c.BackRank()), SquareOf(FileD, c.BackRank())
}

// ////////////////////////////////////////////////////
// Move application
// ////////////////////////////////////////////////////

// MakeMove makes a pseudo-legal move on the board, updating all state
// incrementally. When the move leaves the own king attacked the board
// is left partially updated and ErrCannotMovePinned is returned - the
// caller must discard the board (or use MakeMoveNew).
func (b *Board) MakeMove(mv Move) error {
	_, err := b.MakeMoveMetadata(mv)
	return err
}

// MakeMoveNew makes a pseudo-legal move on a copy of the board and
// returns the copy, leaving the receiver untouched
func (b *Board) MakeMoveNew(mv Move) (*Board, error) {
	newBoard := *b
	if err := newBoard.MakeMove(mv); err != nil {
		return nil, err
	}
	return &newBoard, nil
}

// MakeMoveMetadata makes a pseudo-legal move and returns the metadata
// needed to undo it with UnmakeMove: what was captured and where,
// whether the move was castling or en passant and the prior en
// passant, castling, check and pin state.
func (b *Board) MakeMoveMetadata(mv Move) (MoveMetadata, error) {
	us := b.sideToMove
	them := us.Flip()

	md := MoveMetadata{
		Kind:               MoveQuiet,
		Captured:           PieceNone,
		CapturedSquare:     SqNone,
		PrevEnPassant:      b.enPassantSquare,
		PrevCastlingRights: b.castlingRights,
		PrevCheck:          b.check,
		PrevPinned:         b.pinned,
	}

	piece := b.GetPiece(mv.From)
	if piece == PieceNone {
		return md, ErrNoPieceOnSquare
	}

	fromBb := mv.From.Bb()
	toBb := mv.To.Bb()
	moveBb := fromBb ^ toBb

	enPassantSquare := b.enPassantSquare
	b.enPassantSquare = SqNone

	if captured := b.GetPiece(mv.To); captured != PieceNone {
		b.xor(toBb, captured, them)
		md.Kind = MoveCapture
		md.Captured = captured
		md.CapturedSquare = mv.To
	}
	b.xor(fromBb, piece, us)
	b.xor(toBb, piece, us)

	b.RemoveCastlingRights(CastlingRightsForSquare(them, mv.To))
	b.RemoveCastlingRights(CastlingRightsForSquare(us, mv.From))

	castle := piece == King && moveBb&GetCastleMoves() == moveBb

	switch {
	case piece == Pawn:
		if md.Kind == MoveQuiet {
			md.Kind = MovePawn
		}
		switch {
		case mv.Promotion != PieceNone:
			b.xor(toBb, Pawn, us)
			b.xor(toBb, mv.Promotion, us)
		case mv.From.RankOf() == us.SecondRank() && mv.To.RankOf() == us.FourthRank():
			b.setEnPassant(mv.To.WrappingBackward(us), them)
		case mv.To == enPassantSquare:
			capturedSq := mv.To.WrappingBackward(us)
			b.xor(capturedSq.Bb(), Pawn, them)
			md.Kind = MoveEnPassant
			md.Captured = Pawn
			md.CapturedSquare = capturedSq
		}
	case castle:
		rookFrom, rookTo := castleRookSquares(us, mv.To)
		b.xor(rookFrom.Bb(), Rook, us)
		b.xor(rookTo.Bb(), Rook, us)
		md.Kind = MoveCastle
	}

	b.computeCheckAndPins(them)

	// legality postcondition - the mover's king must not be attacked
	if b.GetAttackers(b.PiecesColor(King, us).ToSquare()) != BbZero {
		return md, ErrCannotMovePinned
	}

	b.sideToMove = them
	return md, nil
}

// UnmakeMove reverses a move made with MakeMoveMetadata using the
// metadata captured at make time, restoring the board bit for bit
func (b *Board) UnmakeMove(mv Move, md MoveMetadata) {
	us := b.sideToMove.Flip() // the side that made the move
	them := b.sideToMove

	piece := b.GetPiece(mv.To)
	b.xor(mv.To.Bb(), piece, us)
	if mv.Promotion != PieceNone {
		piece = Pawn
	}
	b.xor(mv.From.Bb(), piece, us)

	switch md.Kind {
	case MoveCapture, MoveEnPassant:
		b.xor(md.CapturedSquare.Bb(), md.Captured, them)
	case MoveCastle:
		rookFrom, rookTo := castleRookSquares(us, mv.To)
		b.xor(rookFrom.Bb(), Rook, us)
		b.xor(rookTo.Bb(), Rook, us)
	}

	b.enPassantSquare = md.PrevEnPassant
	b.castlingRights = md.PrevCastlingRights
	b.check = md.PrevCheck
	b.pinned = md.PrevPinned
	b.sideToMove = us
}

// ////////////////////////////////////////////////////
// Move inference
// ////////////////////////////////////////////////////

// InferMove parses a move string in lowercase algebraic notation
// ("e2e4", "e7e8q") in the context of the current position and
// validates that the move is pseudo-legal
func (b *Board) InferMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, ErrInvalidMove
	}

	from, err := SquareFromString(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return Move{}, err
	}

	if b.GetPiece(from) == PieceNone {
		return Move{}, ErrNoPieceOnSquare
	}

	if len(s) == 5 {
		promotion := PieceFromChar(s[4])
		if promotion == PieceNone {
			return Move{}, ErrInvalidMove
		}
		mv := NewPromotionMove(from, to, promotion)
		if _, err := b.ValidateMove(mv); err == nil {
			return mv, nil
		}
		return Move{}, ErrInvalidMove
	}

	mv := NewMove(from, to)
	if _, err := b.ValidateMove(mv); err == nil {
		return mv, nil
	}
	return Move{}, ErrInvalidMove
}

// ValidateMove checks that a move is pseudo-legal for the current
// board state and returns the moving piece. It does not check whether
// the move leaves the king in check.
func (b *Board) ValidateMove(mv Move) (Piece, error) {
	piece := b.GetPiece(mv.From)
	if piece == PieceNone {
		return PieceNone, ErrNoPieceOnSquare
	}

	// restrict the piece bitboard to the from square and generate
	// only this piece's moves
	pieces := b.pieces[piece]
	b.pieces[piece] = mv.From.Bb()

	var pieceMoves Bitboard
	switch piece {
	case Pawn:
		pieceMoves = b.GeneratePawnMoves()
	case Knight:
		pieceMoves = b.GenerateKnightMoves()
	case Bishop:
		pieceMoves = b.GenerateBishopMoves()
	case Rook:
		pieceMoves = b.GenerateRookMoves()
	case Queen:
		pieceMoves = b.GenerateQueenMoves()
	case King:
		pieceMoves = b.GenerateKingMoves() | b.GenerateCastlingMoves()
	}

	b.pieces[piece] = pieces

	if !pieceMoves.Has(mv.To) {
		return PieceNone, ErrInvalidMove
	}
	return piece, nil
}

// ////////////////////////////////////////////////////
// Bitboard move generation
// ////////////////////////////////////////////////////

// GenerateMoves returns the union of all pseudo-legal destination
// squares of the side to move
func (b *Board) GenerateMoves() Bitboard {
	return b.GeneratePawnMoves() |
		b.GenerateKnightMoves() |
		b.GenerateBishopMoves() |
		b.GenerateRookMoves() |
		b.GenerateQueenMoves() |
		b.GenerateKingMoves()
}

// GenerateRayMoves returns the union of all pseudo-legal destination
// squares of the side to move's sliding pieces
func (b *Board) GenerateRayMoves() Bitboard {
	return b.GenerateBishopMoves() | b.GenerateRookMoves() | b.GenerateQueenMoves()
}

// GeneratePawnMoves returns the destination squares of all pawns of
// the side to move - pushes on empty squares, captures into enemy
// occupancy and the en passant target
func (b *Board) GeneratePawnMoves() Bitboard {
	moves := BbZero

	pawns := b.PiecesColor(Pawn, b.sideToMove)
	for pawns != BbZero {
		sq := pawns.PopLsb()
		if sq.WrappingForward(b.sideToMove).Bb()&^b.combined != BbZero {
			moves |= GetPawnMoves(b.sideToMove, sq) &^ b.combined
		}
		moves |= GetPawnAttacks(b.sideToMove, sq) & b.occupancy[b.sideToMove.Flip()]
	}

	return moves | b.GenerateEnPassant()
}

// GenerateEnPassant returns the en passant target square if it is set
// and attacked by a pawn of the side to move
func (b *Board) GenerateEnPassant() Bitboard {
	if b.enPassantSquare != SqNone {
		if GetPawnAttacks(b.sideToMove.Flip(), b.enPassantSquare)&
			b.PiecesColor(Pawn, b.sideToMove) != BbZero {
			return b.enPassantSquare.Bb()
		}
	}
	return BbZero
}

// GenerateKnightMoves returns the destination squares of all knights
// of the side to move
func (b *Board) GenerateKnightMoves() Bitboard {
	moves := BbZero
	knights := b.PiecesColor(Knight, b.sideToMove)
	for knights != BbZero {
		moves |= GetKnightMoves(knights.PopLsb())
	}
	return moves &^ b.occupancy[b.sideToMove]
}

// GenerateBishopMoves returns the destination squares of all bishops
// of the side to move
func (b *Board) GenerateBishopMoves() Bitboard {
	moves := BbZero
	bishops := b.PiecesColor(Bishop, b.sideToMove)
	for bishops != BbZero {
		moves |= GetBishopMoves(bishops.PopLsb(), b.combined)
	}
	return moves &^ b.occupancy[b.sideToMove]
}

// GenerateRookMoves returns the destination squares of all rooks of
// the side to move
func (b *Board) GenerateRookMoves() Bitboard {
	moves := BbZero
	rooks := b.PiecesColor(Rook, b.sideToMove)
	for rooks != BbZero {
		moves |= GetRookMoves(rooks.PopLsb(), b.combined)
	}
	return moves &^ b.occupancy[b.sideToMove]
}

// GenerateQueenMoves returns the destination squares of all queens of
// the side to move
func (b *Board) GenerateQueenMoves() Bitboard {
	moves := BbZero
	queens := b.PiecesColor(Queen, b.sideToMove)
	for queens != BbZero {
		moves |= GetQueenMoves(queens.PopLsb(), b.combined)
	}
	return moves &^ b.occupancy[b.sideToMove]
}

// GenerateKingMoves returns the destination squares of the king of the
// side to move, castling excluded
func (b *Board) GenerateKingMoves() Bitboard {
	moves := BbZero
	kings := b.PiecesColor(King, b.sideToMove)
	for kings != BbZero {
		moves |= GetKingMoves(kings.PopLsb())
	}
	return moves &^ b.occupancy[b.sideToMove]
}

// GenerateCastlingMoves returns the castling destination squares (g or
// c file on the back rank) available to the side to move: the right is
// held, the squares between king and rook are empty, the king is not
// in check and the squares the king traverses are not attacked
func (b *Board) GenerateCastlingMoves() Bitboard {
	back := b.sideToMove.BackRank()

	kingSide := SquareOf(FileF, back).Bb() | SquareOf(FileG, back).Bb()
	queenSide := SquareOf(FileB, back).Bb() | SquareOf(FileC, back).Bb() | SquareOf(FileD, back).Bb()
	queenSideAttacks := SquareOf(FileC, back).Bb() | SquareOf(FileD, back).Bb()

	emptyKingSide := b.combined&kingSide == BbZero
	emptyQueenSide := b.combined&queenSide == BbZero

	if !emptyKingSide && !emptyQueenSide {
		return BbZero
	}
	if b.check != 0 {
		return BbZero
	}

	attackedKingSide := b.anyAttacked(kingSide)
	attackedQueenSide := b.anyAttacked(queenSideAttacks)

	moves := BbZero
	if emptyKingSide && !attackedKingSide && b.castlingRights.CanCastle(b.sideToMove, true) {
		moves |= SquareOf(FileG, back).Bb()
	}
	if emptyQueenSide && !attackedQueenSide && b.castlingRights.CanCastle(b.sideToMove, false) {
		moves |= SquareOf(FileC, back).Bb()
	}
	return moves
}

// CanCastle reports whether the side to move can castle to the given
// side in the current position
func (b *Board) CanCastle(kingside bool) bool {
	castlingMoves := b.GenerateCastlingMoves()
	file := FileG
	if !kingside {
		file = FileC
	}
	return castlingMoves.Has(SquareOf(file, b.sideToMove.BackRank()))
}

// IsPromotion reports whether a pawn move of the side to move to the
// square promotes
func (b *Board) IsPromotion(sq Square) bool {
	if b.sideToMove == White {
		return sq.RankOf() == Rank8
	}
	return sq.RankOf() == Rank1
}

// anyAttacked reports whether any square of the bitboard is attacked
// by the opponent of the side to move
func (b *Board) anyAttacked(squares Bitboard) bool {
	for squares != BbZero {
		if b.GetAttackers(squares.PopLsb()) != BbZero {
			return true
		}
	}
	return false
}

// String returns an 8x8 ascii representation of the position with
// upper case letters for white pieces
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r.IsValid(); r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			piece := b.GetPiece(sq)
			switch {
			case piece == PieceNone:
				sb.WriteString("|   ")
			case b.occupancy[White].Has(sq):
				sb.WriteString("| " + strings.ToUpper(string(piece.Char())) + " ")
			default:
				sb.WriteString("| " + string(piece.Char()) + " ")
			}
		}
		sb.WriteString("| " + r.String() + "\n+---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}
