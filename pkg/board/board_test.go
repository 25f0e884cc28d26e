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
	"github.com/stretchr/testify/require"

	. "github.com/Zirconium419122/chessframe/pkg/types"
)

func TestFromFenStartingPosition(t *testing.T) {
	assert := assert.New(t)
	b := StartBoard()

	assert.Equal(Bitboard(0x00FF00000000FF00), b.Pieces(Pawn))
	assert.Equal(Bitboard(0x000000000000FFFF), b.Occupancy(White))
	assert.Equal(Bitboard(0xFFFF000000000000), b.Occupancy(Black))
	assert.Equal(Bitboard(0xFFFF00000000FFFF), b.Combined())

	assert.Equal(King, b.GetPiece(SqE1))
	assert.Equal(Queen, b.GetPiece(SqD8))
	assert.Equal(Pawn, b.GetPiece(SqE2))
	assert.Equal(PieceNone, b.GetPiece(SqE3))

	assert.Equal(White, b.SideToMove())
	assert.Equal(CastlingAny, b.CastlingRights())
	assert.Equal(SqNone, b.EnPassantSquare())
	assert.False(b.InCheck())
	assert.Equal(BbZero, b.Pinned())
}

func TestStartingPositionHash(t *testing.T) {
	b := StartBoard()
	assert.Equal(t, uint64(0x1D0D28B8BD0816CA), b.Hash())
}

func TestHashEquality(t *testing.T) {
	assert := assert.New(t)

	// the same position reached by different paths hashes equally
	b1 := StartBoard()
	require.NoError(t, b1.MakeMove(NewMove(SqE2, SqE4)))
	require.NoError(t, b1.MakeMove(NewMove(SqE7, SqE5)))
	require.NoError(t, b1.MakeMove(NewMove(SqG1, SqF3)))

	b2 := StartBoard()
	require.NoError(t, b2.MakeMove(NewMove(SqG1, SqF3)))
	require.NoError(t, b2.MakeMove(NewMove(SqE7, SqE5)))
	require.NoError(t, b2.MakeMove(NewMove(SqE2, SqE4)))

	assert.Equal(b1.Hash(), b2.Hash())

	// differing side to move or castling rights hash differently
	b3 := FromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	assert.NotEqual(StartBoard().Hash(), b3.Hash())
	b4 := FromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Qkq - 0 1")
	assert.NotEqual(StartBoard().Hash(), b4.Hash())
}

// checkInvariants verifies the structural board invariants
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()

	union := BbZero
	for p := Pawn; p <= King; p++ {
		for q := p + 1; q <= King; q++ {
			require.Equal(t, BbZero, b.Pieces(p)&b.Pieces(q), "piece bitboards %s and %s overlap", p, q)
		}
		union |= b.Pieces(p)
	}
	require.Equal(t, BbZero, b.Occupancy(White)&b.Occupancy(Black))
	require.Equal(t, b.Combined(), b.Occupancy(White)|b.Occupancy(Black))
	require.Equal(t, b.Combined(), union)
	require.Equal(t, 1, b.PiecesColor(King, White).PopCount())
	require.Equal(t, 1, b.PiecesColor(King, Black).PopCount())

	// the piece square hash matches a from scratch recomputation
	hash := uint64(0)
	for p := Pawn; p <= King; p++ {
		for c := White; c <= Black; c++ {
			pieces := b.PiecesColor(p, c)
			for pieces != BbZero {
				hash ^= ZobristPiece(c, p, pieces.PopLsb())
			}
		}
	}
	require.Equal(t, hash, b.hash)

	// pinned pieces belong to the side to move
	require.Equal(t, BbZero, b.Pinned()&^b.Occupancy(b.SideToMove()))
}

func TestMakeMoveSimple(t *testing.T) {
	b := StartBoard()
	require.NoError(t, b.MakeMove(NewMove(SqE2, SqE4)))

	expected := FromFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	assert.Equal(t, expected.Hash(), b.Hash())
	assert.Equal(t, *expected, *b)
	checkInvariants(t, b)
}

func TestMakeMoveCapture(t *testing.T) {
	b := FromFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, b.MakeMove(NewMove(SqE4, SqD5)))

	assert.Equal(t, Pawn, b.GetPiece(SqD5))
	assert.Equal(t, PieceNone, b.GetPiece(SqE4))
	assert.Equal(t, 31, b.Combined().PopCount())
	checkInvariants(t, b)
}

func TestMakeMoveNoPiece(t *testing.T) {
	b := StartBoard()
	err := b.MakeMove(NewMove(SqE4, SqE5))
	assert.ErrorIs(t, err, ErrNoPieceOnSquare)
}

func TestMakeMoveLeavesKingInCheck(t *testing.T) {
	// the e-file bishop is absolutely pinned by the rook on e8
	b := FromFen("4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1")
	assert.NotEqual(t, BbZero, b.Pinned())

	err := b.MakeMove(NewMove(SqE2, SqD3))
	assert.ErrorIs(t, err, ErrCannotMovePinned)
}

func TestMakeMoveNew(t *testing.T) {
	b := StartBoard()
	snapshot := *b

	newBoard, err := b.MakeMoveNew(NewMove(SqE2, SqE4))
	require.NoError(t, err)

	// the original board is untouched
	assert.Equal(t, snapshot, *b)
	assert.Equal(t, Pawn, newBoard.GetPiece(SqE4))
	assert.Equal(t, Black, newBoard.SideToMove())

	// a rejected move returns no board
	pinned := FromFen("4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1")
	_, err = pinned.MakeMoveNew(NewMove(SqE2, SqD3))
	assert.ErrorIs(t, err, ErrCannotMovePinned)
}

func TestEnPassantTarget(t *testing.T) {
	assert := assert.New(t)

	// h7h5 with a white pawn on g5 sets the target h6
	b := FromFen("r1bqk2r/pppp1pbp/2n2np1/4p1P1/2B1P3/3P1N2/PPP2P1P/RNBQK2R b KQkq - 0 6")
	require.NoError(t, b.MakeMove(NewMove(SqH7, SqH5)))
	assert.Equal(SqH6, b.EnPassantSquare())

	// a double push without an adjacent enemy pawn leaves the target unset
	b2 := StartBoard()
	require.NoError(t, b2.MakeMove(NewMove(SqE2, SqE4)))
	assert.Equal(SqNone, b2.EnPassantSquare())
}

func TestEnPassantCapture(t *testing.T) {
	b := FromFen("r1bqk2r/pppp1pb1/2n2np1/4p1Pp/2B1P3/3P1N2/PPP2P1P/RNBQK2R w KQkq h6 0 7")
	require.Equal(t, SqH6, b.EnPassantSquare())
	require.Equal(t, Pawn, b.GetPiece(SqH5))

	require.NoError(t, b.MakeMove(NewMove(SqG5, SqH6)))

	assert.Equal(t, Pawn, b.GetPiece(SqH6))
	assert.Equal(t, PieceNone, b.GetPiece(SqH5))
	checkInvariants(t, b)
}

func TestCastlingMove(t *testing.T) {
	b := FromFen("r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/3P1N2/PPP2PPP/RNBQK2R w KQkq - 1 5")
	require.NoError(t, b.MakeMove(NewMove(SqE1, SqG1)))

	assert.Equal(t, King, b.GetPiece(SqG1))
	assert.Equal(t, Rook, b.GetPiece(SqF1))
	assert.Equal(t, PieceNone, b.GetPiece(SqE1))
	assert.Equal(t, PieceNone, b.GetPiece(SqH1))
	assert.False(t, b.CastlingRights().CanCastle(White, true))
	assert.False(t, b.CastlingRights().CanCastle(White, false))
	checkInvariants(t, b)
}

func TestCastlingBitboard(t *testing.T) {
	// only kingside castling is available
	b := FromFen("r1bqk2r/ppp2ppp/2np1n2/2b1p3/2B1P3/2PP1N2/PP3PPP/RNBQK2R w KQkq - 1 6")
	assert.Equal(t, SqG1.Bb(), b.GenerateCastlingMoves())
	assert.True(t, b.CanCastle(true))
	assert.False(t, b.CanCastle(false))
}

func TestCastlingRightsClearedByRookMoves(t *testing.T) {
	assert := assert.New(t)

	b := FromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, b.MakeMove(NewMove(SqA1, SqA8))) // rook takes rook

	assert.False(b.CastlingRights().CanCastle(White, false))
	assert.True(b.CastlingRights().CanCastle(White, true))
	// the captured rook's right is cleared as well
	assert.False(b.CastlingRights().CanCastle(Black, false))
	assert.True(b.CastlingRights().CanCastle(Black, true))
}

func TestPromotion(t *testing.T) {
	b := FromFen("8/1PK5/7b/6k1/8/8/8/8 w - - 0 1")
	require.NoError(t, b.MakeMove(NewPromotionMove(SqB7, SqB8, Queen)))

	assert.Equal(t, Queen, b.GetPiece(SqB8))
	assert.Equal(t, PieceNone, b.GetPiece(SqB7))
	assert.Equal(t, BbZero, b.Pieces(Pawn)&b.Occupancy(White))
	checkInvariants(t, b)
}

func TestCheckDetection(t *testing.T) {
	assert := assert.New(t)

	b := FromFen("7k/7p/7K/5Q2/8/8/8/8 w - - 0 1")
	require.NoError(t, b.MakeMove(NewMove(SqF5, SqF8)))
	assert.True(b.InCheck())
	assert.Equal(uint8(1), b.Check())

	// knight check from fen
	assert.True(FromFen("4k3/8/3N4/8/8/8/8/4K3 b - - 0 1").InCheck())
	// pawn check from fen
	assert.True(FromFen("4k3/3P4/8/8/8/8/8/4K3 b - - 0 1").InCheck())
	// double check - rook on h1 and bishop on h4
	assert.Equal(uint8(2), FromFen("4k3/8/8/8/7b/8/8/4K2r w - - 0 1").Check())
}

func TestPinnedDetection(t *testing.T) {
	// knight on e4 pinned by the rook on e8
	b := FromFen("4r2k/8/8/8/4N3/8/8/4K3 w - - 0 1")
	assert.Equal(t, SqE4.Bb(), b.Pinned())

	// no pin with two pieces between
	b2 := FromFen("4r2k/8/8/4N3/4N3/8/8/4K3 w - - 0 1")
	assert.Equal(t, BbZero, b2.Pinned())
}

// makeUnmakeRoundTrip plays the move and undoes it, requiring the
// board to be restored bit for bit
func makeUnmakeRoundTrip(t *testing.T, fen string, mv Move) {
	t.Helper()

	b := FromFen(fen)
	snapshot := *b

	md, err := b.MakeMoveMetadata(mv)
	require.NoError(t, err, "move %s on %s", mv, fen)
	b.UnmakeMove(mv, md)

	require.Equal(t, snapshot, *b, "move %s on %s did not round trip", mv, fen)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	// quiet move, capture, castle, en passant, promotion
	makeUnmakeRoundTrip(t, StartFen, NewMove(SqE2, SqE4))
	makeUnmakeRoundTrip(t, StartFen, NewMove(SqG1, SqF3))
	makeUnmakeRoundTrip(t,
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", NewMove(SqE4, SqD5))
	makeUnmakeRoundTrip(t,
		"r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/3P1N2/PPP2PPP/RNBQK2R w KQkq - 1 5", NewMove(SqE1, SqG1))
	makeUnmakeRoundTrip(t,
		"rnbqkbnr/pp1ppppp/8/2pP4/8/8/PPP1PPPP/RNBQKBNR w KQkq c6 0 3", NewMove(SqD5, SqC6))
	makeUnmakeRoundTrip(t, "8/1PK5/7b/6k1/8/8/8/8 w - - 0 1", NewPromotionMove(SqB7, SqB8, Queen))
	makeUnmakeRoundTrip(t, "8/1PK5/7b/6k1/8/8/8/8 w - - 0 1", NewPromotionMove(SqB7, SqB8, Knight))
}

func TestInferMove(t *testing.T) {
	assert := assert.New(t)
	b := StartBoard()

	mv, err := b.InferMove("e2e4")
	assert.NoError(err)
	assert.Equal(NewMove(SqE2, SqE4), mv)

	mv, err = b.InferMove("b1c3")
	assert.NoError(err)
	assert.Equal(NewMove(SqB1, SqC3), mv)

	// a pawn cannot move three squares
	_, err = b.InferMove("e2e5")
	assert.ErrorIs(err, ErrInvalidMove)

	// no piece on the from square
	_, err = b.InferMove("e4e5")
	assert.ErrorIs(err, ErrNoPieceOnSquare)

	// malformed strings
	_, err = b.InferMove("e2")
	assert.ErrorIs(err, ErrInvalidMove)
	_, err = b.InferMove("x2e4")
	assert.ErrorIs(err, ErrInvalidSquare)
	_, err = b.InferMove("e2e4x")
	assert.ErrorIs(err, ErrInvalidMove)
}

func TestInferPromotionMove(t *testing.T) {
	b := FromFen("8/1PK5/7b/6k1/8/8/8/8 w - - 0 1")

	mv, err := b.InferMove("b7b8q")
	assert.NoError(t, err)
	assert.Equal(t, NewPromotionMove(SqB7, SqB8, Queen), mv)
}

func TestValidateMove(t *testing.T) {
	assert := assert.New(t)
	b := StartBoard()

	piece, err := b.ValidateMove(NewMove(SqE2, SqE4))
	assert.NoError(err)
	assert.Equal(Pawn, piece)

	// cannot capture an own piece
	_, err = b.ValidateMove(NewMove(SqE1, SqD1))
	assert.ErrorIs(err, ErrInvalidMove)

	// validation does not mutate the board
	assert.Equal(*StartBoard(), *b)
}

func TestGetAttackers(t *testing.T) {
	assert := assert.New(t)

	b := StartBoard()
	assert.Equal(BbZero, b.GetAttackers(SqE4))

	// with white to move the black pawn on d5 attacks e4
	b2 := FromFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	attackers := b2.GetAttackers(SqE4)
	assert.Equal(SqD5.Bb(), attackers)
}

func TestGenerateMovesUnionStartpos(t *testing.T) {
	b := StartBoard()
	assert.Equal(t, Bitboard(0xFFFF0000), b.GenerateMoves())
	assert.Equal(t, Bitboard(0xFFFF0000), b.GeneratePawnMoves())
	assert.Equal(t, Bitboard(0x00A50000), b.GenerateKnightMoves())
	assert.Equal(t, BbZero, b.GenerateRayMoves())
	assert.Equal(t, BbZero, b.GenerateKingMoves())
	assert.Equal(t, BbZero, b.GenerateCastlingMoves())
}
