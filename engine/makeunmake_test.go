package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// snapshot captures everything Make/Unmake is supposed to restore, so
// round-trip tests can assert the board is byte-for-byte unchanged.
type snapshot struct {
	pieces   [NumPieces]Bitboard
	occWhite Bitboard
	occBlack Bitboard
	occAll   Bitboard
	mailbox  [64]Piece
	castling Castling
	key      uint64
}

func snapshotBoard(b *Board) snapshot {
	return snapshot{
		pieces:   b.Pieces,
		occWhite: b.OccWhite,
		occBlack: b.OccBlack,
		occAll:   b.OccAll,
		mailbox:  b.Mailbox,
		castling: b.Castling,
		key:      b.Key,
	}
}

func requireRoundTrip(t *testing.T, b *Board, side Color, m Move) {
	t.Helper()
	before := snapshotBoard(b)
	b.Make(m, side, 0)
	require.NotEqual(t, before, snapshotBoard(b), "move %s had no effect", m.UCI())
	b.Unmake(m, side, 0)
	require.Equal(t, before, snapshotBoard(b), "move %s did not round-trip", m.UCI())
}

func TestMakeUnmakeQuietAndCapture(t *testing.T) {
	b := NewGame()
	requireRoundTrip(t, b, White, MakeMove(SquareFromStringMust(t, "e2"), SquareFromStringMust(t, "e4"), DoublePawnPush))
	requireRoundTrip(t, b, White, MakeMove(SquareFromStringMust(t, "g1"), SquareFromStringMust(t, "f3"), Quiet))

	require.True(t, applyMove(t, b, "e2e4"))
	require.True(t, applyMove(t, b, "d7d5"))
	requireRoundTrip(t, b, White, MakeMove(SquareFromStringMust(t, "e4"), SquareFromStringMust(t, "d5"), Capture))
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	b := NewGame()
	require.True(t, applyMove(t, b, "e2e4"))
	require.True(t, applyMove(t, b, "a7a6"))
	require.True(t, applyMove(t, b, "e4e5"))
	require.True(t, applyMove(t, b, "d7d5"))

	m := MakeMove(SquareFromStringMust(t, "e5"), SquareFromStringMust(t, "d6"), EnPassantCapture)
	requireRoundTrip(t, b, White, m)
}

func TestMakeUnmakeCastling(t *testing.T) {
	b := NewGame()
	require.True(t, applyMove(t, b, "e2e4"))
	require.True(t, applyMove(t, b, "e7e5"))
	require.True(t, applyMove(t, b, "f1c4"))
	require.True(t, applyMove(t, b, "f8c5"))
	require.True(t, applyMove(t, b, "g1f3"))
	require.True(t, applyMove(t, b, "g8f6"))

	m := MakeMove(SquareFromStringMust(t, "e1"), SquareFromStringMust(t, "g1"), KingSideCastle)
	requireRoundTrip(t, b, White, m)
}

func TestMakeUnmakePromotion(t *testing.T) {
	b := NewGame()
	// Clear a path for the white a-pawn to reach a8 by hand, bypassing
	// the opening moves this would otherwise take dozens of plies to set up.
	b.Pieces[WPawn].clear(SquareFromStringMust(t, "a2"))
	b.Mailbox[SquareFromStringMust(t, "a2")] = NoPiece
	b.Pieces[BRook].clear(SquareFromStringMust(t, "a8"))
	b.Mailbox[SquareFromStringMust(t, "a8")] = NoPiece
	b.OccWhite.clear(SquareFromStringMust(t, "a2"))
	b.OccBlack.clear(SquareFromStringMust(t, "a8"))
	b.OccAll.clear(SquareFromStringMust(t, "a2"))
	b.OccAll.clear(SquareFromStringMust(t, "a8"))

	a7 := SquareFromStringMust(t, "a7")
	b.Pieces[WPawn].set(a7)
	b.Mailbox[a7] = WPawn
	b.OccWhite.set(a7)
	b.OccAll.set(a7)
	b.Key = b.RecomputeKey()

	m := MakeMove(a7, SquareFromStringMust(t, "a8"), QueenPromotion)
	requireRoundTrip(t, b, White, m)
}

func SquareFromStringMust(t *testing.T, s string) Square {
	t.Helper()
	sq, err := SquareFromString(s)
	require.NoError(t, err)
	return sq
}
