package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// perft counts leaf nodes at depth, filtering pseudo-legal moves down
// to legal ones by rejecting any that leave the mover's own king in
// check, the same post-hoc filter search.go applies.
func perft(b *Board, side Color, depth, ply int) int {
	if depth == 0 {
		return 1
	}

	var moves [MaxMoves]Move
	n := b.GeneratePseudoLegal(side, &moves)

	nodes := 0
	for i := 0; i < n; i++ {
		b.Make(moves[i], side, ply)
		if !b.IsKingInCheck(side) {
			nodes += perft(b, side.Opposite(), depth-1, ply+1)
		}
		b.Unmake(moves[i], side, ply)
	}
	return nodes
}

func TestPerftFromStartpos(t *testing.T) {
	cases := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, c := range cases {
		b := NewGame()
		require.Equal(t, c.nodes, perft(b, White, c.depth, 0), "perft(%d)", c.depth)
		require.Equal(t, b.RecomputeKey(), b.Key, "zobrist key drifted after perft(%d)", c.depth)
	}
}

func TestGenerateAllMovesInitialPosition(t *testing.T) {
	b := NewGame()
	var moves [MaxMoves]Move
	n := b.GeneratePseudoLegal(White, &moves)
	require.Equal(t, 20, n, "16 pawn + 4 knight moves, no legal king/rook/bishop/queen moves")
}

func TestEnPassantGeneration(t *testing.T) {
	b := NewGame()
	require.True(t, applyMove(t, b, "e2e4"))
	require.True(t, applyMove(t, b, "a7a6"))
	require.True(t, applyMove(t, b, "e4e5"))
	require.True(t, applyMove(t, b, "d7d5"))

	var moves [MaxMoves]Move
	n := b.GeneratePseudoLegal(White, &moves)

	found := false
	for i := 0; i < n; i++ {
		if moves[i].Flag() == EnPassantCapture {
			found = true
			require.Equal(t, "e5", moves[i].From().String())
			require.Equal(t, "d6", moves[i].To().String())
		}
	}
	require.True(t, found, "expected an en passant capture to be generated")
}

// applyMove finds the first pseudo-legal move matching a UCI coordinate
// string and plays it, for building up test positions move by move.
func applyMove(t *testing.T, b *Board, uci string) bool {
	t.Helper()
	from, err := SquareFromString(uci[0:2])
	require.NoError(t, err)
	to, err := SquareFromString(uci[2:4])
	require.NoError(t, err)

	var moves [MaxMoves]Move
	n := b.GeneratePseudoLegal(b.SideToMove, &moves)
	for i := 0; i < n; i++ {
		if moves[i].From() == from && moves[i].To() == to {
			b.Make(moves[i], b.SideToMove, 0)
			b.SideToMove = b.SideToMove.Opposite()
			return true
		}
	}
	return false
}

func TestCastlingGeneration(t *testing.T) {
	b := NewGame()
	require.True(t, applyMove(t, b, "e2e4"))
	require.True(t, applyMove(t, b, "e7e5"))
	require.True(t, applyMove(t, b, "f1c4"))
	require.True(t, applyMove(t, b, "f8c5"))
	require.True(t, applyMove(t, b, "g1f3"))
	require.True(t, applyMove(t, b, "g8f6"))

	var moves [MaxMoves]Move
	n := b.GeneratePseudoLegal(White, &moves)

	found := false
	for i := 0; i < n; i++ {
		if moves[i].Flag() == KingSideCastle {
			found = true
		}
	}
	require.True(t, found, "expected white king-side castling to be available")
}
