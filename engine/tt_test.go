package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTTStoreProbeExact(t *testing.T) {
	tt := NewTranspositionTable(10)
	m := MakeMove(Square(12), Square(28), DoublePawnPush)
	tt.Store(42, 150, 4, m, ttExact)

	r := tt.Probe(42, 4, -1000, 1000)
	require.True(t, r.hit)
	require.True(t, r.useScore)
	require.Equal(t, 150, r.score)
	require.Equal(t, m, r.move)
}

func TestTTProbeMissOnKeyCollisionSlot(t *testing.T) {
	tt := NewTranspositionTable(10)
	tt.Store(42, 150, 4, NullMove, ttExact)

	r := tt.Probe(42+1024, 4, -1000, 1000)
	require.False(t, r.hit, "a different key mapping to the same slot must miss")
}

func TestTTProbeShallowEntryReturnsMoveWithoutScore(t *testing.T) {
	tt := NewTranspositionTable(10)
	m := MakeMove(Square(12), Square(28), DoublePawnPush)
	tt.Store(7, 99, 2, m, ttExact)

	r := tt.Probe(7, 5, -1000, 1000)
	require.True(t, r.hit)
	require.False(t, r.useScore, "an entry searched shallower than depthLeft can't resolve the score")
	require.Equal(t, m, r.move, "the move is still usable for ordering")
}

func TestTTProbeAlphaFlagReturnsWindowAlphaNotStoredScore(t *testing.T) {
	tt := NewTranspositionTable(10)
	tt.Store(7, -500, 4, NullMove, ttAlpha)

	r := tt.Probe(7, 4, -20, 20)
	require.True(t, r.useScore)
	require.Equal(t, -20, r.score, "ALPHA hits resolve to the caller's alpha, not the stored score")
}

func TestTTProbeBetaFlagReturnsWindowBeta(t *testing.T) {
	tt := NewTranspositionTable(10)
	tt.Store(7, 500, 4, NullMove, ttBeta)

	r := tt.Probe(7, 4, -20, 20)
	require.True(t, r.useScore)
	require.Equal(t, 20, r.score)
}
