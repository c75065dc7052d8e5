//////////////////////////////////////////////////////
// zobrist.go
// incremental position hashing
// grounded on: original_source/ChessEngine/ChessEngine.cpp
// (initializeZobrist/computePositionKey — fixed-seed PRNG so identical
// positions hash identically across runs of the engine)
//////////////////////////////////////////////////////

package engine

import "math/rand"

// zobristSeed is fixed so that the same position always produces the
// same key across runs, which the transposition table depends on.
const zobristSeed = 123456789

var (
	zobPiece [NumPieces][64]uint64
	zobSide  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for p := 0; p < NumPieces; p++ {
		for sq := 0; sq < 64; sq++ {
			zobPiece[p][sq] = rng.Uint64()
		}
	}
	zobSide = rng.Uint64()
}

// RecomputeKey derives the Zobrist key from scratch off piece placement
// and side to move. Note this deliberately omits castling-rights and
// en-passant terms, matching the reference engine (see DESIGN.md); two
// positions differing only in those attributes collide in the table.
func (b *Board) RecomputeKey() uint64 {
	var key uint64
	for p := Piece(0); p < NumPieces; p++ {
		bb := b.Pieces[p]
		for sq := SquareA8; sq <= SquareH1; sq++ {
			if bb.Has(sq) {
				key ^= zobPiece[p][sq]
			}
		}
	}
	if b.SideToMove == Black {
		key ^= zobSide
	}
	return key
}
