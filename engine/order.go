//////////////////////////////////////////////////////
// order.go
// MVV/LVA move ordering
// grounded on: original_source/ChessEngine/ChessEngine.cpp
// (scoreMove/sortMoves) — including the quirk that en passant captures
// score as quiet moves, since their flag falls outside both the
// Capture and the >=KnightPromoCapture test
//////////////////////////////////////////////////////

package engine

// pieceValueMVV ranks victims/attackers by raw worth for MVV/LVA,
// unsigned and king-inclusive unlike pieceValue.
var pieceValueMVV = [NumPieces]int{100, 100, 300, 300, 300, 300, 500, 500, 900, 900, 10000, 10000}

// ScoreMove ranks m for search ordering: captures by victim value times
// ten minus attacker value (MVV/LVA), promotions and castles by fixed
// constants, everything else zero.
func (b *Board) ScoreMove(m Move) int {
	flag := m.Flag()

	switch {
	case flag == Capture || flag >= KnightPromoCapture:
		attacker := pieceValueMVV[b.Mailbox[m.From()]]
		victim := pieceValueMVV[b.Mailbox[m.To()]]
		return victim*10 - attacker

	case flag == KnightPromotion, flag == BishopPromotion:
		return 3000
	case flag == RookPromotion:
		return 5000
	case flag == QueenPromotion:
		return 9000
	case flag == KingSideCastle:
		return 2000
	case flag == QueenSideCastle:
		return 1500
	}

	return 0
}

// SortMoves orders moves[:n] best-first by ScoreMove via insertion
// sort, which is cheap at these sizes and stable enough for move
// ordering to be deterministic.
func (b *Board) SortMoves(moves *[MaxMoves]Move, n int) {
	for i := 1; i < n; i++ {
		key := moves[i]
		keyScore := b.ScoreMove(key)
		j := i - 1
		for j >= 0 && b.ScoreMove(moves[j]) < keyScore {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = key
	}
}
