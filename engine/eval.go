//////////////////////////////////////////////////////
// eval.go
// static position evaluation, always from white's perspective
// grounded on: original_source/ChessEngine/ChessEngine.cpp
// (pieceEvaluation/calculateEvaluation) — material, piece-square
// tables and every positional bonus/penalty term are transcribed
// verbatim, including their exact magnitudes
//////////////////////////////////////////////////////

package engine

// pieceValue holds material worth indexed by Piece; the king entries
// are unused since king placement is scored through kingSquareTable
// and the pawn-shield terms instead of material.
var pieceValue = [NumPieces]int{100, -100, 300, -300, 300, -300, 500, -500, 900, -900, 0, 0}

var pawnSquareTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	100, 100, 100, 100, 100, 100, 100, 100,
	10, 10, 20, 80, 80, 20, 10, 10,
	5, 5, 10, 60, 60, 10, 5, 5,
	0, 0, 20, 50, 50, 20, 0, 0,
	5, -5, -10, 10, 10, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightSquareTable = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-40, 0, 10, 15, 15, 10, 0, -40,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-40, 5, 10, 15, 15, 10, 5, -40,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var kingSquareTable = [64]int{
	-80, -70, -70, -70, -70, -70, -70, -80,
	-60, -60, -60, -60, -60, -60, -60, -60,
	-40, -40, -40, -40, -40, -40, -40, -40,
	-20, -20, -20, -20, -20, -20, -20, -20,
	0, 0, 0, 0, 0, 0, 0, 0,
	20, 20, 20, 20, 20, 20, 20, 20,
	40, 40, 40, 40, 40, 40, 40, 40,
	60, 100, 40, 20, 20, 40, 100, 60,
}

var diagonalOffsets = [4]int{7, 9, -7, -9}

// Evaluate scores the position statically, positive favouring white and
// negative favouring black. Search negates this for the side to move.
func (b *Board) Evaluate() int {
	evaluation := 0
	heavyPieces := 0

	for sq := SquareA8; sq <= SquareH1; sq++ {
		switch {
		case b.Pieces[WPawn].Has(sq):
			evaluation += pieceValue[WPawn]
			evaluation += pawnSquareTable[sq]
			if sq-oneRank >= 0 && b.Pieces[WPawn].Has(sq-oneRank) {
				evaluation -= 25
			}

		case b.Pieces[BPawn].Has(sq):
			evaluation += pieceValue[BPawn]
			evaluation -= pawnSquareTable[SquareH1-sq]
			if sq-oneRank >= 0 && b.Pieces[BPawn].Has(sq-oneRank) {
				evaluation += 25
			}

		case b.Pieces[WKnight].Has(sq):
			heavyPieces++
			evaluation += pieceValue[WKnight]
			evaluation += knightSquareTable[sq]

		case b.Pieces[BKnight].Has(sq):
			heavyPieces++
			evaluation += pieceValue[BKnight]
			evaluation -= knightSquareTable[sq]

		case b.Pieces[WBishop].Has(sq) || b.Pieces[WQueen].Has(sq):
			if b.Pieces[WBishop].Has(sq) {
				evaluation += pieceValue[WBishop]
				heavyPieces++
			}
			if b.Pieces[WQueen].Has(sq) {
				evaluation += pieceValue[WQueen]
				heavyPieces++
			}
			evaluation += diagonalMobility(b, sq, b.OccWhite, b.OccBlack, 20, 5)

		case b.Pieces[BBishop].Has(sq) || b.Pieces[BQueen].Has(sq):
			if b.Pieces[BBishop].Has(sq) {
				evaluation += pieceValue[BBishop]
				heavyPieces++
			}
			if b.Pieces[BQueen].Has(sq) {
				evaluation += pieceValue[BQueen]
				heavyPieces++
			}
			evaluation -= diagonalMobility(b, sq, b.OccBlack, b.OccWhite, 20, 5)

		case b.Pieces[WRook].Has(sq) || b.Pieces[WQueen].Has(sq):
			if b.Pieces[WRook].Has(sq) {
				evaluation += pieceValue[WRook]
				heavyPieces++
			}
			if b.Pieces[WQueen].Has(sq) {
				evaluation += pieceValue[WQueen]
			}
			if sq == 56 {
				if b.OccWhite.Has(57) {
					evaluation -= 5
				}
				if b.OccWhite.Has(48) {
					evaluation -= 5
				}
			} else if sq == 63 {
				if b.OccWhite.Has(62) {
					evaluation -= 5
				}
				if b.OccWhite.Has(55) {
					evaluation -= 5
				}
			}
			evaluation += orthogonalMobility(b, sq, b.OccWhite, b.OccBlack, 20, 5)

		case b.Pieces[BRook].Has(sq) || b.Pieces[BQueen].Has(sq):
			if b.Pieces[BRook].Has(sq) {
				evaluation += pieceValue[BRook]
				heavyPieces++
			}
			if b.Pieces[BQueen].Has(sq) {
				evaluation += pieceValue[BQueen]
			}
			if sq == 0 {
				if b.OccWhite.Has(1) {
					evaluation += 5
				}
				if b.OccWhite.Has(8) {
					evaluation += 5
				}
			} else if sq == 7 {
				if b.OccWhite.Has(6) {
					evaluation += 5
				}
				if b.OccWhite.Has(15) {
					evaluation += 5
				}
			}
			evaluation -= orthogonalMobility(b, sq, b.OccBlack, b.OccWhite, 20, 5)

		case b.Pieces[WKing].Has(sq):
			if heavyPieces > 4 {
				evaluation += kingSquareTable[sq]
			}
			if b.Pieces[WPawn].Has(sq - oneRank) {
				evaluation += 50
			}
			if sq-oneRank-1 >= 0 && b.Pieces[WPawn].Has(sq-oneRank-1) {
				evaluation += 20
			}
			if b.Pieces[WPawn].Has(sq - oneRank + 1) {
				evaluation += 20
			}

		case b.Pieces[BKing].Has(sq):
			if heavyPieces > 4 {
				evaluation -= kingSquareTable[SquareH1-sq]
			}
			if sq+oneRank <= 63 && b.Pieces[BPawn].Has(sq+oneRank) {
				evaluation -= 50
			}
			if sq+oneRank-1 <= 63 && b.Pieces[BPawn].Has(sq+oneRank-1) {
				evaluation -= 20
			}
			if sq+oneRank+1 <= 63 && b.Pieces[BPawn].Has(sq+oneRank+1) {
				evaluation -= 20
			}
		}
	}

	// discourage early minor-piece-blocking queen/bishop/knight development
	if !b.Pieces[WQueen].Has(59) {
		if b.Pieces[WKnight].Has(57) {
			evaluation -= 25
		}
		if b.Pieces[WKnight].Has(62) {
			evaluation -= 25
		}
		if b.Pieces[WBishop].Has(58) {
			evaluation -= 25
		}
		if b.Pieces[WBishop].Has(61) {
			evaluation -= 25
		}
	}
	if !b.Pieces[BQueen].Has(3) {
		if b.Pieces[BKnight].Has(1) {
			evaluation += 25
		}
		if b.Pieces[BKnight].Has(6) {
			evaluation += 25
		}
		if b.Pieces[BBishop].Has(2) {
			evaluation += 25
		}
		if b.Pieces[BBishop].Has(5) {
			evaluation += 25
		}
	}

	// realized castling
	if b.Pieces[WKing].Has(62) {
		evaluation += 60
	} else if b.Pieces[WKing].Has(58) {
		evaluation += 40
	}
	if b.Pieces[BKing].Has(6) {
		evaluation -= 60
	} else if b.Pieces[BKing].Has(2) {
		evaluation -= 40
	}

	return evaluation
}

// diagonalMobility scores a bishop/queen's four diagonal neighbours:
// openBonus for an empty neighbour, attackBonus for one it could
// capture, nothing beyond the immediate neighbour (a cheap proxy for
// full ray mobility, matching the reference engine).
func diagonalMobility(b *Board, sq Square, own, opp Bitboard, openBonus, attackBonus int) int {
	total := 0
	for _, offset := range diagonalOffsets {
		to := int(sq) + offset
		if to < 0 || to > 63 {
			continue
		}
		if abs(Square(to).File()-sq.File()) != 1 || abs(Square(to).Rank()-sq.Rank()) != 1 {
			continue
		}
		switch {
		case opp.Has(Square(to)):
			total += attackBonus
		case !own.Has(Square(to)):
			total += openBonus
		}
	}
	return total
}

// orthogonalMobility scores a rook/queen's four orthogonal neighbours,
// the same proxy as diagonalMobility but along files and ranks.
func orthogonalMobility(b *Board, sq Square, own, opp Bitboard, openBonus, attackBonus int) int {
	total := 0
	candidates := [4]int{int(sq) - 1, int(sq) + 1, int(sq) - oneRank, int(sq) + oneRank}
	for i, to := range candidates {
		if to < 0 || to > 63 {
			continue
		}
		if i < 2 && Square(to).Rank() != sq.Rank() {
			continue
		}
		switch {
		case opp.Has(Square(to)):
			total += attackBonus
		case !own.Has(Square(to)):
			total += openBonus
		}
	}
	return total
}
