//////////////////////////////////////////////////////
// movegen.go
// pseudo-legal move generation for the side to move
// grounded on: original_source/ChessEngine/ChessEngine.cpp
// (getPseudoLegalMoves) — en passant detection, castling conditions and
// the king-move attacked-square filter are all preserved verbatim
//////////////////////////////////////////////////////

package engine

// GeneratePseudoLegal enumerates every pseudo-legal move for side into
// out, returning the count written. Every rule is enforced except "does
// the mover leave their own king in check?" — callers filter that via
// Make + IsKingInCheck — with one exception: king moves are filtered
// through IsSquareAttacked at generation time, so they come out
// almost-legal rather than merely pseudo-legal. The buffer is never
// overrun: writes past MaxMoves are silently dropped.
func (b *Board) GeneratePseudoLegal(side Color, out *[MaxMoves]Move) int {
	n := 0
	add := func(m Move) {
		if n < MaxMoves {
			out[n] = m
			n++
		}
	}

	own := *b.occupancy(side)
	opp := *b.occupancy(side.Opposite())

	for sq := SquareA8; sq <= SquareH1; sq++ {
		switch {
		case b.Pieces[pieceOfColor(side, WPawn)].Has(sq):
			b.genPawnMoves(side, sq, opp, add)
		case b.Pieces[pieceOfColor(side, WKnight)].Has(sq):
			for _, offset := range knightOffsets {
				to := int(sq) + offset
				if to < 0 || to > 63 {
					continue
				}
				fileDiff := abs(to%8 - int(sq)%8)
				rankDiff := abs(to/8 - int(sq)/8)
				if !((fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)) {
					continue
				}
				if !b.OccAll.Has(Square(to)) {
					add(MakeMove(sq, Square(to), Quiet))
				} else if opp.Has(Square(to)) {
					add(MakeMove(sq, Square(to), Capture))
				}
			}
		case b.Pieces[pieceOfColor(side, WBishop)].Has(sq):
			b.genRay(sq, bishopRayOffsets[:], true, own, opp, add)
		case b.Pieces[pieceOfColor(side, WRook)].Has(sq):
			b.genRookRays(sq, own, opp, add)
		case b.Pieces[pieceOfColor(side, WQueen)].Has(sq):
			b.genRay(sq, bishopRayOffsets[:], true, own, opp, add)
			b.genRookRays(sq, own, opp, add)
		case b.Pieces[pieceOfColor(side, WKing)].Has(sq):
			b.genKingMoves(side, sq, own, opp, add)
		}
	}

	if n > MaxMoves {
		n = MaxMoves
	}
	return n
}

func (b *Board) genPawnMoves(side Color, sq Square, opp Bitboard, add func(Move)) {
	forward := -oneRank
	startRank, promoRank, epRank := 2, 7, 5
	if side == Black {
		forward = oneRank
		startRank, promoRank, epRank = 7, 2, 4
	}

	push := Square(int(sq) + forward)
	pushEmpty := sq.Rank() != promoRank && !b.OccAll.Has(push)

	if sq.Rank() != promoRank {
		if pushEmpty {
			add(MakeMove(sq, push, Quiet))
		}
		if sq.Rank() == startRank && !b.OccAll.Has(push) && !b.OccAll.Has(Square(int(sq)+2*forward)) {
			add(MakeMove(sq, Square(int(sq)+2*forward), DoublePawnPush))
		}
	}

	captureLeft := Square(int(sq) + forward - 1)
	captureRight := Square(int(sq) + forward + 1)
	hasLeft := sq.File() > 1
	hasRight := sq.File() < 8

	if sq.Rank() != promoRank {
		if hasLeft && opp.Has(captureLeft) {
			add(MakeMove(sq, captureLeft, Capture))
		}
		if hasRight && opp.Has(captureRight) {
			add(MakeMove(sq, captureRight, Capture))
		}

		// en passant: only immediately after the opponent's last move was
		// a double pawn push landing adjacent to this pawn
		lastOpp := b.lastMove(side.Opposite())
		if lastOpp != NullMove && lastOpp.Flag() == DoublePawnPush && sq.Rank() == epRank {
			if hasLeft && lastOpp.To() == Square(int(sq)-1) {
				add(MakeMove(sq, captureLeft, EnPassantCapture))
			}
			if hasRight && lastOpp.To() == Square(int(sq)+1) {
				add(MakeMove(sq, captureRight, EnPassantCapture))
			}
		}
		return
	}

	// promotion rank: one logical push/capture expands into four
	promoFlags := [4]MoveFlag{KnightPromotion, BishopPromotion, RookPromotion, QueenPromotion}
	promoCaptureFlags := [4]MoveFlag{KnightPromoCapture, BishopPromoCapture, RookPromoCapture, QueenPromoCapture}

	if !b.OccAll.Has(push) {
		for _, flag := range promoFlags {
			add(MakeMove(sq, push, flag))
		}
	}
	if hasLeft && opp.Has(captureLeft) {
		for _, flag := range promoCaptureFlags {
			add(MakeMove(sq, captureLeft, flag))
		}
	}
	if hasRight && opp.Has(captureRight) {
		for _, flag := range promoCaptureFlags {
			add(MakeMove(sq, captureRight, flag))
		}
	}
}

// lastMove returns the most recent move played by c, or NullMove.
func (b *Board) lastMove(c Color) Move {
	h := *b.history(c)
	if len(h) == 0 {
		return NullMove
	}
	return h[len(h)-1]
}

// genRay walks sliding-piece rays; diagonal==true applies the
// file/rank-delta wrap guard used by bishops and the queen's diagonals.
func (b *Board) genRay(sq Square, offsets []int, diagonal bool, own, opp Bitboard, add func(Move)) {
	for _, offset := range offsets {
		for j := 1; j <= 7; j++ {
			to := int(sq) + offset*j
			if to > 63 || to < 0 {
				break
			}
			if diagonal {
				if abs(Square(to).File()-sq.File()) != j || abs(Square(to).Rank()-sq.Rank()) != j {
					break
				}
			}
			if !b.OccAll.Has(Square(to)) {
				add(MakeMove(sq, Square(to), Quiet))
			} else if opp.Has(Square(to)) {
				add(MakeMove(sq, Square(to), Capture))
				break
			} else {
				break // own piece blocks the ray
			}
		}
	}
}

// genRookRays walks the four orthogonal rays; horizontal rays carry a
// same-rank guard in place of a wrap-delta check.
func (b *Board) genRookRays(sq Square, own, opp Bitboard, add func(Move)) {
	for _, dir := range [2]int{-1, 1} {
		for j := 1; j <= 7; j++ {
			to := int(sq) + dir*j
			if to < 0 || to > 63 || Square(to).Rank() != sq.Rank() {
				break
			}
			if !b.OccAll.Has(Square(to)) {
				add(MakeMove(sq, Square(to), Quiet))
			} else if opp.Has(Square(to)) {
				add(MakeMove(sq, Square(to), Capture))
				break
			} else {
				break
			}
		}
	}
	for _, offset := range rookRayOffsets {
		for j := 1; j <= 7; j++ {
			to := int(sq) + offset*j
			if to < 0 || to > 63 {
				break
			}
			if !b.OccAll.Has(Square(to)) {
				add(MakeMove(sq, Square(to), Quiet))
			} else if opp.Has(Square(to)) {
				add(MakeMove(sq, Square(to), Capture))
				break
			} else {
				break
			}
		}
	}
}

// genKingMoves generates the king's eight neighbour moves, filtering
// any destination attacked by the opponent, plus castling. This is the
// one piece whose moves are checked against IsSquareAttacked at
// generation time rather than left to post-hoc king-in-check filtering.
func (b *Board) genKingMoves(side Color, sq Square, own, opp Bitboard, add func(Move)) {
	opponent := side.Opposite()
	for _, offset := range kingOffsets {
		to := int(sq) + offset
		if to < 0 || to > 63 {
			continue
		}
		if abs(Square(to).File()-sq.File()) > 1 || abs(Square(to).Rank()-sq.Rank()) > 1 {
			continue
		}
		if b.IsSquareAttacked(Square(to), opponent) {
			continue
		}
		if !b.OccAll.Has(Square(to)) {
			add(MakeMove(sq, Square(to), Quiet))
		} else if opp.Has(Square(to)) {
			add(MakeMove(sq, Square(to), Capture))
		}
	}

	homeKingSquare := Square(60) // e1
	rookKingSide, rookQueenSide := Square(63), Square(56)
	kingSideRight, queenSideRight := b.Castling.WhiteOO, b.Castling.WhiteOOO
	if side == Black {
		homeKingSquare = Square(4) // e8
		rookKingSide, rookQueenSide = Square(7), Square(0)
		kingSideRight, queenSideRight = b.Castling.BlackOO, b.Castling.BlackOOO
	}
	if sq != homeKingSquare {
		return
	}

	if kingSideRight && b.Pieces[pieceOfColor(side, WRook)].Has(rookKingSide) &&
		!b.OccAll.Has(Square(int(sq)+1)) && !b.OccAll.Has(Square(int(sq)+2)) {
		if !b.IsSquareAttacked(sq, opponent) && !b.IsSquareAttacked(Square(int(sq)+1), opponent) && !b.IsSquareAttacked(Square(int(sq)+2), opponent) {
			add(MakeMove(sq, Square(int(sq)+2), KingSideCastle))
		}
	}
	if queenSideRight && b.Pieces[pieceOfColor(side, WRook)].Has(rookQueenSide) &&
		!b.OccAll.Has(Square(int(sq)-1)) && !b.OccAll.Has(Square(int(sq)-2)) && !b.OccAll.Has(Square(int(sq)-3)) {
		if !b.IsSquareAttacked(sq, opponent) && !b.IsSquareAttacked(Square(int(sq)-1), opponent) && !b.IsSquareAttacked(Square(int(sq)-2), opponent) {
			add(MakeMove(sq, Square(int(sq)-2), QueenSideCastle))
		}
	}
}
