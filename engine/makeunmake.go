//////////////////////////////////////////////////////
// makeunmake.go
// apply/revert a move with full incremental update of bitboards,
// mailbox, occupancy, Zobrist key, castling rights and per-ply undo
// state
// grounded on: original_source/ChessEngine/ChessEngine.cpp
// (makeMove/unmakeMove)
//////////////////////////////////////////////////////

package engine

// Make applies m as played by side, recording per-ply undo scratch at
// ply so that Unmake(m, side, ply) is its exact inverse.
func (b *Board) Make(m Move, side Color, ply int) {
	u := &b.undoStack[ply]
	u.castling = b.Castling
	u.captured = NoPiece

	from, to, flag := m.From(), m.To(), m.Flag()
	opp := side.Opposite()
	ownOcc := b.occupancy(side)
	oppOcc := b.occupancy(opp)
	pawnIdx := pieceOfColor(side, WPawn)
	moverIdx := b.Mailbox[from]

	if flag == Capture || flag >= KnightPromoCapture {
		u.captured = b.Mailbox[to]
	}

	switch {
	case flag == Quiet || flag == DoublePawnPush:
		b.relocate(moverIdx, from, to, ownOcc)

	case flag == Capture:
		b.removePiece(u.captured, to, oppOcc)
		b.relocate(moverIdx, from, to, ownOcc)
		b.Key ^= zobPiece[u.captured][to]

	case flag.IsPromotion() && !flag.IsCapture():
		promo := pieceOfColor(side, flag.PromotionPiece())
		b.clearSquare(pawnIdx, from, ownOcc)
		b.placePiece(promo, to, ownOcc)
		b.Key ^= zobPiece[pawnIdx][from] ^ zobPiece[promo][to]

	case flag.IsPromotion() && flag.IsCapture():
		promo := pieceOfColor(side, flag.PromotionPiece())
		b.removePiece(u.captured, to, oppOcc)
		b.clearSquare(pawnIdx, from, ownOcc)
		b.placePiece(promo, to, ownOcc)
		b.Key ^= zobPiece[pawnIdx][from] ^ zobPiece[promo][to] ^ zobPiece[u.captured][to]

	case flag == EnPassantCapture:
		capturedSq := Square(int(to) + forwardDelta(opp))
		u.captured = pieceOfColor(opp, WPawn)
		b.clearSquare(pawnIdx, from, ownOcc)
		b.clearSquare(u.captured, capturedSq, oppOcc)
		b.placePiece(pawnIdx, to, ownOcc)
		b.Key ^= zobPiece[pawnIdx][from] ^ zobPiece[u.captured][capturedSq] ^ zobPiece[pawnIdx][to]

	case flag == KingSideCastle:
		kingIdx := pieceOfColor(side, WKing)
		rookIdx := pieceOfColor(side, WRook)
		rookFrom, rookTo := Square(int(from)+3), Square(int(to)-1)
		b.clearSquare(kingIdx, from, ownOcc)
		b.clearSquare(rookIdx, rookFrom, ownOcc)
		b.placePiece(kingIdx, to, ownOcc)
		b.placePiece(rookIdx, rookTo, ownOcc)
		b.Key ^= zobPiece[kingIdx][from] ^ zobPiece[rookIdx][rookFrom] ^ zobPiece[kingIdx][to] ^ zobPiece[rookIdx][rookTo]

	case flag == QueenSideCastle:
		kingIdx := pieceOfColor(side, WKing)
		rookIdx := pieceOfColor(side, WRook)
		rookFrom, rookTo := Square(int(from)-4), Square(int(to)+1)
		b.clearSquare(kingIdx, from, ownOcc)
		b.clearSquare(rookIdx, rookFrom, ownOcc)
		b.placePiece(kingIdx, to, ownOcc)
		b.placePiece(rookIdx, rookTo, ownOcc)
		b.Key ^= zobPiece[kingIdx][from] ^ zobPiece[rookIdx][rookFrom] ^ zobPiece[kingIdx][to] ^ zobPiece[rookIdx][rookTo]
	}

	hist := b.history(side)
	*hist = append(*hist, m)

	b.updateCastlingRights(from, to)
	b.Key ^= zobSide
}

// Unmake reverts the move made by side at ply, restoring castling
// rights and captured material from the per-ply undo scratch Make
// recorded.
func (b *Board) Unmake(m Move, side Color, ply int) {
	u := &b.undoStack[ply]

	from, to, flag := m.To(), m.From(), m.Flag() // swapped: we are moving the piece back
	opp := side.Opposite()
	ownOcc := b.occupancy(side)
	oppOcc := b.occupancy(opp)
	pawnIdx := pieceOfColor(side, WPawn)
	moverIdx := b.Mailbox[from]

	switch {
	case flag == Quiet || flag == DoublePawnPush:
		b.relocate(moverIdx, from, to, ownOcc)

	case flag == Capture:
		b.clearSquare(moverIdx, from, ownOcc)
		b.placePiece(moverIdx, to, ownOcc)
		b.placePiece(u.captured, from, oppOcc)
		b.Key ^= zobPiece[moverIdx][from] ^ zobPiece[u.captured][from] ^ zobPiece[moverIdx][to]

	case flag.IsPromotion() && !flag.IsCapture():
		promo := moverIdx
		b.clearSquare(promo, from, ownOcc)
		b.placePiece(pawnIdx, to, ownOcc)
		b.Key ^= zobPiece[promo][from] ^ zobPiece[pawnIdx][to]

	case flag.IsPromotion() && flag.IsCapture():
		promo := moverIdx
		b.clearSquare(promo, from, ownOcc)
		b.placePiece(u.captured, from, oppOcc)
		b.placePiece(pawnIdx, to, ownOcc)
		b.Key ^= zobPiece[promo][from] ^ zobPiece[u.captured][from] ^ zobPiece[pawnIdx][to]

	case flag == EnPassantCapture:
		capturedSq := Square(int(m.To()) + forwardDelta(opp))
		b.clearSquare(pawnIdx, from, ownOcc)
		b.placePiece(u.captured, capturedSq, oppOcc)
		b.placePiece(pawnIdx, to, ownOcc)
		b.Key ^= zobPiece[pawnIdx][from] ^ zobPiece[u.captured][capturedSq] ^ zobPiece[pawnIdx][to]

	case flag == KingSideCastle:
		kingIdx := moverIdx
		rookIdx := pieceOfColor(side, WRook)
		rookFrom, rookTo := Square(int(from)-1), Square(int(to)+3)
		b.clearSquare(kingIdx, from, ownOcc)
		b.clearSquare(rookIdx, rookFrom, ownOcc)
		b.placePiece(kingIdx, to, ownOcc)
		b.placePiece(rookIdx, rookTo, ownOcc)
		b.Key ^= zobPiece[kingIdx][from] ^ zobPiece[rookIdx][rookFrom] ^ zobPiece[kingIdx][to] ^ zobPiece[rookIdx][rookTo]

	case flag == QueenSideCastle:
		kingIdx := moverIdx
		rookIdx := pieceOfColor(side, WRook)
		rookFrom, rookTo := Square(int(from)+1), Square(int(to)-4)
		b.clearSquare(kingIdx, from, ownOcc)
		b.clearSquare(rookIdx, rookFrom, ownOcc)
		b.placePiece(kingIdx, to, ownOcc)
		b.placePiece(rookIdx, rookTo, ownOcc)
		b.Key ^= zobPiece[kingIdx][from] ^ zobPiece[rookIdx][rookFrom] ^ zobPiece[kingIdx][to] ^ zobPiece[rookIdx][rookTo]
	}

	hist := b.history(side)
	*hist = (*hist)[:len(*hist)-1]

	b.Castling = u.castling
	b.Key ^= zobSide
}

// forwardDelta returns the square-index delta of one forward step for c
// (negative for white, since lower indices are higher ranks).
func forwardDelta(c Color) int {
	if c == White {
		return -oneRank
	}
	return oneRank
}

// relocate moves a piece from one square to another without touching
// any captured piece, updating bitboards, mailbox, occupancy and key.
func (b *Board) relocate(p Piece, from, to Square, occ *Bitboard) {
	b.clearSquare(p, from, occ)
	b.placePiece(p, to, occ)
	b.Key ^= zobPiece[p][from] ^ zobPiece[p][to]
}

func (b *Board) clearSquare(p Piece, sq Square, occ *Bitboard) {
	b.Pieces[p].clear(sq)
	occ.clear(sq)
	b.OccAll.clear(sq)
	b.Mailbox[sq] = NoPiece
}

func (b *Board) placePiece(p Piece, sq Square, occ *Bitboard) {
	b.Pieces[p].set(sq)
	occ.set(sq)
	b.OccAll.set(sq)
	b.Mailbox[sq] = p
}

func (b *Board) removePiece(p Piece, sq Square, occ *Bitboard) {
	b.Pieces[p].clear(sq)
	occ.clear(sq)
	b.OccAll.clear(sq)
}

// updateCastlingRights drops rights whenever a king or rook square is
// touched, whether by the mover leaving it or by a capture landing on
// it — one rule covers king moves, rook moves and rook captures alike.
func (b *Board) updateCastlingRights(from, to Square) {
	touches := func(sq Square) bool { return from == sq || to == sq }
	if touches(60) {
		b.Castling.WhiteOO, b.Castling.WhiteOOO = false, false
	}
	if touches(4) {
		b.Castling.BlackOO, b.Castling.BlackOOO = false, false
	}
	if touches(56) {
		b.Castling.WhiteOOO = false
	}
	if touches(63) {
		b.Castling.WhiteOO = false
	}
	if touches(0) {
		b.Castling.BlackOOO = false
	}
	if touches(7) {
		b.Castling.BlackOO = false
	}
}
