//////////////////////////////////////////////////////
// board.go
// board setup and lifecycle
// grounded on: original_source/ChessEngine/ChessEngine.cpp
// (initializeAllBoards)
//////////////////////////////////////////////////////

package engine

// NewGame returns a Board set up in the standard initial position,
// with all four castling rights granted and white to move. It is the
// only way a Board is created; it is also how a game is reset.
func NewGame() *Board {
	b := &Board{
		Castling:   Castling{true, true, true, true},
		SideToMove: White,
	}
	for sq := range b.Mailbox {
		b.Mailbox[sq] = NoPiece
	}

	place := func(sq Square, p Piece) {
		b.Pieces[p].set(sq)
		b.Mailbox[sq] = p
	}

	backRank := [8]Piece{WRook, WKnight, WBishop, WQueen, WKing, WBishop, WKnight, WRook}
	for file := 0; file < 8; file++ {
		place(Square(56+file), backRank[file])
		place(Square(8+file), BPawn)
		place(Square(48+file), WPawn)
		place(Square(file), backRank[file]+1) // black back rank mirrors white's, +1 selects the black index
	}

	b.OccWhite, b.OccBlack = 0, 0
	for p := Piece(0); p < NumPieces; p++ {
		if p.Color() == White {
			b.OccWhite |= b.Pieces[p]
		} else {
			b.OccBlack |= b.Pieces[p]
		}
	}
	b.OccAll = b.OccWhite | b.OccBlack

	b.Key = b.RecomputeKey()
	return b
}
