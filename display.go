//////////////////////////////////////////////////////
// display.go
// board pretty-printing for the "d"/"print" debug command and the
// self-play loop
// grounded on: treepeck-chego/cli/cli.go (FormatBitboard/FormatPosition
// — same per-rank loop, unicode glyph table and file-letter footer),
// adapted to this engine's a8=0 square indexing
//////////////////////////////////////////////////////

package main

import (
	"fmt"
	"strings"

	"github.com/apantelakis/ChessEngine/engine"
)

// formatBoard renders b's mailbox as an 8x8 grid with a file-letter
// footer, rank 8 first since that is square index 0 in this engine.
func formatBoard(b *engine.Board) string {
	var sb strings.Builder

	for rank := 0; rank < 8; rank++ {
		sb.WriteString(fmt.Sprintf("%d  ", 8-rank))
		for file := 0; file < 8; file++ {
			sq := engine.Square(rank*8 + file)
			sb.WriteRune(b.PieceAt(sq).Symbol())
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	side := "white"
	if b.SideToMove == engine.Black {
		side = "black"
	}
	sb.WriteString("side to move: " + side + "\n")

	return sb.String()
}

// printBoard writes formatBoard's output to stdout.
func printBoard(b *engine.Board) {
	fmt.Print(formatBoard(b))
}
