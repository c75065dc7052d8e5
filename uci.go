//////////////////////////////////////////////////////
// uci.go
// UCI protocol subset: uci, isready, ucinewgame, position startpos
// [moves ...], go, quit, plus a "d" debug print
// grounded on: original_source/ChessEngine/ChessEngine.cpp (uciLoop),
// command-loop idiom from chessvariantengine-lib/interface.go
// (bufio.Scanner over os.Stdin, one token-dispatch per line)
//////////////////////////////////////////////////////

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/apantelakis/ChessEngine/engine"
)

// runUCI drives the protocol loop until "quit" or EOF.
func runUCI(eng *engine.Engine) {
	scan := bufio.NewScanner(os.Stdin)

	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		uciLog.Debugf("< %s", line)

		fields := strings.Fields(line)
		switch fields[0] {
		case "uci":
			fmt.Println("id name ChessEngineTP")
			fmt.Println("id author ThanasisPantelakis")
			fmt.Println("uciok")

		case "isready":
			fmt.Println("readyok")

		case "ucinewgame":
			eng.Reset()

		case "position":
			handlePosition(eng, fields[1:])

		case "go":
			handleGo(eng)

		case "d", "print":
			printBoard(eng.Board)

		case "quit":
			return

		default:
			uciLog.Debugf("ignoring unrecognized command %q", fields[0])
		}
	}
}

// handlePosition implements "position startpos [moves ...]"; any other
// position type (arbitrary FEN) is out of scope and ignored, matching
// spec.md's Non-goals.
func handlePosition(eng *engine.Engine, args []string) {
	if len(args) == 0 || args[0] != "startpos" {
		return
	}
	eng.Reset()

	if len(args) > 1 && args[1] == "moves" {
		for _, mv := range args[2:] {
			if !eng.ApplyUCIMove(mv) {
				uciLog.Warningf("illegal or unparseable move %q, stopping move list", mv)
				return
			}
		}
	}
}

// handleGo runs a fixed-depth search and prints "bestmove".
func handleGo(eng *engine.Engine) {
	result := eng.SearchBestMove()
	if result.Move == engine.NullMove {
		fmt.Println("bestmove (none)")
		return
	}
	fmt.Println("bestmove " + result.Move.UCI())
}
