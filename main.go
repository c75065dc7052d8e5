//////////////////////////////////////////////////////
// main.go
// entry point: wires config + logging, then either drives the UCI loop
// or runs the self-play demo
// grounded on: original_source/ChessEngine/ChessEngine.cpp (main,
// uciLoop, gameLoop)
//////////////////////////////////////////////////////

package main

import (
	"flag"
	"fmt"

	"github.com/apantelakis/ChessEngine/engine"
)

func main() {
	configPath := flag.String("config", "engine.toml", "path to an optional TOML config file")
	logLevel := flag.String("loglevel", "", "override the config file's log level (error|warning|notice|info|debug)")
	selfplay := flag.Bool("selfplay", false, "play a game against itself instead of speaking UCI")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	configureLogging(cfg.Log.Level)

	eng := engine.NewEngineWithConfig(cfg.Search.Depth, cfg.TT.SizeBits)
	engineLog.Noticef("engine ready: depth=%d tt_bits=%d", cfg.Search.Depth, cfg.TT.SizeBits)

	if *selfplay {
		runSelfPlay(eng)
		return
	}
	runUCI(eng)
}

// runSelfPlay repeatedly searches and plays the recommended move for
// the side to move, printing the board and the signed evaluation after
// each ply, until neither side has a legal reply.
// grounded on: original_source/ChessEngine/ChessEngine.cpp (gameLoop)
func runSelfPlay(eng *engine.Engine) {
	printBoard(eng.Board)

	for {
		if isGameOver(eng) {
			return
		}

		side := eng.Board.SideToMove
		result := eng.SearchBestMove()
		if result.Move == engine.NullMove {
			return
		}

		eng.Board.Make(result.Move, side, 0)
		eng.Board.SideToMove = side.Opposite()

		printBoard(eng.Board)
		score := result.Score
		if side == engine.Black {
			score = -score
		}
		fmt.Printf("evaluation: %.1f\n", float64(score)/100.0)
	}
}

// isGameOver reports whether the side to move has no legal reply,
// mirroring the reference engine's isGameOver check (generate, make
// each pseudo-legal move, stop at the first that leaves the mover's own
// king safe).
func isGameOver(eng *engine.Engine) bool {
	b := eng.Board
	side := b.SideToMove

	var moves [engine.MaxMoves]engine.Move
	n := b.GeneratePseudoLegal(side, &moves)

	for i := 0; i < n; i++ {
		b.Make(moves[i], side, 0)
		inCheck := b.IsKingInCheck(side)
		b.Unmake(moves[i], side, 0)
		if !inCheck {
			return false
		}
	}

	if b.IsKingInCheck(side) {
		fmt.Println("checkmate")
	} else {
		fmt.Println("stalemate")
	}
	return true
}
