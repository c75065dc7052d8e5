//////////////////////////////////////////////////////
// logging.go
// stderr-only structured logging setup
// grounded on: frankkopp/FrankyGo's per-component *logging.Logger field
// (other_examples/...frankkopp-FrankyGo__internal-attacks-attacks.go),
// extended here to a shared leveled/formatted backend per op/go-logging's
// own documented API
//////////////////////////////////////////////////////

package main

import (
	"os"

	"github.com/op/go-logging"
)

// engineLog and uciLog are the two named loggers the ambient stack
// calls for: one for search/board internals, one for the protocol
// layer. Both write to stderr only — stdout is reserved for UCI
// protocol lines.
var (
	engineLog = logging.MustGetLogger("engine")
	uciLog    = logging.MustGetLogger("uci")
)

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

// configureLogging installs a single stderr backend at level, shared by
// every named logger. Called once at startup after the config file (if
// any) has been read.
func configureLogging(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logFormat)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.NOTICE
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")

	logging.SetBackend(leveled)
}
