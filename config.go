//////////////////////////////////////////////////////
// config.go
// optional TOML config file, overriding compiled-in defaults
// grounded on: Mgrdich/TermChess's go.mod (other_examples/manifests),
// which depends on github.com/BurntSushi/toml for its own config
//////////////////////////////////////////////////////

package main

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/apantelakis/ChessEngine/engine"
)

// config mirrors engine.toml. Every field is optional; a missing file
// or a missing field falls back to the spec's compiled-in defaults.
type config struct {
	Search struct {
		Depth int `toml:"depth"`
	} `toml:"search"`
	TT struct {
		SizeBits int `toml:"size_bits"`
	} `toml:"tt"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// defaultConfig matches spec.md §4.6/§4.7's compiled-in constants.
func defaultConfig() config {
	var c config
	c.Search.Depth = engine.SearchDepth
	c.TT.SizeBits = 20
	c.Log.Level = "notice"
	return c
}

// loadConfig reads path and overlays it on the defaults. A missing file
// is not an error — it just means "use defaults".
func loadConfig(path string) config {
	c := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		return c
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		uciLog.Warningf("ignoring malformed config %s: %v", path, err)
		return defaultConfig()
	}
	return c
}
