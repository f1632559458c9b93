package chesscore

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config.go is the CLI's TOML configuration file support (SPEC_FULL.md
// section 4.11), grounded on FrankyGo's go.mod direct dependency on
// github.com/BurntSushi/toml. Nothing in the core itself reads a config
// file; this exists for cmd/perft's benefit.

// Config holds the settings the perft CLI driver can load from a TOML
// file instead of (or alongside) flags.
type Config struct {
	FEN     string `toml:"fen"`
	Depth   int    `toml:"depth"`
	Workers int    `toml:"workers"`

	CPUProfile string `toml:"cpu_profile"`
	MemProfile string `toml:"mem_profile"`
	Verbose    bool   `toml:"verbose"`
}

// DefaultConfig returns the settings used when no config file is supplied.
func DefaultConfig() Config {
	return Config{
		FEN:     startingFEN,
		Depth:   6,
		Workers: 1,
	}
}

// LoadConfig decodes a TOML file at path into a Config seeded with
// DefaultConfig's values, so a partial file only overrides what it names.
// An empty path returns the built-in defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("chesscore: loading config %q: %w", path, err)
	}
	return cfg, nil
}
