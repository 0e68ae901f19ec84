// Package config holds the settings shared by the client and the server.
package config

import (
	"blockdrop/tetris"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
)

// Config holds every configurable parameter.
type Config struct {
	// Board
	Width  int `json:"width"`  // Columns of the playfield
	Height int `json:"height"` // Rows of the playfield

	// Pieces
	Generator string `json:"generator"` // "sevenbag" or "random"
	Seed      uint64 `json:"seed"`      // 0 picks a random seed per game
	Preview   int    `json:"preview"`   // Upcoming pieces shown

	// Network
	Address     string `json:"address"`      // gRPC listen/dial address
	HTTPAddress string `json:"http_address"` // Websocket watch feed, empty disables it

	// Logging
	LogLevel string `json:"log_level"` // debug, info, warn or error
	LogFile  string `json:"log_file"`  // Client log destination, empty discards

	CellSize float64 `json:"cell_size"` // Pixel size of a cell for pointer input
}

func Default() Config {
	return Config{
		Width:       tetris.DefaultWidth,
		Height:      tetris.DefaultHeight,
		Generator:   tetris.GeneratorSevenBag,
		Preview:     tetris.DefaultPreview,
		Address:     "localhost:9000",
		HTTPAddress: ":9001",
		LogLevel:    "info",
		CellSize:    8,
	}
}

// Load reads a JSON file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Width < 4 || c.Height < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Width, c.Height))
	}
	if c.Preview < 0 {
		errs = append(errs, fmt.Errorf("preview can't be negative, got %d", c.Preview))
	}
	switch c.Generator {
	case tetris.GeneratorSevenBag, tetris.GeneratorRandom:
	default:
		errs = append(errs, fmt.Errorf("unknown generator %q", c.Generator))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %v", c.CellSize))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// GameOptions turns the config into options for a new game. A zero
// seed is replaced with a random one, which is reported in Options.Seed.
func (c Config) GameOptions() (tetris.Options, error) {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	gen, err := tetris.NewGenerator(c.Generator, seed)
	if err != nil {
		return tetris.Options{}, err
	}
	return tetris.Options{
		Width:     c.Width,
		Height:    c.Height,
		Generator: gen,
		Seed:      seed,
		Preview:   c.Preview,
		Layout:    tetris.Layout{CellSize: c.CellSize},
	}, nil
}
