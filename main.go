package main

import (
	"blockdrop/client"
	"blockdrop/config"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/eiannone/keyboard"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[H\033[2J\033[?25h"
)

func main() {
	cfgPath := flag.String("config", "", "path to a JSON config file")
	remote := flag.Bool("online", false, "play on the engine server")
	addr := flag.String("addr", "", "engine server address, overrides the config")
	noGhost := flag.Bool("noghost", false, "hide the landing ghost")
	seed := flag.Uint64("seed", 0, "piece generator seed, overrides the config")
	logFile := flag.String("log", "", "log file, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}
	if *addr != "" {
		cfg.Address = *addr
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("unable to open log: %v", err)
	}
	defer closeLog()

	c, err := client.New(os.Stdout, logger, &client.Options{
		NoGhost: *noGhost,
		Remote:  *remote,
		Config:  cfg,
	})
	if err != nil {
		log.Fatalf("unable to start client: %v", err)
	}
	defer func() {
		if err := keyboard.Close(); err != nil {
			logger.Error("unable to close keyboard", slog.String("error", err.Error()))
		}
	}()

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)
	c.Start()
}

// newLogger writes JSON logs to the configured file. The screen belongs
// to the game, so without a file logs are discarded.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = io.Discard
	closer := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = func() { f.Close() } //nolint: errcheck
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}
