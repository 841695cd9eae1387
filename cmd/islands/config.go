package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/islands/labeler"
)

// Environment variables read at startup, optionally from a .env file.
const (
	envLogLevel  = "ISLANDS_LOG_LEVEL"
	envTraversal = "ISLANDS_TRAVERSAL"
)

// config holds everything run needs.
type config struct {
	File            string
	Traversal       labeler.Traversal
	SeparateVisited bool
	PNG             string
	CellSize        int
	Plain           bool
	LogLevel        log.Level
}

// loadEnv loads .env from the working directory when present.
// A missing file is not an error; env vars may be set directly.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

// parseConfig reads flags from args; env supplies the defaults that flags override.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	cfg := config{CellSize: 16, LogLevel: log.InfoLevel}

	if lvl := strings.TrimSpace(getenv(envLogLevel)); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envLogLevel, err)
		}
		cfg.LogLevel = parsed
	}

	fs := flag.NewFlagSet("islands", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var traversal string
	fs.StringVar(&cfg.File, "file", "", "grid file (.txt, .yaml, .yml, .json); default is the built-in sample map")
	fs.StringVar(&traversal, "traversal", getenv(envTraversal), "flood-fill walk: dfs, bfs or recursive")
	fs.BoolVar(&cfg.SeparateVisited, "separate-visited", false, "keep visited flags apart from labels")
	fs.StringVar(&cfg.PNG, "png", "", "also write the labeled map to this PNG file")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "PNG cell size in pixels")
	fs.BoolVar(&cfg.Plain, "plain", false, "print the labeled map without colours or frame")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	t, err := labeler.ParseTraversal(traversal)
	if err != nil {
		return cfg, err
	}
	cfg.Traversal = t

	return cfg, nil
}
