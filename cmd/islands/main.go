// Command islands counts the islands of a binary map and shows them.
//
// Without -file it labels the built-in 5×5 sample map. Output is the input
// map, the labeled map, and the island count; -png additionally saves an image.
//
// Usage:
//
//	islands [-file map.txt] [-traversal dfs|bfs|recursive] [-separate-visited]
//	        [-png out.png] [-cell 16] [-plain]
//
// Environment (also read from ./.env):
//
//	ISLANDS_LOG_LEVEL  debug, info, warn or error (default info)
//	ISLANDS_TRAVERSAL  default for -traversal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/gridio"
	"github.com/katalvlaran/islands/labeler"
	"github.com/katalvlaran/islands/render"
)

// banner opens every report.
const banner = "Hello from islands!"

// sampleMap is shown when no -file is given.
var sampleMap = [][]int{
	{1, 1, 0, 0, 0},
	{1, 1, 0, 0, 1},
	{0, 1, 0, 1, 1},
	{0, 0, 0, 0, 0},
	{1, 0, 1, 0, 1},
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "islands"})
	if err := loadEnv(); err != nil {
		logger.Warn("environment not loaded", "error", err)
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	logger.SetLevel(cfg.LogLevel)

	if _, err = run(cfg, os.Stdout, logger); err != nil {
		logger.Error("labeling failed", "error", err)
		os.Exit(1)
	}
}

// run loads the map, labels it and writes the report to out.
// It returns the island count.
func run(cfg config, out io.Writer, logger *log.Logger) (int, error) {
	m := grid.Clone(sampleMap)
	if cfg.File != "" {
		var err error
		if m, err = gridio.ReadFile(cfg.File); err != nil {
			return 0, err
		}
		h, w := grid.Dims(m)
		logger.Debug("map loaded", "file", cfg.File, "rows", h, "cols", w)
	}

	opts := []labeler.Option{
		labeler.WithTraversal(cfg.Traversal),
		labeler.WithLogger(logger),
	}
	if cfg.SeparateVisited {
		opts = append(opts, labeler.WithSeparateVisited())
	}
	n, labeled, err := labeler.CountIslands(m, opts...)
	if err != nil {
		return 0, err
	}

	var termOpts []render.TerminalOption
	if cfg.Plain {
		termOpts = append(termOpts, render.WithPlain())
	}
	view, err := render.Terminal(labeled, termOpts...)
	if err != nil {
		return 0, err
	}

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "Original map:")
	if err = gridio.WriteText(out, m); err != nil {
		return 0, err
	}
	fmt.Fprintln(out, "\nLabeled map:")
	fmt.Fprintln(out, view)
	fmt.Fprintf(out, "\nFound %d islands\n", n)

	if cfg.PNG != "" {
		if err = render.SavePNG(cfg.PNG, labeled, cfg.CellSize); err != nil {
			return n, err
		}
		logger.Info("image written", "path", cfg.PNG)
	}

	return n, nil
}
