// Package gridio reads binary maps from text or YAML and writes grids back
// as bracketed text.
//
// Text format: one row per line, values separated by spaces, tabs, commas
// or brackets; blank lines and lines starting with '#' are skipped. The
// bracketed form printed by WriteText reads back unchanged.
//
// YAML format: either a bare sequence of sequences, or a mapping whose
// "grid" key holds one. JSON documents are valid YAML and decode the same way.
//
// Every reader funnels its values through grid.FromValues, so malformed
// content surfaces as grid.ErrShape or grid.ErrDomain, never as a partially
// built grid.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/islands/grid"
)

// ErrFormat indicates input that cannot be tokenised or decoded at all.
var ErrFormat = errors.New("gridio: malformed grid document")

// initialLineBuffer is the starting scanner buffer; it grows with longer rows.
const initialLineBuffer = 64 * 1024

// gridKey is the mapping key holding the grid in YAML documents.
const gridKey = "grid"

// isSeparator reports runes that split values in the text format.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', '[', ']', '\r':
		return true
	}

	return false
}

// ReadText parses the text format from r.
// Empty input yields an empty grid.
func ReadText(r io.Reader) ([][]int, error) {
	var rows []any
	sc := bufio.NewScanner(r)
	// a row is one line, however wide
	sc.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, isSeparator)
		if len(fields) == 0 {
			continue // a bare "[" or "]" line
		}
		row := make([]any, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("gridio: line %d: value %q: %w", line, f, ErrFormat)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read text: %w", err)
	}
	if rows == nil {
		return [][]int{}, nil
	}

	return grid.FromValues(rows)
}

// ReadYAML decodes a YAML (or JSON) document from r.
// An empty document yields an empty grid.
func ReadYAML(r io.Reader) ([][]int, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return [][]int{}, nil
		}
		return nil, fmt.Errorf("gridio: decode yaml: %v: %w", err, ErrFormat)
	}
	if m, ok := doc.(map[string]any); ok {
		v, found := m[gridKey]
		if !found {
			return nil, fmt.Errorf("gridio: mapping has no %q key: %w", gridKey, ErrFormat)
		}
		doc = v
	}

	return grid.FromValues(doc)
}

// ReadFile reads path, choosing the YAML decoder for .yaml, .yml and .json
// files and the text format otherwise.
func ReadFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return ReadYAML(f)
	default:
		return ReadText(f)
	}
}

// WriteText prints g as bracketed rows with right-aligned columns:
//
//	[[ 1  1  0]
//	 [ 0 -1  0]]
//
// An empty grid prints as "[]". A trailing newline is always written.
func WriteText(w io.Writer, g [][]int) error {
	if len(g) == 0 {
		_, err := io.WriteString(w, "[]\n")
		return err
	}

	width := 1
	for _, row := range g {
		for _, v := range row {
			if n := len(strconv.Itoa(v)); n > width {
				width = n
			}
		}
	}

	bw := bufio.NewWriter(w)
	for r, row := range g {
		if r == 0 {
			bw.WriteString("[[")
		} else {
			bw.WriteString(" [")
		}
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%*d", width, v)
		}
		if r == len(g)-1 {
			bw.WriteString("]]\n")
		} else {
			bw.WriteString("]\n")
		}
	}

	return bw.Flush()
}

// FormatText returns WriteText's output as a string.
func FormatText(g [][]int) string {
	var sb strings.Builder
	// writes to a strings.Builder never fail
	_ = WriteText(&sb, g)

	return sb.String()
}
