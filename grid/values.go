package grid

import (
	"fmt"
	"reflect"
)

// FromValues converts arbitrarily nested numeric data into a validated grid.
//
// Accepted inputs are slices or arrays of slices or arrays whose leaves are
// integers, unsigned integers or floats, including []any trees produced by
// YAML and JSON decoders.
//
// Implementation:
//   - Stage 1 (shape): the value must nest exactly two levels deep and be
//     rectangular. When the static type already fixes the depth (e.g. []int,
//     [][][]int) a wrong depth is rejected even for empty input.
//   - Stage 2 (domain): every leaf must be numerically 0 or 1. Floats such as
//     0.5 or NaN, negative numbers, booleans and strings are domain errors.
//
// Returns ErrShape or ErrDomain (wrapped with position) and a nil grid on failure.
// Complexity: O(H×W) time and memory.
func FromValues(v any) ([][]int, error) {
	rv := indirect(reflect.ValueOf(v))
	if !isSequence(rv) {
		return nil, fmt.Errorf("grid: got %s, want a two-dimensional sequence: %w", describe(rv), ErrShape)
	}
	if d, ok := staticDepth(rv.Type()); ok && d != 2 {
		return nil, fmt.Errorf("grid: %s has %d dimensions, want 2: %w", rv.Type(), d, ErrShape)
	}

	// Stage 1: shape.
	h, w := rv.Len(), -1
	for r := 0; r < h; r++ {
		row := indirect(rv.Index(r))
		if !isSequence(row) {
			return nil, fmt.Errorf("grid: row %d is %s, want a sequence (input is one-dimensional): %w", r, describe(row), ErrShape)
		}
		if w < 0 {
			w = row.Len()
		} else if row.Len() != w {
			return nil, fmt.Errorf("grid: row %d has %d columns, want %d: %w", r, row.Len(), w, ErrShape)
		}
		for c := 0; c < w; c++ {
			if isSequence(indirect(row.Index(c))) {
				return nil, fmt.Errorf("grid: cell (%d,%d) is a sequence (input has more than two dimensions): %w", r, c, ErrShape)
			}
		}
	}

	// Stage 2: domain.
	out := make([][]int, h)
	for r := 0; r < h; r++ {
		row := indirect(rv.Index(r))
		out[r] = make([]int, w)
		for c := 0; c < w; c++ {
			cell := indirect(row.Index(c))
			f, ok := number(cell)
			if !ok {
				return nil, fmt.Errorf("grid: cell (%d,%d) is %s, want 0 or 1: %w", r, c, describe(cell), ErrDomain)
			}
			if f != Water && f != Land {
				return nil, fmt.Errorf("grid: cell (%d,%d) = %v, want 0 or 1: %w", r, c, f, ErrDomain)
			}
			out[r][c] = int(f)
		}
	}

	return out, nil
}

// indirect unwraps interfaces and pointers until a concrete value is reached.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func isSequence(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// staticDepth counts slice/array nesting of t. ok is false when an
// interface element hides the depth until runtime.
func staticDepth(t reflect.Type) (depth int, ok bool) {
	for {
		switch t.Kind() {
		case reflect.Slice, reflect.Array:
			depth++
			t = t.Elem()
		case reflect.Interface:
			return depth, false
		case reflect.Pointer:
			t = t.Elem()
		default:
			return depth, true
		}
	}
}

// number reports v as float64 when v is an integer or float kind.
func number(v reflect.Value) (float64, bool) {
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func describe(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	return fmt.Sprintf("%s %v", v.Type(), v.Interface())
}
