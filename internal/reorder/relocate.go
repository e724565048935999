// Package reorder holds the index based list moves behind drag and drop.
// Every function returns a new slice and leaves its input untouched.
package reorder

import "slices"

// Relocate moves the element at index from to index to, shifting the
// elements in between by one place. It is a move, not a swap.
// The result is always a fresh slice; out of range indexes yield an
// unchanged copy.
func Relocate[T any](s []T, from, to int) []T {
	out := slices.Clone(s)
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}
