// Package construct - sentinel errors and the shift-vector enumerator.
package construct

import (
	"errors"

	"github.com/LeGenAI/lucas-cubes/cube"
)

// Sentinel errors for the construction strategies.
var (
	// ErrNilCube indicates a nil cube argument.
	ErrNilCube = errors.New("construct: cube must not be nil")
	// ErrEmptyBaseCode indicates an empty base code.
	ErrEmptyBaseCode = errors.New("construct: base code must not be empty")
	// ErrBadWeight indicates a Hamming-weight limit outside [0, n].
	ErrBadWeight = errors.New("construct: weight limit must lie in [0, n]")
	// ErrCubeMismatch indicates base and target cubes of different dimension.
	ErrCubeMismatch = errors.New("construct: base and target cubes must share dimension n")
)

// forEachShift enumerates every n-bit vector of Hamming weight exactly w in
// lexicographic order of set-bit positions and feeds it to fn; enumeration
// stops early when fn returns false.
//
// Positions follow string order (position 0 = most significant bit), so the
// first weight-w vector visited is 1^w 0^(n-w).
func forEachShift(n, w int, fn func(cube.Vertex) bool) {
	if w == 0 {
		fn(0)
		return
	}
	if w > n {
		return
	}

	// positions[k] is the string position of the k-th set bit, ascending.
	positions := make([]int, w)
	for i := range positions {
		positions[i] = i
	}

	for {
		var v cube.Vertex
		for _, p := range positions {
			v |= 1 << uint(n-1-p)
		}
		if !fn(v) {
			return
		}

		// Advance to the next combination.
		k := w - 1
		for k >= 0 && positions[k] == n-w+k {
			k--
		}
		if k < 0 {
			return
		}
		positions[k]++
		for j := k + 1; j < w; j++ {
			positions[j] = positions[j-1] + 1
		}
	}
}
