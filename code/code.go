// Package code - distance, Ham(r,2) generation and coset shifting.
package code

import (
	"errors"
	"math/bits"

	"github.com/LeGenAI/lucas-cubes/cube"
)

// Sentinel errors for code utilities.
var (
	// ErrInvalidR indicates r < 2, or an r whose code length 2^r-1 exceeds
	// the representable vertex width.
	ErrInvalidR = errors.New("code: r must be at least 2 and 2^r-1 must not exceed cube.MaxN")
	// ErrLengthMismatch indicates a vector wider than the declared length n.
	ErrLengthMismatch = errors.New("code: vector length does not match n")
)

// Distance returns the Hamming distance between two packed bit vectors of
// equal length.
func Distance(a, b cube.Vertex) int {
	return bits.OnesCount32(uint32(a ^ b))
}

// Hamming generates the binary Hamming code Ham(r, 2) of length n = 2^r-1,
// in ascending packed-value order.
//
// A vector c is a codeword iff its syndrome is zero: the columns of the
// parity-check matrix are the binary representations of 1..n, column j
// (string position j, zero-based) carrying the value j+1.
//
// Complexity: O(2^n · n) time — syndrome filtering over the full space.
func Hamming(r int) ([]cube.Vertex, error) {
	if r < 2 {
		return nil, ErrInvalidR
	}
	n := 1<<uint(r) - 1
	if n > cube.MaxN {
		return nil, ErrInvalidR
	}

	var words []cube.Vertex
	for w := uint32(0); w < 1<<uint(n); w++ {
		syndrome := 0
		for v := w; v != 0; v &= v - 1 {
			// Machine bit b holds string position n-1-b, whose column value
			// is position+1 = n-b.
			b := bits.TrailingZeros32(v)
			syndrome ^= n - b
		}
		if syndrome == 0 {
			words = append(words, cube.Vertex(w))
		}
	}
	return words, nil
}

// Coset shifts every codeword by XOR with shift, producing the coset
// shift + code. The shift must fit in n bits; ErrLengthMismatch otherwise.
func Coset(words []cube.Vertex, shift cube.Vertex, n int) ([]cube.Vertex, error) {
	if n < 1 || n > cube.MaxN || uint(shift)>>uint(n) != 0 {
		return nil, ErrLengthMismatch
	}
	out := make([]cube.Vertex, len(words))
	for i, w := range words {
		out[i] = w ^ shift
	}
	return out, nil
}

// Weight returns the Hamming weight (number of set bits) of v.
func Weight(v cube.Vertex) int {
	return bits.OnesCount32(uint32(v))
}
