// Package construct - constrained coset shifting.
package construct

import (
	"github.com/LeGenAI/lucas-cubes/code"
	"github.com/LeGenAI/lucas-cubes/cube"
	"github.com/LeGenAI/lucas-cubes/verify"
)

// ShiftResult is the outcome of a ShiftSearch run.
type ShiftResult struct {
	// Code is the verified perfect coset when Found, nil otherwise.
	Code []cube.Vertex
	// Shift is the shift vector that produced Code (valid iff Found).
	Shift cube.Vertex
	// Found reports whether a verified perfect code was constructed.
	Found bool
	// Checked counts the shift vectors examined.
	Checked int
}

// ShiftSearch looks for a perfect code of the form shift + base by trying
// every shift vector of Hamming weight 0..maxWeight in increasing-weight
// order. A coset is fully verified only after the cheap pre-check that all
// of its words are cube members.
//
// The base code is typically Ham(r, 2) with 2^r-1 == c.N(); any code whose
// words fit in n bits is accepted.
//
// Complexity: O(Σ_w C(n,w) · |base| · n) time in the worst case.
func ShiftSearch(c *cube.Cube, base []cube.Vertex, maxWeight int) (ShiftResult, error) {
	if c == nil {
		return ShiftResult{}, ErrNilCube
	}
	if len(base) == 0 {
		return ShiftResult{}, ErrEmptyBaseCode
	}
	if maxWeight < 0 || maxWeight > c.N() {
		return ShiftResult{}, ErrBadWeight
	}
	for _, w := range base {
		if uint(w)>>uint(c.N()) != 0 {
			return ShiftResult{}, code.ErrLengthMismatch
		}
	}

	vr := verify.New(c)
	res := ShiftResult{}

	for w := 0; w <= maxWeight && !res.Found; w++ {
		forEachShift(c.N(), w, func(shift cube.Vertex) bool {
			res.Checked++

			coset, err := code.Coset(base, shift, c.N())
			if err != nil {
				return true // unreachable after the width checks above
			}
			for _, cw := range coset {
				if !c.Contains(cw) {
					return true
				}
			}
			if vr.IsPerfectCode(coset) {
				res.Code = coset
				res.Shift = shift
				res.Found = true
				return false
			}
			return true
		})
	}
	return res, nil
}
