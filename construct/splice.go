// Package construct - hybrid partition-and-splice construction.
package construct

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/LeGenAI/lucas-cubes/code"
	"github.com/LeGenAI/lucas-cubes/cube"
	"github.com/LeGenAI/lucas-cubes/verify"
)

// SpliceResult is the outcome of a PartitionSplice run.
type SpliceResult struct {
	// Code is the spliced candidate (perfect only when Perfect).
	Code []cube.Vertex
	// ShiftLow and ShiftHigh are the winning shifts per part.
	ShiftLow, ShiftHigh cube.Vertex
	// CoverageLow and CoverageHigh count base codewords landing in each
	// part under the winning shifts.
	CoverageLow, CoverageHigh int
	// Perfect reports the authoritative verification of Code.
	Perfect bool
}

// PartitionSplice splits the vertex universe by Hamming weight — vertices
// of weight < partitionWeight form the low part, the rest the high part —
// finds for each part the shift vector (weight 0..shiftLimit) whose coset
// of base drops the most codewords into that part, and splices the two
// restricted cosets into one candidate.
//
// Simple splicing rarely lands a perfect code on its own; the result
// carries the per-part coverage so callers can judge whether to hand the
// candidate to a search engine for repair.
func PartitionSplice(c *cube.Cube, base []cube.Vertex, partitionWeight, shiftLimit int) (SpliceResult, error) {
	if c == nil {
		return SpliceResult{}, ErrNilCube
	}
	if len(base) == 0 {
		return SpliceResult{}, ErrEmptyBaseCode
	}
	if shiftLimit < 0 || shiftLimit > c.N() {
		return SpliceResult{}, ErrBadWeight
	}

	// Membership masks for the two parts.
	low := bitset.New(uint(1) << uint(c.N()))
	high := bitset.New(uint(1) << uint(c.N()))
	for _, v := range c.Vertices() {
		if code.Weight(v) < partitionWeight {
			low.Set(uint(v))
		} else {
			high.Set(uint(v))
		}
	}

	res := SpliceResult{}
	res.ShiftLow, res.CoverageLow = bestShiftFor(c, base, low, shiftLimit)
	res.ShiftHigh, res.CoverageHigh = bestShiftFor(c, base, high, shiftLimit)

	cosetLow, err := code.Coset(base, res.ShiftLow, c.N())
	if err != nil {
		return SpliceResult{}, err
	}
	cosetHigh, err := code.Coset(base, res.ShiftHigh, c.N())
	if err != nil {
		return SpliceResult{}, err
	}

	seen := make(map[cube.Vertex]struct{})
	for _, w := range cosetLow {
		if low.Test(uint(w)) {
			if _, dup := seen[w]; !dup {
				seen[w] = struct{}{}
				res.Code = append(res.Code, w)
			}
		}
	}
	for _, w := range cosetHigh {
		if high.Test(uint(w)) {
			if _, dup := seen[w]; !dup {
				seen[w] = struct{}{}
				res.Code = append(res.Code, w)
			}
		}
	}

	res.Perfect = verify.New(c).IsPerfectCode(res.Code)
	return res, nil
}

// bestShiftFor returns the shift whose coset covers the most vertices of
// part, breaking ties in favor of the first (lowest-weight, lexicographic)
// shift examined.
func bestShiftFor(c *cube.Cube, base []cube.Vertex, part *bitset.BitSet, limit int) (cube.Vertex, int) {
	var (
		bestShift cube.Vertex
		bestCover = -1
	)
	for w := 0; w <= limit; w++ {
		forEachShift(c.N(), w, func(shift cube.Vertex) bool {
			cover := 0
			for _, cw := range base {
				shifted := cw ^ shift
				if part.Test(uint(shifted)) {
					cover++
				}
			}
			if cover > bestCover {
				bestCover = cover
				bestShift = shift
			}
			return true
		})
	}
	return bestShift, bestCover
}
