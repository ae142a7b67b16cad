// Package construct - code puncturing and greedy reconstruction.
package construct

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/LeGenAI/lucas-cubes/cube"
	"github.com/LeGenAI/lucas-cubes/verify"
)

// RepairResult is the outcome of a RepairFromBase run.
type RepairResult struct {
	// Code is the repaired candidate (perfect only when Perfect).
	Code []cube.Vertex
	// Removed counts the base codewords invalidated by the target cube.
	Removed int
	// Added counts the codewords inserted by greedy patching.
	Added int
	// Covered reports whether patching eliminated every coverage hole.
	Covered bool
	// Perfect reports the authoritative verification of Code.
	Perfect bool
}

// RepairFromBase ports a perfect code of the base cube Λ_n(1^sBase) into
// the target cube: codewords that the target's tighter forbidden pattern
// excludes are dropped, the vertices their base-cube neighborhoods covered
// become the hole set, and a greedy pass patches holes one at a time.
//
// Patching is deterministic: the smallest uncovered vertex is examined, its
// target-cube closed neighborhood is scanned for candidates whose own
// closed neighborhood contains no current codeword, and the candidate
// covering the most holes wins. The pass stops when no candidate makes
// progress.
//
// Both cubes must share dimension n (ErrCubeMismatch otherwise); baseCode
// must be non-empty.
func RepairFromBase(target, base *cube.Cube, baseCode []cube.Vertex) (RepairResult, error) {
	if target == nil || base == nil {
		return RepairResult{}, ErrNilCube
	}
	if target.N() != base.N() {
		return RepairResult{}, ErrCubeMismatch
	}
	if len(baseCode) == 0 {
		return RepairResult{}, ErrEmptyBaseCode
	}

	res := RepairResult{}

	// Split the base code into survivors and casualties.
	var damaged, removed []cube.Vertex
	for _, cw := range baseCode {
		if target.Contains(cw) {
			damaged = append(damaged, cw)
		} else {
			removed = append(removed, cw)
		}
	}
	res.Removed = len(removed)

	// Holes: target vertices the casualties used to cover in the base cube.
	holes := bitset.New(uint(1) << uint(target.N()))
	for _, cw := range removed {
		for _, u := range base.ClosedNeighborhood(cw) {
			if target.Contains(u) {
				holes.Set(uint(u))
			}
		}
	}

	repaired := append([]cube.Vertex(nil), damaged...)
	member := make(map[cube.Vertex]struct{}, len(repaired))
	for _, cw := range repaired {
		member[cw] = struct{}{}
	}

	for holes.Count() > 0 {
		sample, ok := holes.NextSet(0)
		if !ok {
			break
		}

		var (
			bestCand cube.Vertex
			bestGain = 0
			have     bool
		)
		for _, cand := range target.ClosedNeighborhood(cube.Vertex(sample)) {
			if _, dup := member[cand]; dup {
				continue
			}
			hood := target.ClosedNeighborhood(cand)

			// Reject candidates whose neighborhood swallows an existing
			// codeword: that would put two codewords within distance 1.
			collides := false
			gain := 0
			for _, u := range hood {
				if _, in := member[u]; in {
					collides = true
					break
				}
				if holes.Test(uint(u)) {
					gain++
				}
			}
			if collides || gain <= bestGain {
				continue
			}
			bestCand, bestGain, have = cand, gain, true
		}

		if !have {
			break // stuck: no candidate makes progress on this hole
		}

		repaired = append(repaired, bestCand)
		member[bestCand] = struct{}{}
		res.Added++
		for _, u := range target.ClosedNeighborhood(bestCand) {
			holes.Clear(uint(u))
		}
	}

	res.Code = repaired
	res.Covered = holes.Count() == 0
	if res.Covered {
		res.Perfect = verify.New(target).IsPerfectCode(repaired)
	}
	return res, nil
}
