// Package search - the cost signal shared by all three engines.
//
// coverage   = |union of closed neighborhoods of the codewords|
// uncovered  = |V| − coverage
// collisions = unordered codeword pairs at Hamming distance < 3
//
// A candidate is worth handing to the verifier iff uncovered == 0 and
// collisions == 0; the verifier stays the sole ground truth.
package search

import (
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/LeGenAI/lucas-cubes/code"
	"github.com/LeGenAI/lucas-cubes/cube"
)

// evaluation is the raw cost signal for one candidate code. Derived and
// discarded per evaluation, never persisted.
type evaluation struct {
	coverage   int
	uncovered  int
	collisions int
}

// candidate reports whether the signal alone is consistent with a perfect
// code, i.e. the cheap necessary pre-check before IsPerfectCode.
func (e evaluation) candidate() bool {
	return e.uncovered == 0 && e.collisions == 0
}

// evaluate computes the cost signal for words against c, reusing covered as
// scratch (it is cleared on entry). Non-member codewords contribute no
// coverage; the engines only ever draw codewords from the universe, but
// transient duplicates do occur and count as distance-0 collisions.
//
// Complexity: O(|C|·n + |C|²) time.
func evaluate(c *cube.Cube, words []cube.Vertex, covered *bitset.BitSet) evaluation {
	covered.ClearAll()
	for _, w := range words {
		for _, u := range c.ClosedNeighborhood(w) {
			covered.Set(uint(u))
		}
	}
	cov := int(covered.Count())

	col := 0
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			if code.Distance(words[i], words[j]) < 3 {
				col++
			}
		}
	}

	return evaluation{coverage: cov, uncovered: c.Order() - cov, collisions: col}
}

// evaluatePopulation computes the cost signal for every individual.
// With workers > 1 the individuals are split into contiguous chunks and
// evaluated concurrently; each worker owns its own coverage scratch, reads
// only the frozen cube, and writes only its own result slots, so the
// returned slice is identical to the sequential one.
func evaluatePopulation(c *cube.Cube, pop [][]cube.Vertex, workers int) []evaluation {
	evals := make([]evaluation, len(pop))
	universe := uint(1) << uint(c.N())

	if workers <= 1 || len(pop) < 2 {
		scratch := bitset.New(universe)
		for i, ind := range pop {
			evals[i] = evaluate(c, ind, scratch)
		}
		return evals
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(pop) + workers - 1) / workers
	for lo := 0; lo < len(pop); lo += chunk {
		hi := lo + chunk
		if hi > len(pop) {
			hi = len(pop)
		}
		lo := lo
		g.Go(func() error {
			scratch := bitset.New(universe)
			for i := lo; i < hi; i++ {
				evals[i] = evaluate(c, pop[i], scratch)
			}
			return nil
		})
	}
	_ = g.Wait() // evaluation never fails; Wait only joins the workers
	return evals
}

// cloneCode copies a candidate so elites and best-so-far snapshots never
// alias a slice that a later mutation will touch.
func cloneCode(words []cube.Vertex) []cube.Vertex {
	out := make([]cube.Vertex, len(words))
	copy(out, words)
	return out
}
