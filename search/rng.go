// Package search - deterministic randomness shared by all engines.
//
// Policy:
//   - Every engine owns exactly one *rand.Rand built from its Seed option;
//     seed==0 selects a fixed default so zero-value options stay reproducible.
//   - math/rand.Rand is not goroutine-safe; the engines therefore keep all
//     RNG use on the driving goroutine. Parallel fitness evaluation never
//     touches the RNG.
package search

import (
	"math/rand"

	"github.com/LeGenAI/lucas-cubes/cube"
)

// defaultSeed is the fixed seed substituted when callers pass Seed==0. The
// value is arbitrary but stable.
const defaultSeed int64 = 1

// rngFromSeed returns the engine RNG for a configured seed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// sampleVertices draws k distinct vertices from vs uniformly at random.
// k is clamped to len(vs).
//
// Complexity: O(len(vs)) time and space (index permutation).
func sampleVertices(rng *rand.Rand, vs []cube.Vertex, k int) []cube.Vertex {
	if k > len(vs) {
		k = len(vs)
	}
	perm := rng.Perm(len(vs))
	out := make([]cube.Vertex, k)
	for i := 0; i < k; i++ {
		out[i] = vs[perm[i]]
	}
	return out
}

// randomAbsent picks a uniformly random vertex of vs that is not currently
// in member. Rejection sampling first; falls back to a linear scan from a
// random offset when the member set is dense. Returns false when every
// vertex is already a member.
func randomAbsent(rng *rand.Rand, vs []cube.Vertex, member map[cube.Vertex]struct{}) (cube.Vertex, bool) {
	if len(member) >= len(vs) {
		return 0, false
	}
	for try := 0; try < 32; try++ {
		v := vs[rng.Intn(len(vs))]
		if _, ok := member[v]; !ok {
			return v, true
		}
	}
	start := rng.Intn(len(vs))
	for i := 0; i < len(vs); i++ {
		v := vs[(start+i)%len(vs)]
		if _, ok := member[v]; !ok {
			return v, true
		}
	}
	return 0, false
}

// pickTwoDistinct returns two distinct indices in [0, n). Requires n >= 2.
func pickTwoDistinct(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
