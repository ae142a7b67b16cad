// Package cube - Cube construction and adjacency queries.
//
// Design:
//   - Build-then-freeze: the vertex universe is computed once inside New and
//     never mutated afterwards; every query is a read against frozen state.
//   - Membership is a bitset probe; closed neighborhoods are precomputed so
//     the heuristic search loops pay no per-query flip-and-filter cost.
//   - The circular forbidden-run test is two scans: a linear pass over the
//     word, then a seam pass over the window formed by wrapping the last
//     s-1 bits before the first s-1 bits. No doubled vector is materialized.
//
// Complexity:
//   - New: O(2^n · n) time, O(2^n) space (universe enumeration + neighborhoods).
//   - Contains: O(1). Neighbors / ClosedNeighborhood: O(1) lookup of
//     precomputed data (Neighbors copies, O(n)).
package cube

import "github.com/bits-and-blooms/bitset"

// Cube is the Generalized Lucas Cube Λ_n(1^s). Immutable after New; safe
// for concurrent readers.
type Cube struct {
	n int // vector length
	s int // forbidden circular run length

	vertices []Vertex       // all members, ascending by packed value
	members  *bitset.BitSet // membership keyed by packed vertex value
	hoods    [][]Vertex     // closed neighborhood per vertex value; nil for non-members
}

// New constructs the cube for parameters (n, s), eagerly enumerating the
// vertex universe. Returns ErrInvalidN when n < 1 or n > MaxN, ErrInvalidS
// when s < 2.
func New(n, s int) (*Cube, error) {
	if n < 1 || n > MaxN {
		return nil, ErrInvalidN
	}
	if s < 2 {
		return nil, ErrInvalidS
	}

	universe := uint(1) << uint(n)
	c := &Cube{
		n:       n,
		s:       s,
		members: bitset.New(universe),
		hoods:   make([][]Vertex, universe),
	}

	for w := uint(0); w < universe; w++ {
		if !hasForbiddenRun(Vertex(w), n, s) {
			c.members.Set(w)
			c.vertices = append(c.vertices, Vertex(w))
		}
	}

	// Freeze closed neighborhoods: the vertex itself first, then every
	// member reachable by a single bit flip.
	for _, v := range c.vertices {
		hood := make([]Vertex, 1, n+1)
		hood[0] = v
		for i := 0; i < n; i++ {
			u := v ^ (1 << uint(i))
			if c.members.Test(uint(u)) {
				hood = append(hood, u)
			}
		}
		c.hoods[v] = hood
	}

	return c, nil
}

// N reports the vector length n.
func (c *Cube) N() int { return c.n }

// S reports the forbidden circular run length s.
func (c *Cube) S() int { return c.s }

// Order reports the number of vertices |V|.
func (c *Cube) Order() int { return len(c.vertices) }

// Vertices returns the full vertex universe in ascending packed-value order.
// The slice is shared frozen state; callers must not modify it.
func (c *Cube) Vertices() []Vertex { return c.vertices }

// Contains reports whether v is a vertex of the cube.
func (c *Cube) Contains(v Vertex) bool {
	return uint(v) < uint(1)<<uint(c.n) && c.members.Test(uint(v))
}

// Neighbors returns the cube vertices at Hamming distance exactly 1 from v,
// or nil when v is not a member. The returned slice is freshly allocated.
func (c *Cube) Neighbors(v Vertex) []Vertex {
	if !c.Contains(v) {
		return nil
	}
	hood := c.hoods[v]
	out := make([]Vertex, len(hood)-1)
	copy(out, hood[1:])
	return out
}

// ClosedNeighborhood returns {v} ∪ Neighbors(v), v first, or nil when v is
// not a member. The slice is shared frozen state; callers must not modify it.
func (c *Cube) ClosedNeighborhood(v Vertex) []Vertex {
	if !c.Contains(v) {
		return nil
	}
	return c.hoods[v]
}

// hasForbiddenRun reports whether v, read as an n-bit vector, contains a run
// of s consecutive set bits in any circular rotation. When n < s no such run
// fits and the answer is always false.
//
// Two passes suffice: a linear scan, then a scan of the seam window covering
// the last s-1 positions wrapped before the first s-1 positions — a
// wrap-around run of length s necessarily starts within the last s-1
// positions.
func hasForbiddenRun(v Vertex, n, s int) bool {
	if n < s {
		return false
	}

	// Linear pass.
	run := 0
	for i := 0; i < n; i++ {
		if bitAt(v, i, n) == 1 {
			run++
			if run >= s {
				return true
			}
		} else {
			run = 0
		}
	}

	// Seam pass over positions n-s+1 .. n+s-2 (mod n).
	run = 0
	for i := n - s + 1; i < n+s-1; i++ {
		if bitAt(v, i%n, n) == 1 {
			run++
			if run >= s {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// bitAt reads position i of v in string order: position 0 is the most
// significant character of the n-character literal.
func bitAt(v Vertex, i, n int) uint {
	return uint(v>>(uint(n-1-i))) & 1
}
