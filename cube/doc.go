// Package cube models Generalized Lucas Cubes Λ_n(1^s): induced subgraphs
// of the n-dimensional boolean hypercube whose vertices are the n-bit
// vectors containing no run of s consecutive set bits in any circular
// rotation.
//
// What you get:
//
//   - Cube — immutable (n, s) configuration with a frozen vertex universe,
//     built once at construction and shared by reference thereafter.
//   - Vertex — an n-bit vector packed into a machine word; identity is by
//     value, adjacency is single-bit Hamming adjacency.
//   - Membership, neighbor and closed-neighborhood queries, all read-only
//     and safe for concurrent use after construction.
//
// Construction enumerates all 2^n candidate vectors and filters them by the
// circular forbidden-run rule, so n is capped at MaxN. Membership after
// construction is a single bitset probe.
//
// When n < s no n-bit vector can contain the forbidden run, so the cube
// degenerates to the full hypercube Q_n with 2^n vertices.
//
// Use this package as the passive query service underneath the verify,
// search and construct packages.
package cube
