// Package construct holds the deterministic construction strategies layered
// on top of the cube/verify core. Unlike the stochastic engines in package
// search, these are exhaustive or greedy procedures with no random state:
//
//   - ShiftSearch — enumerate shift vectors of increasing Hamming weight,
//     coset a base Ham(r,2) code by each, and keep the first coset that is a
//     verified perfect code of the cube.
//   - RepairFromBase — port a perfect code from a neighboring cube
//     Λ_n(1^sBase): drop the codewords the tighter forbidden pattern
//     invalidates, then greedily patch the coverage holes they leave.
//   - PartitionSplice — split the vertex universe by Hamming weight, pick
//     the best-covering shift for each part independently, and splice the
//     two restricted cosets into one candidate.
//
// Every strategy ends with the authoritative verify.IsPerfectCode call; a
// completed construction that fails verification is reported as such, never
// as a success.
package construct
