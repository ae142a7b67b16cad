// Package lucascubes is a toolkit for perfect-code hunting in generalized
// Lucas cubes Λ_n(1^s) — the subgraphs of the hypercube Q_n induced by the
// n-bit strings with no circular run of s consecutive ones.
//
// 🚀 What is lucas-cubes?
//
//	A library and CLI that bring together:
//		• cube/      — Λ_n(1^s) construction, membership, neighborhoods
//		• code/      — Hamming distance, Ham(r,2) generation, coset shifting,
//		               code files
//		• verify/    — authoritative perfect-code verification and the
//		               |V|/(n+1) feasibility bound
//		• search/    — three stochastic engines: evolutionary, hybrid
//		               genetic with local repair, simulated annealing
//		• construct/ — deterministic routes: coset shifting, puncture-and-
//		               repair, weight-partition splicing
//		• codestore/ — a Badger-backed catalog of discovered codes
//
// ✨ Design commitments
//
//   - Verification is authoritative — no engine claims success without an
//     independent IsPerfectCode pass
//   - Deterministic given a seed — every stochastic engine draws from one
//     seeded stream, so runs replay exactly
//   - Pure Go values — vertices are packed machine words; the bit-string
//     form "0101" appears only at the edges (files, logs, CLI)
//
// Quick example, the smallest interesting cube:
//
//	    Λ_3(1^3) = Q_3 minus 111; {010, 101} is one of its
//	    three perfect codes.
//
// The cmd/lucassearch command wires the engines, the verifier and the
// catalog together behind flags.
package lucascubes
