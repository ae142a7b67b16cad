// Package search provides the stochastic engines that hunt for perfect
// codes in a Generalized Lucas Cube:
//
//   - Evolutionary — population-based genetic search: binary tournament
//     selection, gene-pool uniform crossover, add/remove mutation, elitism.
//   - HybridRepair — memetic variant: roulette selection, single-point
//     crossover, and a bounded deterministic local-repair pass applied to
//     every child before it re-enters the population.
//   - Anneal — single-trajectory simulated annealing with add/remove/swap
//     moves biased toward the theoretical code size, Metropolis acceptance
//     and geometric cooling.
//
// All three optimize the same cost signal — coverage of the vertex universe
// by closed neighborhoods versus codeword pairs at Hamming distance < 3 —
// and every success claim is gated by the authoritative
// verify.Verifier.IsPerfectCode check. Failure to find a code is
// inconclusive: the engines are incomplete heuristics, not decision
// procedures.
//
// Determinism: each engine owns a seeded math/rand source (seed 0 selects a
// fixed default), so a run is reproducible from its options. Fitness
// evaluation of a population may fan out over a bounded worker pool; the
// RNG never crosses goroutines, so parallel evaluation does not perturb
// reproducibility.
package search
