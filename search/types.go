// Package search - shared result/progress types and sentinel errors.
package search

import (
	"errors"
	"math"

	"github.com/LeGenAI/lucas-cubes/cube"
)

// negInf is the identity for best-fitness maximization.
var negInf = math.Inf(-1)

// Sentinel errors for engine option validation.
var (
	// ErrNilCube indicates a nil cube handed to an engine.
	ErrNilCube = errors.New("search: cube must not be nil")
	// ErrBadPopulation indicates a population size below 2.
	ErrBadPopulation = errors.New("search: population size must be at least 2")
	// ErrBadBudget indicates a non-positive generation or iteration budget.
	ErrBadBudget = errors.New("search: generation/iteration budget must be positive")
	// ErrBadMutationRate indicates a mutation rate outside [0, 1].
	ErrBadMutationRate = errors.New("search: mutation rate must lie in [0,1]")
	// ErrBadElitism indicates an elite count outside [0, population).
	ErrBadElitism = errors.New("search: elitism count must lie in [0, population size)")
	// ErrBadPenalty indicates a non-positive penalty factor.
	ErrBadPenalty = errors.New("search: penalty factor must be positive")
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("search: worker count must not be negative")
	// ErrBadRepairSteps indicates a negative local-repair step budget.
	ErrBadRepairSteps = errors.New("search: repair step budget must not be negative")
	// ErrBadTemperature indicates a non-positive initial temperature.
	ErrBadTemperature = errors.New("search: initial temperature must be positive")
	// ErrBadCooling indicates a cooling rate outside (0, 1).
	ErrBadCooling = errors.New("search: cooling rate must lie in (0,1)")
)

// Progress is a per-generation (or per-iteration) snapshot handed to the
// optional OnProgress callback. Formatting is entirely the caller's concern.
type Progress struct {
	// Step is the zero-based generation or iteration index.
	Step int
	// Best is the best fitness so far for the population engines, or the
	// best (lowest) energy so far for the annealer.
	Best float64
	// Uncovered and Collisions describe the best candidate at this step.
	Uncovered  int
	Collisions int
	// CodeSize is the codeword count of the best candidate.
	CodeSize int
	// Temperature is the current annealing temperature; zero for the
	// population engines.
	Temperature float64
}

// Result is the terminal outcome of one engine run.
//
// Perfect is set only after verify.IsPerfectCode accepted Code; a false
// Perfect means the budget was exhausted and Code holds the best candidate
// reached, with its metric in Best. A failed run never implies
// non-existence.
type Result struct {
	// Code is the verified perfect code on success, else the best candidate.
	Code []cube.Vertex
	// Perfect reports whether Code passed the authoritative verification.
	Perfect bool
	// Best is the final best fitness (population engines, maximized) or
	// best energy (annealer, minimized).
	Best float64
	// Steps is the number of generations or iterations actually consumed.
	Steps int
	// Uncovered and Collisions describe Code.
	Uncovered  int
	Collisions int
}
