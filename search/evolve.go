// Package search - population-based evolutionary engine.
//
// Control structure per generation:
//
//	Evaluate → (elitism: carry top-k) → tournament selection →
//	gene-pool uniform crossover → probabilistic add/remove mutation →
//	next generation
//
// Fitness = coverage − collisions·(n+1)·PenaltyFactor. The collision term
// outweighs any coverage gain, so collision-free partial codes always
// outrank collision-bearing "complete" ones. A generation whose best
// fitness reaches |V| is necessarily a zero-collision full cover, but the
// run is declared successful only after the verifier agrees.
package search

import (
	"math/rand"
	"sort"
	"time"

	"github.com/LeGenAI/lucas-cubes/cube"
	"github.com/LeGenAI/lucas-cubes/verify"
)

// EvolveOptions configures the Evolutionary engine. The zero value is not
// runnable; start from DefaultEvolveOptions.
type EvolveOptions struct {
	// PopulationSize is the number of individuals per generation (>= 2).
	PopulationSize int
	// Generations is the generation budget (> 0).
	Generations int
	// MutationRate is the per-child probability of one add/remove mutation.
	MutationRate float64
	// ElitismK individuals are carried over unchanged each generation.
	ElitismK int
	// PenaltyFactor scales the collision penalty in the fitness.
	PenaltyFactor float64
	// Seed selects the RNG stream; 0 means the fixed default seed.
	Seed int64
	// Workers bounds parallel fitness evaluation; <= 1 evaluates inline.
	Workers int
	// IgnoreInfeasible skips the |V| mod (n+1) pre-check. The divisibility
	// bound assumes (n+1)-sized neighborhoods, which the excluded vertices
	// puncture; small cubes admit perfect codes despite a fractional bound.
	IgnoreInfeasible bool
	// OnProgress, when set, receives a snapshot every ProgressEvery
	// generations (and on the final one).
	OnProgress    func(Progress)
	ProgressEvery int
	// TimeLimit caps wall-clock time; 0 disables the deadline. Expiry is
	// reported as ordinary budget exhaustion.
	TimeLimit time.Duration
}

// DefaultEvolveOptions returns the baseline tuning: population 100 over
// 1000 generations, 10% mutation, 5 elites, penalty factor 10.
func DefaultEvolveOptions() EvolveOptions {
	return EvolveOptions{
		PopulationSize: 100,
		Generations:    1000,
		MutationRate:   0.1,
		ElitismK:       5,
		PenaltyFactor:  10,
		Workers:        1,
		ProgressEvery:  10,
	}
}

func (o EvolveOptions) validate() error {
	if o.PopulationSize < 2 {
		return ErrBadPopulation
	}
	if o.Generations < 1 {
		return ErrBadBudget
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrBadMutationRate
	}
	if o.ElitismK < 0 || o.ElitismK >= o.PopulationSize {
		return ErrBadElitism
	}
	if o.PenaltyFactor <= 0 {
		return ErrBadPenalty
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}
	return nil
}

// Evolutionary runs the genetic engine against c and returns the verified
// perfect code or the best candidate at budget exhaustion.
//
// Errors: option sentinels from types.go, verify.ErrInfeasibleParameters
// when the size arithmetic rules the search out up front.
func Evolutionary(c *cube.Cube, opts EvolveOptions) (Result, error) {
	if c == nil {
		return Result{}, ErrNilCube
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	vr := verify.New(c)
	if _, err := vr.FeasibleCodeSize(); err != nil && !opts.IgnoreInfeasible {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)
	pe := opts.ProgressEvery
	if pe <= 0 {
		pe = 10
	}

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	// Seed the population with uniform random subsets of the (rounded-up)
	// theoretical code size.
	initSize := (c.Order() + c.N()) / (c.N() + 1)
	if initSize < 1 {
		initSize = 1
	}
	pop := make([][]cube.Vertex, opts.PopulationSize)
	for i := range pop {
		pop[i] = sampleVertices(rng, c.Vertices(), initSize)
	}

	fitness := func(e evaluation) float64 {
		return float64(e.coverage) - float64(e.collisions*(c.N()+1))*opts.PenaltyFactor
	}

	var (
		bestCode []cube.Vertex
		bestFit  = negInf
		bestEval evaluation
	)

	gen := 0
	for ; gen < opts.Generations; gen++ {
		if opts.TimeLimit > 0 && time.Now().After(deadline) {
			break
		}

		evals := evaluatePopulation(c, pop, opts.Workers)
		fits := make([]float64, len(evals))
		genBest := 0
		for i, e := range evals {
			fits[i] = fitness(e)
			if fits[i] > fits[genBest] {
				genBest = i
			}
		}
		if fits[genBest] > bestFit {
			bestFit = fits[genBest]
			bestCode = cloneCode(pop[genBest])
			bestEval = evals[genBest]
		}

		if opts.OnProgress != nil && gen%pe == 0 {
			opts.OnProgress(Progress{
				Step:       gen,
				Best:       bestFit,
				Uncovered:  bestEval.uncovered,
				Collisions: bestEval.collisions,
				CodeSize:   len(bestCode),
			})
		}

		// Fitness reaching |V| is necessary but not sufficient; only the
		// verifier may declare success.
		if fits[genBest] >= float64(c.Order()) && vr.IsPerfectCode(pop[genBest]) {
			found := cloneCode(pop[genBest])
			return Result{
				Code:    found,
				Perfect: true,
				Best:    fits[genBest],
				Steps:   gen + 1,
			}, nil
		}

		// Elitism: carry the top-k unchanged.
		order := make([]int, len(pop))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return fits[order[a]] > fits[order[b]] })
		next := make([][]cube.Vertex, 0, opts.PopulationSize)
		for k := 0; k < opts.ElitismK; k++ {
			next = append(next, cloneCode(pop[order[k]]))
		}

		// Binary tournament, repeated population-size times.
		parents := make([][]cube.Vertex, opts.PopulationSize)
		for i := range parents {
			a, b := rng.Intn(len(pop)), rng.Intn(len(pop))
			if fits[a] > fits[b] {
				parents[i] = pop[a]
			} else {
				parents[i] = pop[b]
			}
		}

		for len(next) < opts.PopulationSize {
			i, j := pickTwoDistinct(rng, len(parents))
			child := crossoverGenePool(rng, parents[i], parents[j])
			mutate(rng, &child, c.Vertices(), opts.MutationRate)
			next = append(next, child)
		}
		pop = next
	}

	return Result{
		Code:       bestCode,
		Best:       bestFit,
		Steps:      gen,
		Uncovered:  bestEval.uncovered,
		Collisions: bestEval.collisions,
	}, nil
}

// crossoverGenePool performs uniform gene-wise inheritance over the union of
// both parents' codewords: per gene a fair coin chooses which parent is
// consulted, and the gene joins the child iff that parent carries it.
func crossoverGenePool(rng *rand.Rand, p1, p2 []cube.Vertex) []cube.Vertex {
	in1 := make(map[cube.Vertex]struct{}, len(p1))
	for _, g := range p1 {
		in1[g] = struct{}{}
	}
	in2 := make(map[cube.Vertex]struct{}, len(p2))
	for _, g := range p2 {
		in2[g] = struct{}{}
	}

	var child []cube.Vertex
	consult := func(g cube.Vertex) {
		if rng.Float64() < 0.5 {
			if _, ok := in1[g]; ok {
				child = append(child, g)
			}
		} else {
			if _, ok := in2[g]; ok {
				child = append(child, g)
			}
		}
	}
	for _, g := range p1 {
		consult(g)
	}
	for _, g := range p2 {
		if _, ok := in1[g]; !ok {
			consult(g)
		}
	}
	return child
}

// mutate applies at most one add/remove mutation with probability rate:
// remove a random codeword when more than one remains, otherwise (or on the
// other side of the coin) add a random vertex not already present.
func mutate(rng *rand.Rand, words *[]cube.Vertex, vs []cube.Vertex, rate float64) {
	if rng.Float64() >= rate {
		return
	}
	w := *words
	if len(w) > 1 && rng.Float64() < 0.5 {
		i := rng.Intn(len(w))
		w[i] = w[len(w)-1]
		*words = w[:len(w)-1]
		return
	}
	member := make(map[cube.Vertex]struct{}, len(w))
	for _, g := range w {
		member[g] = struct{}{}
	}
	if v, ok := randomAbsent(rng, vs, member); ok {
		*words = append(w, v)
	}
}
