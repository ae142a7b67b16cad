// Package search - memetic engine: evolution plus local repair.
//
// Differences from the plain evolutionary engine:
//   - Selection is fitness-proportional (roulette) instead of tournament.
//   - Crossover is single-point over the parents' codeword sequences
//     instead of gene-wise over their union.
//   - Every freshly produced child passes through a bounded local-repair
//     loop before it re-enters the population: resolve a random collision
//     pair if any exists, otherwise cover a random uncovered vertex by
//     adding one member of its closed neighborhood.
//
// Fitness = coverage − uncovered·n − collisions·n·PenaltyFactor.
package search

import (
	"math/rand"
	"sort"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/LeGenAI/lucas-cubes/code"
	"github.com/LeGenAI/lucas-cubes/cube"
	"github.com/LeGenAI/lucas-cubes/verify"
)

// RepairPolicy orders the two repair moves inside one local-repair pass.
type RepairPolicy int

const (
	// RepairCollisionsFirst always resolves collisions before covering
	// gaps. Collision resolution has priority because distance violations
	// are a hard constraint.
	RepairCollisionsFirst RepairPolicy = iota
	// RepairAlternate alternates the priority between steps: even steps
	// fix collisions first, odd steps try coverage first. Whether the
	// interleaving converges faster is an open tuning question; the
	// contract default stays RepairCollisionsFirst.
	RepairAlternate
)

// HybridOptions configures the HybridRepair engine. Start from
// DefaultHybridOptions.
type HybridOptions struct {
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
	// RepairSteps bounds the local-repair loop applied to each child;
	// 0 disables repair entirely.
	RepairSteps int
	// Policy orders collision resolution versus coverage repair.
	Policy RepairPolicy
	// Seed selects the RNG stream; 0 means the fixed default seed.
	Seed int64
	// Workers bounds parallel fitness evaluation; <= 1 evaluates inline.
	Workers int
	// IgnoreInfeasible skips the |V| mod (n+1) pre-check (see
	// EvolveOptions.IgnoreInfeasible).
	IgnoreInfeasible bool
	// OnProgress, when set, receives a snapshot every ProgressEvery
	// generations.
	OnProgress    func(Progress)
	ProgressEvery int
	// TimeLimit caps wall-clock time; 0 disables the deadline.
	TimeLimit time.Duration
}

// DefaultHybridOptions returns the baseline tuning: population 100, 10%
// mutation, 5 elites, penalty factor 10, three repair steps per child.
func DefaultHybridOptions() HybridOptions {
	return HybridOptions{
		PopulationSize: 100,
		Generations:    200,
		MutationRate:   0.1,
		ElitismK:       5,
		PenaltyFactor:  10,
		RepairSteps:    3,
		Workers:        1,
		ProgressEvery:  10,
	}
}

func (o HybridOptions) validate() error {
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
	if o.RepairSteps < 0 {
		return ErrBadRepairSteps
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}
	return nil
}

// HybridRepair runs the memetic engine against c.
//
// Errors: option sentinels from types.go, verify.ErrInfeasibleParameters
// when the size arithmetic rules the search out up front.
func HybridRepair(c *cube.Cube, opts HybridOptions) (Result, error) {
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

	initSize := (c.Order() + c.N()) / (c.N() + 1)
	if initSize < 1 {
		initSize = 1
	}
	pop := make([][]cube.Vertex, opts.PopulationSize)
	for i := range pop {
		pop[i] = sampleVertices(rng, c.Vertices(), initSize)
	}

	fitness := func(e evaluation) float64 {
		return float64(e.coverage) - float64(e.uncovered*c.N()) -
			float64(e.collisions*c.N())*opts.PenaltyFactor
	}

	scratch := bitset.New(uint(1) << uint(c.N()))

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

		if evals[genBest].candidate() && vr.IsPerfectCode(pop[genBest]) {
			found := cloneCode(pop[genBest])
			return Result{
				Code:    found,
				Perfect: true,
				Best:    fits[genBest],
				Steps:   gen + 1,
			}, nil
		}

		order := make([]int, len(pop))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return fits[order[a]] > fits[order[b]] })
		next := make([][]cube.Vertex, 0, opts.PopulationSize)
		for k := 0; k < opts.ElitismK; k++ {
			next = append(next, cloneCode(pop[order[k]]))
		}

		parents := rouletteSelect(rng, pop, fits, opts.PopulationSize)

		for len(next) < opts.PopulationSize {
			i, j := pickTwoDistinct(rng, len(parents))
			child := crossoverSinglePoint(rng, parents[i], parents[j])
			mutate(rng, &child, c.Vertices(), opts.MutationRate)
			child = localRepair(c, rng, child, opts.RepairSteps, opts.Policy, scratch)
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

// rouletteSelect draws k individuals with probability proportional to
// fitness. Fitness values may be negative, so weights are shifted so the
// worst individual sits at zero; when every weight vanishes the draw
// degenerates to uniform.
func rouletteSelect(rng *rand.Rand, pop [][]cube.Vertex, fits []float64, k int) [][]cube.Vertex {
	minFit := fits[0]
	for _, f := range fits[1:] {
		if f < minFit {
			minFit = f
		}
	}
	total := 0.0
	weights := make([]float64, len(fits))
	for i, f := range fits {
		weights[i] = f - minFit
		total += weights[i]
	}

	out := make([][]cube.Vertex, k)
	for i := 0; i < k; i++ {
		if total <= 0 {
			out[i] = pop[rng.Intn(len(pop))]
			continue
		}
		r := rng.Float64() * total
		acc := 0.0
		pick := len(pop) - 1
		for j, w := range weights {
			acc += w
			if r < acc {
				pick = j
				break
			}
		}
		out[i] = pop[pick]
	}
	return out
}

// crossoverSinglePoint splits both parents' codeword sequences at one random
// index and concatenates the halves. Parents too short to split yield a copy
// of the first parent.
func crossoverSinglePoint(rng *rand.Rand, p1, p2 []cube.Vertex) []cube.Vertex {
	shorter := len(p1)
	if len(p2) < shorter {
		shorter = len(p2)
	}
	if shorter < 2 {
		return cloneCode(p1)
	}
	point := 1 + rng.Intn(shorter-1)
	child := make([]cube.Vertex, 0, point+len(p2)-point)
	child = append(child, p1[:point]...)
	child = append(child, p2[point:]...)
	return child
}

// localRepair runs up to steps repair moves over words. Duplicates from
// crossover are dropped up front (set semantics). Each step either removes
// one side of a random colliding pair or covers one random uncovered vertex
// by adding a member of its closed neighborhood, in the order the policy
// dictates; a step with nothing to do ends the pass.
func localRepair(c *cube.Cube, rng *rand.Rand, words []cube.Vertex, steps int, policy RepairPolicy, scratch *bitset.BitSet) []cube.Vertex {
	cur := words[:0:0]
	member := make(map[cube.Vertex]struct{}, len(words))
	for _, w := range words {
		if _, dup := member[w]; !dup {
			member[w] = struct{}{}
			cur = append(cur, w)
		}
	}

	for step := 0; step < steps; step++ {
		collisionsFirst := policy == RepairCollisionsFirst || step%2 == 0

		fixed := false
		if collisionsFirst {
			fixed = repairCollision(c, rng, &cur, member)
			if !fixed {
				fixed = repairCoverage(c, rng, &cur, member, scratch)
			}
		} else {
			fixed = repairCoverage(c, rng, &cur, member, scratch)
			if !fixed {
				fixed = repairCollision(c, rng, &cur, member)
			}
		}
		if !fixed {
			break
		}
	}
	return cur
}

// repairCollision removes a random side of a random colliding pair.
// Reports whether a removal happened.
func repairCollision(c *cube.Cube, rng *rand.Rand, cur *[]cube.Vertex, member map[cube.Vertex]struct{}) bool {
	words := *cur
	type pair struct{ i, j int }
	var colliding []pair
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			if code.Distance(words[i], words[j]) < 3 {
				colliding = append(colliding, pair{i, j})
			}
		}
	}
	if len(colliding) == 0 {
		return false
	}

	p := colliding[rng.Intn(len(colliding))]
	victim := p.i
	if rng.Float64() < 0.5 {
		victim = p.j
	}
	delete(member, words[victim])
	words[victim] = words[len(words)-1]
	*cur = words[:len(words)-1]
	return true
}

// repairCoverage adds one closed-neighborhood member of a random uncovered
// vertex. Reports whether an addition happened.
func repairCoverage(c *cube.Cube, rng *rand.Rand, cur *[]cube.Vertex, member map[cube.Vertex]struct{}, scratch *bitset.BitSet) bool {
	words := *cur
	scratch.ClearAll()
	for _, w := range words {
		for _, u := range c.ClosedNeighborhood(w) {
			scratch.Set(uint(u))
		}
	}

	var uncovered []cube.Vertex
	for _, v := range c.Vertices() {
		if !scratch.Test(uint(v)) {
			uncovered = append(uncovered, v)
		}
	}
	if len(uncovered) == 0 {
		return false
	}

	target := uncovered[rng.Intn(len(uncovered))]
	hood := c.ClosedNeighborhood(target)
	add := hood[rng.Intn(len(hood))]
	if _, ok := member[add]; ok {
		return true // set semantics: re-adding an existing codeword is a no-op step
	}
	member[add] = struct{}{}
	*cur = append(words, add)
	return true
}
