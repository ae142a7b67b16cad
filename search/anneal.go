// Package search - single-trajectory simulated annealing.
//
// Energy(C) = uncovered·n + collisions·CollisionPenalty, minimized to zero.
// Collisions carry a far heavier weight than coverage gaps: a distance
// violation is a hard constraint, a gap merely work left to do.
//
// The trajectory proposes one of {add, remove, swap} per iteration, biased
// to keep the code size near the theoretical |V|/(n+1): additions are
// permitted only below size+2, removals only above size−2. Worse neighbors
// are accepted with the Metropolis probability exp(−ΔE/T); the temperature
// decays geometrically and is never re-heated. Best-so-far tracking is
// independent of acceptance, and only a verified zero-energy best ends the
// run successfully.
//
// The annealer is inherently sequential — every step depends on the prior
// accepted state — so it exposes no worker knob.
package search

import (
	"math"
	"math/rand"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/LeGenAI/lucas-cubes/cube"
	"github.com/LeGenAI/lucas-cubes/verify"
)

// AnnealOptions configures the annealing engine. Start from
// DefaultAnnealOptions.
type AnnealOptions struct {
	// InitialTemp is the starting temperature (> 0).
	InitialTemp float64
	// CoolingRate multiplies the temperature every iteration; (0, 1).
	CoolingRate float64
	// MaxIterations is the trajectory budget (> 0).
	MaxIterations int
	// CollisionPenalty is the per-collision energy weight; 0 selects the
	// default of 20·n, far above the n-per-gap coverage weight.
	CollisionPenalty float64
	// Seed selects the RNG stream; 0 means the fixed default seed.
	Seed int64
	// IgnoreInfeasible skips the |V| mod (n+1) pre-check (see
	// EvolveOptions.IgnoreInfeasible).
	IgnoreInfeasible bool
	// OnProgress, when set, receives a snapshot every ProgressEvery
	// iterations.
	OnProgress    func(Progress)
	ProgressEvery int
	// TimeLimit caps wall-clock time; 0 disables the deadline.
	TimeLimit time.Duration
}

// DefaultAnnealOptions returns the baseline tuning: temperature 1000 with
// rate 0.999 over 50000 iterations.
func DefaultAnnealOptions() AnnealOptions {
	return AnnealOptions{
		InitialTemp:   1000,
		CoolingRate:   0.999,
		MaxIterations: 50000,
		ProgressEvery: 100,
	}
}

func (o AnnealOptions) validate() error {
	if o.InitialTemp <= 0 {
		return ErrBadTemperature
	}
	if o.CoolingRate <= 0 || o.CoolingRate >= 1 {
		return ErrBadCooling
	}
	if o.MaxIterations < 1 {
		return ErrBadBudget
	}
	if o.CollisionPenalty < 0 {
		return ErrBadPenalty
	}
	return nil
}

// Anneal runs the simulated-annealing engine against c.
//
// Errors: option sentinels from types.go, verify.ErrInfeasibleParameters
// when the size arithmetic rules the search out up front.
func Anneal(c *cube.Cube, opts AnnealOptions) (Result, error) {
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
		pe = 100
	}
	penalty := opts.CollisionPenalty
	if penalty == 0 {
		penalty = float64(20 * c.N())
	}

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	theoretical := vr.TheoreticalCodeSize()
	scratch := bitset.New(uint(1) << uint(c.N()))
	energyOf := func(e evaluation) float64 {
		return float64(e.uncovered*c.N()) + float64(e.collisions)*penalty
	}

	initSize := int(theoretical)
	if initSize < 1 {
		initSize = 1
	}
	current := sampleVertices(rng, c.Vertices(), initSize)
	curEval := evaluate(c, current, scratch)
	curEnergy := energyOf(curEval)

	best := cloneCode(current)
	bestEval := curEval
	bestEnergy := curEnergy

	temp := opts.InitialTemp

	iter := 0
	for ; iter < opts.MaxIterations; iter++ {
		if opts.TimeLimit > 0 && time.Now().After(deadline) {
			break
		}

		neighbor := annealNeighbor(c, rng, current, theoretical)
		nEval := evaluate(c, neighbor, scratch)
		nEnergy := energyOf(nEval)

		// Metropolis: downhill always; uphill with exp(−ΔE/T). The ratio
		// is ≤ 0 in this branch, so the probability never exceeds 1.
		if nEnergy < curEnergy || rng.Float64() < math.Exp((curEnergy-nEnergy)/temp) {
			current = neighbor
			curEval = nEval
			curEnergy = nEnergy
		}

		if curEnergy < bestEnergy {
			best = cloneCode(current)
			bestEval = curEval
			bestEnergy = curEnergy
		}

		temp *= opts.CoolingRate

		if opts.OnProgress != nil && iter%pe == 0 {
			opts.OnProgress(Progress{
				Step:        iter,
				Best:        bestEnergy,
				Uncovered:   bestEval.uncovered,
				Collisions:  bestEval.collisions,
				CodeSize:    len(best),
				Temperature: temp,
			})
		}

		// Zero energy is necessary, not sufficient; the verifier decides.
		if bestEnergy == 0 && vr.IsPerfectCode(best) {
			return Result{
				Code:    best,
				Perfect: true,
				Best:    0,
				Steps:   iter + 1,
			}, nil
		}
	}

	return Result{
		Code:       best,
		Best:       bestEnergy,
		Steps:      iter,
		Uncovered:  bestEval.uncovered,
		Collisions: bestEval.collisions,
	}, nil
}

// annealNeighbor derives one candidate move from current: add below
// size+2, remove above size−2, or swap one member for one non-member. A
// move whose guard fails leaves the code unchanged except that an empty
// code always regains one random vertex.
func annealNeighbor(c *cube.Cube, rng *rand.Rand, current []cube.Vertex, theoretical float64) []cube.Vertex {
	neighbor := cloneCode(current)
	member := make(map[cube.Vertex]struct{}, len(neighbor))
	for _, w := range neighbor {
		member[w] = struct{}{}
	}

	switch rng.Intn(3) {
	case 0: // add, while under the size ceiling
		if float64(len(neighbor)) < theoretical+2 {
			if v, ok := randomAbsent(rng, c.Vertices(), member); ok {
				neighbor = append(neighbor, v)
			}
		}
	case 1: // remove, while over the size floor
		if len(neighbor) > 0 && float64(len(neighbor)) > theoretical-2 {
			i := rng.Intn(len(neighbor))
			neighbor[i] = neighbor[len(neighbor)-1]
			neighbor = neighbor[:len(neighbor)-1]
		}
	default: // swap one member for one non-member
		if len(neighbor) > 0 {
			i := rng.Intn(len(neighbor))
			removed := neighbor[i]
			delete(member, removed)
			if v, ok := randomAbsent(rng, c.Vertices(), member); ok {
				neighbor[i] = v
			} else {
				member[removed] = struct{}{}
			}
		}
	}

	if len(neighbor) == 0 {
		neighbor = append(neighbor, c.Vertices()[rng.Intn(c.Order())])
	}
	return neighbor
}
