package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeGenAI/lucas-cubes/cube"
	"github.com/LeGenAI/lucas-cubes/search"
	"github.com/LeGenAI/lucas-cubes/verify"
)

func mustCube(t *testing.T, n, s int) *cube.Cube {
	t.Helper()
	c, err := cube.New(n, s)
	require.NoError(t, err)
	return c
}

//----------------------------------------------------------------------------//
// Option validation
//----------------------------------------------------------------------------//

// TestEvolutionary_OptionErrors walks malformed option sets through the
// sentinel checks.
func TestEvolutionary_OptionErrors(t *testing.T) {
	c := mustCube(t, 3, 4)

	cases := []struct {
		name string
		mut  func(*search.EvolveOptions)
		err  error
	}{
		{"Population", func(o *search.EvolveOptions) { o.PopulationSize = 1 }, search.ErrBadPopulation},
		{"Budget", func(o *search.EvolveOptions) { o.Generations = 0 }, search.ErrBadBudget},
		{"Mutation", func(o *search.EvolveOptions) { o.MutationRate = 1.5 }, search.ErrBadMutationRate},
		{"Elitism", func(o *search.EvolveOptions) { o.ElitismK = o.PopulationSize }, search.ErrBadElitism},
		{"Penalty", func(o *search.EvolveOptions) { o.PenaltyFactor = 0 }, search.ErrBadPenalty},
		{"Workers", func(o *search.EvolveOptions) { o.Workers = -1 }, search.ErrBadWorkers},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := search.DefaultEvolveOptions()
			tc.mut(&opts)
			_, err := search.Evolutionary(c, opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := search.Evolutionary(nil, search.DefaultEvolveOptions())
	assert.ErrorIs(t, err, search.ErrNilCube)
}

// TestAnneal_OptionErrors covers the annealer's own knobs.
func TestAnneal_OptionErrors(t *testing.T) {
	c := mustCube(t, 3, 4)

	cases := []struct {
		name string
		mut  func(*search.AnnealOptions)
		err  error
	}{
		{"Temperature", func(o *search.AnnealOptions) { o.InitialTemp = 0 }, search.ErrBadTemperature},
		{"CoolingLow", func(o *search.AnnealOptions) { o.CoolingRate = 0 }, search.ErrBadCooling},
		{"CoolingHigh", func(o *search.AnnealOptions) { o.CoolingRate = 1 }, search.ErrBadCooling},
		{"Budget", func(o *search.AnnealOptions) { o.MaxIterations = 0 }, search.ErrBadBudget},
		{"Penalty", func(o *search.AnnealOptions) { o.CollisionPenalty = -1 }, search.ErrBadPenalty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := search.DefaultAnnealOptions()
			tc.mut(&opts)
			_, err := search.Anneal(c, opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestHybrid_OptionErrors covers the memetic engine's repair knob.
func TestHybrid_OptionErrors(t *testing.T) {
	c := mustCube(t, 3, 4)

	opts := search.DefaultHybridOptions()
	opts.RepairSteps = -1
	_, err := search.HybridRepair(c, opts)
	assert.ErrorIs(t, err, search.ErrBadRepairSteps)
}

//----------------------------------------------------------------------------//
// Infeasibility gate
//----------------------------------------------------------------------------//

// TestEngines_InfeasibleAbort verifies that all three engines refuse the
// main research target Λ_15(1^12) (|V| = 32707, not divisible by 16)
// without consuming their budgets.
func TestEngines_InfeasibleAbort(t *testing.T) {
	c := mustCube(t, 15, 12)

	_, err := search.Evolutionary(c, search.DefaultEvolveOptions())
	assert.ErrorIs(t, err, verify.ErrInfeasibleParameters)

	_, err = search.HybridRepair(c, search.DefaultHybridOptions())
	assert.ErrorIs(t, err, verify.ErrInfeasibleParameters)

	_, err = search.Anneal(c, search.DefaultAnnealOptions())
	assert.ErrorIs(t, err, verify.ErrInfeasibleParameters)
}

//----------------------------------------------------------------------------//
// Smoke searches on Λ_3(1^3)
//----------------------------------------------------------------------------//

// runUntilPerfect retries a stochastic engine over a few seeds; the smoke
// tests assert high empirical success probability, not a per-seed guarantee.
func runUntilPerfect(t *testing.T, run func(seed int64) (search.Result, error)) search.Result {
	t.Helper()
	var last search.Result
	for seed := int64(1); seed <= 3; seed++ {
		res, err := run(seed)
		require.NoError(t, err)
		if res.Perfect {
			return res
		}
		last = res
	}
	t.Fatalf("no seed found a verified perfect code; best metric %v", last.Best)
	return search.Result{}
}

// TestEvolutionary_FindsLucas33 smoke-checks the genetic engine on the tiny
// cube where perfect codes are dense among fixed-size subsets.
func TestEvolutionary_FindsLucas33(t *testing.T) {
	c := mustCube(t, 3, 3)
	vr := verify.New(c)

	res := runUntilPerfect(t, func(seed int64) (search.Result, error) {
		opts := search.DefaultEvolveOptions()
		opts.PopulationSize = 60
		opts.Generations = 300
		opts.Seed = seed
		opts.IgnoreInfeasible = true
		return search.Evolutionary(c, opts)
	})

	assert.True(t, vr.IsPerfectCode(res.Code), "engine success must re-verify")
	assert.Len(t, res.Code, 2)
}

// TestHybridRepair_FindsLucas33 smoke-checks the memetic engine.
func TestHybridRepair_FindsLucas33(t *testing.T) {
	c := mustCube(t, 3, 3)
	vr := verify.New(c)

	res := runUntilPerfect(t, func(seed int64) (search.Result, error) {
		opts := search.DefaultHybridOptions()
		opts.PopulationSize = 40
		opts.Generations = 150
		opts.Seed = seed
		opts.IgnoreInfeasible = true
		return search.HybridRepair(c, opts)
	})

	assert.True(t, vr.IsPerfectCode(res.Code))
}

// TestAnneal_FindsLucas33 is the statistical regression check: a
// generous trajectory budget must locate a verified perfect code.
func TestAnneal_FindsLucas33(t *testing.T) {
	c := mustCube(t, 3, 3)
	vr := verify.New(c)

	res := runUntilPerfect(t, func(seed int64) (search.Result, error) {
		opts := search.DefaultAnnealOptions()
		opts.MaxIterations = 20000
		opts.Seed = seed
		opts.IgnoreInfeasible = true
		return search.Anneal(c, opts)
	})

	assert.True(t, vr.IsPerfectCode(res.Code))
	assert.Zero(t, res.Best)
}

//----------------------------------------------------------------------------//
// Determinism and reporting
//----------------------------------------------------------------------------//

// TestEvolutionary_Deterministic verifies that a fixed seed reproduces the
// run exactly, and that parallel evaluation does not perturb it.
func TestEvolutionary_Deterministic(t *testing.T) {
	c := mustCube(t, 7, 4)

	opts := search.DefaultEvolveOptions()
	opts.PopulationSize = 20
	opts.Generations = 8
	opts.Seed = 42
	opts.IgnoreInfeasible = true

	first, err := search.Evolutionary(c, opts)
	require.NoError(t, err)
	second, err := search.Evolutionary(c, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must reproduce the run")

	opts.Workers = 4
	parallel, err := search.Evolutionary(c, opts)
	require.NoError(t, err)
	assert.Equal(t, first, parallel, "workers must not change selection semantics")
}

// TestAnneal_ReportsBestOnFailure verifies budget exhaustion still carries
// the best candidate and its metric instead of silently claiming success.
func TestAnneal_ReportsBestOnFailure(t *testing.T) {
	c := mustCube(t, 7, 3)

	opts := search.DefaultAnnealOptions()
	opts.MaxIterations = 25
	opts.Seed = 3
	opts.IgnoreInfeasible = true

	res, err := search.Anneal(c, opts)
	require.NoError(t, err)
	if res.Perfect {
		t.Skip("tiny budget unexpectedly solved the cube; nothing to assert")
	}
	assert.Equal(t, 25, res.Steps)
	assert.NotEmpty(t, res.Code)
	assert.Greater(t, res.Best, 0.0)
}

// TestProgressCallback verifies the reporting cadence.
func TestProgressCallback(t *testing.T) {
	c := mustCube(t, 3, 3)

	var steps []int
	opts := search.DefaultAnnealOptions()
	opts.MaxIterations = 500
	opts.ProgressEvery = 100
	opts.Seed = 99
	opts.IgnoreInfeasible = true
	opts.OnProgress = func(p search.Progress) { steps = append(steps, p.Step) }

	if _, err := search.Anneal(c, opts); err != nil {
		t.Fatalf("Anneal error: %v", err)
	}
	require.NotEmpty(t, steps)
	assert.Equal(t, 0, steps[0])
	for i := 1; i < len(steps); i++ {
		assert.Equal(t, steps[i-1]+100, steps[i])
	}
}
