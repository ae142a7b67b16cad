// Command lucassearch hunts for perfect codes in generalized Lucas cubes
// Λ_n(1^s) and records what it finds.
//
// Usage:
//
//	lucassearch -n 7 -s 4 -engine anneal -seed 42
//	lucassearch -n 3 -s 3 -engine evolve -ignore-infeasible -store ./catalog
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plan-systems/klog"

	"github.com/LeGenAI/lucas-cubes/code"
	"github.com/LeGenAI/lucas-cubes/codestore"
	"github.com/LeGenAI/lucas-cubes/cube"
	"github.com/LeGenAI/lucas-cubes/search"
	"github.com/LeGenAI/lucas-cubes/verify"
)

func main() {
	var (
		n          = flag.Int("n", 7, "cube dimension (bit-string length)")
		s          = flag.Int("s", 4, "forbidden circular run length (1^s)")
		engine     = flag.String("engine", "anneal", "search engine: evolve | hybrid | anneal")
		seed       = flag.Int64("seed", 0, "RNG seed (0 selects the default seed)")
		pop        = flag.Int("pop", 100, "population size (evolve, hybrid)")
		gens       = flag.Int("gens", 1000, "generation budget (evolve, hybrid)")
		iters      = flag.Int("iters", 50000, "iteration budget (anneal)")
		workers    = flag.Int("workers", 1, "parallel fitness workers (evolve, hybrid)")
		ignore     = flag.Bool("ignore-infeasible", false, "search even when |V| is not divisible by n+1")
		timeLimit  = flag.Duration("time-limit", 0, "wall-clock budget, 0 for none")
		storeDir   = flag.String("store", "", "catalog directory; persist a found code there")
		outPath    = flag.String("out", "", "write a found code to this file")
	)

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()
	defer klog.Flush()

	if err := run(*n, *s, *engine, *seed, *pop, *gens, *iters, *workers,
		*ignore, *timeLimit, *storeDir, *outPath); err != nil {
		klog.Errorf("lucassearch: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func run(n, s int, engine string, seed int64, pop, gens, iters, workers int,
	ignore bool, timeLimit time.Duration, storeDir, outPath string) error {

	c, err := cube.New(n, s)
	if err != nil {
		return err
	}

	vr := verify.New(c)
	klog.Infof("Λ_%d(1^%d): %d vertices, theoretical code size %.2f",
		n, s, c.Order(), vr.TheoreticalCodeSize())

	onProgress := func(p search.Progress) {
		klog.Infof("step %d: best %.0f, uncovered %d, collisions %d, size %d",
			p.Step, p.Best, p.Uncovered, p.Collisions, p.CodeSize)
	}

	var res search.Result
	switch engine {
	case "evolve":
		opts := search.DefaultEvolveOptions()
		opts.PopulationSize = pop
		opts.Generations = gens
		opts.Seed = seed
		opts.Workers = workers
		opts.IgnoreInfeasible = ignore
		opts.TimeLimit = timeLimit
		opts.OnProgress = onProgress
		opts.ProgressEvery = 50
		res, err = search.Evolutionary(c, opts)
	case "hybrid":
		opts := search.DefaultHybridOptions()
		opts.PopulationSize = pop
		opts.Generations = gens
		opts.Seed = seed
		opts.Workers = workers
		opts.IgnoreInfeasible = ignore
		opts.TimeLimit = timeLimit
		opts.OnProgress = onProgress
		opts.ProgressEvery = 50
		res, err = search.HybridRepair(c, opts)
	case "anneal":
		opts := search.DefaultAnnealOptions()
		opts.MaxIterations = iters
		opts.Seed = seed
		opts.IgnoreInfeasible = ignore
		opts.TimeLimit = timeLimit
		opts.OnProgress = onProgress
		opts.ProgressEvery = 5000
		res, err = search.Anneal(c, opts)
	default:
		return fmt.Errorf("unknown engine %q (want evolve, hybrid or anneal)", engine)
	}

	if errors.Is(err, verify.ErrInfeasibleParameters) {
		klog.Warningf("Λ_%d(1^%d) fails the divisibility bound: %d vertices, n+1 = %d; "+
			"pass -ignore-infeasible to search anyway", n, s, c.Order(), n+1)
		return err
	}
	if err != nil {
		return err
	}

	if !res.Perfect {
		klog.Infof("no perfect code after %d steps: best %.0f, uncovered %d, collisions %d",
			res.Steps, res.Best, res.Uncovered, res.Collisions)
		return nil
	}

	klog.Infof("perfect code found after %d steps: %d codewords", res.Steps, len(res.Code))
	for _, w := range res.Code {
		klog.Infof("  %s", cube.FormatVertex(w, n))
	}

	if outPath != "" {
		if err := code.Save(outPath, res.Code, n); err != nil {
			return err
		}
		klog.Infof("code written to %s", outPath)
	}
	if storeDir != "" {
		st, err := codestore.Open(storeDir)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Put(n, s, res.Code); err != nil {
			return err
		}
		klog.Infof("code stored in catalog %s under (%d,%d)", storeDir, n, s)
	}
	return nil
}
