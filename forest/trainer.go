package forest

import (
	"runtime"

	"github.com/pbanos/grf/config"
	"github.com/pbanos/grf/data"
	"github.com/pbanos/grf/grferrors"
	"github.com/pbanos/grf/prediction"
	"github.com/pbanos/grf/relabel"
	"github.com/pbanos/grf/sampler"
	"github.com/pbanos/grf/split"
	"github.com/pbanos/grf/tree"
)

// Train builds a Forest of cfg.NumTrees trees, grouped in chunks of
// cfg.CIGroupSize that share an outer bootstrap subsample. Honesty and
// variable subsetting still randomize independently within a group.
// Training is embarrassingly parallel across trees; Data and Observations
// are read-only and shared across every worker.
func Train(cfg config.Config, d *data.Data, obs *data.Observations, relabeler relabel.Strategy, splitter split.Rule, strategy prediction.OptimizedStrategy) (*Forest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	numSamples := d.NumRows()
	allSamples := make([]int, numSamples)
	for i := range allSamples {
		allSamples[i] = i
	}

	numGroups := int(cfg.NumTrees / cfg.CIGroupSize)
	trees := make([]*tree.Tree, cfg.NumTrees)

	trainerConfig := tree.TrainerConfig{
		MinNodeSize:        cfg.MinNodeSize,
		Honesty:            cfg.Honesty,
		HonestyFraction:    cfg.HonestyFraction,
		Mtry:               cfg.Mtry,
		DeterministicVars:  cfg.DeterministicVars,
		NoSplitVariables:   cfg.NoSplitVariables,
		SplitSelectVars:    cfg.SplitSelectVars,
		SplitSelectWeights: cfg.SplitSelectWeights,
	}
	trainer := tree.Trainer{Config: trainerConfig, Relabeler: relabeler, Splitter: splitter, Strategy: strategy}

	workers := runtime.GOMAXPROCS(0)
	pool := New(workers)

	var groupErrs []error
	for g := 0; g < numGroups; g++ {
		g := g
		groupSampler := sampler.New(cfg.Seed + uint64(g))
		bootstrap, oob := groupSampler.Subsample(allSamples, cfg.SampleFraction)

		jobs := make([]Job, cfg.CIGroupSize)
		for j := uint(0); j < cfg.CIGroupSize; j++ {
			treeIndex := g*int(cfg.CIGroupSize) + int(j)
			jobs[j] = func() error {
				treeSampler := sampler.New(cfg.Seed + uint64(treeIndex) + 1<<32)
				built := trainer.Train(d, obs, treeSampler, bootstrap)
				built.OOBSamples = append([]int{}, oob...)
				trees[treeIndex] = built
				return nil
			}
		}
		pool.Add(jobs)
	}
	if err := pool.Wait(); err != nil {
		groupErrs = append(groupErrs, err)
	}
	pool.Stop()

	if err := grferrors.Combine(groupErrs...); err != nil {
		return nil, err
	}

	return &Forest{Observations: obs, Trees: trees, CIGroupSize: int(cfg.CIGroupSize)}, nil
}
