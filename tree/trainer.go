package tree

import (
	"github.com/pbanos/grf/data"
	"github.com/pbanos/grf/prediction"
	"github.com/pbanos/grf/relabel"
	"github.com/pbanos/grf/sampler"
	"github.com/pbanos/grf/split"
)

// TrainerConfig carries the subset of the forest-level Config a single
// tree's construction needs.
type TrainerConfig struct {
	MinNodeSize        uint
	Honesty            bool
	HonestyFraction    float64
	Mtry               uint
	DeterministicVars  []uint
	NoSplitVariables   []uint
	SplitSelectVars    []uint
	SplitSelectWeights []float64
}

// Trainer drives the relabeling strategy, splitting rule, and prediction
// strategy to build one honest tree (component H).
type Trainer struct {
	Config    TrainerConfig
	Relabeler relabel.Strategy
	Splitter  split.Rule
	Strategy  prediction.OptimizedStrategy
}

// Train builds a tree from the given samples, per the honest recursive
// partitioning algorithm: node 0 starts with every sample (or, with
// honesty on, just the split-selection half); a breadth-of-worklist loop
// over node ids attempts to split every open node until none remain;
// held-out samples are then routed through the finished structure to
// repopulate the leaves honesty set aside; finally the prediction
// strategy precomputes each leaf's summary.
func (tr Trainer) Train(d *data.Data, obs *data.Observations, s *sampler.Sampler, samples []int) *Tree {
	t := &Tree{}
	t.createEmptyNode()

	var leafRepopulationSamples []int
	if tr.Config.Honesty {
		splitSamples, heldOut := s.Subsample(samples, tr.Config.HonestyFraction)
		t.Samples[0] = splitSamples
		leafRepopulationSamples = heldOut
	} else {
		t.Samples[0] = append([]int{}, samples...)
	}

	numVars := d.NumCols()
	for i := 0; i < t.NumNodes(); i++ {
		nodeSamples := t.Samples[i]
		result := tr.splitNodeInternal(d, obs, s, numVars, nodeSamples)
		if !result.Improved {
			t.SplitValue[i] = terminalSplitValue
			continue
		}
		leftSamples, rightSamples := partitionSamples(d, nodeSamples, result.Var, result.Value)
		left := t.createEmptyNode()
		right := t.createEmptyNode()
		t.SplitVar[i] = int(result.Var)
		t.SplitValue[i] = result.Value
		t.LeftChild[i] = left
		t.RightChild[i] = right
		t.Samples[left] = leftSamples
		t.Samples[right] = rightSamples
		t.Samples[i] = nil
	}

	if tr.Config.Honesty {
		for n := 0; n < t.NumNodes(); n++ {
			if t.IsLeaf(n) {
				t.Samples[n] = nil
			}
		}
		for _, sample := range leafRepopulationSamples {
			leaf := FindLeaf(d, t, sample)
			t.Samples[leaf] = append(t.Samples[leaf], sample)
		}
	}

	t.PredictionValues = tr.Strategy.PrecomputePredictionValues(t.LeafSamples(), obs)
	return t
}

// splitNodeInternal decides whether a node should be split, implementing
// the min-node-size check, the pure-node test, candidate variable subset
// selection, relabeling, and the splitting rule's search, in that order.
func (tr Trainer) splitNodeInternal(d *data.Data, obs *data.Observations, s *sampler.Sampler, numVars int, samples []int) split.Result {
	if uint(len(samples)) <= tr.Config.MinNodeSize {
		return split.Result{}
	}
	if isPureNode(obs, samples) {
		return split.Result{}
	}
	vars := candidateVariableSubset(tr.Config, s, numVars)
	responses := tr.Relabeler.Relabel(obs, samples)
	if len(responses) == 0 {
		return split.Result{}
	}
	return tr.Splitter.FindBestSplit(d, samples, vars, responses, tr.Config.MinNodeSize)
}

// isPureNode reports whether every sample's outcome scalar is equal,
// inspecting only the outcome's first component even for multi-output
// outcomes, matching the reference's under-test but preserved behavior.
func isPureNode(obs *data.Observations, samples []int) bool {
	if len(samples) == 0 {
		return true
	}
	first := obs.Get(data.Outcome, samples[0])[0]
	for _, s := range samples[1:] {
		if obs.Get(data.Outcome, s)[0] != first {
			return false
		}
	}
	return true
}

// candidateVariableSubset builds the set of variables considered for a
// split at a node: the deterministic variables are always included, then
// a Poisson(mtry)-sized sample (clamped to [1, numVars]) is drawn,
// honoring per-variable weights when configured.
func candidateVariableSubset(cfg TrainerConfig, s *sampler.Sampler, numVars int) []uint {
	included := make(map[uint]bool)
	result := make([]uint, 0, len(cfg.DeterministicVars))
	for _, v := range cfg.DeterministicVars {
		if !included[v] {
			included[v] = true
			result = append(result, v)
		}
	}

	mtrySample := s.Poisson(float64(cfg.Mtry))
	if mtrySample < 1 {
		mtrySample = 1
	}
	if mtrySample > numVars {
		mtrySample = numVars
	}

	if len(cfg.SplitSelectWeights) == 0 {
		universe := make([]uint, 0, numVars)
		for v := 0; v < numVars; v++ {
			universe = append(universe, uint(v))
		}
		skip := make(map[uint]bool, len(cfg.NoSplitVariables)+len(included))
		for _, v := range cfg.NoSplitVariables {
			skip[v] = true
		}
		for v := range included {
			skip[v] = true
		}
		result = append(result, s.DrawWithoutReplacement(universe, mtrySample, skip)...)
		return result
	}

	remaining := mtrySample - len(result)
	if remaining > 0 {
		result = append(result, s.WeightedDrawWithoutReplacement(cfg.SplitSelectVars, cfg.SplitSelectWeights, remaining, included)...)
	}
	return result
}

// partitionSamples splits a node's samples into the left/right children
// implied by a split decision: data[s, var] <= value goes left.
func partitionSamples(d *data.Data, samples []int, v uint, value float64) (left, right []int) {
	for _, s := range samples {
		if d.Get(s, int(v)) <= value {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return left, right
}
