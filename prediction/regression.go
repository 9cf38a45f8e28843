package prediction

import "github.com/pbanos/grf/data"

// RegressionStrategy is the optimized prediction strategy for regression
// forests: one summary slot per leaf (the mean outcome), a scalar point
// prediction, and CI-group variance on that same slot.
//
// The reference implementation this is grounded on declares
// prediction_length() = 4 while only ever populating a 1x1 summary
// matrix, which the design notes flag as a likely bug. This
// implementation uses prediction_length = 1, matching what's actually
// computed, and does not reproduce the inconsistency.
type RegressionStrategy struct {
	CIGroupSize int
	Debiaser    BayesDebiaser
}

// PredictionLength implements OptimizedStrategy.
func (RegressionStrategy) PredictionLength() int { return 1 }

// PredictionValueLength implements OptimizedStrategy.
func (RegressionStrategy) PredictionValueLength() int { return 1 }

// PrecomputePredictionValues implements OptimizedStrategy: for every
// leaf, stores the 1x1 mean-outcome summary.
func (RegressionStrategy) PrecomputePredictionValues(leafSamples map[int][]int, obs *data.Observations) *Values {
	v := NewValues(0, 1)
	for node, samples := range leafSamples {
		if len(samples) == 0 {
			continue
		}
		var sum float64
		for _, s := range samples {
			sum += obs.Get(data.Outcome, s)[0]
		}
		v.Set(node, [][]float64{{sum / float64(len(samples))}})
	}
	return v
}

// Predict implements OptimizedStrategy: the point prediction is simply
// the averaged mean-outcome slot.
func (RegressionStrategy) Predict(average [][]float64) []float64 {
	return []float64{average[0][0]}
}

// ComputeVariance implements OptimizedStrategy via the shared CI-group
// procedure on the mean-outcome slot.
func (r RegressionStrategy) ComputeVariance(average [][]float64, leafValues [][][]float64, ciGroupSize int) []float64 {
	outcome := make([]float64, len(leafValues))
	contributed := make([]bool, len(leafValues))
	for t, tuple := range leafValues {
		if tuple == nil {
			continue
		}
		outcome[t] = tuple[0][0]
		contributed[t] = true
	}
	return []float64{CIGroupVariance(average[0][0], outcome, contributed, ciGroupSize, r.Debiaser)}
}
