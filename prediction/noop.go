package prediction

import "github.com/pbanos/grf/data"

// NoopOptimizedStrategy satisfies OptimizedStrategy for forests that
// predict through the default (weight-based) strategy instead: training
// still calls precompute_prediction_values per the tree trainer's
// contract, but there's nothing to precompute since the default strategy
// reads leaf sample membership directly rather than a leaf summary.
type NoopOptimizedStrategy struct{}

// PredictionLength implements OptimizedStrategy.
func (NoopOptimizedStrategy) PredictionLength() int { return 0 }

// PredictionValueLength implements OptimizedStrategy.
func (NoopOptimizedStrategy) PredictionValueLength() int { return 0 }

// PrecomputePredictionValues implements OptimizedStrategy: returns an
// empty store, since the default strategy never consults it.
func (NoopOptimizedStrategy) PrecomputePredictionValues(leafSamples map[int][]int, obs *data.Observations) *Values {
	return NewValues(0, 0)
}

// Predict implements OptimizedStrategy; never called through the
// collector for a forest that predicts via the default strategy.
func (NoopOptimizedStrategy) Predict(average [][]float64) []float64 { return nil }

// ComputeVariance implements OptimizedStrategy; never called through the
// collector for a forest that predicts via the default strategy.
func (NoopOptimizedStrategy) ComputeVariance(average [][]float64, leafValues [][][]float64, ciGroupSize int) []float64 {
	return nil
}
