package prediction

import "github.com/pbanos/grf/data"

// OptimizedStrategy is the training-time-precompute, inference-time-
// average-and-predict contract (component F, optimized layer). It MUST be
// immutable after construction so it can be shared across worker
// goroutines.
type OptimizedStrategy interface {
	// PredictionLength is the length k of the point-prediction vector.
	PredictionLength() int
	// PredictionValueLength is the number of summary-matrix slots (m)
	// stored per leaf.
	PredictionValueLength() int
	// PrecomputePredictionValues computes, for every leaf, the tuple of
	// summary vectors later averaged at inference time.
	PrecomputePredictionValues(leafSamples map[int][]int, obs *data.Observations) *Values
	// Predict computes the length-k point prediction from the per-type
	// average over hit leaves.
	Predict(average [][]float64) []float64
	// ComputeVariance computes the length-k variance vector from the
	// average and the individual per-tree leaf tuples (indexed by tree
	// position, nil where a tree didn't contribute), per the bag of
	// little bags procedure.
	ComputeVariance(average [][]float64, leafValues [][][]float64, ciGroupSize int) []float64
}

// DefaultStrategy is the weight-based prediction contract used when
// per-leaf summaries alone can't recover the estimate (e.g. quantiles):
// it predicts directly from the raw outcomes of every sample reachable
// through a leaf a query row hit, weighted by leaf co-occurrence.
type DefaultStrategy interface {
	// PredictionLength is the length k of the point-prediction vector.
	PredictionLength() int
	// Predict computes the point prediction from neighbor sample ids
	// weighted by their co-occurrence-derived weight.
	Predict(neighborWeights map[int]float64, obs *data.Observations) []float64
}
