package prediction

import "github.com/pbanos/grf/grferrors"

// Collector implements the optimized prediction collector (component L):
// for each query row, it walks every tree's leaf summary, averages the
// per-type tuples across hit leaves, and hands the average to the
// strategy to produce a point prediction and, when requested, a variance
// estimate.
type Collector struct {
	Strategy    OptimizedStrategy
	CIGroupSize int
}

// Collect computes one Prediction per query row. leafNodesByTree[t][s] is
// the leaf node id row s routed to under tree t; valuesByTree[t] is that
// tree's precomputed leaf summaries; included, if non-nil, reports
// whether tree t should contribute to row s's prediction (this is how
// out-of-bag prediction excludes trees that trained on a given sample).
func (c Collector) Collect(numQueryRows int, leafNodesByTree [][]int, valuesByTree []*Values, included func(sample, tree int) bool) ([]Prediction, error) {
	numTrees := len(leafNodesByTree)
	k := c.Strategy.PredictionLength()
	out := make([]Prediction, numQueryRows)

	needVariance := c.CIGroupSize > 1

	for s := 0; s < numQueryRows; s++ {
		var combinedAverage [][]float64
		var leafValues [][][]float64
		var contributed []bool
		if needVariance {
			leafValues = make([][][]float64, numTrees)
			contributed = make([]bool, numTrees)
		}
		numLeaves := 0

		for t := 0; t < numTrees; t++ {
			if included != nil && !included(s, t) {
				continue
			}
			node := leafNodesByTree[t][s]
			values := valuesByTree[t]
			if values == nil || values.Empty(node) {
				continue
			}
			tuple := values.Get(node)
			if combinedAverage == nil {
				combinedAverage = make([][]float64, len(tuple))
				for i, slot := range tuple {
					combinedAverage[i] = make([]float64, len(slot))
				}
			}
			for i, slot := range tuple {
				for j, x := range slot {
					combinedAverage[i][j] += x
				}
			}
			if needVariance {
				leafValues[t] = tuple
				contributed[t] = true
			}
			numLeaves++
		}

		if numLeaves == 0 {
			out[s] = Prediction{Point: nanVector(k)}
			continue
		}
		for i := range combinedAverage {
			for j := range combinedAverage[i] {
				combinedAverage[i][j] /= float64(numLeaves)
			}
		}

		point := c.Strategy.Predict(combinedAverage)
		if len(point) != k {
			return nil, &grferrors.ShapeMismatch{Expected: k, Actual: len(point)}
		}
		pred := Prediction{Point: point}
		if needVariance {
			pred.Variance = c.Strategy.ComputeVariance(combinedAverage, leafValues, c.CIGroupSize)
		}
		out[s] = pred
	}
	return out, nil
}
