package prediction

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pbanos/grf/data"
)

// QuantileStrategy is the default (weight-based) prediction strategy for
// quantile forests: quantile estimates can't be recovered from averaged
// per-leaf scalar summaries, so this strategy works directly from the raw
// outcomes of every sample reachable through a leaf a query row hit,
// weighted by how often that sample co-occurred with the query row
// across trees.
type QuantileStrategy struct {
	Quantiles []float64
}

// PredictionLength implements DefaultStrategy.
func (q QuantileStrategy) PredictionLength() int { return len(q.Quantiles) }

// Predict implements DefaultStrategy: builds the weighted empirical CDF
// of neighbor outcomes and reads off each configured quantile level via
// gonum's weighted quantile function.
func (q QuantileStrategy) Predict(neighborWeights map[int]float64, obs *data.Observations) []float64 {
	type wo struct {
		value  float64
		weight float64
	}
	entries := make([]wo, 0, len(neighborWeights))
	var totalWeight float64
	for sample, weight := range neighborWeights {
		if weight <= 0 {
			continue
		}
		entries = append(entries, wo{value: obs.Get(data.Outcome, sample)[0], weight: weight})
		totalWeight += weight
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].value < entries[j].value })

	values := make([]float64, len(entries))
	weights := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.value
		weights[i] = e.weight
	}

	out := make([]float64, len(q.Quantiles))
	for i, p := range q.Quantiles {
		if len(values) == 0 || totalWeight == 0 {
			out[i] = 0
			continue
		}
		out[i] = stat.Quantile(p, stat.Empirical, values, weights)
	}
	return out
}

// NeighborWeights computes the leaf co-occurrence weights a query row's
// set of hit leaves implies over the training samples populating them:
// each tree contributes weight 1/|leaf| to every sample in the leaf the
// query row routed to, and weights are summed across trees.
func NeighborWeights(leafNodesByTree []int, samplesByTree [][][]int) map[int]float64 {
	weights := make(map[int]float64)
	for t, node := range leafNodesByTree {
		samples := samplesByTree[t][node]
		if len(samples) == 0 {
			continue
		}
		w := 1 / float64(len(samples))
		for _, s := range samples {
			weights[s] += w
		}
	}
	return weights
}
