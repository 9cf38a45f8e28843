package relabel

import (
	"sort"

	"github.com/pbanos/grf/data"
)

// Quantile buckets each sample's outcome into the quantile bin implied by
// the node's own outcome distribution, producing an indicator vector over
// bins (one entry is 1, the rest 0). This drives a Gini-style splitting
// criterion in place of variance reduction, the way a classification tree
// splits on indicator labels.
type Quantile struct {
	Quantiles []float64 // e.g. []float64{0.1, 0.5, 0.9}
}

// Relabel implements Strategy.
func (q Quantile) Relabel(obs *data.Observations, samples []int) map[int][]float64 {
	if len(samples) == 0 || len(q.Quantiles) == 0 {
		return map[int][]float64{}
	}
	outcomes := make([]float64, len(samples))
	for i, s := range samples {
		outcomes[i] = obs.Get(data.Outcome, s)[0]
	}
	sorted := append([]float64{}, outcomes...)
	sort.Float64s(sorted)

	cutoffs := make([]float64, len(q.Quantiles))
	for i, p := range q.Quantiles {
		cutoffs[i] = quantileOf(sorted, p)
	}

	numBins := len(cutoffs) + 1
	out := make(map[int][]float64, len(samples))
	for i, s := range samples {
		bin := 0
		for bin < len(cutoffs) && outcomes[i] > cutoffs[bin] {
			bin++
		}
		indicator := make([]float64, numBins)
		indicator[bin] = 1
		out[s] = indicator
	}
	return out
}

// quantileOf returns the p-quantile of sorted (already ascending) via
// linear interpolation between the two closest ranks.
func quantileOf(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
