package prediction

import "github.com/pbanos/grf/data"

// InstrumentalStrategy is the optimized prediction strategy for
// instrumental/causal forests. Six summary slots are stored per leaf
// (mean Y, mean W, mean Z, mean ZY, mean ZW, and the leaf's own local
// Wald estimate); only the first five are averaged across leaves to
// produce the point estimate, since averaging a ratio across leaves
// would not recover the forest-level ratio of averages. The sixth slot
// exists purely so the shared CI-group variance procedure has a scalar
// summary to run on, exactly as it runs on mean-outcome for regression.
type InstrumentalStrategy struct {
	CIGroupSize int
	Debiaser    BayesDebiaser
}

const (
	slotMeanY = iota
	slotMeanW
	slotMeanZ
	slotMeanZY
	slotMeanZW
	slotLocalTau
	numInstrumentalSlots
)

// PredictionLength implements OptimizedStrategy.
func (InstrumentalStrategy) PredictionLength() int { return 1 }

// PredictionValueLength implements OptimizedStrategy.
func (InstrumentalStrategy) PredictionValueLength() int { return numInstrumentalSlots }

// PrecomputePredictionValues implements OptimizedStrategy.
func (InstrumentalStrategy) PrecomputePredictionValues(leafSamples map[int][]int, obs *data.Observations) *Values {
	v := NewValues(0, numInstrumentalSlots)
	for node, samples := range leafSamples {
		if len(samples) == 0 {
			continue
		}
		var sumY, sumW, sumZ, sumZY, sumZW float64
		for _, s := range samples {
			y := obs.Get(data.Outcome, s)[0]
			w := obs.Get(data.Treatment, s)[0]
			z := obs.Get(data.Instrument, s)[0]
			sumY += y
			sumW += w
			sumZ += z
			sumZY += z * y
			sumZW += z * w
		}
		n := float64(len(samples))
		meanY, meanW, meanZ, meanZY, meanZW := sumY/n, sumW/n, sumZ/n, sumZY/n, sumZW/n
		tau := waldEstimate(meanZ, meanY, meanW, meanZY, meanZW)
		v.Set(node, [][]float64{
			{meanY}, {meanW}, {meanZ}, {meanZY}, {meanZW}, {tau},
		})
	}
	return v
}

func waldEstimate(meanZ, meanY, meanW, meanZY, meanZW float64) float64 {
	denom := meanZW - meanZ*meanW
	if denom == 0 {
		return 0
	}
	return (meanZY - meanZ*meanY) / denom
}

// Predict implements OptimizedStrategy: the treatment effect estimate is
// recomputed from the five averaged moment slots, not by averaging the
// per-leaf local estimates.
func (InstrumentalStrategy) Predict(average [][]float64) []float64 {
	meanY := average[slotMeanY][0]
	meanW := average[slotMeanW][0]
	meanZ := average[slotMeanZ][0]
	meanZY := average[slotMeanZY][0]
	meanZW := average[slotMeanZW][0]
	return []float64{waldEstimate(meanZ, meanY, meanW, meanZY, meanZW)}
}

// ComputeVariance implements OptimizedStrategy using the leaf-local Wald
// estimate slot as the scalar summary the CI-group procedure runs on.
func (i InstrumentalStrategy) ComputeVariance(average [][]float64, leafValues [][][]float64, ciGroupSize int) []float64 {
	tau := make([]float64, len(leafValues))
	contributed := make([]bool, len(leafValues))
	for t, tuple := range leafValues {
		if tuple == nil {
			continue
		}
		tau[t] = tuple[slotLocalTau][0]
		contributed[t] = true
	}
	avgTau := i.Predict(average)[0]
	return []float64{CIGroupVariance(avgTau, tau, contributed, ciGroupSize, i.Debiaser)}
}
