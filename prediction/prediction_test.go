package prediction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/pbanos/grf/data"
)

func TestRegressionPrecomputeYieldsArithmeticMean(t *testing.T) {
	outcomes := []float64{-9.99984, -7.36924, 5.11211, -0.826997, 0.655345, -5.62082, -9.05911, 3.57729, 3.58593, 8.69386}
	obs := data.NewObservations(map[data.Role]*mat.Dense{
		data.Outcome: mat.NewDense(len(outcomes), 1, outcomes),
	})
	samples := make([]int, len(outcomes))
	for i := range samples {
		samples[i] = i
	}
	strategy := RegressionStrategy{}
	values := strategy.PrecomputePredictionValues(map[int][]int{0: samples}, obs)
	mean := stat64Mean(outcomes)
	assert.InDelta(t, mean, values.Get(0)[0][0], 1e-9)
}

func stat64Mean(vs []float64) float64 {
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func TestCollectorEmitsNaNWhenNoLeavesContribute(t *testing.T) {
	strategy := RegressionStrategy{}
	values := NewValues(0, 1)
	c := Collector{Strategy: strategy}
	preds, err := c.Collect(1, [][]int{{0}}, []*Values{values}, nil)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.True(t, math.IsNaN(preds[0].Point[0]))
	assert.Nil(t, preds[0].Variance)
}

func TestCollectorAveragesAcrossTrees(t *testing.T) {
	strategy := RegressionStrategy{}
	v1 := NewValues(0, 1)
	v1.Set(0, [][]float64{{1}})
	v2 := NewValues(0, 1)
	v2.Set(0, [][]float64{{3}})
	c := Collector{Strategy: strategy}
	preds, err := c.Collect(1, [][]int{{0}, {0}}, []*Values{v1, v2}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, preds[0].Point[0], 1e-9)
}

func TestCollectorHonorsInclusionMask(t *testing.T) {
	strategy := RegressionStrategy{}
	v1 := NewValues(0, 1)
	v1.Set(0, [][]float64{{1}})
	v2 := NewValues(0, 1)
	v2.Set(0, [][]float64{{99}})
	c := Collector{Strategy: strategy}
	included := func(sample, tree int) bool { return tree == 0 }
	preds, err := c.Collect(1, [][]int{{0}, {0}}, []*Values{v1, v2}, included)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, preds[0].Point[0], 1e-9)
}

func TestGroupVarianceMatchesWorkedExample(t *testing.T) {
	average := 0.0
	leafOutcome := []float64{1, 1, -1, -1}
	contributed := []bool{true, true, true, true}
	v := CIGroupVariance(average, leafOutcome, contributed, 2, BayesDebiaser{})
	// var_between = 1, var_total = 1, group_noise = 0, so nothing is shrunk.
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestBayesDebiaserIsNonNegative(t *testing.T) {
	d := BayesDebiaser{}
	assert.Equal(t, 0.0, d.Debias(-5, 3, 4))
	assert.GreaterOrEqual(t, d.Debias(10, 1, 4), 0.0)
}

func TestQuantileStrategyPredictsMedianOfLeaf(t *testing.T) {
	outcomes := []float64{1, 2, 3, 4, 5}
	obs := data.NewObservations(map[data.Role]*mat.Dense{
		data.Outcome: mat.NewDense(len(outcomes), 1, outcomes),
	})
	weights := map[int]float64{0: 1, 1: 1, 2: 1, 3: 1, 4: 1}
	strategy := QuantileStrategy{Quantiles: []float64{0.5}}
	out := strategy.Predict(weights, obs)
	assert.InDelta(t, 3.0, out[0], 1e-9)
}
