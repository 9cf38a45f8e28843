package forest

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/pbanos/grf/config"
	"github.com/pbanos/grf/data"
	"github.com/pbanos/grf/prediction"
	"github.com/pbanos/grf/relabel"
	"github.com/pbanos/grf/split"
)

func regressionDataset(t *testing.T, n int) (*data.Data, *data.Observations) {
	rows := make([][]float64, n)
	outcomes := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		rows[i] = []float64{x}
		if x < float64(n)/2 {
			outcomes[i] = 0
		} else {
			outcomes[i] = 100
		}
	}
	d, err := data.New(rows)
	require.NoError(t, err)
	obs := data.NewObservations(map[data.Role]*mat.Dense{
		data.Outcome: mat.NewDense(n, 1, outcomes),
	})
	return d, obs
}

func TestTrainAndPredictRegressionForest(t *testing.T) {
	d, obs := regressionDataset(t, 40)
	cfg := config.Default()
	cfg.NumTrees = 10
	cfg.CIGroupSize = 1
	cfg.Mtry = 1
	cfg.Seed = 11

	f, err := Train(cfg, d, obs, relabel.Regression{}, split.Regression{}, prediction.RegressionStrategy{})
	require.NoError(t, err)
	assert.Len(t, f.Trees, 10)

	predictor := Predictor{Forest: f, Strategy: prediction.RegressionStrategy{}}
	preds, err := predictor.Predict(d)
	require.NoError(t, err)
	require.Len(t, preds, 40)
	assert.Less(t, preds[0].Point[0], 50.0)
	assert.Greater(t, preds[39].Point[0], 50.0)
}

func TestOOBCompletenessAcrossTrees(t *testing.T) {
	d, obs := regressionDataset(t, 20)
	cfg := config.Default()
	cfg.NumTrees = 5
	cfg.CIGroupSize = 1
	cfg.Mtry = 1
	cfg.SampleFraction = 0.5
	cfg.Seed = 3

	f, err := Train(cfg, d, obs, relabel.Regression{}, split.Regression{}, prediction.RegressionStrategy{})
	require.NoError(t, err)
	for _, tr := range f.Trees {
		seen := map[int]bool{}
		total := len(tr.OOBSamples)
		for _, s := range tr.OOBSamples {
			seen[s] = true
		}
		// Every tree's OOB set plus its (implicit) training subsample
		// partitions the full sample range; check OOB alone is
		// duplicate-free and within range.
		assert.Equal(t, total, len(seen))
		for s := range seen {
			assert.GreaterOrEqual(t, s, 0)
			assert.Less(t, s, 20)
		}
	}
}

func TestPredictOOBOnlyUsesTreesThatHeldOutEachRow(t *testing.T) {
	d, obs := regressionDataset(t, 20)
	cfg := config.Default()
	cfg.NumTrees = 8
	cfg.CIGroupSize = 1
	cfg.Mtry = 1
	cfg.SampleFraction = 0.5
	cfg.Seed = 5
	// Fully grown, non-honest trees split at the boundary between the two
	// outcome levels, so each tree's contribution depends on the row.
	cfg.MinNodeSize = 1
	cfg.Honesty = false

	f, err := Train(cfg, d, obs, relabel.Regression{}, split.Regression{}, prediction.RegressionStrategy{})
	require.NoError(t, err)

	predictor := Predictor{Forest: f, Strategy: prediction.RegressionStrategy{}}
	preds, err := predictor.PredictOOB(d)
	require.NoError(t, err)
	require.Len(t, preds, 20)
	assert.Less(t, preds[0].Point[0], 50.0)
	assert.Greater(t, preds[19].Point[0], 50.0)
}

func TestConfigValidationRejectsZeroCIGroupSize(t *testing.T) {
	d, obs := regressionDataset(t, 5)
	cfg := config.Default()
	cfg.CIGroupSize = 0
	_, err := Train(cfg, d, obs, relabel.Regression{}, split.Regression{}, prediction.RegressionStrategy{})
	assert.Error(t, err)
}

func TestForestSerializationRoundTrip(t *testing.T) {
	d, obs := regressionDataset(t, 20)
	cfg := config.Default()
	cfg.NumTrees = 3
	cfg.CIGroupSize = 1
	cfg.Mtry = 1
	cfg.Seed = 9

	f, err := Train(cfg, d, obs, relabel.Regression{}, split.Regression{}, prediction.RegressionStrategy{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Save(&buf))

	loaded, err := Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, loaded.Trees, len(f.Trees))
	for i, tr := range f.Trees {
		assert.Equal(t, tr.SplitVar, loaded.Trees[i].SplitVar)
		assert.Equal(t, tr.SplitValue, loaded.Trees[i].SplitValue)
		assert.Equal(t, tr.Samples, loaded.Trees[i].Samples)
	}
}

func TestEmptyPredictionWhenNoLeafContributes(t *testing.T) {
	strategy := prediction.RegressionStrategy{}
	c := prediction.Collector{Strategy: strategy}
	preds, err := c.Collect(1, [][]int{}, []*prediction.Values{}, nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(preds[0].Point[0]))
}
