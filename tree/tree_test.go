package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	grfdata "github.com/pbanos/grf/data"
	"github.com/pbanos/grf/prediction"
	"github.com/pbanos/grf/relabel"
	"github.com/pbanos/grf/sampler"
	"github.com/pbanos/grf/split"
)

func clusteredDataset(t *testing.T) (*grfdata.Data, *grfdata.Observations) {
	rows := [][]float64{{0}, {1}, {2}, {10}, {11}, {12}}
	d, err := grfdata.New(rows)
	require.NoError(t, err)
	outcomes := []float64{0, 1, 2, 10, 11, 12}
	obs := grfdata.NewObservations(map[grfdata.Role]*mat.Dense{
		grfdata.Outcome: mat.NewDense(len(outcomes), 1, outcomes),
	})
	return d, obs
}

func TestTrainBuildsASplitSeparatingClusters(t *testing.T) {
	d, obs := clusteredDataset(t)
	tr := Trainer{
		Config: TrainerConfig{
			MinNodeSize: 3,
			Mtry:        1,
			Honesty:     false,
		},
		Relabeler: relabel.Regression{},
		Splitter:  split.Regression{},
		Strategy:  prediction.RegressionStrategy{},
	}
	s := sampler.New(1)
	tree := tr.Train(d, obs, s, []int{0, 1, 2, 3, 4, 5})
	assert.False(t, tree.IsLeaf(0))
	assert.True(t, tree.IsLeaf(tree.LeftChild[0]))
	assert.True(t, tree.IsLeaf(tree.RightChild[0]))
}

func TestPureNodeStopsWithoutSplitting(t *testing.T) {
	rows := [][]float64{{0}, {1}, {2}}
	d, err := grfdata.New(rows)
	require.NoError(t, err)
	outcomes := []float64{7, 7, 7}
	obs := grfdata.NewObservations(map[grfdata.Role]*mat.Dense{
		grfdata.Outcome: mat.NewDense(3, 1, outcomes),
	})
	tr := Trainer{
		Config:    TrainerConfig{MinNodeSize: 1, Mtry: 1},
		Relabeler: relabel.Regression{},
		Splitter:  split.Regression{},
		Strategy:  prediction.RegressionStrategy{},
	}
	s := sampler.New(1)
	tree := tr.Train(d, obs, s, []int{0, 1, 2})
	assert.True(t, tree.IsLeaf(0))
	assert.Equal(t, []int{0, 1, 2}, tree.Samples[0])
}

func TestMinNodeSizeStopsSplitting(t *testing.T) {
	rows := [][]float64{{0}, {1}, {2}, {3}, {10}}
	d, err := grfdata.New(rows)
	require.NoError(t, err)
	outcomes := []float64{0, 0, 0, 0, 10}
	obs := grfdata.NewObservations(map[grfdata.Role]*mat.Dense{
		grfdata.Outcome: mat.NewDense(5, 1, outcomes),
	})
	tr := Trainer{
		Config:    TrainerConfig{MinNodeSize: 5, Mtry: 1},
		Relabeler: relabel.Regression{},
		Splitter:  split.Regression{},
		Strategy:  prediction.RegressionStrategy{},
	}
	s := sampler.New(1)
	tree := tr.Train(d, obs, s, []int{0, 1, 2, 3, 4})
	assert.True(t, tree.IsLeaf(0))
}

func TestHonestySeparatesSplitAndLeafSamples(t *testing.T) {
	d, obs := clusteredDataset(t)
	tr := Trainer{
		Config: TrainerConfig{
			MinNodeSize:     1,
			Mtry:            1,
			Honesty:         true,
			HonestyFraction: 0.5,
		},
		Relabeler: relabel.Regression{},
		Splitter:  split.Regression{},
		Strategy:  prediction.RegressionStrategy{},
	}
	s := sampler.New(7)
	tree := tr.Train(d, obs, s, []int{0, 1, 2, 3, 4, 5})
	total := 0
	for _, samples := range tree.LeafSamples() {
		total += len(samples)
	}
	assert.Equal(t, 3, total, "only the held-out honesty half should repopulate the leaves")
}

func TestFindLeafRoutesByThreshold(t *testing.T) {
	tr := &Tree{
		LeftChild:  []int{1, 0, 0},
		RightChild: []int{2, 0, 0},
		SplitVar:   []int{0, -1, -1},
		SplitValue: []float64{5, -1, -1},
		Samples:    [][]int{nil, {0}, {1}},
	}
	d, err := grfdata.New([][]float64{{1}, {9}})
	require.NoError(t, err)
	assert.Equal(t, 1, FindLeaf(d, tr, 0))
	assert.Equal(t, 2, FindLeaf(d, tr, 1))
}
