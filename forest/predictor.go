package forest

import (
	"github.com/pbanos/grf/data"
	"github.com/pbanos/grf/prediction"
	"github.com/pbanos/grf/tree"
)

// Predictor orchestrates leaf Routing (K) and the Prediction Collector
// (L) to expose the two prediction entry points a trained forest serves.
type Predictor struct {
	Forest   *Forest
	Strategy prediction.OptimizedStrategy
}

// Predict routes every row of queryData through every tree and collects
// the resulting per-tree leaf summaries into one Prediction per row, with
// every tree contributing (no out-of-bag exclusion).
func (p Predictor) Predict(queryData *data.Data) ([]prediction.Prediction, error) {
	leafNodesByTree, valuesByTree := p.routeAll(queryData)
	c := prediction.Collector{Strategy: p.Strategy, CIGroupSize: p.Forest.CIGroupSize}
	return c.Collect(queryData.NumRows(), leafNodesByTree, valuesByTree, nil)
}

// PredictOOB routes every row of the forest's own training data through
// every tree but only lets a tree contribute to a row's prediction when
// that row was out-of-bag for that tree, so every prediction is made
// without information the tree trained on.
func (p Predictor) PredictOOB(trainingData *data.Data) ([]prediction.Prediction, error) {
	leafNodesByTree, valuesByTree := p.routeAll(trainingData)
	oobBySampleTree := make([]map[int]bool, len(p.Forest.Trees))
	for t, tr := range p.Forest.Trees {
		set := make(map[int]bool, len(tr.OOBSamples))
		for _, s := range tr.OOBSamples {
			set[s] = true
		}
		oobBySampleTree[t] = set
	}
	included := func(sample, t int) bool { return oobBySampleTree[t][sample] }
	c := prediction.Collector{Strategy: p.Strategy, CIGroupSize: p.Forest.CIGroupSize}
	return c.Collect(trainingData.NumRows(), leafNodesByTree, valuesByTree, included)
}

// PredictDefault implements the default (weight-based) prediction path
// used by forest kinds (quantile) whose point estimate can't be recovered
// from averaged per-leaf summaries: it routes every query row through
// every tree, weights the raw training samples in the leaves it hit by
// leaf co-occurrence, and hands those weights to the given strategy.
func (p Predictor) PredictDefault(queryData *data.Data, obs *data.Observations, strategy prediction.DefaultStrategy) []prediction.Prediction {
	leafNodesByTree, _ := p.routeAll(queryData)
	samplesByTree := make([][][]int, len(p.Forest.Trees))
	for t, tr := range p.Forest.Trees {
		samplesByTree[t] = tr.Samples
	}
	out := make([]prediction.Prediction, queryData.NumRows())
	for s := 0; s < queryData.NumRows(); s++ {
		rowLeaves := make([]int, len(leafNodesByTree))
		for t := range leafNodesByTree {
			rowLeaves[t] = leafNodesByTree[t][s]
		}
		weights := prediction.NeighborWeights(rowLeaves, samplesByTree)
		out[s] = prediction.Prediction{Point: strategy.Predict(weights, obs)}
	}
	return out
}

func (p Predictor) routeAll(queryData *data.Data) ([][]int, []*prediction.Values) {
	numTrees := len(p.Forest.Trees)
	leafNodesByTree := make([][]int, numTrees)
	valuesByTree := make([]*prediction.Values, numTrees)
	samples := make([]int, queryData.NumRows())
	for i := range samples {
		samples[i] = i
	}
	for t, tr := range p.Forest.Trees {
		leafNodesByTree[t] = tree.FindLeaves(queryData, tr, samples)
		valuesByTree[t] = tr.PredictionValues
	}
	return leafNodesByTree, valuesByTree
}
