// Package tree implements the Tree (component G), the honest recursive
// Tree Trainer (component H), and leaf Routing (component K).
package tree

import "github.com/pbanos/grf/prediction"

// Tree is a binary tree of split decisions stored as parallel arrays
// indexed by dense node id, the array-based representation the data
// model prefers over pointer-linked nodes: it avoids ownership cycles and
// lets node arrays traverse and serialize in plain id order.
//
// Node 0 is always the root. For every internal node n, SplitValue[n] is
// >= 0 and both LeftChild[n] and RightChild[n] are valid node ids
// strictly greater than n. A leaf has SplitValue[n] == terminalSplitValue;
// its Samples entry is the (possibly empty, if pruned) set of samples
// that ended up there.
type Tree struct {
	LeftChild  []int
	RightChild []int
	SplitVar   []int
	SplitValue []float64
	Samples    [][]int

	// OOBSamples holds the samples withheld from this tree's training
	// subsample, set by the forest trainer once the bootstrap subsample
	// for this tree is known.
	OOBSamples []int

	// PredictionValues is the leaf summary store attached once, at the
	// end of tree construction.
	PredictionValues *prediction.Values
}

// terminalSplitValue is the sentinel marking a node as a leaf.
const terminalSplitValue = -1.0

// IsLeaf reports whether node n is a terminal node.
func (t *Tree) IsLeaf(n int) bool {
	return t.SplitValue[n] == terminalSplitValue
}

// NumNodes returns the number of nodes in the tree.
func (t *Tree) NumNodes() int {
	return len(t.SplitValue)
}

// LeafSamples returns a map from leaf node id to its current sample set,
// skipping leaves left with no samples after pruning.
func (t *Tree) LeafSamples() map[int][]int {
	out := make(map[int][]int)
	for n := 0; n < t.NumNodes(); n++ {
		if t.IsLeaf(n) && len(t.Samples[n]) > 0 {
			out[n] = t.Samples[n]
		}
	}
	return out
}

func (t *Tree) createEmptyNode() int {
	id := len(t.SplitValue)
	t.LeftChild = append(t.LeftChild, 0)
	t.RightChild = append(t.RightChild, 0)
	t.SplitVar = append(t.SplitVar, -1)
	t.SplitValue = append(t.SplitValue, 0)
	t.Samples = append(t.Samples, nil)
	return id
}
