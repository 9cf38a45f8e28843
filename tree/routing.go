package tree

import "github.com/pbanos/grf/data"

// FindLeaf routes sample through the tree from the root, branching left
// when data[sample, split_var] <= split_value and right otherwise, until
// a leaf is reached. Go's IEEE-754 comparisons already send NaN feature
// values to the right child (NaN <= x is false for any x), matching the
// reference routing behavior without any special-casing.
func FindLeaf(d *data.Data, t *Tree, sample int) int {
	n := 0
	for !t.IsLeaf(n) {
		if d.Get(sample, t.SplitVar[n]) <= t.SplitValue[n] {
			n = t.LeftChild[n]
		} else {
			n = t.RightChild[n]
		}
	}
	return n
}

// FindLeaves routes every sample in samples and returns the resulting
// leaf node ids in the same order.
func FindLeaves(d *data.Data, t *Tree, samples []int) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = FindLeaf(d, t, s)
	}
	return out
}
