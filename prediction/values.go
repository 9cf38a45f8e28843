// Package prediction implements the prediction-strategy, prediction
// collector, prediction value store, and Bayes debiaser contracts
// (components F, L, M, N).
package prediction

// Values is the per-tree store of precomputed leaf summaries: for every
// leaf node id, either nothing (no summary — a pruned or never-visited
// leaf) or a tuple of NumTypes vectors of fixed width per type, matching
// the (values, num_nodes, num_types) triple named in the data model.
type Values struct {
	byNode   map[int][][]float64
	numNodes int
	numTypes int
}

// NewValues allocates an empty store sized for numNodes nodes and
// numTypes summary slots per leaf.
func NewValues(numNodes, numTypes int) *Values {
	return &Values{byNode: make(map[int][][]float64), numNodes: numNodes, numTypes: numTypes}
}

// Set attaches a tuple of summary vectors to a leaf node id. The tuple
// must have NumTypes entries.
func (v *Values) Set(node int, tuple [][]float64) {
	v.byNode[node] = tuple
}

// Get returns the tuple attached to node, or nil if absent.
func (v *Values) Get(node int) [][]float64 {
	return v.byNode[node]
}

// Empty reports whether node carries no summary, per the data model's
// empty(node) predicate.
func (v *Values) Empty(node int) bool {
	return len(v.byNode[node]) == 0
}

// NumNodes returns the node-array length this store was sized for.
func (v *Values) NumNodes() int { return v.numNodes }

// NumTypes returns the number of summary slots stored per leaf.
func (v *Values) NumTypes() int { return v.numTypes }
