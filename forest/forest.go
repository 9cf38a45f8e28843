// Package forest implements the Forest (component I), the parallel
// Forest Trainer (component J), and the Forest Predictor (component O)
// that ties routing and collection together.
package forest

import (
	"github.com/pbanos/grf/data"
	"github.com/pbanos/grf/tree"
)

// Forest is an ordered collection of trees sharing one observations
// table. Tree order MUST match tree index assignment, not completion
// order, since out-of-bag masks are keyed by tree index.
type Forest struct {
	Observations *data.Observations
	Trees        []*tree.Tree
	CIGroupSize  int
}

// NumTrees returns the number of trees in the forest.
func (f *Forest) NumTrees() int {
	return len(f.Trees)
}
