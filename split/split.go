// Package split implements the splitting-rule contract (component E):
// given candidate variables and relabeled responses, choose the best
// split variable and threshold at a node.
package split

import (
	"math"
	"sort"

	"github.com/pbanos/grf/data"
)

// Result is the returned record a splitting rule hands back to the tree
// trainer, replacing the source's split_vars/split_values out-parameters
// with a small value the trainer itself writes into its arrays.
type Result struct {
	Var      uint
	Value    float64
	Improved bool
}

// Rule searches for the best split at a node given the samples present,
// the candidate variables to consider, and their relabeled responses.
// Implementations MUST consider only vars, honor minChildSize, and set
// Value >= 0 with Improved = true on success.
type Rule interface {
	FindBestSplit(d *data.Data, samples []int, vars []uint, responses map[int][]float64, minChildSize uint) Result
}

// varianceReductionSearch is the CART-style scan shared by every concrete
// Rule in this package: for each candidate variable, sort the node's
// samples by that variable's value and sweep the resulting cut points,
// picking the one that maximizes the (vector) variance reduction while
// respecting the minimum child size and an imbalance regularization
// fraction. Thresholds fall at the midpoint of consecutive distinct
// values, the way the teacher's continuous-feature partition search picks
// cut points between sorted sample values.
func varianceReductionSearch(d *data.Data, samples []int, vars []uint, responses map[int][]float64, minChildSize uint, alpha float64) Result {
	best := Result{}
	bestScore := math.Inf(-1)

	for _, v := range vars {
		type pair struct {
			value    float64
			response []float64
		}
		pairs := make([]pair, 0, len(samples))
		for _, s := range samples {
			r, ok := responses[s]
			if !ok {
				continue
			}
			pairs = append(pairs, pair{value: d.Get(s, int(v)), response: r})
		}
		if len(pairs) < 2 {
			continue
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].value < pairs[j].value })

		dim := len(pairs[0].response)
		totalSum := make([]float64, dim)
		for _, p := range pairs {
			for k, x := range p.response {
				totalSum[k] += x
			}
		}

		leftSum := make([]float64, dim)
		n := len(pairs)
		minSide := minChildSize
		if alphaMin := uint(alpha * float64(n)); alphaMin > minSide {
			minSide = alphaMin
		}
		for i := 0; i < n-1; i++ {
			for k, x := range pairs[i].response {
				leftSum[k] += x
			}
			nLeft := i + 1
			nRight := n - nLeft
			if pairs[i].value == pairs[i+1].value {
				continue
			}
			if uint(nLeft) < minSide || uint(nRight) < minSide {
				continue
			}
			score := 0.0
			for k := 0; k < dim; k++ {
				rightSum := totalSum[k] - leftSum[k]
				score += leftSum[k]*leftSum[k]/float64(nLeft) + rightSum*rightSum/float64(nRight)
			}
			if score > bestScore {
				bestScore = score
				best = Result{
					Var:      v,
					Value:    (pairs[i].value + pairs[i+1].value) / 2,
					Improved: true,
				}
			}
		}
	}
	return best
}
