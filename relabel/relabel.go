// Package relabel implements the relabeling-strategy contract (component
// D): given a candidate node's samples, produce the per-sample response
// vectors the splitting rule searches over.
package relabel

import "github.com/pbanos/grf/data"

// Strategy maps a node's samples into pseudo-responses. Returning an
// empty map signals "do not split this node." Strategies are immutable
// after construction and MUST be safe to share across worker goroutines.
type Strategy interface {
	// Relabel returns sample_id -> response vector for the given samples.
	Relabel(obs *data.Observations, samples []int) map[int][]float64
}

// Regression is the identity relabeling strategy: every sample's response
// is its own scalar outcome, unchanged. It is the strategy regression
// forests use, since CART variance-reduction splitting operates directly
// on the outcome.
type Regression struct{}

// Relabel implements Strategy.
func (Regression) Relabel(obs *data.Observations, samples []int) map[int][]float64 {
	out := make(map[int][]float64, len(samples))
	for _, s := range samples {
		out[s] = obs.Get(data.Outcome, s)
	}
	return out
}
