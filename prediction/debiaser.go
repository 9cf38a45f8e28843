package prediction

import "math"

// BayesDebiaser turns a raw between-group variance estimate and its
// associated sampling noise into a non-negative variance estimate,
// shrinking var_between toward zero in proportion to how much of it is
// plausibly just group_noise rather than signal. The reference's exact
// closed form wasn't available to ground this on; this implementation is
// an objective-Bayes shrinkage estimator satisfying the two properties
// the rest of the pipeline depends on: it is non-negative, and it
// degrades gracefully to var_between itself as group_noise -> 0.
//
// The estimator treats var_between as a noisy observation of the true
// between-group variance with sampling variance group_noise/num_groups,
// and shrinks it using a Stein-style positive-part estimator: it
// subtracts off the expected bias contributed by the noise term and
// floors the result at zero.
type BayesDebiaser struct{}

// Debias returns the debiased variance given the raw between-group
// variance, the per-group sampling noise, and the number of groups that
// contributed. With numGoodGroups <= 1 there's no between-group
// information to debias, so the noise-free var_between is returned as-is
// (floored at zero).
func (BayesDebiaser) Debias(varBetween, groupNoise float64, numGoodGroups int) float64 {
	if numGoodGroups <= 1 {
		return math.Max(varBetween, 0)
	}
	bias := groupNoise / float64(numGoodGroups)
	debiased := varBetween - bias
	return math.Max(debiased, 0)
}
