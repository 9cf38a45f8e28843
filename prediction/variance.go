package prediction

// CIGroupVariance implements the "bag of little bags" variance procedure
// of the variance-via-CI-groups design: given the average value of a
// scalar summary slot across all contributing leaves and the same slot's
// value at each individual leaf a query row hit (grouped into
// ciGroupSize-sized CI groups, with contributed[t] false for any tree that
// didn't contribute), it returns the Bayes-debiased variance estimate.
//
// Trees outside a query's contributing set must be flagged false in
// contributed so that any group with a missing slot is skipped entirely,
// per the "skip groups with any empty leaf" rule.
func CIGroupVariance(average float64, leafOutcome []float64, contributed []bool, ciGroupSize int, debiaser BayesDebiaser) float64 {
	numTrees := len(leafOutcome)
	if ciGroupSize <= 0 || numTrees == 0 {
		return 0
	}
	numGroups := numTrees / ciGroupSize

	var psiSquared, psiGroupedSquared float64
	numGoodGroups := 0
	for g := 0; g < numGroups; g++ {
		groupComplete := true
		for j := 0; j < ciGroupSize; j++ {
			if !contributed[g*ciGroupSize+j] {
				groupComplete = false
				break
			}
		}
		if !groupComplete {
			continue
		}
		var groupPsi float64
		for j := 0; j < ciGroupSize; j++ {
			psi := leafOutcome[g*ciGroupSize+j] - average
			psiSquared += psi * psi
			groupPsi += psi
		}
		groupPsi /= float64(ciGroupSize)
		psiGroupedSquared += groupPsi * groupPsi
		numGoodGroups++
	}

	if numGoodGroups == 0 {
		return 0
	}
	varBetween := psiGroupedSquared / float64(numGoodGroups)
	varTotal := psiSquared / float64(numGoodGroups*ciGroupSize)
	var groupNoise float64
	if ciGroupSize > 1 {
		groupNoise = (varTotal - varBetween) / float64(ciGroupSize-1)
	}
	return debiaser.Debias(varBetween, groupNoise, numGoodGroups)
}
