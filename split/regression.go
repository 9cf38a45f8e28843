package split

import "github.com/pbanos/grf/data"

// Regression is a CART variance-reduction splitting rule over the scalar
// relabeled response, matching the reference regression splitting rule's
// criterion.
type Regression struct {
	// Alpha imposes a minimum fraction of parent samples each child must
	// retain, the imbalance regularization named in the config record.
	Alpha float64
}

// FindBestSplit implements Rule.
func (r Regression) FindBestSplit(d *data.Data, samples []int, vars []uint, responses map[int][]float64, minChildSize uint) Result {
	return varianceReductionSearch(d, samples, vars, responses, minChildSize, r.Alpha)
}
