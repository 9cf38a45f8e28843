package split

import "github.com/pbanos/grf/data"

// Quantile reuses the variance-reduction search over the indicator-vector
// responses relabel.Quantile produces, which is equivalent to a
// multi-class Gini-reduction search since each response is a one-hot bin
// indicator.
type Quantile struct {
	Alpha float64
}

// FindBestSplit implements Rule.
func (q Quantile) FindBestSplit(d *data.Data, samples []int, vars []uint, responses map[int][]float64, minChildSize uint) Result {
	return varianceReductionSearch(d, samples, vars, responses, minChildSize, q.Alpha)
}
