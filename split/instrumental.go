package split

import "github.com/pbanos/grf/data"

// Instrumental performs the same CART-style search as Regression but over
// the mean-centered instrument-outcome product relabel.Instrumental
// produces.
type Instrumental struct {
	Alpha float64
}

// FindBestSplit implements Rule.
func (i Instrumental) FindBestSplit(d *data.Data, samples []int, vars []uint, responses map[int][]float64, minChildSize uint) Result {
	return varianceReductionSearch(d, samples, vars, responses, minChildSize, i.Alpha)
}
