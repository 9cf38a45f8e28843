package relabel

import "github.com/pbanos/grf/data"

// Instrumental computes the node-level mean-centered residuals of the
// outcome and the instrument and returns their product as the per-sample
// pseudo-response that drives splitting. The treatment role must be
// present but does not enter the product. This is a
// gradient-based approximation to the GRF instrumental-variable splitting
// criterion, simplified to keep the splitting rule a plain CART search
// over a scalar response.
type Instrumental struct{}

// Relabel implements Strategy.
func (Instrumental) Relabel(obs *data.Observations, samples []int) map[int][]float64 {
	if len(samples) == 0 || !obs.Has(data.Treatment) || !obs.Has(data.Instrument) {
		return map[int][]float64{}
	}
	var sumY, sumZ float64
	for _, s := range samples {
		sumY += obs.Get(data.Outcome, s)[0]
		sumZ += obs.Get(data.Instrument, s)[0]
	}
	n := float64(len(samples))
	meanY, meanZ := sumY/n, sumZ/n

	out := make(map[int][]float64, len(samples))
	for _, s := range samples {
		y := obs.Get(data.Outcome, s)[0]
		z := obs.Get(data.Instrument, s)[0]
		out[s] = []float64{(z - meanZ) * (y - meanY)}
	}
	return out
}
