package relabel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/pbanos/grf/data"
)

func observationsWithOutcome(values ...float64) *data.Observations {
	return data.NewObservations(map[data.Role]*mat.Dense{
		data.Outcome: mat.NewDense(len(values), 1, values),
	})
}

func TestRegressionRelabelIsIdentity(t *testing.T) {
	obs := observationsWithOutcome(1, 2, 3)
	out := Regression{}.Relabel(obs, []int{0, 1, 2})
	assert.Equal(t, []float64{1}, out[0])
	assert.Equal(t, []float64{2}, out[1])
	assert.Equal(t, []float64{3}, out[2])
}

func TestQuantileRelabelBucketsByNodeDistribution(t *testing.T) {
	obs := observationsWithOutcome(1, 2, 3, 4, 5)
	q := Quantile{Quantiles: []float64{0.5}}
	out := q.Relabel(obs, []int{0, 1, 2, 3, 4})
	// median is 3: samples <= median land in bin 0, samples above in bin 1.
	assert.Equal(t, []float64{1, 0}, out[2])
	assert.Equal(t, []float64{0, 1}, out[4])
}

func TestInstrumentalRelabelRequiresTreatmentAndInstrument(t *testing.T) {
	obs := observationsWithOutcome(1, 2, 3)
	out := Instrumental{}.Relabel(obs, []int{0, 1, 2})
	assert.Empty(t, out)
}

func TestInstrumentalRelabelProducesMeanCenteredProduct(t *testing.T) {
	outcome := mat.NewDense(3, 1, []float64{1, 2, 3})
	treatment := mat.NewDense(3, 1, []float64{0, 1, 1})
	instrument := mat.NewDense(3, 1, []float64{0, 0, 1})
	obs := data.NewObservations(map[data.Role]*mat.Dense{
		data.Outcome:    outcome,
		data.Treatment:  treatment,
		data.Instrument: instrument,
	})
	out := Instrumental{}.Relabel(obs, []int{0, 1, 2})
	assert.Len(t, out, 3)
	for _, v := range out {
		assert.Len(t, v, 1)
	}
	// mean Y = 2, mean Z = 1/3: (Z - 1/3) * (Y - 2) per sample.
	assert.InDelta(t, 1.0/3, out[0][0], 1e-9)
	assert.InDelta(t, 0.0, out[1][0], 1e-9)
	assert.InDelta(t, 2.0/3, out[2][0], 1e-9)
}
