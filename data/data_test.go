package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDataGet(t *testing.T) {
	d, err := New([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumRows())
	assert.Equal(t, 3, d.NumCols())
	assert.Equal(t, 5.0, d.Get(1, 1))
	assert.Equal(t, []float64{4, 5, 6}, d.Row(1))
}

func TestDataRejectsRaggedRows(t *testing.T) {
	_, err := New([][]float64{{1, 2}, {1}})
	assert.Error(t, err)
}

func TestDataGobRoundTrip(t *testing.T) {
	d, err := New([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	b, err := d.GobEncode()
	require.NoError(t, err)
	var d2 Data
	require.NoError(t, d2.GobDecode(b))
	assert.Equal(t, d.NumRows(), d2.NumRows())
	assert.Equal(t, d.NumCols(), d2.NumCols())
	for i := 0; i < d.NumRows(); i++ {
		assert.Equal(t, d.Row(i), d2.Row(i))
	}
}

func TestObservationsMissingRoleTolerated(t *testing.T) {
	outcome := mat.NewDense(3, 1, []float64{1, 2, 3})
	obs := NewObservations(map[Role]*mat.Dense{Outcome: outcome})
	assert.True(t, obs.Has(Outcome))
	assert.False(t, obs.Has(Treatment))
	assert.Nil(t, obs.Get(Treatment, 0))
	assert.Equal(t, []float64{2}, obs.Get(Outcome, 1))
	assert.Equal(t, 3, obs.NumSamples())
}

func TestObservationsGobRoundTrip(t *testing.T) {
	outcome := mat.NewDense(2, 1, []float64{1, 2})
	treatment := mat.NewDense(2, 1, []float64{0, 1})
	obs := NewObservations(map[Role]*mat.Dense{Outcome: outcome, Treatment: treatment})
	b, err := obs.GobEncode()
	require.NoError(t, err)
	var obs2 Observations
	require.NoError(t, obs2.GobDecode(b))
	assert.True(t, obs2.Has(Outcome))
	assert.True(t, obs2.Has(Treatment))
	assert.False(t, obs2.Has(Instrument))
	assert.Equal(t, obs.Get(Outcome, 1), obs2.Get(Outcome, 1))
}
