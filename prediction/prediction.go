package prediction

import "math"

// Prediction is a single query row's result: a point vector of length
// prediction_length, plus an optional variance vector of the same length
// when the forest was trained with ci_group_size > 1.
type Prediction struct {
	Point    []float64
	Variance []float64 // nil when variance wasn't requested/available
}

func nanVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = math.NaN()
	}
	return v
}
