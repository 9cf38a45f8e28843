// Package data holds the read-only numeric inputs a forest trains and
// predicts against: the feature matrix (Data) and the per-role outcome
// tables (Observations).
package data

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pbanos/grf/grferrors"
)

// Data is an immutable num_rows x num_cols matrix of float64 feature
// values, addressed by (sample_id, var_id). It wraps a gonum mat.Dense so
// callers can still reach for gonum's linear-algebra routines on the raw
// matrix if a custom splitting or relabeling strategy needs them.
type Data struct {
	m *mat.Dense
}

// New wraps rows of equal-length float64 slices into a Data matrix.
func New(rows [][]float64) (*Data, error) {
	if len(rows) == 0 {
		return &Data{m: mat.NewDense(0, 0, nil)}, nil
	}
	numCols := len(rows[0])
	flat := make([]float64, 0, len(rows)*numCols)
	for i, row := range rows {
		if len(row) != numCols {
			return nil, grferrors.Errorf("row %d has %d columns, expected %d", i, len(row), numCols)
		}
		flat = append(flat, row...)
	}
	return &Data{m: mat.NewDense(len(rows), numCols, flat)}, nil
}

// NewFromDense wraps an existing gonum matrix directly.
func NewFromDense(m *mat.Dense) *Data {
	return &Data{m: m}
}

// NumRows returns the number of samples.
func (d *Data) NumRows() int {
	r, _ := d.m.Dims()
	return r
}

// NumCols returns the number of variables.
func (d *Data) NumCols() int {
	_, c := d.m.Dims()
	return c
}

// Get returns the value of variable col for sample row in O(1).
func (d *Data) Get(row, col int) float64 {
	return d.m.At(row, col)
}

// Row returns a copy of a sample's feature vector.
func (d *Data) Row(row int) []float64 {
	out := make([]float64, d.NumCols())
	mat.Row(out, row, d.m)
	return out
}

// Dense exposes the underlying gonum matrix for callers that need direct
// access to gonum's linear algebra (PCA-style feature preprocessing, etc).
func (d *Data) Dense() *mat.Dense {
	return d.m
}

// GobEncode and GobDecode let a Data matrix round-trip through
// encoding/gob, the way the module treats serialization framing as an
// opaque, externally-provided concern.
func (d *Data) GobEncode() ([]byte, error) {
	return gobEncodeDense(d.m)
}

func (d *Data) GobDecode(b []byte) error {
	m, err := gobDecodeDense(b)
	if err != nil {
		return err
	}
	d.m = m
	return nil
}
