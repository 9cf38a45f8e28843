package data

import (
	"bytes"
	"encoding/gob"

	"gonum.org/v1/gonum/mat"

	"github.com/pbanos/grf/grferrors"
)

// denseWire is the plain-struct shadow of mat.Dense used to move it
// through encoding/gob, since mat.Dense itself doesn't expose its raw
// backing slice for gob registration.
type denseWire struct {
	Rows, Cols int
	Values     []float64
}

func gobEncodeDense(m *mat.Dense) ([]byte, error) {
	r, c := m.Dims()
	values := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			values = append(values, m.At(i, j))
		}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(denseWire{Rows: r, Cols: c, Values: values}); err != nil {
		return nil, grferrors.Wrapf(err, "gob-encoding matrix")
	}
	return buf.Bytes(), nil
}

func gobDecodeDense(b []byte) (*mat.Dense, error) {
	var w denseWire
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&w); err != nil {
		return nil, grferrors.Wrapf(err, "gob-decoding matrix")
	}
	return mat.NewDense(w.Rows, w.Cols, w.Values), nil
}

func gobEncodeRoleMap(m map[Role][]byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m); err != nil {
		return nil, grferrors.Wrapf(err, "gob-encoding observation roles")
	}
	return buf.Bytes(), nil
}

func gobDecodeRoleMap(b []byte) (map[Role][]byte, error) {
	var m map[Role][]byte
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&m); err != nil {
		return nil, grferrors.Wrapf(err, "gob-decoding observation roles")
	}
	return m, nil
}
