package prediction

import (
	"bytes"
	"encoding/gob"

	"github.com/pbanos/grf/grferrors"
)

type valuesWire struct {
	ByNode   map[int][][]float64
	NumNodes int
	NumTypes int
}

// GobEncode lets Values round-trip through encoding/gob, since its
// fields aren't exported directly.
func (v *Values) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	w := valuesWire{ByNode: v.byNode, NumNodes: v.numNodes, NumTypes: v.numTypes}
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, grferrors.Wrapf(err, "gob-encoding prediction values")
	}
	return buf.Bytes(), nil
}

// GobDecode implements the other half of the Values gob round-trip.
func (v *Values) GobDecode(b []byte) error {
	var w valuesWire
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&w); err != nil {
		return grferrors.Wrapf(err, "gob-decoding prediction values")
	}
	if w.ByNode == nil {
		w.ByNode = make(map[int][][]float64)
	}
	v.byNode = w.ByNode
	v.numNodes = w.NumNodes
	v.numTypes = w.NumTypes
	return nil
}
