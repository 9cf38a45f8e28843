package forest

import (
	"bytes"
	"encoding/gob"

	"github.com/pbanos/grf/grferrors"
)

// Save serializes the forest with encoding/gob, treating the byte-framing
// mechanics as an opaque, externally-provided concern: every type that
// needs bespoke handling (Data, Observations, PredictionValues) already
// exposes its own GobEncode/GobDecode, so gob's default struct encoding
// does the rest.
func (f *Forest) Save(w *bytes.Buffer) error {
	if err := gob.NewEncoder(w).Encode(f); err != nil {
		return grferrors.Wrapf(err, "encoding forest")
	}
	return nil
}

// Load deserializes a forest previously written by Save.
func Load(r *bytes.Reader) (*Forest, error) {
	var f Forest
	if err := gob.NewDecoder(r).Decode(&f); err != nil {
		return nil, grferrors.Wrapf(err, "decoding forest")
	}
	return &f, nil
}
