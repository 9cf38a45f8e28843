package data

import "gonum.org/v1/gonum/mat"

// Role identifies an outcome-role column group within Observations: the
// outcome itself, a treatment indicator for causal/instrumental forests,
// and an instrument for instrumental forests.
type Role int

const (
	// Outcome is the response variable every forest kind needs.
	Outcome Role = iota
	// Treatment is the treatment indicator used by causal/instrumental forests.
	Treatment
	// Instrument is the instrumental variable used by instrumental forests.
	Instrument
)

// Observations maps each role to a num_samples x d_role matrix. Roles
// unused by a given forest kind are simply absent from the map; callers
// must tolerate that (e.g. a regression forest never populates Treatment
// or Instrument).
type Observations struct {
	byRole map[Role]*mat.Dense
}

// NewObservations builds an Observations table from role -> matrix. A nil
// or missing role is treated as absent.
func NewObservations(byRole map[Role]*mat.Dense) *Observations {
	cp := make(map[Role]*mat.Dense, len(byRole))
	for role, m := range byRole {
		if m != nil {
			cp[role] = m
		}
	}
	return &Observations{byRole: cp}
}

// Has reports whether role is present in this table.
func (o *Observations) Has(role Role) bool {
	_, ok := o.byRole[role]
	return ok
}

// Get returns the response vector for sample under role in O(1). Callers
// MUST check Has first for roles that may legitimately be absent.
func (o *Observations) Get(role Role, sample int) []float64 {
	m, ok := o.byRole[role]
	if !ok {
		return nil
	}
	d := m.RawRowView(sample)
	out := make([]float64, len(d))
	copy(out, d)
	return out
}

// Dim returns the number of columns (d_role) for a role, or 0 if absent.
func (o *Observations) Dim(role Role) int {
	m, ok := o.byRole[role]
	if !ok {
		return 0
	}
	_, c := m.Dims()
	return c
}

// NumSamples returns the sample count backing the Outcome role, which
// every forest kind carries.
func (o *Observations) NumSamples() int {
	m, ok := o.byRole[Outcome]
	if !ok {
		return 0
	}
	r, _ := m.Dims()
	return r
}

// GobEncode/GobDecode round-trip an Observations table through gob,
// keyed by role so absent roles aren't encoded at all.
func (o *Observations) GobEncode() ([]byte, error) {
	wire := make(map[Role][]byte, len(o.byRole))
	for role, m := range o.byRole {
		b, err := gobEncodeDense(m)
		if err != nil {
			return nil, err
		}
		wire[role] = b
	}
	return gobEncodeRoleMap(wire)
}

func (o *Observations) GobDecode(b []byte) error {
	wire, err := gobDecodeRoleMap(b)
	if err != nil {
		return err
	}
	byRole := make(map[Role]*mat.Dense, len(wire))
	for role, raw := range wire {
		m, err := gobDecodeDense(raw)
		if err != nil {
			return err
		}
		byRole[role] = m
	}
	o.byRole = byRole
	return nil
}
