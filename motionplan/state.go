package motionplan

import (
	"math"

	"github.com/viamlabs/motionkit/referenceframe"
)

// State is a dense configuration: one referenceframe.Input per axis of the
// Space it was sampled from. Equality is bit-identical vector equality.
// States are always owned by their container (a Path, or the caller that
// passed them in) and are deep-copied on Clone.
type State []referenceframe.Input

// NewState builds a State of dimension d with all values zeroed.
func NewState(d int) State {
	return make(State, d)
}

// NewStateFromFloats wraps raw scalars as a State.
func NewStateFromFloats(vals []float64) State {
	return State(referenceframe.FloatsToInputs(vals))
}

// Floats unwraps a State to a raw scalar slice.
func (s State) Floats() []float64 {
	return referenceframe.InputsToFloats([]referenceframe.Input(s))
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and other have bit-identical values.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if math.Float64bits(v.Value) != math.Float64bits(other[i].Value) {
			return false
		}
	}
	return true
}

// Dimension returns the number of scalar axes in s.
func (s State) Dimension() int {
	return len(s)
}
