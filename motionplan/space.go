package motionplan

import (
	"fmt"

	"github.com/viamlabs/motionkit/spatialmath"
	"github.com/viamlabs/motionkit/utils"
)

// Kind identifies the metric and sampling behavior of a single configuration
// axis. Only kinematic kinds exist; there is no notion of velocity or
// acceleration axes anywhere in this package.
type Kind int

// The supported axis kinds. QuaternionHead marks the first of four consecutive
// slots; the remaining three are addressed collectively but still occupy
// their own Component entries, as QuaternionBlock builds them.
const (
	Linear Kind = iota
	WrappingAngle
	QuaternionHead
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case WrappingAngle:
		return "wrapping-angle"
	case QuaternionHead:
		return "quaternion-head"
	default:
		return "unknown"
	}
}

// Component describes one axis (or, for a quaternion, the head of a four-axis
// block) of a configuration space.
type Component struct {
	Kind Kind
	// Min and Max are inclusive bounds. Meaningless for QuaternionHead.
	Min, Max float64
	// Resolution is the maximum distance, in this axis's metric, allowed
	// between adjacent discrete samples along an edge.
	Resolution float64
}

// QuaternionDeltaFunc computes the four-component difference used when
// stepping a quaternion block from q1 to q2. The default behavior, with no
// func installed, is plain componentwise subtraction; a SLERP-based
// implementation can be installed with WithQuaternionDelta to make edge
// subdivision follow the geodesic between the two orientations instead.
type QuaternionDeltaFunc func(q1, q2 [4]float64) [4]float64

// Space is an ordered, fixed sequence of Components describing the semantics
// of every axis of a configuration. It is a value type: safe to share between
// callers, never mutated after construction.
type Space struct {
	components []Component
	quatDelta  QuaternionDeltaFunc
}

// NewSpace builds a Space from the given per-axis components, validating the
// invariants the rest of the package assumes: linear-axis bounds are ordered,
// resolutions are positive, and every quaternion head is followed by its three
// trailing slots. Wrapping-angle bounds are not checked for order.
func NewSpace(components []Component) (*Space, error) {
	for i, c := range components {
		if c.Resolution <= 0 {
			return nil, fmt.Errorf("component %d: resolution must be > 0, got %v", i, c.Resolution)
		}
		if c.Kind == Linear && c.Min > c.Max {
			return nil, fmt.Errorf("component %d: linear min %v exceeds max %v", i, c.Min, c.Max)
		}
		if c.Kind == QuaternionHead {
			if i+3 >= len(components) {
				return nil, fmt.Errorf("component %d: quaternion head needs 3 trailing slots", i)
			}
		}
	}
	return &Space{components: append([]Component(nil), components...)}, nil
}

// WithQuaternionDelta returns a copy of s whose quaternion blocks are stepped
// through fn rather than componentwise subtraction. The copy shares s's
// component descriptors.
func (s *Space) WithQuaternionDelta(fn QuaternionDeltaFunc) *Space {
	return &Space{components: s.components, quatDelta: fn}
}

// QuaternionBlock returns the four Component records of a unit-quaternion
// block: a QuaternionHead followed by its three reserved trailing slots, all
// carrying the same resolution. Append the result when assembling a Space
// rather than hand-writing the reserved slots.
func QuaternionBlock(resolution float64) []Component {
	return []Component{
		{Kind: QuaternionHead, Resolution: resolution},
		{Resolution: resolution},
		{Resolution: resolution},
		{Resolution: resolution},
	}
}

// Dimension returns the number of scalar axes, D, in the space.
func (s *Space) Dimension() int {
	return len(s.components)
}

// Component returns the descriptor for axis i.
func (s *Space) Component(i int) Component {
	return s.components[i]
}

// ShortestDelta returns b-a for a linear axis, or the shortest signed angular
// difference from a to b (range (-pi, pi]) for a wrapping-angle axis. It is
// undefined -- and must not be called -- on an individual quaternion slot.
func (s *Space) ShortestDelta(i int, a, b float64) float64 {
	if s.components[i].Kind == WrappingAngle {
		return spatialmath.ShortestAngularDistance(a, b)
	}
	return b - a
}

// BoundsOK reports whether every linear/wrapping-angle value of state falls
// within its component's [Min, Max]. Quaternion slots are always considered
// in bounds since unit-norm, not a box constraint, is their invariant.
func (s *Space) BoundsOK(state []float64) bool {
	for i := 0; i < len(s.components); i++ {
		c := s.components[i]
		if c.Kind == QuaternionHead {
			i += 3
			continue
		}
		if state[i] < c.Min || state[i] > c.Max {
			return false
		}
	}
	return true
}

// ProjectToBounds clips every linear/wrapping-angle value of state into its
// component's [Min, Max] range, in place. Wrapping axes are clipped the same
// way as linear ones: callers are expected to have already normalized angles
// into the component's native range before calling.
func (s *Space) ProjectToBounds(state []float64) {
	for i := 0; i < len(s.components); i++ {
		c := s.components[i]
		if c.Kind == QuaternionHead {
			i += 3
			continue
		}
		state[i] = utils.Clamp(state[i], c.Min, c.Max)
	}
}
