package motionplan

import "math"

// Path is an ordered, owned sequence of States. It is created empty or from
// an initial vertex list and mutated in place by the interpolator, repairer,
// and simplifier. There are no back-references or cycles in the data model:
// a Path exclusively owns the States it holds, and removed states are simply
// dropped.
type Path struct {
	states []State
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// NewPathFromStates creates a path from an initial vertex list. The states
// are taken by reference; callers that need to keep their own copy should
// Clone first.
func NewPathFromStates(states []State) *Path {
	return &Path{states: states}
}

// Len returns the number of vertices in the path.
func (p *Path) Len() int {
	return len(p.states)
}

// State returns the vertex at index i.
func (p *Path) State(i int) State {
	return p.states[i]
}

// States returns the path's vertices. The returned slice aliases the path's
// internal storage and must not be mutated by length; use the Path's own
// mutators instead.
func (p *Path) States() []State {
	return p.states
}

// Append adds a vertex to the end of the path.
func (p *Path) Append(s State) {
	p.states = append(p.states, s)
}

// Swap replaces the entire vertex list, releasing the old one.
func (p *Path) Swap(states []State) {
	p.states = states
}

// SpliceRemoveRange removes the vertices in [lo, hi] inclusive, releasing
// them. It is a no-op if the range is empty or out of bounds.
func (p *Path) SpliceRemoveRange(lo, hi int) {
	if lo > hi || lo < 0 || hi >= len(p.states) {
		return
	}
	p.states = append(p.states[:lo], p.states[hi+1:]...)
}

// Length returns the sum of Euclidean (or wrapped-Euclidean, via the given
// space) edge distances along the path.
func (p *Path) Length(space *Space) float64 {
	total := 0.0
	for i := 0; i+1 < len(p.states); i++ {
		total += edgeDistance(space, p.states[i], p.states[i+1])
	}
	return total
}

func edgeDistance(space *Space, s1, s2 State) float64 {
	v1, v2 := s1.Floats(), s2.Floats()
	sumSq := 0.0
	for i := 0; i < space.Dimension(); i++ {
		c := space.Component(i)
		if c.Kind == QuaternionHead {
			for k := 0; k < 4; k++ {
				d := v2[i+k] - v1[i+k]
				sumSq += d * d
			}
			i += 3
			continue
		}
		d := space.ShortestDelta(i, v1[i], v2[i])
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}
