package motionplan

import "math"

// DifferenceStep is the primitive that reduces a continuous edge to a discrete
// grid of intermediate states. Given the endpoints and a resolution factor, it
// returns the subdivision count nd and a per-axis step such that
// s1[i] + k*step[i], for k in [0, nd], traces the edge at or below
// factor*resolution[i] in every axis's own metric.
//
// Quaternion slots are stepped with plain Euclidean subtraction by default, a
// documented placeholder: a geometrically correct implementation would SLERP
// between the two orientations rather than walk a straight line through
// quaternion space. Install one via Space.WithQuaternionDelta.
func DifferenceStep(space *Space, s1, s2 State, factor float64) (nd int, step []float64) {
	assertDimension(space, s1)
	assertDimension(space, s2)
	d := space.Dimension()
	diff := make([]float64, d)
	v1, v2 := s1.Floats(), s2.Floats()

	for i := 0; i < d; i++ {
		c := space.Component(i)
		if c.Kind == QuaternionHead {
			q1 := [4]float64{v1[i], v1[i+1], v1[i+2], v1[i+3]}
			q2 := [4]float64{v2[i], v2[i+1], v2[i+2], v2[i+3]}
			var qd [4]float64
			if space.quatDelta != nil {
				qd = space.quatDelta(q1, q2)
			} else {
				for k := 0; k < 4; k++ {
					qd[k] = q2[k] - q1[k]
				}
			}
			copy(diff[i:i+4], qd[:])
			i += 3
			continue
		}
		diff[i] = space.ShortestDelta(i, v1[i], v2[i])
	}

	nd = 1
	for i := 0; i < d; i++ {
		c := space.Component(i)
		res := c.Resolution
		div := 1 + int(math.Abs(diff[i])/(factor*res))
		if div > nd {
			nd = div
		}
	}

	step = make([]float64, d)
	for i := 0; i < d; i++ {
		step[i] = diff[i] / float64(nd)
	}
	return nd, step
}

// stateAtStep returns s1 + k*step as a new State, the grid point at index k.
func stateAtStep(s1 State, step []float64, k int) State {
	v1 := s1.Floats()
	out := make([]float64, len(v1))
	for i, v := range v1 {
		out[i] = v + float64(k)*step[i]
	}
	return NewStateFromFloats(out)
}
