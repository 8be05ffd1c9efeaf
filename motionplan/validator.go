package motionplan

// ValidityFunc reports whether a configuration is free of collision and any
// other planner-external constraint. It is assumed pure for a given state
// value but potentially expensive; the disciplines below are built around
// minimizing calls to it.
type ValidityFunc func(s State) bool

// MotionValidator checks whether the straight-line motion between two
// configurations is free, at the resolution carried by its Space. Both
// disciplines assume the left endpoint is already valid; callers that cannot
// guarantee this should check it separately.
type MotionValidator struct {
	Space *Space
	Valid ValidityFunc
}

// NewMotionValidator constructs a validator over the given space and validity
// predicate.
func NewMotionValidator(space *Space, valid ValidityFunc) *MotionValidator {
	if space == nil {
		panic("motionplan: NewMotionValidator requires a non-nil Space")
	}
	if valid == nil {
		panic("motionplan: NewMotionValidator requires a non-nil validity function")
	}
	return &MotionValidator{Space: space, Valid: valid}
}

type intRange struct {
	lo, hi int
}

// CheckMotionBisect checks the motion from s1 to s2 using a midpoint-first,
// breadth-first traversal of the discretization grid. The right endpoint is
// checked first; interior points are then tested in bisecting order, which
// tends to discover an obstacle in the interior of the edge faster than a
// left-to-right scan would, at the cost of not reporting which grid index
// failed.
func (mv *MotionValidator) CheckMotionBisect(s1, s2 State) bool {
	if !mv.Valid(s2) {
		return false
	}
	nd, step := DifferenceStep(mv.Space, s1, s2, 1.0)
	if nd < 2 {
		return true
	}

	queue := []intRange{{1, nd - 1}}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		mid := (r.lo + r.hi) / 2
		if !mv.Valid(stateAtStep(s1, step, mid)) {
			return false
		}
		if r.lo < mid {
			queue = append(queue, intRange{r.lo, mid - 1})
		}
		if mid < r.hi {
			queue = append(queue, intRange{mid + 1, r.hi})
		}
	}
	return true
}

// CheckMotionLinear checks the motion from s1 to s2 left to right, stopping at
// the first invalid interior grid point. On failure it additionally returns
// the last valid state reached and the fraction of the edge (by grid index)
// at which that state sits -- a witness the caller can use to re-attach a
// search tree. If s2 itself is invalid, it returns false with a nil State and
// time 0 without testing any interior point. On success, the returned State is
// nil and the time is 1.
func (mv *MotionValidator) CheckMotionLinear(s1, s2 State) (ok bool, lastValid State, lastValidTime float64) {
	if !mv.Valid(s2) {
		return false, nil, 0
	}
	nd, step := DifferenceStep(mv.Space, s1, s2, 1.0)

	for j := 1; j < nd; j++ {
		test := stateAtStep(s1, step, j)
		if !mv.Valid(test) {
			return false, stateAtStep(s1, step, j-1), float64(j-1) / float64(nd)
		}
	}
	return true, nil, 1
}

// MotionStates fills out with the full discretization grid between s1 and s2
// at factor 1.0, including both endpoints. If alloc is true, out is resized to
// exactly nd+1 states; otherwise it is filled up to its current length (a
// caller-reused scratch buffer pattern). It returns the number of states
// written.
func (mv *MotionValidator) MotionStates(s1, s2 State, out []State, alloc bool) ([]State, int) {
	nd, step := DifferenceStep(mv.Space, s1, s2, 1.0)
	if alloc {
		out = make([]State, nd+1)
	}
	if len(out) == 0 {
		return out, 0
	}

	out[0] = s1.Clone()
	added := 1

	for j := 1; j < nd && added < len(out); j++ {
		out[j] = stateAtStep(s1, step, j)
		added++
	}

	if added < len(out) {
		out[added] = s2.Clone()
		added++
	}

	return out, added
}

// MaterializeEdge returns s1, every strictly-interior grid state at factor
// 1.0, and s2, in order. It is a convenience wrapper over MotionStates for
// diagnostics that want the whole discretized edge.
func (mv *MotionValidator) MaterializeEdge(s1, s2 State) []State {
	out, n := mv.MotionStates(s1, s2, nil, true)
	return out[:n]
}
