package motionplan

// CheckPath reports whether path is valid under the bisection discipline: its
// first state must be valid, and every consecutive edge must pass
// CheckMotionBisect. A nil or empty path is reported invalid; this is a
// deliberate design choice to surface empty-path misuse rather than
// vacuously accepting it.
func (mv *MotionValidator) CheckPath(path *Path) bool {
	if path == nil || path.Len() == 0 {
		return false
	}
	if !mv.Valid(path.State(0)) {
		return false
	}
	for i := 0; i+1 < path.Len(); i++ {
		if !mv.CheckMotionBisect(path.State(i), path.State(i+1)) {
			return false
		}
	}
	return true
}
