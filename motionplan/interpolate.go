package motionplan

// Interpolate densifies path in place to the resolution implied by factor,
// inserting every strictly-interior grid state between each original
// consecutive pair. The original vertices are preserved at their original
// positions; only new vertices are inserted between them.
func Interpolate(space *Space, path *Path, factor float64) {
	states := path.States()
	if len(states) < 2 {
		return
	}

	newStates := make([]State, 0, len(states))
	for i := 0; i+1 < len(states); i++ {
		s1, s2 := states[i], states[i+1]
		newStates = append(newStates, s1)

		nd, step := DifferenceStep(space, s1, s2, factor)
		for j := 1; j < nd; j++ {
			newStates = append(newStates, stateAtStep(s1, step, j))
		}
	}
	newStates = append(newStates, states[len(states)-1])

	path.Swap(newStates)
}
