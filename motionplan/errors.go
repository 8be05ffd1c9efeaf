package motionplan

import "fmt"

// ErrEmptyPath is returned by operations that require at least one vertex.
var ErrEmptyPath = fmt.Errorf("path is empty")

// assertDimension panics if state does not have exactly the space's dimension.
// A mismatch between a State and the Space it is checked against is a
// programmer error caught at setup/call time, not a recoverable runtime
// condition.
func assertDimension(space *Space, state State) {
	if len(state) != space.Dimension() {
		panic(fmt.Sprintf("motionplan: state has dimension %d, space expects %d", len(state), space.Dimension()))
	}
}
