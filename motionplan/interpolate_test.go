package motionplan

import (
	"testing"

	"go.viam.com/test"
)

func TestInterpolateInsertsInteriorGridStates(t *testing.T) {
	space := twoLinearAxes(t)
	path := NewPathFromStates([]State{
		NewStateFromFloats([]float64{0, 0}),
		NewStateFromFloats([]float64{10, 0}),
	})

	Interpolate(space, path, 1.0)
	// nd = 1 + floor(10/1) = 11, so the densified path has nd+1 = 12 vertices.
	test.That(t, path.Len(), test.ShouldEqual, 12)
	test.That(t, path.State(0).Floats()[0], test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, path.State(11).Floats()[0], test.ShouldAlmostEqual, 10.0, 1e-9)
	for i := 0; i+1 < path.Len(); i++ {
		gap := path.State(i+1).Floats()[0] - path.State(i).Floats()[0]
		test.That(t, gap, test.ShouldBeLessThanOrEqualTo, 1.0+1e-9)
	}
}

func TestInterpolatePreservesOriginalVertices(t *testing.T) {
	space := twoLinearAxes(t)
	path := NewPathFromStates([]State{
		NewStateFromFloats([]float64{0, 0}),
		NewStateFromFloats([]float64{4, 0}),
		NewStateFromFloats([]float64{4, 6}),
	})

	Interpolate(space, path, 1.0)

	var foundMiddle bool
	for i := 0; i < path.Len(); i++ {
		v := path.State(i).Floats()
		if v[0] == 4 && v[1] == 0 {
			foundMiddle = true
		}
	}
	test.That(t, foundMiddle, test.ShouldBeTrue)
}

func TestInterpolateNoopOnSingleVertex(t *testing.T) {
	space := twoLinearAxes(t)
	path := NewPathFromStates([]State{NewStateFromFloats([]float64{1, 1})})
	Interpolate(space, path, 1.0)
	test.That(t, path.Len(), test.ShouldEqual, 1)
}

func TestInterpolateIdempotentAtTargetResolution(t *testing.T) {
	space := twoLinearAxes(t)
	path := NewPathFromStates([]State{
		NewStateFromFloats([]float64{0, 0}),
		NewStateFromFloats([]float64{3, 0}),
	})
	Interpolate(space, path, 1.0)
	n := path.Len()
	Interpolate(space, path, 1.0)
	test.That(t, path.Len(), test.ShouldEqual, n)
}
