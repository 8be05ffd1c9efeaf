package motionplan

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestPathAppendAndLen(t *testing.T) {
	p := NewPath()
	test.That(t, p.Len(), test.ShouldEqual, 0)
	p.Append(NewStateFromFloats([]float64{0, 0}))
	p.Append(NewStateFromFloats([]float64{1, 1}))
	test.That(t, p.Len(), test.ShouldEqual, 2)
}

func TestPathSpliceRemoveRange(t *testing.T) {
	p := NewPathFromStates([]State{
		NewStateFromFloats([]float64{0}),
		NewStateFromFloats([]float64{1}),
		NewStateFromFloats([]float64{2}),
		NewStateFromFloats([]float64{3}),
		NewStateFromFloats([]float64{4}),
	})
	p.SpliceRemoveRange(1, 3)
	test.That(t, p.Len(), test.ShouldEqual, 2)
	test.That(t, p.State(0).Floats()[0], test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, p.State(1).Floats()[0], test.ShouldAlmostEqual, 4.0, 1e-9)
}

func TestPathSpliceRemoveRangeOutOfBoundsIsNoop(t *testing.T) {
	p := NewPathFromStates([]State{
		NewStateFromFloats([]float64{0}),
		NewStateFromFloats([]float64{1}),
	})
	p.SpliceRemoveRange(0, 5)
	test.That(t, p.Len(), test.ShouldEqual, 2)
	p.SpliceRemoveRange(1, 0)
	test.That(t, p.Len(), test.ShouldEqual, 2)
}

func TestPathLengthLinear(t *testing.T) {
	space := twoLinearAxes(t)
	p := NewPathFromStates([]State{
		NewStateFromFloats([]float64{0, 0}),
		NewStateFromFloats([]float64{3, 4}),
		NewStateFromFloats([]float64{3, 0}),
	})
	test.That(t, p.Length(space), test.ShouldAlmostEqual, 9.0, 1e-9)
}

func TestPathLengthWrappingAxisUsesShortestDelta(t *testing.T) {
	space, err := NewSpace([]Component{{Kind: WrappingAngle, Min: -math.Pi, Max: math.Pi, Resolution: 0.1}})
	test.That(t, err, test.ShouldBeNil)

	p := NewPathFromStates([]State{
		NewStateFromFloats([]float64{3.0}),
		NewStateFromFloats([]float64{-3.0}),
	})
	test.That(t, p.Length(space), test.ShouldAlmostEqual, 2*math.Pi-6, 1e-9)
}
