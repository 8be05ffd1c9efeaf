package motionplan

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDifferenceStepFreeCorridor(t *testing.T) {
	space := twoLinearAxes(t)
	s1 := NewStateFromFloats([]float64{0, 0})
	s2 := NewStateFromFloats([]float64{10, 0})

	nd, step := DifferenceStep(space, s1, s2, 1.0)
	// 1 + floor(10/1) = 11: the stepping formula's "+1" margin means an edge
	// exactly resolution*k long subdivides into k+1 segments, not k.
	test.That(t, nd, test.ShouldEqual, 11)
	test.That(t, step[0], test.ShouldAlmostEqual, 10.0/11.0, 1e-9)
	test.That(t, step[1], test.ShouldAlmostEqual, 0.0, 1e-9)
}

func TestDifferenceStepEndpointClosure(t *testing.T) {
	space := twoLinearAxes(t)
	s1 := NewStateFromFloats([]float64{1, 2})
	s2 := NewStateFromFloats([]float64{9, 7})

	nd, step := DifferenceStep(space, s1, s2, 1.0)
	v1 := s1.Floats()
	for i := range v1 {
		test.That(t, v1[i]+float64(nd)*step[i], test.ShouldAlmostEqual, s2.Floats()[i], 1e-9)
	}
}

func TestDifferenceStepWrappingAxis(t *testing.T) {
	space, err := NewSpace([]Component{{Kind: WrappingAngle, Min: -math.Pi, Max: math.Pi, Resolution: 0.1}})
	test.That(t, err, test.ShouldBeNil)

	s1 := NewStateFromFloats([]float64{3.0})
	s2 := NewStateFromFloats([]float64{-3.0})

	nd, _ := DifferenceStep(space, s1, s2, 1.0)
	// shortest angular distance from 3.0 to -3.0 is 2*pi - 6 ~= 0.283, which
	// divided by resolution 0.1 needs nd=3, not the nd=60ish a naive
	// difference of -6 would produce.
	test.That(t, nd, test.ShouldEqual, 3)
}

func TestDifferenceStepQuaternionBlockStepsEuclidean(t *testing.T) {
	space, err := NewSpace(QuaternionBlock(0.5))
	test.That(t, err, test.ShouldBeNil)

	s1 := NewStateFromFloats([]float64{1, 0, 0, 0})
	s2 := NewStateFromFloats([]float64{0, 1, 0, 0})

	// Quaternion slots step with plain componentwise subtraction (the
	// documented SLERP placeholder), so each changing slot has |diff| = 1
	// and resolution 0.5, giving nd = 1 + floor(1/0.5) = 3.
	nd, step := DifferenceStep(space, s1, s2, 1.0)
	test.That(t, nd, test.ShouldEqual, 3)
	v1, v2 := s1.Floats(), s2.Floats()
	for i := range v1 {
		test.That(t, v1[i]+float64(nd)*step[i], test.ShouldAlmostEqual, v2[i], 1e-9)
	}
}

func TestDifferenceStepConsultsQuaternionDeltaHook(t *testing.T) {
	base, err := NewSpace(QuaternionBlock(0.5))
	test.That(t, err, test.ShouldBeNil)

	called := false
	space := base.WithQuaternionDelta(func(q1, q2 [4]float64) [4]float64 {
		called = true
		return [4]float64{0.25, 0, 0, 0}
	})

	s1 := NewStateFromFloats([]float64{1, 0, 0, 0})
	s2 := NewStateFromFloats([]float64{0, 1, 0, 0})

	nd, step := DifferenceStep(space, s1, s2, 1.0)
	test.That(t, called, test.ShouldBeTrue)
	// The installed delta is 0.25 in the first slot only, within resolution,
	// so nd stays 1 and the step is the delta verbatim.
	test.That(t, nd, test.ShouldEqual, 1)
	test.That(t, step[0], test.ShouldAlmostEqual, 0.25, 1e-9)
	test.That(t, step[1], test.ShouldAlmostEqual, 0.0, 1e-9)
}

func TestDifferenceStepSubdivisionResolution(t *testing.T) {
	space := twoLinearAxes(t)
	s1 := NewStateFromFloats([]float64{0.3, 9.7})
	s2 := NewStateFromFloats([]float64{8.1, 1.4})

	_, step := DifferenceStep(space, s1, s2, 1.0)
	for i, st := range step {
		test.That(t, math.Abs(st), test.ShouldBeLessThanOrEqualTo, space.Component(i).Resolution+1e-9)
	}
}
