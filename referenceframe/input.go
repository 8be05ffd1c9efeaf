// Package referenceframe defines the Input type used to represent a single
// configuration (a point in configuration space) passed between the sampler,
// validator, and path containers. It is deliberately narrow: the planner core
// has no notion of kinematic chains, DH parameters, or URDF import -- those
// belong to a robot model layer outside this module's scope -- but it keeps
// the same Input/slice-of-Input idiom so a caller's existing frame plumbing
// can hand configurations to the core without any conversion step.
package referenceframe

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Input wraps a single scalar of a configuration. Its meaning (radians, mm, or
// one quarter of a unit quaternion) is determined by the Space Descriptor
// component at the same index.
type Input struct {
	Value float64
}

// FloatsToInputs wraps a slice of floats in Inputs.
func FloatsToInputs(floats []float64) []Input {
	inputs := make([]Input, len(floats))
	for i, f := range floats {
		inputs[i] = Input{f}
	}
	return inputs
}

// InputsToFloats unwraps Inputs to raw floats.
func InputsToFloats(inputs []Input) []float64 {
	vals := make([]float64, len(inputs))
	for i, in := range inputs {
		vals[i] = in.Value
	}
	return vals
}

// CloneInputs returns a deep copy of inputs.
func CloneInputs(inputs []Input) []Input {
	out := make([]Input, len(inputs))
	copy(out, inputs)
	return out
}

// InputsL2Distance returns the two-norm of the elementwise difference between
// from and to. It does not account for angle wrapping; callers needing that
// should use the Space Descriptor's metric instead.
func InputsL2Distance(from, to []Input) float64 {
	diff := make([]float64, len(from))
	for i, f := range from {
		diff[i] = f.Value - to[i].Value
	}
	return floats.Norm(diff, 2)
}

// InputsLinfDistance returns the infinity-norm (largest absolute elementwise
// difference) between from and to.
func InputsLinfDistance(from, to []Input) float64 {
	diff := make([]float64, len(from))
	for i, f := range from {
		diff[i] = f.Value - to[i].Value
	}
	return floats.Norm(diff, math.Inf(1))
}
