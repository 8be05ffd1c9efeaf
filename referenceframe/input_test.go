package referenceframe

import (
	"testing"

	"go.viam.com/test"
)

func TestFloatsToInputsAndBack(t *testing.T) {
	vals := []float64{1, 2, 3}
	in := FloatsToInputs(vals)
	test.That(t, InputsToFloats(in), test.ShouldResemble, vals)
}

func TestCloneInputsIsIndependent(t *testing.T) {
	in := FloatsToInputs([]float64{1, 2})
	clone := CloneInputs(in)
	clone[0].Value = 99
	test.That(t, in[0].Value, test.ShouldAlmostEqual, 1.0, 1e-9)
}

func TestInputsL2Distance(t *testing.T) {
	a := FloatsToInputs([]float64{0, 0})
	b := FloatsToInputs([]float64{3, 4})
	test.That(t, InputsL2Distance(a, b), test.ShouldAlmostEqual, 5.0, 1e-9)
}

func TestInputsLinfDistance(t *testing.T) {
	a := FloatsToInputs([]float64{0, 0})
	b := FloatsToInputs([]float64{3, 4})
	test.That(t, InputsLinfDistance(a, b), test.ShouldAlmostEqual, 4.0, 1e-9)
}
