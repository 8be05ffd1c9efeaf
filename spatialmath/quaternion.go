package spatialmath

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
)

// QuaternionAlmostEqual reports whether two quaternions are within epsilon of each
// other component-wise, or are within epsilon once one is negated (since q and -q
// represent the same rotation).
func QuaternionAlmostEqual(q1, q2 quat.Number, epsilon float64) bool {
	if quaternionComponentsAlmostEqual(q1, q2, epsilon) {
		return true
	}
	return quaternionComponentsAlmostEqual(q1, quat.Scale(-1, q2), epsilon)
}

func quaternionComponentsAlmostEqual(q1, q2 quat.Number, epsilon float64) bool {
	return math.Abs(q1.Real-q2.Real) <= epsilon &&
		math.Abs(q1.Imag-q2.Imag) <= epsilon &&
		math.Abs(q1.Jmag-q2.Jmag) <= epsilon &&
		math.Abs(q1.Kmag-q2.Kmag) <= epsilon
}

// NormalizeQuaternion scales q to unit norm. The zero quaternion is undefined and
// is returned as the identity.
func NormalizeQuaternion(q quat.Number) quat.Number {
	norm := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if norm == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/norm, q)
}

// RandomUnitQuaternion draws a quaternion uniformly distributed over the space of
// 3D rotations, using Shoemake's subgroup algorithm (Ken Shoemake, "Uniform Random
// Rotations", Graphics Gems III, 1992). It is implemented directly against
// math/rand so samplers need nothing beyond a uniform generator.
func RandomUnitQuaternion(r *rand.Rand) quat.Number {
	u1 := r.Float64()
	u2 := r.Float64()
	u3 := r.Float64()

	s1 := math.Sqrt(1 - u1)
	s2 := math.Sqrt(u1)

	theta1 := 2 * math.Pi * u2
	theta2 := 2 * math.Pi * u3

	return quat.Number{
		Real: s2 * math.Cos(theta2),
		Imag: s1 * math.Sin(theta1),
		Jmag: s1 * math.Cos(theta1),
		Kmag: s2 * math.Sin(theta2),
	}
}
