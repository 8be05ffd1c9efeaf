package motionplan

import (
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/viamlabs/motionkit/spatialmath"
)

// randSource adapts a *math/rand.Rand to the golang.org/x/exp/rand.Source
// interface required by gonum/stat/distuv, so callers can keep using the
// standard library's *rand.Rand as the package's public RNG type.
type randSource struct {
	rng *rand.Rand
}

func (s randSource) Uint64() uint64   { return s.rng.Uint64() }
func (s randSource) Seed(seed uint64) { s.rng.Seed(int64(seed)) }

// Sampler draws configurations from a Space. It holds its own RNG and must
// not be shared across goroutines; independent callers should use
// independent Samplers, each with its own random source, per the package's
// single-threaded, synchronous concurrency model.
type Sampler struct {
	Space *Space
	rng   *rand.Rand
}

// NewSampler builds a Sampler over space, drawing from rng. Pass a
// deterministically-seeded rng in tests to get reproducible samples.
func NewSampler(space *Space, rng *rand.Rand) *Sampler {
	if space == nil {
		panic("motionplan: NewSampler requires a non-nil Space")
	}
	if rng == nil {
		panic("motionplan: NewSampler requires a non-nil random source")
	}
	return &Sampler{Space: space, rng: rng}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if lo >= hi {
		return lo
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: randSource{rng}}.Rand()
}

// Sample draws a uniformly-distributed configuration over the whole space
// into out, which must already be sized to the space's dimension. Linear and
// wrapping-angle axes are drawn uniformly in [Min, Max]; quaternion blocks are
// drawn uniformly over the space of unit rotations.
func (s *Sampler) Sample(out State) {
	d := s.Space.Dimension()
	vals := out.Floats()
	for i := 0; i < d; i++ {
		c := s.Space.Component(i)
		if c.Kind == QuaternionHead {
			writeQuaternion(vals, i, spatialmath.RandomUnitQuaternion(s.rng))
			i += 3
			continue
		}
		vals[i] = uniform(s.rng, c.Min, c.Max)
	}
	copy(out, NewStateFromFloats(vals))
}

// SampleNear draws a configuration within radius rho of near into out, using
// the same radius for every linear/wrapping-angle axis. Quaternion blocks have
// no notion of neighborhood and are replaced with a fresh uniform draw; a
// small-rotation perturbation would be the geometrically faithful extension.
func (s *Sampler) SampleNear(out, near State, rho float64) {
	radii := make([]float64, s.Space.Dimension())
	for i := range radii {
		radii[i] = rho
	}
	s.SampleNearPerAxis(out, near, radii)
}

// SampleNearPerAxis is SampleNear with an independent radius per axis.
func (s *Sampler) SampleNearPerAxis(out, near State, rho []float64) {
	d := s.Space.Dimension()
	nearVals := near.Floats()
	outVals := out.Floats()

	for i := 0; i < d; i++ {
		c := s.Space.Component(i)
		if c.Kind == QuaternionHead {
			writeQuaternion(outVals, i, spatialmath.RandomUnitQuaternion(s.rng))
			i += 3
			continue
		}
		lo := nearVals[i] - rho[i]
		if lo < c.Min {
			lo = c.Min
		}
		hi := nearVals[i] + rho[i]
		if hi > c.Max {
			hi = c.Max
		}
		outVals[i] = uniform(s.rng, lo, hi)
	}
	copy(out, NewStateFromFloats(outVals))
}

func writeQuaternion(vals []float64, head int, q quat.Number) {
	vals[head] = q.Real
	vals[head+1] = q.Imag
	vals[head+2] = q.Jmag
	vals[head+3] = q.Kmag
}
