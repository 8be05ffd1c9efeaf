package motionplan

import (
	"math"
	"math/rand"

	"github.com/viamlabs/motionkit/utils"
)

// Default tunables for the simplification operations.
const (
	DefaultMaxEmptySteps = 5
	DefaultRangeRatio    = 0.2

	// collapseCloseVertexWindow bounds how far ahead of the chosen index a
	// "close" partner is drawn from. A window of 4 still gives
	// CollapseCloseVertices something to do on paths as short as 5 vertices.
	collapseCloseVertexWindow = 4
)

// Simplifier iteratively shortcuts a Path while preserving its validity under
// the bisection discipline. It holds its own RNG, following the same
// single-instance-per-caller concurrency model as Sampler.
type Simplifier struct {
	Validator *MotionValidator
	rng       *rand.Rand
}

// NewSimplifier builds a Simplifier that checks candidate shortcuts with
// validator and draws indices from rng.
func NewSimplifier(validator *MotionValidator, rng *rand.Rand) *Simplifier {
	if validator == nil {
		panic("motionplan: NewSimplifier requires a non-nil MotionValidator")
	}
	if rng == nil {
		panic("motionplan: NewSimplifier requires a non-nil random source")
	}
	return &Simplifier{Validator: validator, rng: rng}
}

func resolveMaxSteps(maxSteps, n int) int {
	if maxSteps <= 0 {
		return n
	}
	return maxSteps
}

// ReduceVertices repeatedly attempts to shortcut the path by connecting two
// non-consecutive vertices whose index gap is at most
// max(2, ceil(rangeRatio*n)), for n the vertex count at the time of the
// attempt. A successful connection
// removes every vertex strictly between them. The process stops once it has
// made maxSteps attempts (0 meaning "as many as the path currently has
// vertices") or once maxEmptySteps consecutive attempts produced no
// shortcut.
func (sp *Simplifier) ReduceVertices(path *Path, maxSteps, maxEmptySteps int, rangeRatio float64) {
	steps := resolveMaxSteps(maxSteps, path.Len())
	emptyStreak := 0

	for iter := 0; iter < steps && emptyStreak < maxEmptySteps; iter++ {
		n := path.Len()
		if n <= 2 {
			return
		}

		maxGap := int(math.Ceil(rangeRatio * float64(n)))
		if maxGap < 2 {
			maxGap = 2
		}

		i, j, ok := sp.pickShortcutPair(n, maxGap)
		if !ok {
			emptyStreak++
			continue
		}

		if sp.Validator.CheckMotionBisect(path.State(i), path.State(j)) {
			path.SpliceRemoveRange(i+1, j-1)
			emptyStreak = 0
		} else {
			emptyStreak++
		}
	}
}

// pickShortcutPair draws i < j with j-i in [2, maxGap], j < n. It reports
// ok=false if n is too small for any such pair to exist.
func (sp *Simplifier) pickShortcutPair(n, maxGap int) (i, j int, ok bool) {
	if n < 3 {
		return 0, 0, false
	}
	gap := maxGap
	if gap > n-1 {
		gap = n - 1
	}
	if gap < 2 {
		return 0, 0, false
	}

	d := utils.SampleRandomIntRange(2, gap, sp.rng)
	if n-d < 1 {
		return 0, 0, false
	}
	i = sp.rng.Intn(n - d)
	j = i + d
	return i, j, true
}

// CollapseCloseVertices is like ReduceVertices, but the candidate pair is
// always drawn from indices close together along the path (a small window
// rather than a fraction of the whole path), making it cheap to run
// frequently to mop up redundant nearby vertices that SimplifyMax's
// densification step tends to introduce.
func (sp *Simplifier) CollapseCloseVertices(path *Path, maxSteps, maxEmptySteps int) {
	steps := resolveMaxSteps(maxSteps, path.Len())
	emptyStreak := 0

	for iter := 0; iter < steps && emptyStreak < maxEmptySteps; iter++ {
		n := path.Len()
		if n <= 2 {
			return
		}

		i, j, ok := sp.pickShortcutPair(n, collapseCloseVertexWindow)
		if !ok {
			emptyStreak++
			continue
		}

		if sp.Validator.CheckMotionBisect(path.State(i), path.State(j)) {
			path.SpliceRemoveRange(i+1, j-1)
			emptyStreak = 0
		} else {
			emptyStreak++
		}
	}
}

// SimplifyMax runs random shortcutting, densifies the result to factor 1.0
// (exposing shortcuts between previously-interior grid points), and then
// shortcuts again. Calling it again on its own output densifies and shortcuts
// once more; every shortcut replaces a sub-path with a straight edge, so the
// path length never increases.
func (sp *Simplifier) SimplifyMax(path *Path) {
	sp.ReduceVertices(path, 0, DefaultMaxEmptySteps, DefaultRangeRatio)
	Interpolate(sp.Validator.Space, path, 1.0)
	sp.ReduceVertices(path, 0, DefaultMaxEmptySteps, DefaultRangeRatio)
}
