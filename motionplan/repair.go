package motionplan

import (
	"fmt"

	"github.com/viamlabs/motionkit/logging"
)

// Repairer projects out-of-bounds start/goal configurations into bounds and,
// if that alone is not valid, searches a neighborhood for a valid nearby
// configuration. Failures are diagnostics, not hard errors: the caller's
// state is left projected-but-invalid and planning may proceed (and fail
// later) or abort, at the caller's discretion.
type Repairer struct {
	Space   *Space
	Valid   ValidityFunc
	Sampler *Sampler
	Logger  logging.Logger
}

// NewRepairer builds a Repairer over the given space, validity predicate, and
// sampler. If logger is nil, a blank logger that discards everything below
// Info is used.
func NewRepairer(space *Space, valid ValidityFunc, sampler *Sampler, logger logging.Logger) *Repairer {
	if space == nil {
		panic("motionplan: NewRepairer requires a non-nil Space")
	}
	if valid == nil {
		panic("motionplan: NewRepairer requires a non-nil validity function")
	}
	if sampler == nil {
		panic("motionplan: NewRepairer requires a non-nil Sampler")
	}
	if logger == nil {
		logger = logging.NewLogger("repair")
	}
	return &Repairer{Space: space, Valid: valid, Sampler: sampler, Logger: logger}
}

// SearchValidNearby projects near into bounds, writes the result into out,
// and -- if that projected state is not itself valid -- repeatedly samples
// within rho of it until a valid state is found or attempts is exhausted. It
// returns whether a valid state was ultimately written into out; on failure,
// out holds the projected-but-invalid state.
func (r *Repairer) SearchValidNearby(out, near State, rho []float64, attempts int) bool {
	vals := near.Floats()
	r.Space.ProjectToBounds(vals)
	copy(out, NewStateFromFloats(vals))

	if r.Valid(out) {
		return true
	}

	scratch := out.Clone()
	for i := 0; i < attempts; i++ {
		r.Sampler.SampleNearPerAxis(out, scratch, rho)
		if r.Valid(out) {
			return true
		}
	}
	// Exhausted: restore the projected state so out never holds a stray
	// invalid sample.
	copy(out, scratch)
	return false
}

// FixInvalidInputStates repairs the start (path.State(0)) and goal
// (path.State(path.Len()-1)) vertices of path in place, using startRadii and
// goalRadii respectively as the per-axis search neighborhoods. It returns an
// error naming which endpoint(s) could not be repaired within attempts tries;
// a nil return means both endpoints are now in bounds and valid.
func (r *Repairer) FixInvalidInputStates(path *Path, startRadii, goalRadii []float64, attempts int) error {
	if path == nil || path.Len() == 0 {
		return ErrEmptyPath
	}

	var failures []string

	start := path.State(0)
	if !r.Space.BoundsOK(start.Floats()) || !r.Valid(start) {
		r.Logger.Infof("attempting to fix invalid start state %v", start.Floats())
		fixed := start.Clone()
		if r.SearchValidNearby(fixed, start, startRadii, attempts) {
			copy(path.States()[0], fixed)
		} else {
			copy(path.States()[0], fixed)
			r.Logger.Warnf("unable to fix start state within %d attempts", attempts)
			failures = append(failures, "start")
		}
	}

	last := path.Len() - 1
	goal := path.State(last)
	if !r.Space.BoundsOK(goal.Floats()) || !r.Valid(goal) {
		r.Logger.Infof("attempting to fix invalid goal state %v", goal.Floats())
		fixed := goal.Clone()
		if r.SearchValidNearby(fixed, goal, goalRadii, attempts) {
			copy(path.States()[last], fixed)
		} else {
			copy(path.States()[last], fixed)
			r.Logger.Warnf("unable to fix goal state within %d attempts", attempts)
			failures = append(failures, "goal")
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("unable to repair: %v", failures)
	}
	return nil
}
