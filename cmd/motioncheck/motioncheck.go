// Command motioncheck loads a space/obstacle/path description from a JSON
// file, checks and simplifies the path, and reports the result through the
// logger.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/viamlabs/motionkit/logging"
	"github.com/viamlabs/motionkit/motionplan"
)

type obstacleDisk struct {
	Center []float64 `json:"center"`
	Radius float64   `json:"radius"`
}

func (o obstacleDisk) contains(v []float64) bool {
	sumSq := 0.0
	for i, c := range o.Center {
		d := v[i] - c
		sumSq += d * d
	}
	return sumSq <= o.Radius*o.Radius
}

type request struct {
	Components []motionplan.Component `json:"components"`
	Obstacles  []obstacleDisk         `json:"obstacles"`
	Path       [][]float64            `json:"path"`
	Seed       int64                  `json:"seed"`
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func realMain() error {
	verbose := flag.Bool("v", false, "verbose")
	simplify := flag.Bool("simplify", true, "run simplify_max after the initial check")
	flag.Parse()

	if len(flag.Args()) == 0 {
		return fmt.Errorf("need a json request file")
	}

	logger := logging.NewLogger("motioncheck")
	if *verbose {
		logger.SetLevel(logging.DEBUG)
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return err
	}

	var req request
	if err := json.Unmarshal(content, &req); err != nil {
		return err
	}

	space, err := motionplan.NewSpace(req.Components)
	if err != nil {
		return err
	}

	valid := func(s motionplan.State) bool {
		v := s.Floats()
		for _, o := range req.Obstacles {
			if o.contains(v) {
				return false
			}
		}
		return true
	}

	states := make([]motionplan.State, len(req.Path))
	for i, p := range req.Path {
		states[i] = motionplan.NewStateFromFloats(p)
	}
	path := motionplan.NewPathFromStates(states)

	mv := motionplan.NewMotionValidator(space, valid)

	logger.Infof("loaded path with %d vertices, length %.4f", path.Len(), path.Length(space))
	logger.Infof("check_path: %v", mv.CheckPath(path))

	if *simplify {
		seed := req.Seed
		if seed == 0 {
			seed = 1
		}
		sp := motionplan.NewSimplifier(mv, rand.New(rand.NewSource(seed)))
		sp.SimplifyMax(path)
		logger.Infof("after simplify_max: %d vertices, length %.4f", path.Len(), path.Length(space))
		logger.Infof("check_path after simplify: %v", mv.CheckPath(path))
	}

	return nil
}
