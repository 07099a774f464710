package replay

import (
	"fmt"

	"github.com/younwookim/coinhop/internal/application/hud"
	"github.com/younwookim/coinhop/internal/application/sim"
	"github.com/younwookim/coinhop/internal/application/system"
)

// Summary is the outcome of a headless replay
type Summary struct {
	Frames   int
	Restarts int
	Advances int
	Sounds   map[system.SoundID]int
	HUD      hud.Snapshot
}

// Run feeds every recorded frame to a started simulation.
// It stops early, with an error, if the simulation fails.
func Run(s *sim.Sim, r *Replayer) (Summary, error) {
	sum := Summary{Sounds: make(map[system.SoundID]int)}
	dt := r.DT()

	for {
		input, ok := r.GetInput()
		if !ok {
			break
		}

		res, err := s.Step(input, dt)
		if err != nil {
			return sum, fmt.Errorf("frame %d: %w", r.CurrentFrame()-1, err)
		}
		sum.Frames++

		for _, cmd := range res.Commands {
			if ps, ok := cmd.(system.PlaySound); ok {
				sum.Sounds[ps.Sound]++
			}
		}
		if res.Transition != nil {
			if res.Transition.Kind == system.TransitionAdvance {
				sum.Advances++
			} else {
				sum.Restarts++
			}
		}
	}

	sum.HUD = s.HUD()
	return sum, nil
}
