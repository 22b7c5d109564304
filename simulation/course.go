package simulation

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/locomotion"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/oomph-ac/kinematic/settings"
	"github.com/oomph-ac/kinematic/world"
	"github.com/sirupsen/logrus"
)

// NewCourse builds the demo course and a runner with the characters the settings ask for placed on
// its lanes. Characters on a lane walk along it until they are stopped by something.
func NewCourse(s settings.Settings, log *logrus.Logger) (*Runner, *world.Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}
	if s.Simulation.CharactersPerLane < 1 {
		return nil, nil, oerror.New("characters per lane must be at least 1 (got %d)", s.Simulation.CharactersPerLane)
	}

	scene, lanes := world.DemoCourse()
	if len(s.Simulation.Lanes) != 0 {
		for _, name := range s.Simulation.Lanes {
			if !slices.ContainsFunc(lanes, func(l world.Lane) bool { return l.Name == name }) {
				return nil, nil, oerror.New("unknown lane %q", name)
			}
		}
		lanes = slices.DeleteFunc(lanes, func(l world.Lane) bool {
			return !slices.Contains(s.Simulation.Lanes, l.Name)
		})
	}

	r, err := NewRunner(s.TickDuration(), s.Simulation.Workers, log)
	if err != nil {
		return nil, nil, err
	}
	cfg := s.Config(log)
	for _, lane := range lanes {
		for i := 0; i < s.Simulation.CharactersPerLane; i++ {
			body := locomotion.NewBody(lane.Start)
			c := locomotion.NewController(cfg, body, scene, s.GravitySource(body), laneIntent(lane, s.Character.Speed))
			r.Add(lane.Name, c)
		}
	}
	return r, scene, nil
}

// laneIntent returns an intent source holding the forward key of the lane, or standing still if
// the lane has no forward direction.
func laneIntent(lane world.Lane, speed float32) locomotion.IntentSource {
	if lane.Forward.LenSqr() == 0 {
		return locomotion.ConstantIntent{}
	}
	forward := lane.Forward.Normalize()
	k := locomotion.NewKeyIntent(forward, forward.Cross(mgl32.Vec3{0, 1, 0}), speed)
	k.Press(locomotion.KeyForward)
	return k
}
