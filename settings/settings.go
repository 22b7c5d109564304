package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
	"github.com/oomph-ac/kinematic/locomotion"
	"github.com/oomph-ac/kinematic/oerror"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

const (
	GravityModeAttached = "attached"
	GravityModePoint    = "point"
)

// Settings contains everything that can be configured for the characters and the simulation they
// run in.
type Settings struct {
	Character struct {
		// Speed is the horizontal speed of the characters in units per second.
		Speed float32
		// TorsoRadius and TorsoHeight describe the sphere kept clear of walls. The height is
		// measured from the position of the character, which is the bottom of its foot.
		TorsoRadius float32
		TorsoHeight float32
		FootRadius  float32
		FootHeight  float32
		// Layer is the collision layer of the characters. Queries never report it.
		Layer uint8
	}
	Locomotion struct {
		StandAngle    float32
		StepHeight    float32
		SlideSlowing  float32
		Tolerance     float32
		TinyTolerance float32
	}
	Weights struct {
		Pushback         int
		SweepUpper       int
		StepUp           int
		ClampGround      int
		GravityCollision int
		SweepLower       int
		FreeFall         int
	}
	Gravity struct {
		// Mode is either "attached", where the source floats Distance below every character, or
		// "point", where every character falls towards Centre.
		Mode      string
		Magnitude float32
		Distance  float32
		Centre    []float32
	}
	Simulation struct {
		TickRate int
		Seconds  float32
		// Lanes are the names of the lanes of the demo course characters are placed on. All lanes
		// are used if empty.
		Lanes []string
		// CharactersPerLane is the amount of characters placed on every lane.
		CharactersPerLane int
		// Workers is the amount of characters stepped at the same time. Zero uses every CPU.
		Workers int
	}
	Debug struct {
		Modes     []string
		LogLevel  string
		StatsView bool
		StatsAddr string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	def := locomotion.DefaultConfig()

	s.Character.Speed = game.DefaultMovementSpeed
	s.Character.TorsoRadius = def.Torso.Radius
	s.Character.TorsoHeight = def.Torso.Offset.Y()
	s.Character.FootRadius = def.Foot.Radius
	s.Character.FootHeight = def.Foot.Offset.Y()
	s.Character.Layer = uint8(def.Layer)

	s.Locomotion.StandAngle = game.DefaultStandAngle
	s.Locomotion.StepHeight = game.DefaultStepHeight
	s.Locomotion.SlideSlowing = game.DefaultSlideSlowing
	s.Locomotion.Tolerance = game.Tolerance
	s.Locomotion.TinyTolerance = game.TinyTolerance

	w := locomotion.DefaultWeights()
	s.Weights.Pushback = w.Pushback
	s.Weights.SweepUpper = w.SweepUpper
	s.Weights.StepUp = w.StepUp
	s.Weights.ClampGround = w.ClampGround
	s.Weights.GravityCollision = w.GravityCollision
	s.Weights.SweepLower = w.SweepLower
	s.Weights.FreeFall = w.FreeFall

	s.Gravity.Mode = GravityModeAttached
	s.Gravity.Magnitude = game.DefaultGravity
	s.Gravity.Distance = 1000
	s.Gravity.Centre = []float32{0, -1000, 0}

	s.Simulation.TickRate = 60
	s.Simulation.Seconds = 10
	s.Simulation.Lanes = []string{}
	s.Simulation.CharactersPerLane = 1

	s.Debug.Modes = []string{}
	s.Debug.LogLevel = logrus.InfoLevel.String()
	s.Debug.StatsAddr = "localhost:18066"
	return s
}

// Validate returns an error describing the first invalid setting found.
func (s Settings) Validate() error {
	c, l := s.Character, s.Locomotion
	switch {
	case c.TorsoRadius <= 0:
		return oerror.New(game.ErrorInvalidRadius, "torso", c.TorsoRadius)
	case c.FootRadius <= 0:
		return oerror.New(game.ErrorInvalidRadius, "foot", c.FootRadius)
	case c.Speed < 0:
		return oerror.New(game.ErrorInvalidSpeed, c.Speed)
	case int(c.Layer) >= geometry.MaxLayers:
		return oerror.New(game.ErrorInvalidLayer, geometry.MaxLayers, c.Layer)
	case l.StepHeight < 0:
		return oerror.New(game.ErrorInvalidStepHeight, l.StepHeight)
	case l.StandAngle <= 0 || l.StandAngle >= 90:
		return oerror.New(game.ErrorInvalidStandAngle, l.StandAngle)
	case l.SlideSlowing <= 0:
		return oerror.New(game.ErrorInvalidSlideSlowing, l.SlideSlowing)
	case l.TinyTolerance <= 0 || l.TinyTolerance > l.Tolerance:
		return oerror.New(game.ErrorInvalidTolerance, l.Tolerance, l.TinyTolerance)
	case c.TorsoRadius <= l.Tolerance:
		return oerror.New(game.ErrorToleranceTooLarge, "torso", c.TorsoRadius, l.Tolerance)
	case c.FootRadius <= l.Tolerance:
		return oerror.New(game.ErrorToleranceTooLarge, "foot", c.FootRadius, l.Tolerance)
	case s.Gravity.Magnitude < 0:
		return oerror.New(game.ErrorInvalidGravity, s.Gravity.Magnitude)
	case s.Simulation.TickRate <= 0:
		return oerror.New(game.ErrorInvalidTickRate, s.Simulation.TickRate)
	case s.Simulation.Seconds < 0:
		return oerror.New(game.ErrorInvalidDuration, s.Simulation.Seconds)
	}

	switch s.Gravity.Mode {
	case GravityModeAttached:
		if s.Gravity.Distance <= 0 {
			return oerror.New("attached gravity distance must be greater than zero (got %v)", s.Gravity.Distance)
		}
	case GravityModePoint:
		if len(s.Gravity.Centre) != 3 {
			return oerror.New("point gravity centre must have 3 coordinates (got %d)", len(s.Gravity.Centre))
		}
	default:
		return oerror.New(game.ErrorInvalidGravityMode, s.Gravity.Mode)
	}

	if _, err := s.DebugModes(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(s.Debug.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// DebugModes returns the debug modes enabled in the settings.
func (s Settings) DebugModes() ([]locomotion.DebugMode, error) {
	modes := make([]locomotion.DebugMode, 0, len(s.Debug.Modes))
	for _, name := range s.Debug.Modes {
		mode, err := locomotion.ParseDebugMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

// Config returns the locomotion configuration of a character. The settings must be valid.
func (s Settings) Config(log *logrus.Logger) locomotion.Config {
	modes, _ := s.DebugModes()
	return locomotion.Config{
		Torso:         locomotion.ProbeShape{Radius: s.Character.TorsoRadius, Offset: mgl32.Vec3{0, s.Character.TorsoHeight, 0}},
		Foot:          locomotion.ProbeShape{Radius: s.Character.FootRadius, Offset: mgl32.Vec3{0, s.Character.FootHeight, 0}},
		Layer:         geometry.Layer(s.Character.Layer),
		StandAngle:    s.Locomotion.StandAngle,
		StepHeight:    s.Locomotion.StepHeight,
		SlideSlowing:  s.Locomotion.SlideSlowing,
		Tolerance:     s.Locomotion.Tolerance,
		TinyTolerance: s.Locomotion.TinyTolerance,
		Weights: locomotion.Weights{
			Pushback:         s.Weights.Pushback,
			SweepUpper:       s.Weights.SweepUpper,
			StepUp:           s.Weights.StepUp,
			ClampGround:      s.Weights.ClampGround,
			GravityCollision: s.Weights.GravityCollision,
			SweepLower:       s.Weights.SweepLower,
			FreeFall:         s.Weights.FreeFall,
		},
		Log:        log,
		DebugModes: modes,
	}
}

// GravitySource returns the gravity source of a character with the body passed.
func (s Settings) GravitySource(body *locomotion.Body) locomotion.GravitySource {
	if s.Gravity.Mode == GravityModePoint {
		c := s.Gravity.Centre
		return locomotion.PointGravity{Centre: mgl32.Vec3{c[0], c[1], c[2]}, Strength: s.Gravity.Magnitude}
	}
	return locomotion.NewAttachedGravity(body, mgl32.Vec3{0, -s.Gravity.Distance, 0}, s.Gravity.Magnitude)
}

// TickDuration returns the length of a single simulation frame in seconds.
func (s Settings) TickDuration() float32 {
	return 1 / float32(s.Simulation.TickRate)
}

// Frames returns the amount of frames the simulation runs for.
func (s Settings) Frames() int {
	return int(s.Simulation.Seconds * float32(s.Simulation.TickRate))
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}

	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not
// exist or holds invalid settings.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	} else if err != nil {
		return Settings{}, fmt.Errorf("failed reading settings: %w", err)
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
