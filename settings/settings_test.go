package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/locomotion"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	cfg := s.Config(nil)
	def := locomotion.DefaultConfig()
	assert.Equal(t, def.Torso, cfg.Torso)
	assert.Equal(t, def.Foot, cfg.Foot)
	assert.Equal(t, def.Layer, cfg.Layer)
	assert.Equal(t, def.Weights, cfg.Weights)
	assert.Empty(t, cfg.DebugModes)

	assert.InDelta(t, 1.0/60, s.TickDuration(), 1e-7)
	assert.Equal(t, 600, s.Frames())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveDefault(path))
	require.Error(t, SaveDefault(path), "saving over an existing file must fail")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings().Character, s.Character)
	assert.Equal(t, DefaultSettings().Weights, s.Weights)
	assert.Equal(t, DefaultSettings().Gravity.Mode, s.Gravity.Mode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func writeSettings(t *testing.T, s Settings) string {
	t.Helper()
	data, err := toml.Marshal(s)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadModifiedFile(t *testing.T) {
	s := DefaultSettings()
	s.Character.Speed = 3.5
	s.Gravity.Mode = GravityModePoint
	s.Gravity.Centre = []float32{0, -50, 0}
	s.Debug.Modes = []string{"ground", "STEP"}

	loaded, err := Load(writeSettings(t, s))
	require.NoError(t, err)
	assert.InDelta(t, 3.5, loaded.Character.Speed, 1e-6)
	assert.InDelta(t, 0.4, loaded.Character.FootRadius, 1e-6)

	modes, err := loaded.DebugModes()
	require.NoError(t, err)
	assert.Equal(t, []locomotion.DebugMode{locomotion.DebugModeGround, locomotion.DebugModeStep}, modes)

	src := loaded.GravitySource(locomotion.NewBody(mgl32.Vec3{}))
	assert.Equal(t, mgl32.Vec3{0, -50, 0}, src.Position())
}

func TestLoadInvalidFile(t *testing.T) {
	s := DefaultSettings()
	s.Locomotion.StandAngle = 95

	_, err := Load(writeSettings(t, s))
	assert.ErrorContains(t, err, "stand angle")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Character\nSpeed = "), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed decoding settings")
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(s *Settings){
		"torso radius":     func(s *Settings) { s.Character.TorsoRadius = 0 },
		"foot radius":      func(s *Settings) { s.Character.FootRadius = -1 },
		"speed":            func(s *Settings) { s.Character.Speed = -1 },
		"layer":            func(s *Settings) { s.Character.Layer = 40 },
		"step height":      func(s *Settings) { s.Locomotion.StepHeight = -0.1 },
		"stand angle":      func(s *Settings) { s.Locomotion.StandAngle = 90 },
		"slide slowing":    func(s *Settings) { s.Locomotion.SlideSlowing = 0 },
		"tiny tolerance":   func(s *Settings) { s.Locomotion.TinyTolerance = 0.1 },
		"tolerance":        func(s *Settings) { s.Locomotion.Tolerance, s.Locomotion.TinyTolerance = 0.5, 0.01 },
		"gravity":          func(s *Settings) { s.Gravity.Magnitude = -9.81 },
		"gravity mode":     func(s *Settings) { s.Gravity.Mode = "sideways" },
		"gravity distance": func(s *Settings) { s.Gravity.Distance = 0 },
		"gravity centre":   func(s *Settings) { s.Gravity.Mode, s.Gravity.Centre = GravityModePoint, []float32{1, 2} },
		"tick rate":        func(s *Settings) { s.Simulation.TickRate = 0 },
		"seconds":          func(s *Settings) { s.Simulation.Seconds = -1 },
		"debug mode":       func(s *Settings) { s.Debug.Modes = []string{"everything"} },
		"log level":        func(s *Settings) { s.Debug.LogLevel = "loud" },
	} {
		t.Run(name, func(t *testing.T) {
			s := DefaultSettings()
			mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestAttachedGravityFollowsBody(t *testing.T) {
	s := DefaultSettings()
	body := locomotion.NewBody(mgl32.Vec3{3, 2, 1})
	src := s.GravitySource(body)
	assert.Equal(t, mgl32.Vec3{3, -998, 1}, src.Position())
	assert.InDelta(t, 9.81, src.Magnitude(), 1e-6)

	cfg := s.Config(logrus.New())
	assert.NotNil(t, cfg.Log)
}
