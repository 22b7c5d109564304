package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/assert"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
	"github.com/sirupsen/logrus"
)

// Weights holds the weight of the veto every producer proposes in each situation.
type Weights struct {
	Pushback         int
	SweepUpper       int
	StepUp           int
	ClampGround      int
	GravityCollision int
	SweepLower       int
	FreeFall         int
}

// DefaultWeights returns the default weight table.
func DefaultWeights() Weights {
	return Weights{
		Pushback:         game.WeightPushback,
		SweepUpper:       game.WeightSweepUpper,
		StepUp:           game.WeightStepUp,
		ClampGround:      game.WeightClampGround,
		GravityCollision: game.WeightGravityCollision,
		SweepLower:       game.WeightSweepLower,
		FreeFall:         game.WeightFreeFall,
	}
}

// Config is the configuration of a single character.
type Config struct {
	// Torso is the shape kept clear of obstacles around the character.
	Torso ProbeShape
	// Foot is the shape that stands on the ground.
	Foot ProbeShape
	// Layer is the collision layer of the character itself. It is excluded from every query.
	Layer geometry.Layer

	// StandAngle is the steepest surface, in degrees, the character can stand on.
	StandAngle float32
	// StepHeight is the highest step the character walks onto.
	StepHeight float32
	// SlideSlowing divides the acceleration of gravity while sliding.
	SlideSlowing float32

	Tolerance     float32
	TinyTolerance float32

	Weights Weights

	// Log is the logger debug messages of the character are written to. The standard logger is
	// used if nil.
	Log *logrus.Logger
	// DebugModes are the debug modes enabled when the character is created.
	DebugModes []DebugMode
}

// DefaultConfig returns the configuration of a character about one unit tall.
func DefaultConfig() Config {
	return Config{
		Torso:         ProbeShape{Radius: 0.4, Offset: mgl32.Vec3{0, 0.5, 0}},
		Foot:          ProbeShape{Radius: 0.4, Offset: mgl32.Vec3{0, 0.4, 0}},
		Layer:         1,
		StandAngle:    game.DefaultStandAngle,
		StepHeight:    game.DefaultStepHeight,
		SlideSlowing:  game.DefaultSlideSlowing,
		Tolerance:     game.Tolerance,
		TinyTolerance: game.TinyTolerance,
		Weights:       DefaultWeights(),
	}
}

// validate panics if the configuration was never validated by the settings it was loaded from.
func (c Config) validate() {
	assert.IsTrue(c.Torso.Radius > c.Tolerance, game.ErrorToleranceTooLarge, "torso", c.Torso.Radius, c.Tolerance)
	assert.IsTrue(c.Foot.Radius > c.Tolerance, game.ErrorToleranceTooLarge, "foot", c.Foot.Radius, c.Tolerance)
	assert.IsTrue(c.StepHeight >= 0, game.ErrorInvalidStepHeight, c.StepHeight)
	assert.IsTrue(c.StandAngle > 0 && c.StandAngle < 90, game.ErrorInvalidStandAngle, c.StandAngle)
	assert.IsTrue(c.SlideSlowing > 0, game.ErrorInvalidSlideSlowing, c.SlideSlowing)
	assert.IsTrue(c.TinyTolerance > 0 && c.TinyTolerance <= c.Tolerance, game.ErrorInvalidTolerance, c.Tolerance, c.TinyTolerance)
	assert.IsTrue(int(c.Layer) < geometry.MaxLayers, game.ErrorInvalidLayer, geometry.MaxLayers, c.Layer)
}

func (c Config) filter() geometry.Filter {
	return geometry.ExcludeLayer(c.Layer)
}
