package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/assert"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
	"github.com/sirupsen/logrus"
)

// Controller moves a single character through a world. Every frame the torso and the foot of the
// character propose vetoes, after which the arbitrator commits one of them to the body.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	cfg  Config
	body *Body

	gravity GravitySource
	intent  IntentSource

	arb       *Arbitrator
	avoidance *Avoidance
	ground    *Ground
	dbg       *Debugger

	down mgl32.Vec3
}

// NewController returns a controller moving body through the world queried by q. cfg must have been
// validated beforehand.
func NewController(cfg Config, body *Body, q geometry.Querier, gravity GravitySource, intent IntentSource) *Controller {
	cfg.validate()
	assert.IsTrue(body != nil && q != nil && gravity != nil && intent != nil, "controller needs a body, querier, gravity and intent source")

	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	dbg := NewDebugger(log.WithField("component", "locomotion"))
	for _, mode := range cfg.DebugModes {
		dbg.Enable(mode)
	}

	c := &Controller{
		cfg:     cfg,
		body:    body,
		gravity: gravity,
		intent:  intent,
		dbg:     dbg,
		down:    mgl32.Vec3{0, -1, 0},
	}
	c.arb = NewArbitrator(body, dbg)
	c.avoidance = NewAvoidance(&c.cfg, c.arb, q, dbg)
	c.ground = NewGround(&c.cfg, c.arb, q, dbg)
	return c
}

// Tick runs a single frame lasting dt seconds and returns the committed position of the body.
func (c *Controller) Tick(dt float32) mgl32.Vec3 {
	assert.IsTrue(dt > 0, game.ErrorInvalidTickRate, dt)
	c.dbg.resetTrace()

	intent := c.intent.Intent()
	c.arb.SetIntent(intent)
	down := c.gravityDirection()
	c.dbg.Record("intent", intent)
	c.dbg.Record("down", down)

	c.avoidance.Pushback(dt)
	c.avoidance.SweepTest(dt, down)
	c.ground.Update(dt, down, c.gravity.Magnitude())
	return c.arb.Resolve(dt)
}

// gravityDirection points from the foot towards the gravity source. If the foot sits on the source
// itself, the direction of the previous frame is kept.
func (c *Controller) gravityDirection() mgl32.Vec3 {
	if down, ok := game.SafeNormalize(c.gravity.Position().Sub(c.cfg.Foot.Centre(c.body.Position()))); ok {
		c.down = down
	}
	return c.down
}

// Body returns the body moved by the controller.
func (c *Controller) Body() *Body {
	return c.body
}

// State returns the ground state of the character after the last frame.
func (c *Controller) State() GroundState {
	return c.ground.State()
}

// FallSpeed returns the velocity the character is falling or sliding with.
func (c *Controller) FallSpeed() mgl32.Vec3 {
	return c.ground.FallSpeed()
}

// Debugger returns the debugger of the character.
func (c *Controller) Debugger() *Debugger {
	return c.dbg
}
