package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
)

// Ground is the foot of a character. Every frame it decides whether the character is airborne,
// grounded or sliding and proposes vetoes that lift the character onto steps, keep it on the ground
// or let it fall.
type Ground struct {
	cfg *Config
	arb *Arbitrator
	q   geometry.Querier
	dbg *Debugger

	state     GroundState
	fallSpeed mgl32.Vec3
}

// NewGround returns the foot of a character proposing its vetoes to arb. Characters start out
// airborne.
func NewGround(cfg *Config, arb *Arbitrator, q geometry.Querier, dbg *Debugger) *Ground {
	return &Ground{cfg: cfg, arb: arb, q: q, dbg: dbg, state: Airborne}
}

// State returns the ground state found during the last frame.
func (g *Ground) State() GroundState {
	return g.state
}

// FallSpeed returns the velocity the character is falling or sliding with.
func (g *Ground) FallSpeed() mgl32.Vec3 {
	return g.fallSpeed
}

// Update runs the foot for a single frame with gravity pulling along down.
func (g *Ground) Update(dt float32, down mgl32.Vec3, magnitude float32) {
	f := newFrame(g, dt, down, magnitude)
	defer putFrame(f)

	f.lifted = f.liftPlayer()
	hit := f.probeGround()

	g.dbg.Record("state", g.state)
	g.dbg.Record("lifted", f.lifted)
	if f.lifted {
		return
	}
	if g.state == Grounded {
		f.clampPlayer(hit)
		return
	}
	f.performGravity()
}

// wallHit returns the wall adjoining hit, or hit itself if no wall was found.
func (f *groundFrame) wallHit(hit geometry.Hit) geometry.Hit {
	wall, ok := geometry.WallHit(f.g.q, hit, f.down, f.filter, f.g.cfg.TinyTolerance)
	if !ok {
		return hit
	}
	return wall
}

// drop returns how far the floor lies below hit, following the wall adjoining it down.
func (f *groundFrame) drop(hit geometry.Hit) float32 {
	floor, ok := geometry.FloorHit(f.g.q, f.wallHit(hit), f.down, f.filter, f.g.cfg.TinyTolerance)
	if !ok {
		return math32.Inf(1)
	}
	return hit.Point.Sub(floor.Point).Len()
}

// liftPlayer sweeps the foot along the movement of the frame. If it runs into an obstacle low
// enough to step onto, a veto placing the foot on top of it is proposed and true is returned.
func (f *groundFrame) liftPlayer() bool {
	cfg := f.g.cfg
	dir, ok := game.SafeNormalize(f.intent)
	if !ok {
		return false
	}

	hit, ok := f.g.q.SphereCast(f.foot, cfg.Foot.castRadius(cfg.Tolerance), dir, f.move.Len()+cfg.Tolerance, f.filter)
	if !ok {
		return false
	}

	drop := f.drop(hit)
	if drop > cfg.StepHeight+cfg.Tolerance {
		f.g.dbg.Notify(DebugModeStep, true, "obstacle at %v too high to step onto (%.3f)", hit.Point, drop)
		return false
	}

	target := tangentPosition(f.foot.Add(f.move), hit.Point, f.down, cfg.Foot.Radius).Sub(cfg.Foot.Offset)
	if !f.g.arb.AddVeto(cfg.Weights.StepUp, target) {
		return false
	}
	f.g.dbg.Notify(DebugModeStep, true, "stepping onto obstacle at %v (%.3f)", hit.Point, drop)
	return true
}

// probeGround casts the foot down along gravity and updates the ground state from what it finds.
// The hit below the foot is returned, which is only meaningful while grounded.
func (f *groundFrame) probeGround() geometry.Hit {
	cfg := f.g.cfg
	next := f.g.fallSpeed.Add(f.down.Mul(f.magnitude * f.dt))
	dist := next.Len()*f.dt + 2*cfg.Tolerance

	hit, ok := f.g.q.SphereCast(f.foot.Sub(f.down.Mul(cfg.Tolerance)), cfg.Foot.Radius, f.down, dist, f.filter)
	state := Airborne
	if ok {
		state = f.classify(hit)
	}
	f.transition(state)
	return hit
}

// classify returns the state of a foot resting on hit. Surfaces too steep to stand on still count as
// ground if the floor resumes within a step below them.
func (f *groundFrame) classify(hit geometry.Hit) GroundState {
	cfg := f.g.cfg
	angle := game.AngleBetween(hit.Normal, f.down.Mul(-1))
	if angle <= cfg.StandAngle {
		return Grounded
	}

	drop := f.drop(hit)
	if drop <= cfg.StepHeight+cfg.Tolerance {
		f.g.dbg.Notify(DebugModeGround, true, "standing on %.1f degree irregularity (drop %.3f)", angle, drop)
		return Grounded
	}

	if downhill, ok := game.SafeNormalize(geometry.Downhill(hit.Normal, f.down)); ok {
		f.down = downhill
	}
	f.g.dbg.Notify(DebugModeGround, true, "sliding down %.1f degree slope along %v", angle, f.down)
	return Sliding
}

func (f *groundFrame) transition(next GroundState) {
	g := f.g
	prev := g.state
	switch {
	case prev == Airborne && next != Airborne:
		g.fallSpeed = f.down.Mul(game.FallSpeedSeed)
	case next == Grounded:
		g.fallSpeed = mgl32.Vec3{}
	}
	g.state = next
	g.dbg.Notify(DebugModeGround, prev != next, "ground state %v -> %v", prev, next)
}

// clampPlayer keeps the foot on the ground it stands on while it moves. The foot is first placed so
// that it rests on the contact below it, then moved along the plane of the ground.
func (f *groundFrame) clampPlayer(hit geometry.Hit) {
	cfg := f.g.cfg
	r := cfg.Foot.Radius
	up := f.down.Mul(-1)

	v := hit.Point.Sub(f.foot)
	residual := v.Dot(f.down)
	a := game.ProjectOnPlane(v, f.down)
	shift := residual - math32.Sqrt(r*r-a.LenSqr())

	if !hit.Normal.ApproxEqual(up) {
		n := hit.Normal
		if wall, ok := geometry.WallHit(f.g.q, hit, f.down, f.filter, cfg.TinyTolerance); ok && game.AngleBetween(wall.Normal, up) <= cfg.StandAngle {
			n = wall.Normal
		}
		if d := f.down.Dot(n); game.AngleBetween(n, up) <= cfg.StandAngle && d != 0 {
			shift -= f.move.Dot(n) / d
		}
	}

	target := f.foot.Add(f.move).Add(f.down.Mul(shift)).Sub(cfg.Foot.Offset)
	if !f.g.arb.AddVeto(cfg.Weights.ClampGround, target) {
		f.g.dbg.Notify(DebugModeGround, true, "ground clamp on %v produced no position", hit.Point)
	}
}

// performGravity accelerates the fall of the character and proposes where it falls to. While
// sliding, gravity pulls along the slope and is slowed down.
func (f *groundFrame) performGravity() {
	g, cfg := f.g, f.g.cfg
	accel := f.down.Mul(f.magnitude * f.dt)
	if g.state == Sliding {
		accel = accel.Mul(1 / cfg.SlideSlowing)
	}
	g.fallSpeed = g.fallSpeed.Add(accel)
	g.dbg.Record("fallSpeed", g.fallSpeed)

	dir, ok := game.SafeNormalize(g.fallSpeed)
	if !ok {
		return
	}
	hit, ok := g.q.SphereCast(f.foot, cfg.Foot.Radius, dir, g.fallSpeed.Len()*f.dt+cfg.Tolerance, f.filter)
	if ok {
		g.arb.AddVeto(cfg.Weights.GravityCollision, hit.Point.Add(hit.Normal.Mul(cfg.Foot.Radius)).Sub(cfg.Foot.Offset))
		return
	}
	g.arb.AddVeto(cfg.Weights.FreeFall, g.arb.Position().Add(g.fallSpeed.Mul(f.dt)))
}
