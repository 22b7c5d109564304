package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
)

// Avoidance is the torso of a character. It pushes the character out of obstacles it ended up in
// and deflects its movement along walls ahead of it.
type Avoidance struct {
	cfg *Config
	arb *Arbitrator
	q   geometry.Querier
	dbg *Debugger
}

// NewAvoidance returns the torso of a character proposing its vetoes to arb.
func NewAvoidance(cfg *Config, arb *Arbitrator, q geometry.Querier, dbg *Debugger) *Avoidance {
	return &Avoidance{cfg: cfg, arb: arb, q: q, dbg: dbg}
}

// Pushback resolves the torso overlapping obstacles. Of every obstacle overlapping the torso, the one
// that needs the largest correction at the position the character is about to move to is pushed
// out of.
func (a *Avoidance) Pushback(dt float32) {
	cfg, r := a.cfg, a.cfg.Torso.Radius
	torso := cfg.Torso.Centre(a.arb.Position())

	shapes := a.q.OverlapSphere(torso, r-cfg.Tolerance, cfg.filter())
	if len(shapes) == 0 {
		return
	}

	tentative := torso.Add(a.arb.Intent().Mul(dt))
	var (
		closest    mgl32.Vec3
		correction = float32(-math32.MaxFloat32)
	)
	for _, s := range shapes {
		p := a.q.ClosestPointOnSurface(s, tentative, r)
		if c := r - p.Sub(tentative).Len(); c > correction {
			closest, correction = p, c
		}
	}

	dir, ok := game.SafeNormalize(tentative.Sub(closest))
	if !ok {
		a.dbg.Notify(DebugModeAvoidance, true, "torso centre lies on obstacle surface at %v", closest)
		return
	}
	a.dbg.Notify(DebugModeAvoidance, true, "pushing torso out of %d obstacles (correction %.3f)", len(shapes), correction)
	a.arb.AddVeto(cfg.Weights.Pushback, closest.Add(dir.Mul(r)).Sub(cfg.Torso.Offset))
}

// SweepTest sweeps the torso along the movement of the frame. A wall ahead deflects the movement
// sideways along the wall, or stops it if the wall is hit head-on.
func (a *Avoidance) SweepTest(dt float32, down mgl32.Vec3) {
	cfg := a.cfg
	intent := a.arb.Intent()
	dir, ok := game.SafeNormalize(intent)
	if !ok {
		return
	}
	speed := intent.Len()
	torso := cfg.Torso.Centre(a.arb.Position())

	hit, ok := a.q.SphereCast(torso.Sub(dir.Mul(cfg.Tolerance)), cfg.Torso.castRadius(cfg.Tolerance), dir, speed*dt+cfg.Tolerance, cfg.filter())
	if !ok {
		return
	}

	up := down.Mul(-1)
	weight := cfg.Weights.SweepLower
	// The hit normal faces the torso, so a contact on its upper half has a normal pointing down.
	if game.AngleBetween(up, hit.Normal) >= 90-cfg.TinyTolerance {
		weight = cfg.Weights.SweepUpper
	}

	wall, ok := geometry.WallHit(a.q, hit, down, cfg.filter(), cfg.TinyTolerance)
	if !ok {
		wall = hit
	}

	var deflection mgl32.Vec3
	if game.AngleBetween(wall.Normal, dir.Mul(-1)) > game.HeadOnAngle {
		deflection, _ = game.SafeNormalize(geometry.PointTowards(up.Cross(wall.Normal), intent))
	}
	a.dbg.Notify(DebugModeAvoidance, true, "sweep hit %v (weight %d), deflecting along %v", hit.Point, weight, deflection)
	a.arb.AddVeto(weight, a.arb.Position().Add(deflection.Mul(speed*dt)))
}
