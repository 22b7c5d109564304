package locomotion

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/geometry"
)

var framePool = sync.Pool{
	New: func() any {
		return &groundFrame{}
	},
}

// groundFrame holds everything the foot of a character works with during a single frame.
type groundFrame struct {
	g *Ground

	dt        float32
	magnitude float32
	// down is the direction of gravity this frame. It is replaced by the downhill direction once the
	// foot is found to be sliding.
	down   mgl32.Vec3
	intent mgl32.Vec3
	move   mgl32.Vec3
	foot   mgl32.Vec3
	filter geometry.Filter

	lifted bool
}

func newFrame(g *Ground, dt float32, down mgl32.Vec3, magnitude float32) *groundFrame {
	f := framePool.Get().(*groundFrame)
	f.g = g
	f.dt = dt
	f.magnitude = magnitude
	f.down = down
	f.intent = g.arb.Intent()
	f.move = f.intent.Mul(dt)
	f.foot = g.cfg.Foot.Centre(g.arb.Position())
	f.filter = g.cfg.filter()
	return f
}

func putFrame(f *groundFrame) {
	f.reset()
	framePool.Put(f)
}

func (f *groundFrame) reset() {
	f.g = nil
	f.dt = 0
	f.magnitude = 0
	f.down = mgl32.Vec3{}
	f.intent = mgl32.Vec3{}
	f.move = mgl32.Vec3{}
	f.foot = mgl32.Vec3{}
	f.filter = geometry.Filter{}
	f.lifted = false
}
