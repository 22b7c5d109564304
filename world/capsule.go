package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
)

// Capsule is a capsule collider: every point within Radius of a segment along the local Y axis.
type Capsule struct {
	a, b   mgl32.Vec3
	radius float32
	bounds cube.BBox
}

// NewCapsule returns an upright capsule of the given total height centred on centre, rotated by
// rot. Heights below twice the radius produce a sphere.
func NewCapsule(centre mgl32.Vec3, radius, height float32, rot mgl32.Quat) *Capsule {
	half := math32.Max(height*0.5-radius, 0)
	axis := rotation(rot).Rotate(mgl32.Vec3{0, half, 0})

	c := &Capsule{a: centre.Add(axis), b: centre.Sub(axis), radius: radius}
	c.bounds = game.BBoxGrow(game.BBoxFromPoints(c.a, c.b), radius)
	return c
}

func (c *Capsule) Bounds() cube.BBox {
	return c.bounds
}

func (c *Capsule) SignedDistance(p mgl32.Vec3) float32 {
	return p.Sub(closestOnSegment(c.a, c.b, p)).Len() - c.radius
}

func (c *Capsule) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	s := closestOnSegment(c.a, c.b, p)
	dir, ok := game.SafeNormalize(p.Sub(s))
	if !ok {
		// On the axis itself: any direction perpendicular to it is equally close.
		dir, ok = game.SafeNormalize(c.a.Sub(c.b).Cross(mgl32.Vec3{0, 0, 1}))
		if !ok {
			dir = mgl32.Vec3{1, 0, 0}
		}
	}
	return s.Add(dir.Mul(c.radius))
}

const (
	capsuleRaySteps   = 128
	capsuleRayEpsilon = float32(1e-5)
)

// Raycast marches the ray against the exact distance of the capsule, which converges quickly for a
// convex shape.
func (c *Capsule) Raycast(origin, dir mgl32.Vec3, maxDist float32) (Contact, bool) {
	if c.SignedDistance(origin) <= 0 {
		return Contact{}, false
	}

	var t float32
	for i := 0; i < capsuleRaySteps && t <= maxDist; i++ {
		p := origin.Add(dir.Mul(t))
		d := c.SignedDistance(p)
		if d < capsuleRayEpsilon {
			n, ok := game.SafeNormalize(p.Sub(closestOnSegment(c.a, c.b, p)))
			if !ok {
				return Contact{}, false
			}
			return Contact{Point: p, Normal: n, Distance: t}, true
		}
		t += d
	}
	return Contact{}, false
}
