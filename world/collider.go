package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/geometry"
)

// Collider is a shape that can be placed in a Scene.
type Collider interface {
	geometry.Shape
	// SignedDistance returns the distance from p to the surface of the collider, negative if p lies
	// inside it. Far away from the surface the value may underestimate the true distance, but it
	// never overestimates it.
	SignedDistance(p mgl32.Vec3) float32
	// ClosestPoint returns the point on the surface of the collider nearest to p.
	ClosestPoint(p mgl32.Vec3) mgl32.Vec3
	// Raycast intersects the ray from origin along the unit direction dir with the surface of the
	// collider, ignoring contacts further than maxDist.
	Raycast(origin, dir mgl32.Vec3, maxDist float32) (Contact, bool)
}

// Contact is a ray contact on the surface of a single collider.
type Contact struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// closestOnSegment returns the point on the segment ab nearest to p.
func closestOnSegment(a, b, p mgl32.Vec3) mgl32.Vec3 {
	ab := b.Sub(a)
	l := ab.LenSqr()
	if l == 0 {
		return a
	}
	return a.Add(ab.Mul(mgl32.Clamp(p.Sub(a).Dot(ab)/l, 0, 1)))
}

// rotation returns q, or the identity rotation if q is the zero quaternion.
func rotation(q mgl32.Quat) mgl32.Quat {
	if q.W == 0 && q.V.LenSqr() == 0 {
		return mgl32.QuatIdent()
	}
	return q.Normalize()
}
