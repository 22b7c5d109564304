package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
)

// Sphere is a sphere collider.
type Sphere struct {
	Centre mgl32.Vec3
	Radius float32
}

func (s Sphere) Bounds() cube.BBox {
	return game.BBoxAround(s.Centre, mgl32.Vec3{s.Radius, s.Radius, s.Radius})
}

func (s Sphere) SignedDistance(p mgl32.Vec3) float32 {
	return p.Sub(s.Centre).Len() - s.Radius
}

func (s Sphere) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	dir, ok := game.SafeNormalize(p.Sub(s.Centre))
	if !ok {
		dir = mgl32.Vec3{0, 1, 0}
	}
	return s.Centre.Add(dir.Mul(s.Radius))
}

func (s Sphere) Raycast(origin, dir mgl32.Vec3, maxDist float32) (Contact, bool) {
	m := origin.Sub(s.Centre)
	b := m.Dot(dir)
	c := m.LenSqr() - s.Radius*s.Radius
	if c <= 0 || b > 0 {
		// Inside the sphere, or outside and pointing away from it.
		return Contact{}, false
	}

	disc := b*b - c
	if disc < 0 {
		return Contact{}, false
	}
	t := -b - math32.Sqrt(disc)
	if t > maxDist {
		return Contact{}, false
	}

	point := origin.Add(dir.Mul(t))
	return Contact{Point: point, Normal: point.Sub(s.Centre).Mul(1 / s.Radius), Distance: t}, true
}
