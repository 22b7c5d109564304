package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/assert"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
)

// Mesh is a two-sided triangle soup collider. A mesh has no inside, so its signed distance is
// never negative.
type Mesh struct {
	triangles []Triangle
	bounds    cube.BBox
}

// NewMesh returns a mesh made of the triangles passed.
func NewMesh(triangles ...Triangle) *Mesh {
	assert.IsTrue(len(triangles) > 0, "mesh needs at least one triangle")

	points := make([]mgl32.Vec3, 0, len(triangles)*3)
	for _, t := range triangles {
		points = append(points, t[:]...)
	}
	return &Mesh{triangles: triangles, bounds: game.BBoxFromPoints(points...)}
}

func (m *Mesh) Bounds() cube.BBox {
	return m.bounds
}

func (m *Mesh) nearest(p mgl32.Vec3) (mgl32.Vec3, float32) {
	var best mgl32.Vec3
	bestDist := float32(math32.MaxFloat32)
	for _, t := range m.triangles {
		c := t.ClosestPoint(p)
		if d := c.Sub(p).Len(); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

func (m *Mesh) SignedDistance(p mgl32.Vec3) float32 {
	_, d := m.nearest(p)
	return d
}

func (m *Mesh) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	c, _ := m.nearest(p)
	return c
}

func (m *Mesh) Raycast(origin, dir mgl32.Vec3, maxDist float32) (Contact, bool) {
	var (
		contact Contact
		found   bool
	)
	for _, t := range m.triangles {
		dist, ok := t.Intersect(origin, dir)
		if !ok || dist > maxDist || (found && dist >= contact.Distance) {
			continue
		}
		contact = Contact{
			Point:    origin.Add(dir.Mul(dist)),
			Normal:   geometry.PointTowards(t.Normal(), dir.Mul(-1)),
			Distance: dist,
		}
		found = true
	}
	return contact, found
}
