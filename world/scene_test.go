package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	down = mgl32.Vec3{0, -1, 0}
	all  = geometry.Filter{Mask: geometry.AllLayers}
)

func floorScene() (*Scene, ColliderID) {
	s := NewScene()
	id := s.Add(NewBox(mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{20, 1, 20}, mgl32.QuatIdent()), GroundLayer)
	return s, id
}

func TestSceneSphereCast(t *testing.T) {
	s, id := floorScene()

	hit, ok := s.SphereCast(mgl32.Vec3{0, 2, 0}, 0.5, down, 5, all)
	require.True(t, ok)
	assert.InDelta(t, 1.5, hit.Distance, 1e-3)
	vecNear(t, mgl32.Vec3{0, 1, 0}, hit.Normal)
	vecNear(t, mgl32.Vec3{0, 0, 0}, hit.Point)
	c, _ := s.Collider(id)
	assert.Equal(t, c, hit.Shape)

	_, ok = s.SphereCast(mgl32.Vec3{0, 2, 0}, 0.5, down, 1, all)
	assert.False(t, ok, "floor is out of reach")
}

func TestSceneSphereCastIgnoresStartingOverlap(t *testing.T) {
	s, _ := floorScene()
	s.Add(NewBox(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{1, 4, 1}, mgl32.QuatIdent()), 1)

	// The sphere starts sunk into the floor, which must not stop it from moving along it.
	hit, ok := s.SphereCast(mgl32.Vec3{0, 0.3, 0}, 0.5, mgl32.Vec3{0, 0, 1}, 10, all)
	require.True(t, ok)
	assert.InDelta(t, 2, hit.Distance, 1e-3)
	vecNear(t, mgl32.Vec3{0, 0, -1}, hit.Normal)
}

func TestSceneFilter(t *testing.T) {
	s, _ := floorScene()
	s.Add(NewBox(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0.2, 1}, mgl32.QuatIdent()), 2)

	hit, ok := s.Raycast(mgl32.Vec3{0, 3, 0}, down, 10, all)
	require.True(t, ok)
	assert.InDelta(t, 1.9, hit.Distance, 1e-4)

	hit, ok = s.Raycast(mgl32.Vec3{0, 3, 0}, down, 10, geometry.ExcludeLayer(2))
	require.True(t, ok)
	assert.InDelta(t, 3, hit.Distance, 1e-4)

	hit, ok = s.SphereCast(mgl32.Vec3{0, 3, 0}, 0.25, down, 10, geometry.ExcludeLayer(2))
	require.True(t, ok)
	assert.InDelta(t, 2.75, hit.Distance, 1e-3)
}

func TestSceneRaycastIgnoresContainingShapes(t *testing.T) {
	s, _ := floorScene()
	_, ok := s.Raycast(mgl32.Vec3{0, -0.5, 0}, down, 10, all)
	assert.False(t, ok)
}

func TestSceneOverlapSphere(t *testing.T) {
	s, _ := floorScene()
	pillar := Sphere{Centre: mgl32.Vec3{3, 1, 0}, Radius: 0.5}
	s.Add(pillar, 1)

	assert.Len(t, s.OverlapSphere(mgl32.Vec3{0, 2, 0}, 0.5, all), 0)
	assert.Len(t, s.OverlapSphere(mgl32.Vec3{0, 0.4, 0}, 0.5, all), 1)
	assert.Len(t, s.OverlapSphere(mgl32.Vec3{2.5, 0.4, 0}, 0.5, all), 2)
	assert.Len(t, s.OverlapSphere(mgl32.Vec3{2.5, 0.4, 0}, 0.5, geometry.ExcludeLayer(GroundLayer)), 1)

	shapes := s.OverlapSphere(mgl32.Vec3{2.2, 1, 0}, 0.5, geometry.ExcludeLayer(GroundLayer))
	require.Len(t, shapes, 1)
	vecNear(t, mgl32.Vec3{2.5, 1, 0}, s.ClosestPointOnSurface(shapes[0], mgl32.Vec3{2.2, 1, 0}, 0.5))
}

func TestSceneRemove(t *testing.T) {
	s, id := floorScene()
	other := s.Add(Sphere{Centre: mgl32.Vec3{0, 5, 0}, Radius: 1}, GroundLayer)
	require.Equal(t, 2, s.Len())

	require.True(t, s.Remove(id))
	assert.False(t, s.Remove(id))
	assert.Equal(t, 1, s.Len())

	_, ok := s.Raycast(mgl32.Vec3{0, 2, 0}, down, 10, all)
	assert.False(t, ok)
	_, ok = s.Collider(other)
	assert.True(t, ok)
}

func TestDemoCourse(t *testing.T) {
	s, lanes := DemoCourse()
	require.Len(t, lanes, 7)
	assert.Equal(t, 10, s.Len())

	for _, lane := range lanes {
		if lane.Name == "slope" {
			continue
		}
		hit, ok := s.Raycast(lane.Start.Add(mgl32.Vec3{0, 1, 0}), down, 5, all)
		require.True(t, ok, lane.Name)
		assert.InDelta(t, 1, hit.Distance, 1e-3, lane.Name)
	}

	ramp := Ramp(0, 0, 30, 4, 1, 0.2)
	hit, ok := ramp.Raycast(mgl32.Vec3{0, 5, 2}, down, 10)
	require.True(t, ok)
	assert.InDelta(t, 2*0.57735, hit.Point.Y(), 1e-3)
	assert.InDelta(t, 30, game.AngleBetween(hit.Normal, mgl32.Vec3{0, 1, 0}), 1e-2)
}
