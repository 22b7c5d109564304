package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vecNear(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "want %v, got %v %v", want, got, msgAndArgs)
	}
}

func TestSphere(t *testing.T) {
	s := Sphere{Centre: mgl32.Vec3{0, 1, 0}, Radius: 0.5}

	assert.InDelta(t, 1.5, s.SignedDistance(mgl32.Vec3{2, 1, 0}), 1e-6)
	vecNear(t, mgl32.Vec3{0.5, 1, 0}, s.ClosestPoint(mgl32.Vec3{3, 1, 0}))

	c, ok := s.Raycast(mgl32.Vec3{-3, 1, 0}, mgl32.Vec3{1, 0, 0}, 10)
	require.True(t, ok)
	vecNear(t, mgl32.Vec3{-0.5, 1, 0}, c.Point)
	vecNear(t, mgl32.Vec3{-1, 0, 0}, c.Normal)
	assert.InDelta(t, 2.5, c.Distance, 1e-5)

	_, ok = s.Raycast(mgl32.Vec3{-3, 1, 0}, mgl32.Vec3{1, 0, 0}, 2)
	assert.False(t, ok, "contact beyond max distance")
	_, ok = s.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 10)
	assert.False(t, ok, "rays starting inside pass through")
	_, ok = s.Raycast(mgl32.Vec3{-3, 1, 0}, mgl32.Vec3{-1, 0, 0}, 10)
	assert.False(t, ok, "ray pointing away")
}

func TestBoxClosestPoint(t *testing.T) {
	b := NewBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}, mgl32.Quat{})

	vecNear(t, mgl32.Vec3{1, 0.5, 0}, b.ClosestPoint(mgl32.Vec3{3, 0.5, 0}))
	vecNear(t, mgl32.Vec3{1, 1, 1}, b.ClosestPoint(mgl32.Vec3{2, 2, 2}))
	// Inside: pushed out through the nearest face.
	vecNear(t, mgl32.Vec3{0.1, 1, 0.2}, b.ClosestPoint(mgl32.Vec3{0.1, 0.8, 0.2}))

	assert.InDelta(t, 2, b.SignedDistance(mgl32.Vec3{3, 0, 0}), 1e-6)
	assert.InDelta(t, -0.2, b.SignedDistance(mgl32.Vec3{0.1, 0.8, 0.2}), 1e-6)
}

func TestRotatedBox(t *testing.T) {
	rot := mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{0, 1, 0})
	b := NewBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}, rot)

	// The corner of a box rotated 45 degrees about Y points along +X at a distance of sqrt(2).
	assert.InDelta(t, 1.41421, b.Bounds().Max().X(), 1e-4)
	assert.InDelta(t, 1, b.Bounds().Max().Y(), 1e-6)

	assert.InDelta(t, 1, b.SignedDistance(mgl32.Vec3{0, 2, 0}), 1e-5)

	c, ok := b.Raycast(mgl32.Vec3{0, 5, 0.3}, mgl32.Vec3{0, -1, 0}, 10)
	require.True(t, ok)
	vecNear(t, mgl32.Vec3{0, 1, 0.3}, c.Point)
	vecNear(t, mgl32.Vec3{0, 1, 0}, c.Normal)
	assert.InDelta(t, 4, c.Distance, 1e-4)

	// A face of the rotated box faces (1, 0, -1) / sqrt(2).
	dir := mgl32.Vec3{-1, 0, 1}.Normalize()
	c, ok = b.Raycast(mgl32.Vec3{3, 0, -3}, dir, 10)
	require.True(t, ok)
	vecNear(t, mgl32.Vec3{1, 0, -1}.Normalize(), c.Normal)
	assert.InDelta(t, 0, b.SignedDistance(c.Point), 1e-4)
}

func TestCapsule(t *testing.T) {
	c := NewCapsule(mgl32.Vec3{0, 1, 0}, 0.5, 2, mgl32.Quat{})

	vecNear(t, mgl32.Vec3{0.5, 1.2, 0}, c.ClosestPoint(mgl32.Vec3{2, 1.2, 0}))
	vecNear(t, mgl32.Vec3{0, 2, 0}, c.ClosestPoint(mgl32.Vec3{0, 5, 0}))
	assert.InDelta(t, 1.5, c.SignedDistance(mgl32.Vec3{2, 1, 0}), 1e-6)
	assert.InDelta(t, 0, c.Bounds().Min().Y(), 1e-6)

	hit, ok := c.Raycast(mgl32.Vec3{-3, 1, 0}, mgl32.Vec3{1, 0, 0}, 10)
	require.True(t, ok)
	assert.InDelta(t, 2.5, hit.Distance, 1e-3)
	vecNear(t, mgl32.Vec3{-1, 0, 0}, hit.Normal)

	_, ok = c.Raycast(mgl32.Vec3{-3, 3, 0}, mgl32.Vec3{1, 0, 0}, 10)
	assert.False(t, ok)
}

func TestTriangle(t *testing.T) {
	tri := Triangle{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}}

	vecNear(t, mgl32.Vec3{0, 1, 0}, tri.Normal())
	vecNear(t, mgl32.Vec3{0.2, 0, 0.2}, tri.ClosestPoint(mgl32.Vec3{0.2, 3, 0.2}))
	vecNear(t, mgl32.Vec3{0, 0, 0}, tri.ClosestPoint(mgl32.Vec3{-1, 0, -1}))
	vecNear(t, mgl32.Vec3{0.5, 0, 0.5}, tri.ClosestPoint(mgl32.Vec3{1, 0, 1}))

	dist, ok := tri.Intersect(mgl32.Vec3{0.25, 2, 0.25}, mgl32.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.InDelta(t, 2, dist, 1e-6)
	_, ok = tri.Intersect(mgl32.Vec3{0.9, 2, 0.9}, mgl32.Vec3{0, -1, 0})
	assert.False(t, ok)
}

func TestMeshRaycastFacesCaster(t *testing.T) {
	m := NewMesh(Triangle{{-1, 0, -1}, {-1, 0, 1}, {1, 0, -1}}, Triangle{{1, 0, -1}, {-1, 0, 1}, {1, 0, 1}})

	c, ok := m.Raycast(mgl32.Vec3{0, -2, 0.5}, mgl32.Vec3{0, 1, 0}, 5)
	require.True(t, ok)
	vecNear(t, mgl32.Vec3{0, -1, 0}, c.Normal)
	assert.InDelta(t, 2, c.Distance, 1e-6)
	assert.InDelta(t, 3, m.SignedDistance(mgl32.Vec3{0, -3, 0}), 1e-6)
}

func TestHeightfield(t *testing.T) {
	heights := [][]float32{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	h := NewHeightfield(mgl32.Vec3{0, 0, 0}, 1, heights)

	y, ok := h.SampleHeight(1, 1)
	require.True(t, ok)
	assert.InDelta(t, 1, y, 1e-6)
	y, _ = h.SampleHeight(0.75, 0.75)
	assert.InDelta(t, 0.5, y, 1e-6)
	y, _ = h.SampleHeight(0.5, 0.5)
	assert.InDelta(t, 0, y, 1e-6, "cells are split along the diagonal from (1, 0) to (0, 1)")
	_, ok = h.SampleHeight(3, 1)
	assert.False(t, ok)

	c, ok := h.Raycast(mgl32.Vec3{0.9, 5, 0.9}, mgl32.Vec3{0, -1, 0}, 10)
	require.True(t, ok)
	assert.InDelta(t, 4.2, c.Distance, 1e-5)
	assert.Greater(t, c.Normal.Y(), float32(0))

	c, ok = h.Raycast(mgl32.Vec3{-1, 0.25, 0.5}, mgl32.Vec3{1, 0, 0}, 10)
	require.True(t, ok, "horizontal ray must hit the side of the hill")
	assert.Less(t, c.Point.X(), float32(1))
	assert.Greater(t, c.Point.X(), float32(0))

	_, ok = h.Raycast(mgl32.Vec3{1, -1, 1}, mgl32.Vec3{0, 1, 0}, 10)
	assert.False(t, ok, "terrain is one sided")

	assert.Less(t, h.SignedDistance(mgl32.Vec3{0.75, 0.2, 0.75}), float32(0))
	assert.InDelta(t, 1, h.SignedDistance(mgl32.Vec3{0, 1, 0}), 1e-5)
	vecNear(t, mgl32.Vec3{1, 1, 1}, h.ClosestPoint(mgl32.Vec3{1, 1.5, 1}))
}
