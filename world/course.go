package world

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/geometry"
)

// GroundLayer is the layer all course geometry is placed on.
const GroundLayer geometry.Layer = 0

// Lane is a straight test track of a course. Characters start standing on Start and walk along
// Forward.
type Lane struct {
	Name    string
	Start   mgl32.Vec3
	Forward mgl32.Vec3
}

// Ramp returns a box of the given thickness whose top face rises from the line z = z0, y = 0
// towards +Z at angle degrees, over the length passed.
func Ramp(x, z0, angle, length, width, thickness float32) *Box {
	rot := mgl32.QuatRotate(-mgl32.DegToRad(angle), mgl32.Vec3{1, 0, 0})
	along := rot.Rotate(mgl32.Vec3{0, 0, 1})
	normal := rot.Rotate(mgl32.Vec3{0, 1, 0})

	centre := mgl32.Vec3{x, 0, z0}.Add(along.Mul(length / 2)).Sub(normal.Mul(thickness / 2))
	return NewBox(centre, mgl32.Vec3{width, thickness, length}, rot)
}

// DemoCourse builds a course of parallel lanes on a flat floor, each lane exercising one kind of
// obstacle:
//
//	step    a 0.25 high step at z = 4, then a boulder at z = 16 the character is deflected around
//	ledge   a 0.5 high ledge at z = 4
//	ramp    a 20 degree ramp from z = 3
//	slope   a 50 degree slope, the character is dropped onto it and stands still
//	wall    a wall at z = 5.75 with a pillar behind it
//	terrain rolling terrain from z = 2
//	mesh    a 15 degree triangle ramp from z = 3
func DemoCourse() (*Scene, []Lane) {
	s := NewScene()
	forward := mgl32.Vec3{0, 0, 1}

	s.Add(NewBox(mgl32.Vec3{0, -0.5, 10}, mgl32.Vec3{30, 1, 40}, mgl32.QuatIdent()), GroundLayer)

	s.Add(NewBox(mgl32.Vec3{-12, 0.125, 8}, mgl32.Vec3{2.5, 0.25, 8}, mgl32.QuatIdent()), GroundLayer)
	s.Add(Sphere{Centre: mgl32.Vec3{-11.6, 0.5, 16}, Radius: 0.75}, GroundLayer)

	s.Add(NewBox(mgl32.Vec3{-8, 0.25, 8}, mgl32.Vec3{2.5, 0.5, 8}, mgl32.QuatIdent()), GroundLayer)

	s.Add(Ramp(-4, 3, 20, 6, 2.5, 0.2), GroundLayer)

	s.Add(Ramp(0, 2, 50, 4, 2.5, 0.2), GroundLayer)

	s.Add(NewBox(mgl32.Vec3{4, 1.5, 6}, mgl32.Vec3{2.5, 3, 0.5}, mgl32.QuatIdent()), GroundLayer)
	s.Add(NewCapsule(mgl32.Vec3{4, 1, 8}, 0.4, 2, mgl32.QuatIdent()), GroundLayer)

	const samples = 17
	heights := make([][]float32, samples)
	for i := range heights {
		heights[i] = make([]float32, samples)
		for j := range heights[i] {
			heights[i][j] = 0.08 * (1 - math32.Cos(float32(j)*math.Pi/4))
		}
	}
	s.Add(NewHeightfield(mgl32.Vec3{6.75, 0, 2}, 0.25, heights), GroundLayer)

	rise := 4 * math32.Tan(mgl32.DegToRad(15))
	a, b := mgl32.Vec3{10.75, 0, 3}, mgl32.Vec3{13.25, 0, 3}
	c, d := mgl32.Vec3{10.75, rise, 7}, mgl32.Vec3{13.25, rise, 7}
	s.Add(NewMesh(Triangle{a, c, b}, Triangle{b, c, d}), GroundLayer)

	return s, []Lane{
		{Name: "step", Start: mgl32.Vec3{-12, 0, 0}, Forward: forward},
		{Name: "ledge", Start: mgl32.Vec3{-8, 0, 0}, Forward: forward},
		{Name: "ramp", Start: mgl32.Vec3{-4, 0, 0}, Forward: forward},
		{Name: "slope", Start: mgl32.Vec3{0, 3.5, 4}},
		{Name: "wall", Start: mgl32.Vec3{4, 0, 0}, Forward: forward},
		{Name: "terrain", Start: mgl32.Vec3{8, 0, 0}, Forward: forward},
		{Name: "mesh", Start: mgl32.Vec3{12, 0, 0}, Forward: forward},
	}
}
