package locomotion

import "github.com/go-gl/mathgl/mgl32"

// GravitySource is the body characters fall towards. The direction of gravity is derived from the
// position of the source every frame.
type GravitySource interface {
	// Magnitude returns the acceleration of gravity in units per second squared.
	Magnitude() float32
	// Position returns the point characters are pulled towards.
	Position() mgl32.Vec3
}

// PointGravity pulls characters towards a fixed point, like a planet.
type PointGravity struct {
	Centre   mgl32.Vec3
	Strength float32
}

func (p PointGravity) Magnitude() float32 {
	return p.Strength
}

func (p PointGravity) Position() mgl32.Vec3 {
	return p.Centre
}

// AttachedGravity is a source that travels with a body at a fixed offset. With an offset far below
// the body it produces the constant gravity of a flat world.
type AttachedGravity struct {
	body     *Body
	offset   mgl32.Vec3
	strength float32
}

// NewAttachedGravity returns a gravity source held at offset from the body passed.
func NewAttachedGravity(body *Body, offset mgl32.Vec3, strength float32) *AttachedGravity {
	return &AttachedGravity{body: body, offset: offset, strength: strength}
}

func (a *AttachedGravity) Magnitude() float32 {
	return a.strength
}

func (a *AttachedGravity) Position() mgl32.Vec3 {
	return a.body.Position().Add(a.offset)
}
