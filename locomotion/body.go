package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Body is the root of a character. Every probe shape of the character hangs off its position, and
// only the Arbitrator of the character writes to it.
type Body struct {
	position mgl32.Vec3
}

// NewBody returns a body positioned at start.
func NewBody(start mgl32.Vec3) *Body {
	return &Body{position: start}
}

// Position returns the current position of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.position
}

func (b *Body) set(pos mgl32.Vec3) {
	b.position = pos
}

// ProbeShape is a sphere attached to a body at a fixed offset, used to query the world on behalf of
// one part of the character.
type ProbeShape struct {
	Radius float32
	Offset mgl32.Vec3
}

// Centre returns the world position of the shape on a body at pos.
func (s ProbeShape) Centre(pos mgl32.Vec3) mgl32.Vec3 {
	return pos.Add(s.Offset)
}

// castRadius is the radius used for sweeps along the movement direction. It is a hair smaller than
// the shape so that walls the shape merely grazes are not reported.
func (s ProbeShape) castRadius(tolerance float32) float32 {
	return s.Radius - tolerance*tolerance
}
