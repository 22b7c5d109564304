package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
)

// tangentPosition moves the centre of a sphere of radius r from tentative along the gravity axis down
// until the sphere rests on contact. The offset from tentative to contact is split into a part
// along down and a part a orthogonal to it; a sphere resting on the contact has its centre
// sqrt(r² - |a|²) above the contact along the gravity axis.
//
// If the contact lies further than r from the gravity axis through tentative, no such position
// exists and a NaN vector is returned.
func tangentPosition(tentative, contact, down mgl32.Vec3, r float32) mgl32.Vec3 {
	v := contact.Sub(tentative)
	residual := v.Dot(down)
	a := game.ProjectOnPlane(v, down)
	b := math32.Sqrt(r*r - a.LenSqr())
	return tentative.Sub(down.Mul(b - residual))
}
