package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
)

// PointTowards returns v or -v, whichever lies closer to the direction d. Cross products only
// define a direction up to its sign, so every direction derived from one passes through here.
// If both candidates are equally aligned, v is returned.
func PointTowards(v, d mgl32.Vec3) mgl32.Vec3 {
	if v.Mul(-1).Add(d).LenSqr() > v.Add(d).LenSqr() {
		return v.Mul(-1)
	}
	return v
}

// WallHit finds the surface adjoining a contact that a character would slide down if the contact
// is too steep to stand on. It casts a short ray from just outside the contact back towards a
// point just inside and below it.
func WallHit(q Querier, hit Hit, down mgl32.Vec3, f Filter, tinyTolerance float32) (Hit, bool) {
	origin := hit.Point.Add(hit.Normal)
	target := hit.Point.Add(down.Mul(tinyTolerance))

	dir, ok := game.SafeNormalize(target.Sub(origin))
	if !ok {
		return Hit{}, false
	}
	return q.Raycast(origin, dir, game.WallProbeLength, f)
}

// FloorHit follows a wall downhill from the wall contact and returns the point where the floor
// resumes. The distance between that point and the original contact is the drop the character
// would face.
func FloorHit(q Querier, wall Hit, down mgl32.Vec3, f Filter, tinyTolerance float32) (Hit, bool) {
	downhill, ok := game.SafeNormalize(Downhill(wall.Normal, down))
	if !ok {
		return Hit{}, false
	}
	return q.Raycast(wall.Point.Add(wall.Normal.Mul(tinyTolerance)), downhill, Unbounded, f)
}

// Downhill returns the direction along the surface with normal n that descends fastest under
// gravity pointing along down. The result is not normalized and is zero when the surface is
// perpendicular to down.
func Downhill(n, down mgl32.Vec3) mgl32.Vec3 {
	return PointTowards(n.Cross(down.Cross(n)), down)
}

// Unbounded is passed as the maximum distance of queries that have no length limit.
const Unbounded = float32(3.4e38)
