package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
)

// Box is an oriented box collider.
type Box struct {
	centre   mgl32.Vec3
	half     mgl32.Vec3
	rotation mgl32.Quat
	bounds   cube.BBox
}

// NewBox returns a box of the given size centred on centre and rotated by rot. A zero rotation is
// treated as the identity.
func NewBox(centre, size mgl32.Vec3, rot mgl32.Quat) *Box {
	b := &Box{centre: centre, half: size.Mul(0.5), rotation: rotation(rot)}

	corners := make([]mgl32.Vec3, 0, 8)
	for _, x := range [2]float32{-1, 1} {
		for _, y := range [2]float32{-1, 1} {
			for _, z := range [2]float32{-1, 1} {
				corners = append(corners, b.toWorld(mgl32.Vec3{x * b.half.X(), y * b.half.Y(), z * b.half.Z()}))
			}
		}
	}
	b.bounds = game.BBoxFromPoints(corners...)
	return b
}

// Centre returns the centre of the box.
func (b *Box) Centre() mgl32.Vec3 {
	return b.centre
}

func (b *Box) Bounds() cube.BBox {
	return b.bounds
}

func (b *Box) toLocal(p mgl32.Vec3) mgl32.Vec3 {
	return b.rotation.Conjugate().Rotate(p.Sub(b.centre))
}

func (b *Box) toWorld(p mgl32.Vec3) mgl32.Vec3 {
	return b.rotation.Rotate(p).Add(b.centre)
}

func (b *Box) SignedDistance(p mgl32.Vec3) float32 {
	l := b.toLocal(p)
	q := mgl32.Vec3{
		math32.Abs(l.X()) - b.half.X(),
		math32.Abs(l.Y()) - b.half.Y(),
		math32.Abs(l.Z()) - b.half.Z(),
	}
	outside := mgl32.Vec3{math32.Max(q.X(), 0), math32.Max(q.Y(), 0), math32.Max(q.Z(), 0)}.Len()
	inside := math32.Min(math32.Max(q.X(), math32.Max(q.Y(), q.Z())), 0)
	return outside + inside
}

// ClosestPoint clamps p onto the box. Points inside the box are pushed out through the nearest
// face.
func (b *Box) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	l := b.toLocal(p)
	clamped := mgl32.Vec3{
		mgl32.Clamp(l.X(), -b.half.X(), b.half.X()),
		mgl32.Clamp(l.Y(), -b.half.Y(), b.half.Y()),
		mgl32.Clamp(l.Z(), -b.half.Z(), b.half.Z()),
	}

	if clamped == l {
		axis, nearest := 0, float32(math32.MaxFloat32)
		for i := 0; i < 3; i++ {
			if d := b.half[i] - math32.Abs(l[i]); d < nearest {
				axis, nearest = i, d
			}
		}
		if l[axis] < 0 {
			clamped[axis] = -b.half[axis]
		} else {
			clamped[axis] = b.half[axis]
		}
	}
	return b.toWorld(clamped)
}

func (b *Box) Raycast(origin, dir mgl32.Vec3, maxDist float32) (Contact, bool) {
	if b.SignedDistance(origin) < 0 {
		return Contact{}, false
	}

	start := b.toLocal(origin)
	end := start.Add(b.rotation.Conjugate().Rotate(dir).Mul(maxDist))
	local := cube.Box(-b.half.X(), -b.half.Y(), -b.half.Z(), b.half.X(), b.half.Y(), b.half.Z())

	res, ok := trace.BBoxIntercept(local, start, end)
	if !ok {
		return Contact{}, false
	}
	hit := res.Position()
	return Contact{
		Point:    b.toWorld(hit),
		Normal:   b.rotation.Rotate(b.faceNormal(hit)),
		Distance: hit.Sub(start).Len(),
	}, true
}

// faceNormal returns the local normal of the face a point on the surface of the box lies on.
func (b *Box) faceNormal(l mgl32.Vec3) mgl32.Vec3 {
	axis, best := 0, float32(-1)
	for i := 0; i < 3; i++ {
		if b.half[i] == 0 {
			continue
		}
		if r := math32.Abs(l[i]) / b.half[i]; r > best {
			axis, best = i, r
		}
	}
	var n mgl32.Vec3
	n[axis] = 1
	if l[axis] < 0 {
		n[axis] = -1
	}
	return n
}
