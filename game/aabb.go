package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BBoxAround returns the bounding box centred on c that extends by half in every direction.
func BBoxAround(c, half mgl32.Vec3) cube.BBox {
	return cube.Box(
		c.X()-half.X(), c.Y()-half.Y(), c.Z()-half.Z(),
		c.X()+half.X(), c.Y()+half.Y(), c.Z()+half.Z(),
	)
}

// BBoxFromPoints returns the smallest bounding box containing every point given.
func BBoxFromPoints(points ...mgl32.Vec3) cube.BBox {
	min := mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	max := mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
	for _, p := range points {
		for i := 0; i < 3; i++ {
			min[i] = math32.Min(min[i], p[i])
			max[i] = math32.Max(max[i], p[i])
		}
	}
	return cube.Box(min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
}

// BBoxUnion returns the smallest bounding box containing both a and b.
func BBoxUnion(a, b cube.BBox) cube.BBox {
	return BBoxFromPoints(a.Min(), a.Max(), b.Min(), b.Max())
}

// BBoxCentre returns the centre and the half diagonal length of the bounding box.
func BBoxCentre(b cube.BBox) (mgl32.Vec3, float32) {
	half := b.Max().Sub(b.Min()).Mul(0.5)
	return b.Min().Add(half), half.Len()
}

// BBoxGrow returns b grown by r in every direction.
func BBoxGrow(b cube.BBox, r float32) cube.BBox {
	return cube.Box(
		b.Min().X()-r, b.Min().Y()-r, b.Min().Z()-r,
		b.Max().X()+r, b.Max().Y()+r, b.Max().Z()+r,
	)
}
