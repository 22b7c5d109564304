package world

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is a triangle given by its three corners.
type Triangle [3]mgl32.Vec3

// Normal returns the unit normal of the triangle, following the winding of its corners.
func (t Triangle) Normal() mgl32.Vec3 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Normalize()
}

// ClosestPoint returns the point on the triangle nearest to p.
// Real-Time Collision Detection, Ericson, 5.1.5.
func (t Triangle) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	a, b, c := t[0], t[1], t[2]
	ab, ac, ap := b.Sub(a), c.Sub(a), p.Sub(a)

	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Mul(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Mul(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		return b.Add(c.Sub(b).Mul((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}

	denom := 1 / (va + vb + vc)
	return a.Add(ab.Mul(vb * denom)).Add(ac.Mul(vc * denom))
}

// Intersect returns the distance along the ray from origin in the unit direction dir at which it
// crosses the triangle. Both faces are hit.
func (t Triangle) Intersect(origin, dir mgl32.Vec3) (float32, bool) {
	e1, e2 := t[1].Sub(t[0]), t[2].Sub(t[0])
	h := dir.Cross(e2)
	a := e1.Dot(h)
	if math32.Abs(a) < 1e-12 {
		return 0, false
	}

	f := 1 / a
	s := origin.Sub(t[0])
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	dist := f * e2.Dot(q)
	return dist, dist > 1e-6
}
