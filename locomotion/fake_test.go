package locomotion

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/geometry"
)

type fakeShape struct {
	name string
}

func (*fakeShape) Bounds() cube.BBox {
	return cube.BBox{}
}

type castCall struct {
	origin  mgl32.Vec3
	radius  float32
	dir     mgl32.Vec3
	maxDist float32
	filter  geometry.Filter
}

type result struct {
	hit geometry.Hit
	ok  bool
}

func found(hit geometry.Hit) result {
	return result{hit: hit, ok: true}
}

var missed = result{}

// scriptedQuerier answers queries from scripted queues in the order they are issued. Once a queue
// runs dry every further query of that kind misses.
type scriptedQuerier struct {
	rays    []result
	casts   []result
	overlap []geometry.Shape
	closest map[geometry.Shape]mgl32.Vec3

	rayCalls     []castCall
	castCalls    []castCall
	overlapCalls []castCall
}

func (q *scriptedQuerier) Raycast(origin, dir mgl32.Vec3, maxDist float32, f geometry.Filter) (geometry.Hit, bool) {
	q.rayCalls = append(q.rayCalls, castCall{origin: origin, dir: dir, maxDist: maxDist, filter: f})
	if len(q.rays) == 0 {
		return geometry.Hit{}, false
	}
	r := q.rays[0]
	q.rays = q.rays[1:]
	return r.hit, r.ok
}

func (q *scriptedQuerier) SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, f geometry.Filter) (geometry.Hit, bool) {
	q.castCalls = append(q.castCalls, castCall{origin: origin, radius: radius, dir: dir, maxDist: maxDist, filter: f})
	if len(q.casts) == 0 {
		return geometry.Hit{}, false
	}
	r := q.casts[0]
	q.casts = q.casts[1:]
	return r.hit, r.ok
}

func (q *scriptedQuerier) OverlapSphere(center mgl32.Vec3, radius float32, f geometry.Filter) []geometry.Shape {
	q.overlapCalls = append(q.overlapCalls, castCall{origin: center, radius: radius, filter: f})
	return q.overlap
}

func (q *scriptedQuerier) ClosestPointOnSurface(s geometry.Shape, point mgl32.Vec3, _ float32) mgl32.Vec3 {
	if p, ok := q.closest[s]; ok {
		return p
	}
	return point
}
