package world

import (
	"github.com/chewxy/math32"
	"github.com/dhconnelly/rtreego"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
	"github.com/sasha-s/go-deadlock"
)

const (
	// castEpsilon is the distance under which a swept sphere is considered to touch a surface.
	castEpsilon = float32(1e-4)
	// maxCastSteps bounds the amount of steps a sphere cast may take before giving up.
	maxCastSteps = 512
	rectPadding  = float32(1e-3)
)

// ColliderID identifies a collider added to a Scene.
type ColliderID uint64

// entry is a collider stored in the broadphase of a scene.
type entry struct {
	id       ColliderID
	collider Collider
	layer    geometry.Layer
	rect     rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Scene is a static collection of colliders implementing geometry.Querier. Colliders may be added
// and removed between frames; queries may run concurrently with each other.
type Scene struct {
	tree    *rtreego.Rtree
	entries map[ColliderID]*entry
	bounds  cube.BBox
	nextID  ColliderID

	deadlock.RWMutex
}

var _ geometry.Querier = (*Scene)(nil)

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		tree:    rtreego.NewTree(3, 2, 16),
		entries: make(map[ColliderID]*entry),
	}
}

// Add adds a collider to the scene on the layer passed and returns its ID.
func (s *Scene) Add(c Collider, layer geometry.Layer) ColliderID {
	s.Lock()
	defer s.Unlock()

	s.nextID++
	e := &entry{id: s.nextID, collider: c, layer: layer, rect: toRect(c.Bounds())}
	s.entries[e.id] = e
	s.tree.Insert(e)

	if len(s.entries) == 1 {
		s.bounds = c.Bounds()
	} else {
		s.bounds = game.BBoxUnion(s.bounds, c.Bounds())
	}
	return e.id
}

// Remove removes the collider with the ID passed. It returns false if no such collider exists.
func (s *Scene) Remove(id ColliderID) bool {
	s.Lock()
	defer s.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return false
	}
	delete(s.entries, id)
	s.tree.Delete(e)

	first := true
	for _, other := range s.entries {
		if first {
			s.bounds, first = other.collider.Bounds(), false
			continue
		}
		s.bounds = game.BBoxUnion(s.bounds, other.collider.Bounds())
	}
	return true
}

// Len returns the amount of colliders in the scene.
func (s *Scene) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.entries)
}

// Collider returns the collider with the ID passed.
func (s *Scene) Collider(id ColliderID) (Collider, bool) {
	s.RLock()
	defer s.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return e.collider, true
}

// toRect converts a bounding box to a broadphase rectangle. Rectangles are padded because the
// broadphase does not count touching or flat rectangles as intersecting.
func toRect(b cube.BBox) rtreego.Rect {
	b = game.BBoxGrow(b, rectPadding)
	lo, hi := b.Min(), b.Max()
	r, err := rtreego.NewRectFromPoints(
		rtreego.Point{float64(lo.X()), float64(lo.Y()), float64(lo.Z())},
		rtreego.Point{float64(hi.X()), float64(hi.Y()), float64(hi.Z())},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// candidates returns the colliders whose bounds intersect b and that pass the filter.
func (s *Scene) candidates(b cube.BBox, f geometry.Filter) []*entry {
	found := s.tree.SearchIntersect(toRect(b), func(_ []rtreego.Spatial, obj rtreego.Spatial) (bool, bool) {
		return !f.Allows(obj.(*entry).layer), false
	})

	entries := make([]*entry, len(found))
	for i, obj := range found {
		entries[i] = obj.(*entry)
	}
	return entries
}

// clip shortens maxDist so that a query starting at origin ends once it has left the scene.
func (s *Scene) clip(origin mgl32.Vec3, maxDist float32) float32 {
	centre, radius := game.BBoxCentre(s.bounds)
	return math32.Min(maxDist, origin.Sub(centre).Len()+radius)
}

func (s *Scene) Raycast(origin, dir mgl32.Vec3, maxDist float32, f geometry.Filter) (geometry.Hit, bool) {
	s.RLock()
	defer s.RUnlock()

	if len(s.entries) == 0 || !game.Vec3Finite(dir) {
		return geometry.Hit{}, false
	}
	maxDist = s.clip(origin, maxDist)

	var (
		hit   geometry.Hit
		found bool
	)
	for _, e := range s.candidates(game.BBoxFromPoints(origin, origin.Add(dir.Mul(maxDist))), f) {
		if e.collider.SignedDistance(origin) < 0 {
			continue
		}
		c, ok := e.collider.Raycast(origin, dir, maxDist)
		if !ok || (found && c.Distance >= hit.Distance) {
			continue
		}
		hit, found = geometry.Hit{Point: c.Point, Normal: c.Normal, Distance: c.Distance, Shape: e.collider}, true
	}
	return hit, found
}

// SphereCast sweeps the sphere by stepping it along dir by the distance to the nearest candidate
// surface until it touches one.
func (s *Scene) SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, f geometry.Filter) (geometry.Hit, bool) {
	s.RLock()
	defer s.RUnlock()

	if len(s.entries) == 0 || !game.Vec3Finite(dir) || !game.Vec3Finite(origin) {
		return geometry.Hit{}, false
	}
	maxDist = s.clip(origin, maxDist)

	region := game.BBoxGrow(game.BBoxFromPoints(origin, origin.Add(dir.Mul(maxDist))), radius)
	candidates := s.candidates(region, f)

	// Colliders touching the sphere before it moves are not reported.
	n := 0
	for _, e := range candidates {
		if e.collider.SignedDistance(origin)-radius > castEpsilon {
			candidates[n] = e
			n++
		}
	}
	candidates = candidates[:n]
	if len(candidates) == 0 {
		return geometry.Hit{}, false
	}

	var t float32
	for i := 0; i < maxCastSteps; i++ {
		centre := origin.Add(dir.Mul(t))

		nearest, dist := candidates[0], float32(math32.MaxFloat32)
		for _, e := range candidates {
			if d := e.collider.SignedDistance(centre) - radius; d < dist {
				nearest, dist = e, d
			}
		}

		if dist < castEpsilon {
			point := nearest.collider.ClosestPoint(centre)
			normal, ok := game.SafeNormalize(centre.Sub(point))
			if !ok {
				normal = dir.Mul(-1)
			}
			return geometry.Hit{Point: point, Normal: normal, Distance: t, Shape: nearest.collider}, true
		}

		t += dist
		if t > maxDist {
			break
		}
	}
	return geometry.Hit{}, false
}

func (s *Scene) OverlapSphere(center mgl32.Vec3, radius float32, f geometry.Filter) []geometry.Shape {
	s.RLock()
	defer s.RUnlock()

	if len(s.entries) == 0 {
		return nil
	}

	var shapes []geometry.Shape
	for _, e := range s.candidates(game.BBoxAround(center, mgl32.Vec3{radius, radius, radius}), f) {
		if e.collider.SignedDistance(center) < radius {
			shapes = append(shapes, e.collider)
		}
	}
	return shapes
}

// ClosestPointOnSurface returns the closest point on the surface of a collider of this scene. Every
// collider is solved exactly or searched around point itself, so radius is not needed. Shapes
// that are not colliders return point unchanged.
func (s *Scene) ClosestPointOnSurface(shape geometry.Shape, point mgl32.Vec3, _ float32) mgl32.Vec3 {
	c, ok := shape.(Collider)
	if !ok {
		return point
	}
	return c.ClosestPoint(point)
}
