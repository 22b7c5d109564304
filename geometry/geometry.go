// Package geometry describes the boundary between the locomotion core and a geometry query
// service: hits, collision filters and the queries a character issues every frame.
package geometry

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Layer is the collision layer a shape belongs to.
type Layer uint8

// MaxLayers is the amount of distinct layers a LayerMask can address.
const MaxLayers = 32

// LayerMask has one bit set for every layer a query may report.
type LayerMask uint32

// AllLayers is a mask that reports every layer.
const AllLayers = ^LayerMask(0)

// Filter selects which shapes a query considers. It is a plain value passed with every query;
// characters never change the layer of their own shapes to hide them from their probes.
type Filter struct {
	Mask LayerMask
}

// ExcludeLayer returns a filter that reports every layer except l.
func ExcludeLayer(l Layer) Filter {
	return Filter{Mask: AllLayers &^ (1 << l)}
}

// Allows returns true if shapes on layer l pass the filter.
func (f Filter) Allows(l Layer) bool {
	return f.Mask&(1<<l) != 0
}

// Shape is an opaque handle to a collision shape owned by the query service.
type Shape interface {
	// Bounds returns the world space bounding box of the shape.
	Bounds() cube.BBox
}

// Hit is the result of a ray or sphere cast.
type Hit struct {
	// Point is the contact point on the surface that was hit.
	Point mgl32.Vec3
	// Normal is the unit surface normal at Point, facing the caster.
	Normal mgl32.Vec3
	// Distance is how far the ray or sphere travelled before the contact.
	Distance float32
	// Shape is the shape that was hit.
	Shape Shape
}

// Querier is a synchronous geometry query service. A query that finds nothing returns false and
// is never an error.
type Querier interface {
	// Raycast casts a ray from origin along the unit direction dir, reporting the first surface
	// within maxDist. Shapes containing origin are ignored.
	Raycast(origin, dir mgl32.Vec3, maxDist float32, f Filter) (Hit, bool)
	// SphereCast sweeps a sphere of the given radius from origin along the unit direction dir,
	// reporting the first surface touched within maxDist. Shapes already touching the sphere at
	// origin are ignored.
	SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, f Filter) (Hit, bool)
	// OverlapSphere returns every shape that intersects the sphere.
	OverlapSphere(center mgl32.Vec3, radius float32, f Filter) []Shape
	// ClosestPointOnSurface returns the point on the surface of s nearest to point. radius bounds
	// the search for shapes that are sampled rather than solved exactly.
	ClosestPointOnSurface(s Shape, point mgl32.Vec3, radius float32) mgl32.Vec3
}
