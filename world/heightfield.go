package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/assert"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/geometry"
)

// heightfieldSearchCells is the largest distance, in cells, searched around a point for the
// nearest triangle of a heightfield.
const heightfieldSearchCells = 4

// Heightfield is a terrain collider: a regular grid of height samples in the XZ plane, split into
// two triangles per cell. Everything below the surface counts as inside the terrain.
type Heightfield struct {
	origin   mgl32.Vec3
	cellSize float32
	// heights holds the sample heights relative to origin, indexed [x][z].
	heights [][]float32
	nx, nz  int
	bounds  cube.BBox
}

// NewHeightfield returns terrain whose sample (0, 0) lies at origin. heights is indexed [x][z] and
// must be rectangular with at least two samples along each axis.
func NewHeightfield(origin mgl32.Vec3, cellSize float32, heights [][]float32) *Heightfield {
	assert.IsTrue(cellSize > 0, "heightfield cell size must be positive (got %v)", cellSize)
	assert.IsTrue(len(heights) >= 2 && len(heights[0]) >= 2, "heightfield needs at least 2x2 samples")

	h := &Heightfield{origin: origin, cellSize: cellSize, heights: heights, nx: len(heights) - 1, nz: len(heights[0]) - 1}
	minY, maxY := float32(math32.MaxFloat32), float32(-math32.MaxFloat32)
	for _, column := range heights {
		assert.IsTrue(len(column) == h.nz+1, "heightfield samples must be rectangular")
		for _, y := range column {
			minY, maxY = math32.Min(minY, y), math32.Max(maxY, y)
		}
	}
	h.bounds = cube.Box(
		origin.X(), origin.Y()+minY, origin.Z(),
		origin.X()+float32(h.nx)*cellSize, origin.Y()+maxY, origin.Z()+float32(h.nz)*cellSize,
	)
	return h
}

func (h *Heightfield) Bounds() cube.BBox {
	return h.bounds
}

func (h *Heightfield) vertex(i, j int) mgl32.Vec3 {
	return h.origin.Add(mgl32.Vec3{float32(i) * h.cellSize, h.heights[i][j], float32(j) * h.cellSize})
}

// cell returns the two triangles of the cell (i, j), split along the diagonal from (i+1, j) to
// (i, j+1). Both are wound so that their normals point up.
func (h *Heightfield) cell(i, j int) [2]Triangle {
	p00, p10, p01, p11 := h.vertex(i, j), h.vertex(i+1, j), h.vertex(i, j+1), h.vertex(i+1, j+1)
	return [2]Triangle{{p00, p01, p10}, {p10, p01, p11}}
}

// SampleHeight returns the world height of the terrain surface above (x, z), or false if the
// position is outside the terrain.
func (h *Heightfield) SampleHeight(x, z float32) (float32, bool) {
	gx, gz := (x-h.origin.X())/h.cellSize, (z-h.origin.Z())/h.cellSize
	if gx < 0 || gz < 0 || gx > float32(h.nx) || gz > float32(h.nz) {
		return 0, false
	}
	i, j := min(int(gx), h.nx-1), min(int(gz), h.nz-1)
	u, w := gx-float32(i), gz-float32(j)

	h00, h10, h01, h11 := h.heights[i][j], h.heights[i+1][j], h.heights[i][j+1], h.heights[i+1][j+1]
	if u+w <= 1 {
		return h.origin.Y() + h00 + (h10-h00)*u + (h01-h00)*w, true
	}
	return h.origin.Y() + h11 + (h01-h11)*(1-u) + (h10-h11)*(1-w), true
}

// nearest returns the closest surface point to p and its distance, along with a lower bound of the
// distance that stays valid when the search window did not reach the true closest point.
func (h *Heightfield) nearest(p mgl32.Vec3) (mgl32.Vec3, float32, float32) {
	lo, hi := h.bounds.Min(), h.bounds.Max()
	cx, cz := mgl32.Clamp(p.X(), lo.X(), hi.X()), mgl32.Clamp(p.Z(), lo.Z(), hi.Z())
	cy, _ := h.SampleHeight(cx, cz)

	best := mgl32.Vec3{cx, cy, cz}
	bestDist := best.Sub(p).Len()
	window := math32.Min(bestDist, heightfieldSearchCells*h.cellSize)

	i0, i1 := h.cellIndex(p.X()-window, h.origin.X(), h.nx), h.cellIndex(p.X()+window, h.origin.X(), h.nx)
	j0, j1 := h.cellIndex(p.Z()-window, h.origin.Z(), h.nz), h.cellIndex(p.Z()+window, h.origin.Z(), h.nz)
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			for _, t := range h.cell(i, j) {
				c := t.ClosestPoint(p)
				if d := c.Sub(p).Len(); d < bestDist {
					best, bestDist = c, d
				}
			}
		}
	}
	return best, bestDist, math32.Min(bestDist, window)
}

func (h *Heightfield) cellIndex(v, origin float32, n int) int {
	return max(0, min(int(math32.Floor((v-origin)/h.cellSize)), n-1))
}

func (h *Heightfield) inside(p mgl32.Vec3) bool {
	y, ok := h.SampleHeight(p.X(), p.Z())
	return ok && p.Y() < y
}

func (h *Heightfield) SignedDistance(p mgl32.Vec3) float32 {
	_, dist, lower := h.nearest(p)
	if h.inside(p) {
		return -dist
	}
	return lower
}

func (h *Heightfield) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	c, _, _ := h.nearest(p)
	return c
}

// Raycast walks the cells under the ray in order and reports the first triangle entered from
// above. Rays starting below the terrain pass through it.
func (h *Heightfield) Raycast(origin, dir mgl32.Vec3, maxDist float32) (Contact, bool) {
	t0, t1 := float32(0), maxDist
	lo, hi := h.bounds.Min(), h.bounds.Max()
	for _, axis := range [2]int{0, 2} {
		if math32.Abs(dir[axis]) < 1e-12 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return Contact{}, false
			}
			continue
		}
		ta, tb := (lo[axis]-origin[axis])/dir[axis], (hi[axis]-origin[axis])/dir[axis]
		if ta > tb {
			ta, tb = tb, ta
		}
		t0, t1 = math32.Max(t0, ta), math32.Min(t1, tb)
	}
	if t0 > t1 {
		return Contact{}, false
	}

	start, end := origin.Add(dir.Mul(t0)), origin.Add(dir.Mul(t1))
	for c := range game.CellsBetween(h.toGrid(start), h.toGrid(end)) {
		i, j := c[0], c[1]
		if i < 0 || j < 0 || i >= h.nx || j >= h.nz {
			continue
		}

		var (
			contact Contact
			found   bool
		)
		for _, t := range h.cell(i, j) {
			n := geometry.PointTowards(t.Normal(), mgl32.Vec3{0, 1, 0})
			if dir.Dot(n) >= 0 {
				continue
			}
			dist, ok := t.Intersect(origin, dir)
			if !ok || dist > maxDist || (found && dist >= contact.Distance) {
				continue
			}
			contact, found = Contact{Point: origin.Add(dir.Mul(dist)), Normal: n, Distance: dist}, true
		}
		if found {
			return contact, true
		}
	}
	return Contact{}, false
}

func (h *Heightfield) toGrid(p mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{(p.X() - h.origin.X()) / h.cellSize, (p.Z() - h.origin.Z()) / h.cellSize}
}
