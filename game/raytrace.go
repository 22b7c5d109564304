package game

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cell is the integer coordinate of a cell in a two dimensional unit grid.
type Cell [2]int

// CellsBetween walks every unit grid cell crossed by the segment from start to end, in the order
// the segment crosses them. Coordinates are grid space, so callers scale world positions by their
// cell size first.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func CellsBetween(start, end mgl32.Vec2) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		current := Cell{int(math32.Floor(start.X())), int(math32.Floor(start.Y()))}
		radius := end.Sub(start).Len()
		if radius <= 0 {
			yield(current)
			return
		}
		dirVec := end.Sub(start).Mul(1 / radius)

		stepX := SpaceshipOp(dirVec.X(), 0)
		stepY := SpaceshipOp(dirVec.Y(), 0)

		tMaxX := rayTraceDistanceToBoundary(start.X(), dirVec.X())
		tMaxY := rayTraceDistanceToBoundary(start.Y(), dirVec.Y())

		tDeltaX := float32(0)
		if dirVec.X() != 0 {
			tDeltaX = stepX / dirVec.X()
		}

		tDeltaY := float32(0)
		if dirVec.Y() != 0 {
			tDeltaY = stepY / dirVec.Y()
		}

		for {
			if !yield(current) {
				return
			}

			if tMaxX < tMaxY {
				if tMaxX > radius {
					return
				}
				current[0] += int(stepX)
				tMaxX += tDeltaX
			} else {
				if tMaxY > radius {
					return
				}
				current[1] += int(stepY)
				tMaxY += tDeltaY
			}
		}
	}
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func rayTraceDistanceToBoundary(s, ds float32) float32 {
	if ds == 0 {
		return math32.MaxFloat32
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math32.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math32.Floor(s))) / ds
}
