package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AngleBetween returns the unsigned angle between two vectors in degrees. Zero is returned when
// either vector has no length.
func AngleBetween(a, b mgl32.Vec3) float32 {
	denom := math32.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < 1e-15 {
		return 0
	}

	cos := mgl32.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl32.RadToDeg(math32.Acos(cos))
}

// Vec3Finite returns true if none of the components of the vector are NaN or infinite.
func Vec3Finite(v mgl32.Vec3) bool {
	for _, f := range v {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// ProjectOnPlane removes the component of v along the unit normal n.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// SafeNormalize normalizes v, returning false instead of a non-finite vector when v is (close to)
// zero length.
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l < 1e-12 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Returns -1 if x < y, 0 if x == y, or 1 if x > y
func SpaceshipOp(x, y float32) float32 {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}

	return 1
}
