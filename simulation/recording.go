package simulation

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
	"github.com/oomph-ac/kinematic/locomotion"
	"github.com/zeebo/xxh3"
)

// digestPrecision is the amount of decimals positions are rounded to before they are digested, so
// that the digest does not depend on the last bits of a float.
const digestPrecision = 4

// Sample is the state of a character at the end of a single frame.
type Sample struct {
	Frame    int
	Position mgl32.Vec3
	State    locomotion.GroundState
}

// Recording holds the samples of a single character, one per frame.
type Recording struct {
	samples []Sample
}

func (r *Recording) add(s Sample) {
	r.samples = append(r.samples, s)
}

// Len returns the amount of recorded frames.
func (r *Recording) Len() int {
	return len(r.samples)
}

// Samples returns every recorded sample in the order they were recorded.
func (r *Recording) Samples() []Sample {
	return r.samples
}

// Last returns the last recorded sample, or false if nothing was recorded yet.
func (r *Recording) Last() (Sample, bool) {
	if len(r.samples) == 0 {
		return Sample{}, false
	}
	return r.samples[len(r.samples)-1], true
}

// Transitions returns the samples in which the ground state differs from the sample before.
func (r *Recording) Transitions() []Sample {
	var out []Sample
	for i, s := range r.samples {
		if i == 0 || s.State != r.samples[i-1].State {
			out = append(out, s)
		}
	}
	return out
}

// MaxHeight returns the highest Y coordinate the character reached.
func (r *Recording) MaxHeight() float32 {
	height := float32(math.Inf(-1))
	for _, s := range r.samples {
		height = max(height, s.Position.Y())
	}
	return height
}

// Digest returns a hash of the trajectory of the character. Two recordings of the same course and
// settings have the same digest.
func (r *Recording) Digest() uint64 {
	h := xxh3.New()
	buf := make([]byte, 0, 13)
	for _, s := range r.samples {
		buf = buf[:0]
		for _, v := range game.RoundVec32(s.Position, digestPrecision) {
			if v == 0 {
				// Negative zero.
				v = 0
			}
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
		buf = append(buf, byte(s.State))
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}
