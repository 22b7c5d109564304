package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/kinematic/game"
)

// Veto is a position proposed for the body during a single frame. The veto with the greatest weight
// wins the frame.
type Veto struct {
	Weight   int
	Position mgl32.Vec3
}

// Arbitrator collects the vetoes of every producer of a character during a frame and commits exactly
// one of them to the body when the frame resolves.
type Arbitrator struct {
	body   *Body
	dbg    *Debugger
	intent mgl32.Vec3
	vetoes []Veto
}

// NewArbitrator returns an arbitrator committing positions to the body passed.
func NewArbitrator(body *Body, dbg *Debugger) *Arbitrator {
	return &Arbitrator{body: body, dbg: dbg, vetoes: make([]Veto, 0, 8)}
}

// SetIntent sets the movement intent of the current frame.
func (a *Arbitrator) SetIntent(intent mgl32.Vec3) {
	a.intent = intent
}

// Intent returns the movement intent of the current frame.
func (a *Arbitrator) Intent() mgl32.Vec3 {
	return a.intent
}

// Position returns the committed position of the body.
func (a *Arbitrator) Position() mgl32.Vec3 {
	return a.body.Position()
}

// AddVeto proposes a position for the current frame. Candidates with a NaN or infinite coordinate are
// dropped, in which case false is returned.
func (a *Arbitrator) AddVeto(weight int, candidate mgl32.Vec3) bool {
	if !game.Vec3Finite(candidate) {
		a.dbg.Notify(DebugModeArbitration, true, "dropped non-finite veto (weight=%d, pos=%v)", weight, candidate)
		return false
	}
	a.vetoes = append(a.vetoes, Veto{Weight: weight, Position: candidate})
	return true
}

// Vetoes returns a copy of the vetoes proposed so far in the current frame.
func (a *Arbitrator) Vetoes() []Veto {
	return append([]Veto(nil), a.vetoes...)
}

// Resolve commits the winning veto of the frame to the body and clears the veto list. The baseline
// proposal, moving by the intent alone, has weight zero. A veto only replaces the current winner if
// its weight is strictly greater, so ties go to whichever was proposed first.
func (a *Arbitrator) Resolve(dt float32) mgl32.Vec3 {
	best := Veto{Weight: game.WeightBaseline, Position: a.body.Position().Add(a.intent.Mul(dt))}
	for _, v := range a.vetoes {
		if v.Weight > best.Weight {
			best = v
		}
	}

	a.dbg.Notify(DebugModeArbitration, true, "resolved %d vetoes, committing weight %d at %v", len(a.vetoes), best.Weight, best.Position)
	a.dbg.Record("committed", best)

	a.body.set(best.Position)
	a.vetoes = a.vetoes[:0]
	return best.Position
}
