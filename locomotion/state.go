package locomotion

import "fmt"

// GroundState is the relation of the foot of a character to the ground below it.
type GroundState uint8

const (
	// Airborne characters have nothing below them within reach and fall freely.
	Airborne GroundState = iota
	// Grounded characters stand on a surface flat enough, or a step low enough, to stand on.
	Grounded
	// Sliding characters rest on a surface too steep to stand on and slide down it.
	Sliding
)

func (s GroundState) String() string {
	switch s {
	case Airborne:
		return "airborne"
	case Grounded:
		return "grounded"
	case Sliding:
		return "sliding"
	}
	return fmt.Sprintf("GroundState(%d)", uint8(s))
}
