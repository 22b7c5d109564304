package game

// Numeric slack added to cast lengths and comparisons so that shapes resting exactly on a surface
// are still detected.
const (
	Tolerance     = float32(0.05)
	TinyTolerance = float32(0.01)
)

const (
	DefaultStandAngle    = float32(30)
	DefaultStepHeight    = float32(0.3)
	DefaultSlideSlowing  = float32(10)
	DefaultMovementSpeed = float32(2)
	DefaultGravity       = float32(9.81)

	// FallSpeedSeed is the magnitude of the fall speed given to a character that has just
	// touched ground, so the following collision probe never has a zero length.
	FallSpeedSeed = float32(0.1)
	// WallProbeLength is the maximum length of the ray used to find the wall adjoining a contact.
	WallProbeLength = float32(2)
	// HeadOnAngle is the angle in degrees under which a wall is considered to be hit head-on and
	// the body is stopped instead of deflected.
	HeadOnAngle = float32(10)
)

// Default veto weights. Higher weights win arbitration; on equal weight the earlier veto wins.
const (
	WeightBaseline         = 0
	WeightFreeFall         = 20
	WeightSweepLower       = 40
	WeightClampGround      = 50
	WeightGravityCollision = 50
	WeightStepUp           = 60
	WeightSweepUpper       = 90
	WeightPushback         = 100
)
