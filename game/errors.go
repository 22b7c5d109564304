package game

const (
	ErrorInvalidRadius       = "%s radius must be greater than zero (got %v)"
	ErrorInvalidStepHeight   = "step height must not be negative (got %v)"
	ErrorInvalidStandAngle   = "stand angle must be within (0, 90) degrees (got %v)"
	ErrorInvalidSlideSlowing = "slide slowing must be greater than zero (got %v)"
	ErrorInvalidTolerance    = "tolerances must satisfy 0 < tinyTolerance <= tolerance (got %v / %v)"
	ErrorToleranceTooLarge   = "%s radius %v must exceed the tolerance %v"
	ErrorInvalidSpeed        = "movement speed must not be negative (got %v)"
	ErrorInvalidGravityMode  = "unknown gravity mode %q"
	ErrorInvalidGravity      = "gravity magnitude must not be negative (got %v)"
	ErrorInvalidTickRate     = "tick rate must be greater than zero (got %v)"
	ErrorInvalidDuration     = "simulated time must not be negative (got %v)"
	ErrorInvalidLayer        = "collision layer must be below %d (got %d)"
	ErrorUnknownDebugMode    = "unknown debug mode %q"
)
