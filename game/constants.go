package game

const (
	TreeGravity         = 0.1
	AirDrag             = 0.98
	FluidDrag           = 0.8
	FluidBuoyancy       = 0.01
	CutImpulse          = 0.1
	SpinScale           = 4.0
	MinInertialMass     = 1.0
	MaxInertialMass     = 3.0
	DefaultBranchRadius = 8
	// MaxFallingTicks is the amount of ticks a falling tree may exist before it is removed, even if it
	// never landed.
	MaxFallingTicks = 120

	// RenderPivotCorrection offsets the render pivot to the centre of the cut block.
	RenderPivotCorrection = float32(0.5)
)
