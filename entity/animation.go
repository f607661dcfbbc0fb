package entity

// AnimationKind selects the animation handler that moves a falling tree.
type AnimationKind uint8

const (
	AnimationPhysics AnimationKind = iota
	AnimationInstant
)

func (k AnimationKind) String() string {
	switch k {
	case AnimationPhysics:
		return "physics"
	case AnimationInstant:
		return "instant"
	}
	return "unknown"
}

// AnimationState is the state an animation handler keeps for a single falling tree.
type AnimationState struct {
	// PitchSpin and YawSpin are the angular velocities of the tree, in degrees per tick.
	PitchSpin, YawSpin float64
}

// ResetAnimation replaces the animation state of the tree with a fresh one and returns it.
func (t *FallingTree) ResetAnimation() *AnimationState {
	t.anim = &AnimationState{}
	return t.anim
}

// Animation returns the animation state of the tree. A tree that was never initialised gets a fresh,
// motionless state.
func (t *FallingTree) Animation() *AnimationState {
	if t.anim == nil {
		t.anim = &AnimationState{}
	}
	return t.anim
}

// Initialised returns true if the tree has had its animation state set.
func (t *FallingTree) Initialised() bool {
	return t.anim != nil
}
