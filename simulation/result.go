package simulation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/treefall/animation"
	"github.com/oomph-ac/treefall/entity"
)

// Outcome describes what happened to a falling tree during a tick.
type Outcome uint8

const (
	// OutcomeFalling is reported for trees that are still falling after the tick.
	OutcomeFalling Outcome = iota
	// OutcomeLanded is reported for trees that landed and were removed.
	OutcomeLanded
	// OutcomeTimedOut is reported for trees that fell for too long without landing and were removed.
	OutcomeTimedOut
	// OutcomeRemoved is reported for trees that were removed without landing or timing out, such as trees
	// that are never animated.
	OutcomeRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFalling:
		return "falling"
	case OutcomeLanded:
		return "landed"
	case OutcomeTimedOut:
		return "timed out"
	case OutcomeRemoved:
		return "removed"
	}
	return "unknown"
}

// Dead returns true if the tree was removed as a result of the outcome.
func (o Outcome) Dead() bool {
	return o != OutcomeFalling
}

// Result captures the state of a single falling tree after a tick.
type Result struct {
	ID       uint64
	Outcome  Outcome
	Position mgl64.Vec3
	Age      uint64
	// Digest is the trajectory digest of the tree up to and including this tick.
	Digest uint64
}

// Snapshot is an immutable copy of a falling tree, published after every tick. It is safe to read from
// any goroutine.
type Snapshot struct {
	ID     uint64
	Kind   entity.AnimationKind
	Age    uint64
	Landed bool
	OnFire bool
	View   animation.View
	Digest uint64
}
