package entity

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/atomic"
)

var currentID = atomic.NewUint64(0)

// NextID returns a new, unique falling tree ID.
func NextID() uint64 {
	return currentID.Inc()
}

// Drop is an item stack positioned relative to the cut position of a tree.
type Drop struct {
	Offset cube.Pos
	Stack  item.Stack
}

// DestroyData describes how a tree was cut down.
type DestroyData struct {
	// CutPos is the position of the branch block the tree was cut at.
	CutPos cube.Pos
	// CutDir is the face of the stump the tree was cut from. The tree falls away from it.
	CutDir cube.Face
	// WoodVolume is the amount of wood in the tree, used as its mass.
	WoodVolume float64
	// MassCenter is the centre of mass of the tree, relative to the cut position.
	MassCenter mgl64.Vec3

	// LeavesDrops are dropped when the tree is removed.
	LeavesDrops []Drop
	// ShedDrops fall out of the tree as soon as it starts falling.
	ShedDrops []Drop
}

// FallingTree is a tree that was cut down and is now falling through the world.
type FallingTree struct {
	ID   uint64
	Kind AnimationKind

	Destroy DestroyData
	Payload []item.Stack

	Pos, LastPos mgl64.Vec3
	Vel          mgl64.Vec3
	// Rotation holds the pitch and the yaw of the tree, in degrees.
	Rotation, LastRotation mgl64.Vec2

	OnFire   bool
	Landed   bool
	OnGround bool
	Age      uint64

	// Radius is the footprint radius the tree collided with during its last tick.
	Radius float64

	anim *AnimationState
}

// NewFallingTree returns a falling tree positioned at the cut position with the velocity passed.
func NewFallingTree(destroy DestroyData, payload []item.Stack, vel mgl64.Vec3) *FallingTree {
	pos := destroy.CutPos.Vec3()
	return &FallingTree{
		Destroy: destroy,
		Payload: payload,
		Pos:     pos,
		LastPos: pos,
		Vel:     vel,
	}
}

// Tick moves the current position and rotation into the previous ones and ages the tree by one tick.
// It is called by the host once per tick, before the tree is moved.
func (t *FallingTree) Tick() {
	t.LastPos = t.Pos
	t.LastRotation = t.Rotation
	t.Age++
}

// Pitch ...
func (t *FallingTree) Pitch() float64 {
	return t.Rotation[0]
}

// Yaw ...
func (t *FallingTree) Yaw() float64 {
	return t.Rotation[1]
}

// SetPos sets the position of the tree, keeping the previous position for interpolation.
func (t *FallingTree) SetPos(pos mgl64.Vec3) {
	t.LastPos = t.Pos
	t.Pos = pos
}
