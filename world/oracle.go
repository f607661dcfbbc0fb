package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
)

// Oracle answers the questions a falling tree asks about the world while it moves.
type Oracle interface {
	// MaterialAt returns the material of the block at the position.
	MaterialAt(pos cube.Pos) Material
	// CollisionVolumeAt returns the bounds of the collision shape of the block at the position, relative
	// to the position. False is returned if the block has no collision.
	CollisionVolumeAt(pos cube.Pos) (cube.BBox, bool)
	// BranchRadiusAt returns the radius of the branch at the position, if the position held one.
	BranchRadiusAt(pos cube.Pos) (int, bool)
	// IsOpen returns true if nothing occupies the position.
	IsOpen(pos cube.Pos) bool
}

// Mutator applies the world changes a falling tree causes.
type Mutator interface {
	// SetIgnited sets fire at the position. Setting fire where it cannot burn is a no-op.
	SetIgnited(pos cube.Pos)
	// RevertSoil reverts the rooty soil at the position back to plain soil.
	RevertSoil(pos cube.Pos)
}

// Sink receives the items a falling tree drops.
type Sink interface {
	Spawn(pos cube.Pos, stack item.Stack)
}
