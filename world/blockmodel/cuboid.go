package blockmodel

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

var fullBlock = cube.Box(0, 0, 0, 1, 1, 1)

// Cuboid is a model with a single collision box, relative to the block position.
type Cuboid struct {
	Box cube.BBox
}

// FullCuboid returns a Cuboid covering the whole block.
func FullCuboid() Cuboid {
	return Cuboid{Box: fullBlock}
}

func (c Cuboid) BBox(pos cube.Pos, s world.BlockSource) []cube.BBox {
	return []cube.BBox{c.Box}
}

// FaceSolid only reports faces as solid if the box reaches all the way to them.
func (c Cuboid) FaceSolid(pos cube.Pos, face cube.Face, s world.BlockSource) bool {
	return c.Box == fullBlock
}
