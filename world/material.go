package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/world"
	tfblock "github.com/oomph-ac/treefall/world/block"
)

// Material is the category of a block as far as a falling tree is concerned.
type Material uint8

const (
	MaterialAir Material = iota
	MaterialFoliage
	MaterialBranch
	MaterialTrunkShell
	MaterialFluid
	MaterialSolid
)

func (m Material) String() string {
	switch m {
	case MaterialAir:
		return "air"
	case MaterialFoliage:
		return "foliage"
	case MaterialBranch:
		return "branch"
	case MaterialTrunkShell:
		return "trunk_shell"
	case MaterialFluid:
		return "fluid"
	case MaterialSolid:
		return "solid"
	}
	return "unknown"
}

// PassThrough returns true if a falling tree falls through blocks of the material, which is the case for
// the parts of a tree itself.
func (m Material) PassThrough() bool {
	return m == MaterialFoliage || m == MaterialBranch || m == MaterialTrunkShell
}

// Classify returns the material of a block. Blocks that are not recognised are solid; whether they collide
// is decided by their model.
func Classify(b world.Block) Material {
	switch b.(type) {
	case nil, block.Air:
		return MaterialAir
	case block.Leaves:
		return MaterialFoliage
	case block.Log:
		return MaterialBranch
	case tfblock.TrunkShell:
		return MaterialTrunkShell
	case block.Water, block.Lava:
		return MaterialFluid
	default:
		return MaterialSolid
	}
}
