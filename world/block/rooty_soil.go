package block

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/treefall/world/blockmodel"
)

var rootySoilHash = block.NextHash()

// RootySoil is soil holding the roots of a tree. Once the tree is gone, it is reverted to the plain Soil
// it wraps.
type RootySoil struct {
	Soil world.Block
}

func (r RootySoil) EncodeBlock() (string, map[string]any) {
	name, _ := r.plain().EncodeBlock()
	return "treefall:rooty_" + trimNamespace(name), nil
}

func (r RootySoil) Hash() (uint64, uint64) {
	return rootySoilHash, world.BlockHash(r.plain())
}

func (r RootySoil) Model() world.BlockModel {
	return blockmodel.FullCuboid()
}

// Plain returns the block the soil reverts to.
func (r RootySoil) Plain() world.Block {
	return r.plain()
}

func (r RootySoil) plain() world.Block {
	if r.Soil == nil {
		return block.Dirt{}
	}
	return r.Soil
}
