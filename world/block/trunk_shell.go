package block

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/treefall/world/blockmodel"
)

var trunkShellHash = block.NextHash()

// TrunkShell is the placeholder filling the outer ring of blocks around a thick trunk. The shell points
// back at the trunk core it belongs to. Falling trees pass through it.
type TrunkShell struct {
	Core cube.Pos
}

func (t TrunkShell) EncodeBlock() (string, map[string]any) {
	return "treefall:trunk_shell", map[string]any{
		"core_x": int32(t.Core.X()), "core_y": int32(t.Core.Y()), "core_z": int32(t.Core.Z()),
	}
}

func (t TrunkShell) Hash() (uint64, uint64) {
	return trunkShellHash, uint64(uint32(t.Core.X())) | uint64(uint32(t.Core.Z()))<<32
}

func (t TrunkShell) Model() world.BlockModel {
	return blockmodel.FullCuboid()
}
