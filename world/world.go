package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/treefall/game"
	tfblock "github.com/oomph-ac/treefall/world/block"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Drop is an item stack spawned into the world.
type Drop struct {
	Pos   cube.Pos
	Stack item.Stack
}

// World is a sparse block world. Positions that were never set hold air. It implements Oracle, Mutator
// and Sink, and can be passed to dragonfly block models as a world.BlockSource.
type World struct {
	log *logrus.Logger

	blocks map[cube.Pos]world.Block
	// radii holds the radius of every branch placed in the world. A record outlives the branch block
	// itself, so a tree that was just cut still knows how thick it was at the cut.
	radii map[cube.Pos]int
	drops []Drop

	deadlock.RWMutex
}

// New returns an empty World.
func New(log *logrus.Logger) *World {
	return &World{
		log:    log,
		blocks: make(map[cube.Pos]world.Block),
		radii:  make(map[cube.Pos]int),
	}
}

// Block returns the block at the position passed.
func (w *World) Block(pos cube.Pos) world.Block {
	w.RLock()
	defer w.RUnlock()
	return w.block(pos)
}

func (w *World) block(pos cube.Pos) world.Block {
	if b, ok := w.blocks[pos]; ok {
		return b
	}
	return block.Air{}
}

// SetBlock sets the block at the position passed. Setting air removes the block.
func (w *World) SetBlock(pos cube.Pos, b world.Block) {
	w.Lock()
	defer w.Unlock()
	w.setBlock(pos, b)
}

func (w *World) setBlock(pos cube.Pos, b world.Block) {
	if _, ok := b.(block.Air); ok || b == nil {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = b
}

// Fill sets every block in the cuboid spanned by the two positions, both inclusive.
func (w *World) Fill(from, to cube.Pos, b world.Block) {
	w.Lock()
	defer w.Unlock()

	for x := min(from.X(), to.X()); x <= max(from.X(), to.X()); x++ {
		for y := min(from.Y(), to.Y()); y <= max(from.Y(), to.Y()); y++ {
			for z := min(from.Z(), to.Z()); z <= max(from.Z(), to.Z()); z++ {
				w.setBlock(cube.Pos{x, y, z}, b)
			}
		}
	}
}

// PlaceBranch places a branch block of the radius passed.
func (w *World) PlaceBranch(pos cube.Pos, radius int) {
	w.Lock()
	defer w.Unlock()

	w.setBlock(pos, block.Log{})
	w.radii[pos] = radius
}

// Drops returns all item stacks spawned into the world so far.
func (w *World) Drops() []Drop {
	w.RLock()
	defer w.RUnlock()
	return append([]Drop(nil), w.drops...)
}

// MaterialAt ...
func (w *World) MaterialAt(pos cube.Pos) Material {
	return Classify(w.Block(pos))
}

// CollisionVolumeAt returns the union of all collision boxes of the block's model.
func (w *World) CollisionVolumeAt(pos cube.Pos) (cube.BBox, bool) {
	// The lock must not be held here: models look up neighbouring blocks through w.
	boxes := w.Block(pos).Model().BBox(pos, w)
	if len(boxes) == 0 {
		return cube.BBox{}, false
	}
	return game.UnionBoxes(boxes), true
}

// BranchRadiusAt ...
func (w *World) BranchRadiusAt(pos cube.Pos) (int, bool) {
	w.RLock()
	defer w.RUnlock()

	r, ok := w.radii[pos]
	return r, ok
}

// IsOpen ...
func (w *World) IsOpen(pos cube.Pos) bool {
	return Classify(w.Block(pos)) == MaterialAir
}

// SetIgnited ...
func (w *World) SetIgnited(pos cube.Pos) {
	w.Lock()
	defer w.Unlock()

	if Classify(w.block(pos)) != MaterialAir {
		return
	}
	w.setBlock(pos, block.Fire{})
	w.log.WithField("pos", pos).Debug("fire spread from falling tree")
}

// RevertSoil ...
func (w *World) RevertSoil(pos cube.Pos) {
	w.Lock()
	defer w.Unlock()

	soil, ok := w.block(pos).(tfblock.RootySoil)
	if !ok {
		return
	}
	w.setBlock(pos, soil.Plain())
	w.log.WithField("pos", pos).Debug("reverted rooty soil")
}

// Spawn ...
func (w *World) Spawn(pos cube.Pos, stack item.Stack) {
	w.Lock()
	defer w.Unlock()
	w.drops = append(w.drops, Drop{Pos: pos, Stack: stack})
}
