package world

import (
	"io"
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	tfblock "github.com/oomph-ac/treefall/world/block"
	"github.com/oomph-ac/treefall/world/blockmodel"
	"github.com/sirupsen/logrus"
)

// stepBlock is a block with a model made of two boxes, like a stair.
type stepBlock struct{}

func (stepBlock) EncodeBlock() (string, map[string]any) { return "treefall:test_step", nil }
func (stepBlock) Hash() (uint64, uint64)                { return block.NextHash(), 0 }
func (stepBlock) Model() world.BlockModel               { return stepModel{} }

type stepModel struct{}

func (stepModel) BBox(cube.Pos, world.BlockSource) []cube.BBox {
	return []cube.BBox{cube.Box(0, 0, 0, 1, 0.5, 1), cube.Box(0, 0.5, 0, 1, 1, 0.5)}
}
func (stepModel) FaceSolid(cube.Pos, cube.Face, world.BlockSource) bool { return false }

// halfBlock has a single box covering the lower half of the block.
type halfBlock struct{}

func (halfBlock) EncodeBlock() (string, map[string]any) { return "treefall:test_half", nil }
func (halfBlock) Hash() (uint64, uint64)                { return block.NextHash(), 0 }
func (halfBlock) Model() world.BlockModel {
	return blockmodel.Cuboid{Box: cube.Box(0, 0, 0, 1, 0.5, 1)}
}

func newTestWorld() *World {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		b    world.Block
		want Material
	}{
		{"nil", nil, MaterialAir},
		{"air", block.Air{}, MaterialAir},
		{"leaves", block.Leaves{}, MaterialFoliage},
		{"log", block.Log{}, MaterialBranch},
		{"trunk shell", tfblock.TrunkShell{}, MaterialTrunkShell},
		{"water", block.Water{Still: true, Depth: 8}, MaterialFluid},
		{"lava", block.Lava{Still: true, Depth: 8}, MaterialFluid},
		{"stone", block.Stone{}, MaterialSolid},
		{"fire", block.Fire{}, MaterialSolid},
		{"rooty soil", tfblock.RootySoil{}, MaterialSolid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.b); got != tt.want {
				t.Fatalf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPassThrough(t *testing.T) {
	for _, m := range []Material{MaterialFoliage, MaterialBranch, MaterialTrunkShell} {
		if !m.PassThrough() {
			t.Errorf("expected %v to be pass-through", m)
		}
	}
	for _, m := range []Material{MaterialAir, MaterialFluid, MaterialSolid} {
		if m.PassThrough() {
			t.Errorf("expected %v not to be pass-through", m)
		}
	}
}

func TestCollisionVolume(t *testing.T) {
	w := newTestWorld()
	w.SetBlock(cube.Pos{0, 0, 0}, block.Stone{})
	w.SetBlock(cube.Pos{1, 0, 0}, halfBlock{})
	w.SetBlock(cube.Pos{2, 0, 0}, stepBlock{})

	if _, ok := w.CollisionVolumeAt(cube.Pos{0, 1, 0}); ok {
		t.Fatalf("expected air to have no collision volume")
	}
	if box, ok := w.CollisionVolumeAt(cube.Pos{0, 0, 0}); !ok || box.Max().Y() != 1 {
		t.Fatalf("expected a full box for stone, got %v %v", box, ok)
	}
	if box, ok := w.CollisionVolumeAt(cube.Pos{1, 0, 0}); !ok || box.Max().Y() != 0.5 {
		t.Fatalf("expected a half box, got %v %v", box, ok)
	}
	if box, ok := w.CollisionVolumeAt(cube.Pos{2, 0, 0}); !ok || box != cube.Box(0, 0, 0, 1, 1, 1) {
		t.Fatalf("expected the union of both step boxes, got %v %v", box, ok)
	}
}

func TestSetBlockAirRemoves(t *testing.T) {
	w := newTestWorld()
	pos := cube.Pos{3, 4, 5}
	w.SetBlock(pos, block.Stone{})
	if w.IsOpen(pos) {
		t.Fatalf("expected stone to occupy the position")
	}
	w.SetBlock(pos, block.Air{})
	if !w.IsOpen(pos) {
		t.Fatalf("expected the position to be open again")
	}
}

func TestFill(t *testing.T) {
	w := newTestWorld()
	w.Fill(cube.Pos{1, 0, 1}, cube.Pos{-1, 0, -1}, block.Stone{})
	for x := -1; x <= 1; x++ {
		for z := -1; z <= 1; z++ {
			if w.MaterialAt(cube.Pos{x, 0, z}) != MaterialSolid {
				t.Fatalf("expected stone at %v %v", x, z)
			}
		}
	}
	if !w.IsOpen(cube.Pos{2, 0, 0}) {
		t.Fatalf("expected fill to stay in bounds")
	}
}

func TestBranchRadiusOutlivesBlock(t *testing.T) {
	w := newTestWorld()
	pos := cube.Pos{0, 64, 0}
	if _, ok := w.BranchRadiusAt(pos); ok {
		t.Fatalf("expected no radius before placing a branch")
	}
	w.PlaceBranch(pos, 5)
	if w.MaterialAt(pos) != MaterialBranch {
		t.Fatalf("expected a branch to be placed")
	}
	w.SetBlock(pos, block.Air{})
	if r, ok := w.BranchRadiusAt(pos); !ok || r != 5 {
		t.Fatalf("expected radius 5 to be kept, got %v %v", r, ok)
	}
}

func TestSetIgnited(t *testing.T) {
	w := newTestWorld()
	open, covered := cube.Pos{0, 1, 0}, cube.Pos{1, 1, 0}
	w.SetBlock(covered, block.Stone{})

	w.SetIgnited(open)
	w.SetIgnited(open)
	w.SetIgnited(covered)

	if _, ok := w.Block(open).(block.Fire); !ok {
		t.Fatalf("expected fire at the open position")
	}
	if _, ok := w.Block(covered).(block.Stone); !ok {
		t.Fatalf("expected covered position to keep its block")
	}
}

func TestRevertSoil(t *testing.T) {
	w := newTestWorld()
	pos := cube.Pos{0, 63, 0}
	w.SetBlock(pos, tfblock.RootySoil{Soil: block.Grass{}})

	w.RevertSoil(pos)
	if _, ok := w.Block(pos).(block.Grass); !ok {
		t.Fatalf("expected grass after reverting, got %T", w.Block(pos))
	}
	w.RevertSoil(pos)
	if _, ok := w.Block(pos).(block.Grass); !ok {
		t.Fatalf("expected reverting twice to be harmless")
	}
}

func TestSpawn(t *testing.T) {
	w := newTestWorld()
	w.Spawn(cube.Pos{1, 2, 3}, item.NewStack(item.Stick{}, 4))

	drops := w.Drops()
	if len(drops) != 1 || drops[0].Pos != (cube.Pos{1, 2, 3}) || drops[0].Stack.Count() != 4 {
		t.Fatalf("unexpected drops %v", drops)
	}
}
