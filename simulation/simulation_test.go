package simulation

import (
	"io"
	"sync"
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/treefall/animation"
	"github.com/oomph-ac/treefall/entity"
	"github.com/oomph-ac/treefall/settings"
	"github.com/oomph-ac/treefall/world"
	tfblock "github.com/oomph-ac/treefall/world/block"
	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newSimulation(seed int64) *Simulation {
	s := settings.DefaultSettings()
	s.Simulation.WorldSeed = seed
	log := discardLogger()
	return New(world.New(log), s, log)
}

func newTree(cut cube.Pos, kind entity.AnimationKind, payload ...item.Stack) *entity.FallingTree {
	t := entity.NewFallingTree(entity.DestroyData{CutPos: cut, CutDir: cube.FaceNorth, WoodVolume: 1}, payload, mgl64.Vec3{})
	t.Kind = kind
	return t
}

func mustFell(t *testing.T, s *Simulation, tree *entity.FallingTree) uint64 {
	t.Helper()
	id, err := s.Fell(tree)
	if err != nil {
		t.Fatalf("unexpected error felling tree: %v", err)
	}
	return id
}

func TestTimeout(t *testing.T) {
	s := newSimulation(1)
	id := mustFell(t, s, newTree(cube.Pos{0, 64, 0}, entity.AnimationPhysics))

	for i := 1; i <= 120; i++ {
		res := s.Tick()
		if len(res) != 1 || res[0].Outcome != OutcomeFalling {
			t.Fatalf("tick %d: expected the tree to still be falling, got %v", i, res)
		}
	}
	if snap, ok := s.Snapshot(id); !ok || snap.Age != 120 {
		t.Fatalf("expected a snapshot at age 120, got %v", snap)
	}

	res := s.Tick()
	if len(res) != 1 || res[0].Outcome != OutcomeTimedOut || res[0].Age != 121 {
		t.Fatalf("expected the tree to time out on tick 121, got %v", res)
	}
	if s.Len() != 0 {
		t.Fatalf("expected the tree to be removed")
	}
	if _, ok := s.Snapshot(id); ok {
		t.Fatalf("expected no snapshot after removal")
	}
	if len(s.Tick()) != 0 {
		t.Fatalf("expected no results without trees")
	}
}

func TestLandingRevertsSoilAndDropsPayload(t *testing.T) {
	s := newSimulation(1)
	s.World.SetBlock(cube.Pos{0, 63, 0}, tfblock.RootySoil{Soil: block.Grass{}})

	tree := newTree(cube.Pos{0, 64, 0}, entity.AnimationPhysics, item.NewStack(item.Stick{}, 3))
	tree.Destroy.LeavesDrops = []entity.Drop{{Offset: cube.Pos{0, 2, 0}, Stack: item.NewStack(item.Apple{}, 1)}}
	mustFell(t, s, tree)

	res := s.Tick()
	if len(res) != 1 || res[0].Outcome != OutcomeLanded {
		t.Fatalf("expected the tree to land on the soil, got %v", res)
	}
	if !mgl64.FloatEqual(res[0].Position.Y(), 64) {
		t.Fatalf("expected the tree to rest on top of the soil, got %v", res[0].Position)
	}
	if _, ok := s.World.Block(cube.Pos{0, 63, 0}).(block.Grass); !ok {
		t.Fatalf("expected the soil to be reverted, got %T", s.World.Block(cube.Pos{0, 63, 0}))
	}

	drops := s.World.Drops()
	if len(drops) != 2 {
		t.Fatalf("expected two drops, got %v", drops)
	}
	if drops[0].Pos != (cube.Pos{0, 64, 0}) || drops[0].Stack.Count() != 3 {
		t.Fatalf("unexpected payload drop %v", drops[0])
	}
	if drops[1].Pos != (cube.Pos{0, 66, 0}) {
		t.Fatalf("unexpected leaves drop %v", drops[1])
	}
}

func TestLandsOnFloor(t *testing.T) {
	s := newSimulation(7)
	s.World.Fill(cube.Pos{-8, 40, -8}, cube.Pos{8, 50, 8}, block.Stone{})
	id := mustFell(t, s, newTree(cube.Pos{0, 54, 0}, entity.AnimationPhysics))

	ticks, removed := s.Run(200)
	if ticks != 8 {
		t.Fatalf("expected the tree to land after 8 ticks, got %d", ticks)
	}
	if len(removed) != 1 || removed[0].ID != id || removed[0].Outcome != OutcomeLanded {
		t.Fatalf("unexpected results %v", removed)
	}
	if !mgl64.FloatEqual(removed[0].Position.Y(), 51) {
		t.Fatalf("expected the tree to rest on top of the floor, got %v", removed[0].Position)
	}
}

func TestRunStopsAtLimit(t *testing.T) {
	s := newSimulation(7)
	mustFell(t, s, newTree(cube.Pos{0, 64, 0}, entity.AnimationPhysics))

	ticks, removed := s.Run(10)
	if ticks != 10 || len(removed) != 0 || s.Len() != 1 {
		t.Fatalf("expected the run to stop after 10 ticks, got %d ticks and %v", ticks, removed)
	}
}

func TestDeterministicAcrossSimulations(t *testing.T) {
	run := func(seed int64) []uint64 {
		s := newSimulation(seed)
		s.World.Fill(cube.Pos{-8, 0, -8}, cube.Pos{8, 10, 8}, block.Stone{})
		s.World.PlaceBranch(cube.Pos{3, 40, -5}, 2)
		mustFell(t, s, newTree(cube.Pos{3, 40, -5}, entity.AnimationPhysics))

		var digests []uint64
		for s.Len() > 0 {
			for _, res := range s.Tick() {
				digests = append(digests, res.Digest)
			}
		}
		return digests
	}

	a, b := run(1234), run(1234)
	if len(a) != len(b) {
		t.Fatalf("expected equal trajectories, got %d and %d ticks", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: digests differ: %x != %x", i+1, a[i], b[i])
		}
	}

	c := run(4321)
	if c[0] == a[0] {
		t.Fatalf("expected different world seeds to produce different trajectories")
	}
}

func TestInstant(t *testing.T) {
	s := newSimulation(1)
	id := mustFell(t, s, newTree(cube.Pos{5, 64, 5}, entity.AnimationInstant, item.NewStack(item.Stick{}, 1)))

	if _, ok := s.Render(id, 0.5); ok {
		t.Fatalf("expected an instant tree not to be rendered")
	}
	res := s.Tick()
	if len(res) != 1 || res[0].Outcome != OutcomeRemoved {
		t.Fatalf("expected the tree to be removed on its first tick, got %v", res)
	}
	if drops := s.World.Drops(); len(drops) != 1 || drops[0].Pos != (cube.Pos{5, 64, 5}) {
		t.Fatalf("expected the payload at the stump, got %v", drops)
	}
}

func TestUnknownKind(t *testing.T) {
	log := discardLogger()
	w := world.New(log)
	conf := settings.DefaultSettings()
	s := NewWithRegistry(w, animation.NewRegistry(animation.NewPhysics(w, 0, conf.Physics, log)), conf, log)

	if _, err := s.Fell(newTree(cube.Pos{}, entity.AnimationInstant)); err == nil {
		t.Fatalf("expected an error for a kind without a handler")
	}
	if s.Len() != 0 {
		t.Fatalf("expected no tree to be added")
	}
}

func TestRender(t *testing.T) {
	s := newSimulation(9)
	id := mustFell(t, s, newTree(cube.Pos{0, 64, 0}, entity.AnimationPhysics))
	s.Tick()

	snap, ok := s.Snapshot(id)
	if !ok {
		t.Fatalf("expected a snapshot")
	}
	tr, ok := s.Render(id, 1)
	if !ok {
		t.Fatalf("expected the tree to be rendered")
	}
	if want := animation.RenderTransform(snap.View, 1); tr != want {
		t.Fatalf("expected %v, got %v", want, tr)
	}
	if d, _ := s.Digest(id); d != snap.Digest {
		t.Fatalf("expected the digest of the snapshot")
	}
	if _, ok := s.Render(id+1000, 1); ok {
		t.Fatalf("expected no transform for an unknown tree")
	}
}

func TestRenderWhileTicking(t *testing.T) {
	s := newSimulation(3)
	id := mustFell(t, s, newTree(cube.Pos{0, 64, 0}, entity.AnimationPhysics))

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				s.Render(id, 0.5)
			}
		}
	}()
	s.Run(50)
	close(done)
	wg.Wait()
}
