package animation

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/treefall/entity"
	"github.com/oomph-ac/treefall/game"
)

// Handler moves a falling tree from the moment it is cut until it is removed. The host calls InitMotion
// once, then HandleMotion and ShouldDie every tick, and DropPayload when ShouldDie reports true.
// RenderTransform and ShouldRender may be called from the presentation side at any time and must not
// change the tree.
type Handler interface {
	// Kind returns the kind of the handler, which is the tag falling trees select it by.
	Kind() entity.AnimationKind
	InitMotion(t *entity.FallingTree, fx *Effects)
	HandleMotion(t *entity.FallingTree, fx *Effects)
	DropPayload(t *entity.FallingTree, fx *Effects)
	ShouldDie(t *entity.FallingTree, fx *Effects) bool
	RenderTransform(v View, partialTicks float32) Transform
	ShouldRender(v View) bool
}

// View is a read-only copy of the parts of a falling tree that rendering depends on.
type View struct {
	Pos, LastPos           mgl32.Vec3
	Rotation, LastRotation mgl32.Vec2
	// MassCenter is relative to the cut position.
	MassCenter mgl32.Vec3
	Radius     float32
}

// ViewOf returns a View of the falling tree.
func ViewOf(t *entity.FallingTree) View {
	return View{
		Pos:          game.Vec64To32(t.Pos),
		LastPos:      game.Vec64To32(t.LastPos),
		Rotation:     mgl32.Vec2{float32(t.Rotation[0]), float32(t.Rotation[1])},
		LastRotation: mgl32.Vec2{float32(t.LastRotation[0]), float32(t.LastRotation[1])},
		MassCenter:   game.Vec64To32(t.Destroy.MassCenter),
		Radius:       float32(t.Radius),
	}
}

// dropPayload queues a spawn for every payload stack at the position of the tree and for every leaves drop
// relative to the cut position.
func dropPayload(t *entity.FallingTree, fx *Effects) {
	pos := cube.PosFromVec3(t.Pos)
	for _, stack := range t.Payload {
		fx.Add(Spawn{Pos: pos, Stack: stack})
	}
	for _, d := range t.Destroy.LeavesDrops {
		fx.Add(Spawn{Pos: t.Destroy.CutPos.Add(d.Offset), Stack: d.Stack})
	}
}

// shedDrops queues the drops that fall out of a tree as it starts falling and clears them, so they can
// never be dropped twice.
func shedDrops(t *entity.FallingTree, fx *Effects) {
	for _, d := range t.Destroy.ShedDrops {
		fx.Add(Spawn{Pos: t.Destroy.CutPos.Add(d.Offset), Stack: d.Stack})
	}
	t.Destroy.ShedDrops = nil
}
