package animation

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/treefall/entity"
)

// Instant is the handler for trees that are never shown falling: the tree is removed on the first tick and
// its payload drops at the stump.
type Instant struct{}

// Kind ...
func (Instant) Kind() entity.AnimationKind {
	return entity.AnimationInstant
}

// InitMotion ...
func (Instant) InitMotion(t *entity.FallingTree, fx *Effects) {
	t.ResetAnimation()
	shedDrops(t, fx)
}

// HandleMotion keeps the tree at its cut position.
func (Instant) HandleMotion(t *entity.FallingTree, _ *Effects) {
	t.Pos = t.Destroy.CutPos.Vec3()
}

// ShouldDie ...
func (Instant) ShouldDie(t *entity.FallingTree, fx *Effects) bool {
	fx.Add(RevertSoil{Pos: t.Destroy.CutPos.Side(cube.FaceDown)})
	return true
}

// DropPayload ...
func (Instant) DropPayload(t *entity.FallingTree, fx *Effects) {
	dropPayload(t, fx)
}

// RenderTransform ...
func (Instant) RenderTransform(View, float32) Transform {
	return Transform{Matrix: mgl32.Ident4()}
}

// ShouldRender ...
func (Instant) ShouldRender(View) bool {
	return false
}
