package animation

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/treefall/entity"
	"github.com/oomph-ac/treefall/game"
	"github.com/oomph-ac/treefall/settings"
	"github.com/oomph-ac/treefall/world"
	"github.com/sirupsen/logrus"
)

// Physics is the handler that lets a tree tumble and fall under gravity until it lands on a block that
// it collides with.
type Physics struct {
	oracle    world.Oracle
	conf      settings.Physics
	worldSeed int64
	log       *logrus.Logger
}

// NewPhysics returns a physics handler. The world seed is the session seed every tree derives its spin
// from, so that every observer using the same seed sees the same trees fall the same way.
func NewPhysics(oracle world.Oracle, worldSeed int64, conf settings.Physics, log *logrus.Logger) *Physics {
	return &Physics{oracle: oracle, conf: conf, worldSeed: worldSeed, log: log}
}

// Kind ...
func (p *Physics) Kind() entity.AnimationKind {
	return entity.AnimationPhysics
}

// InitMotion gives a freshly cut tree its initial spin and kick, and sheds its fragile drops.
func (p *Physics) InitMotion(t *entity.FallingTree, fx *Effects) {
	st := t.ResetAnimation()

	cut := t.Destroy.CutPos
	r := game.BodyRandom(p.worldSeed, cut.X(), cut.Z())
	mass := p.conf.InertialMass(t.Destroy.WoodVolume)

	t.Vel = t.Vel.Mul(1 / mass)
	st.PitchSpin = (float64(r.Float32()) - 0.5) * p.conf.SpinScale / mass
	st.YawSpin = (float64(r.Float32()) - 0.5) * p.conf.SpinScale / mass

	// Trees kick away from the stump they were cut from.
	away := cube.Pos{}.Side(t.Destroy.CutDir.Opposite()).Vec3()
	t.Vel = t.Vel.Add(away.Mul(p.conf.CutImpulse))

	shedDrops(t, fx)
}

// HandleMotion moves the tree by a single tick. Gravity and drag are applied before the collision test, so
// a tree that lands did still accelerate during its final tick.
func (p *Physics) HandleMotion(t *entity.FallingTree, fx *Effects) {
	if t.Landed {
		return
	}
	st := t.Animation()

	t.Vel[1] -= p.conf.Gravity
	t.Vel = t.Vel.Mul(p.conf.AirDrag)
	st.PitchSpin *= p.conf.AirDrag
	st.YawSpin *= p.conf.AirDrag

	t.Pos = t.Pos.Add(t.Vel)
	t.Rotation[0] = game.WrapDegrees(t.Rotation[0] + st.PitchSpin)
	t.Rotation[1] = game.WrapDegrees(t.Rotation[1] + st.YawSpin)

	t.Radius = float64(p.radius(t))
	footprint := game.FootprintBox(t.Pos, t.Radius)
	pos := cube.PosFromVec3(t.Pos)

	switch m := p.oracle.MaterialAt(pos); {
	case m.PassThrough():
		// Trees fall through what is left of themselves.
	case m == world.MaterialFluid:
		p.handleFluid(t, st)
	default:
		p.handleSolid(t, pos, footprint, fx)
	}
}

// radius returns the footprint radius of the tree, which is the radius of the branch it was cut at.
func (p *Physics) radius(t *entity.FallingTree) int {
	if r, ok := p.oracle.BranchRadiusAt(t.Destroy.CutPos); ok {
		return r
	}
	return p.conf.DefaultBranchRadius
}

func (p *Physics) handleFluid(t *entity.FallingTree, st *entity.AnimationState) {
	// Fluids cancel out gravity and slow the tree down far more than air does.
	t.Vel[1] += p.conf.Gravity
	t.Vel = t.Vel.Mul(p.conf.FluidDrag)
	st.PitchSpin *= p.conf.FluidDrag
	st.YawSpin *= p.conf.FluidDrag
	t.Vel[1] += p.conf.FluidBuoyancy

	if t.OnFire {
		p.log.WithField("id", t.ID).Debug("falling tree extinguished by fluid")
	}
	t.OnFire = false
}

func (p *Physics) handleSolid(t *entity.FallingTree, pos cube.Pos, footprint cube.BBox, fx *Effects) {
	vol, ok := p.oracle.CollisionVolumeAt(pos)
	if !ok {
		return
	}
	vol = vol.Translate(pos.Vec3())
	if !footprint.IntersectsWith(vol) {
		return
	}

	t.Vel[1] = 0
	t.Pos[1] = vol.Max().Y()
	t.LastPos[1] = t.Pos[1]
	t.Landed = true
	t.OnGround = true

	p.log.WithFields(logrus.Fields{"id": t.ID, "pos": t.Pos, "age": t.Age}).Debug("falling tree landed")
	if above := pos.Side(cube.FaceUp); t.OnFire && p.oracle.IsOpen(above) {
		fx.Add(Ignite{Pos: above})
	}
}

// ShouldDie returns true once the tree landed or has been falling for too long. The soil that held the
// roots of the tree is reverted when it dies.
func (p *Physics) ShouldDie(t *entity.FallingTree, fx *Effects) bool {
	dead := t.Landed || t.Age > p.conf.MaxAge
	if dead {
		fx.Add(RevertSoil{Pos: t.Destroy.CutPos.Side(cube.FaceDown)})
	}
	return dead
}

// DropPayload ...
func (p *Physics) DropPayload(t *entity.FallingTree, fx *Effects) {
	dropPayload(t, fx)
}

// RenderTransform ...
func (p *Physics) RenderTransform(v View, partialTicks float32) Transform {
	return RenderTransform(v, partialTicks)
}

// ShouldRender ...
func (p *Physics) ShouldRender(View) bool {
	return true
}
