package animation

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/treefall/game"
)

// Transform is the model transform of a falling tree for a single frame.
type Transform struct {
	Yaw, Pitch float32
	Matrix     mgl32.Mat4
}

// RenderTransform interpolates the rotation of the tree between its last two ticks and returns the
// transform that rotates the tree model around its centre of mass. partialTicks is the fraction of a
// tick that passed since the last one, in [0, 1].
func RenderTransform(v View, partialTicks float32) Transform {
	pitch := game.WrapDegrees32(game.LerpDegrees32(v.LastRotation[0], v.Rotation[0], partialTicks))
	yaw := game.WrapDegrees32(game.LerpDegrees32(v.LastRotation[1], v.Rotation[1], partialTicks))

	mc := v.MassCenter
	m := mgl32.Translate3D(mc.X(), mc.Y(), mc.Z()).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-yaw))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(pitch))).
		Mul4(mgl32.Translate3D(-mc.X()-game.RenderPivotCorrection, -mc.Y(), -mc.Z()-game.RenderPivotCorrection))
	return Transform{Yaw: yaw, Pitch: pitch, Matrix: m}
}

// CullBox returns the footprint of the tree at its interpolated position, for culling on the
// presentation side.
func CullBox(v View, partialTicks float32) cube.BBox {
	pos := game.LerpVec32(v.LastPos, v.Pos, partialTicks)
	r := v.Radius
	return cube.Box(pos.X()-r, pos.Y(), pos.Z()-r, pos.X()+r, pos.Y()+1, pos.Z()+r)
}
