package game

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// FootprintBox returns the box a falling tree collides with: radius blocks around pos horizontally and
// one block upwards from pos.
func FootprintBox(pos mgl64.Vec3, radius float64) df_cube.BBox {
	return df_cube.Box(
		pos.X()-radius, pos.Y(), pos.Z()-radius,
		pos.X()+radius, pos.Y()+1, pos.Z()+radius,
	)
}

// UnionBoxes returns the smallest box containing all boxes passed. The boxes must not be empty.
func UnionBoxes(boxes []df_cube.BBox) df_cube.BBox {
	min, max := boxes[0].Min(), boxes[0].Max()
	for _, b := range boxes[1:] {
		for i := range 3 {
			if b.Min()[i] < min[i] {
				min[i] = b.Min()[i]
			}
			if b.Max()[i] > max[i] {
				max[i] = b.Max()[i]
			}
		}
	}
	return df_cube.Box(min[0], min[1], min[2], max[0], max[1], max[2])
}
