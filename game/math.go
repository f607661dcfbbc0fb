package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// WrapDegrees wraps an angle in degrees into the range (-180, 180].
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// WrapDegrees32 is the float32 version of WrapDegrees.
func WrapDegrees32(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// LerpDegrees32 interpolates from one angle to another over the shortest arc between them. The
// result is not wrapped.
func LerpDegrees32(from, to, partialTicks float32) float32 {
	return from + WrapDegrees32(to-from)*partialTicks
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// LerpVec32 linearly interpolates between two positions.
func LerpVec32(from, to mgl32.Vec3, partialTicks float32) mgl32.Vec3 {
	return from.Add(to.Sub(from).Mul(partialTicks))
}
