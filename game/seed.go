package game

import "math/rand/v2"

// bodyStream is the fixed second word of the PCG state. Only the first word depends on the body.
const bodyStream = 0x9e3779b97f4a7c15

// BodySeed combines a world seed with the x and z coordinates of a block. x occupies the high
// 32 bits; z is sign extended before being or'ed in, so negative z values also set the high bits.
func BodySeed(worldSeed int64, x, z int) int64 {
	return worldSeed ^ (int64(x)<<32 | int64(z))
}

// BodyRandom returns a deterministic random stream for a body cut at the x and z passed. The same
// world seed and coordinates always produce the same stream, regardless of process or call order.
func BodyRandom(worldSeed int64, x, z int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(BodySeed(worldSeed, x, z)), bodyStream))
}

// InertialMass clamps a wood volume into the inertial mass range. Volumes below the range, including
// zero and negative volumes, behave as the lightest possible tree.
func InertialMass(woodVolume float64) float64 {
	return ClampFloat(woodVolume, MinInertialMass, MaxInertialMass)
}
