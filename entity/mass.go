package entity

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Segment is a single branch block of a tree.
type Segment struct {
	// Offset is the position of the segment relative to the cut position.
	Offset cube.Pos
	// Radius is the radius of the branch, in 1/16th of a block.
	Radius int
}

// Volume returns the amount of wood in the segment, in blocks.
func (s Segment) Volume() float64 {
	side := float64(s.Radius*2) / 16
	return side * side
}

// WoodVolume returns the total amount of wood in the segments.
func WoodVolume(segments []Segment) (v float64) {
	for _, s := range segments {
		v += s.Volume()
	}
	return
}

// MassCenter returns the volume weighted centre of the segments, relative to the cut position. Each
// segment's mass sits at the centre of its block.
func MassCenter(segments []Segment) mgl64.Vec3 {
	var (
		sum    mgl64.Vec3
		volume float64
	)
	for _, s := range segments {
		v := s.Volume()
		sum = sum.Add(s.Offset.Vec3Centre().Mul(v))
		volume += v
	}
	if volume == 0 {
		return mgl64.Vec3{0.5, 0.5, 0.5}
	}
	return sum.Mul(1 / volume)
}
