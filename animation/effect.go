package animation

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/oomph-ac/treefall/world"
)

// Effect is a change to the world caused by a falling tree. Handlers never change the world themselves; they
// queue effects which the host applies after the handler returns.
type Effect interface {
	// Apply applies the effect to the world.
	Apply(m world.Mutator, s world.Sink)
}

// Ignite sets fire to an open position above a burning tree that landed.
type Ignite struct {
	Pos cube.Pos
}

// Apply ...
func (e Ignite) Apply(m world.Mutator, _ world.Sink) {
	m.SetIgnited(e.Pos)
}

// RevertSoil reverts the rooty soil that supported a tree.
type RevertSoil struct {
	Pos cube.Pos
}

// Apply ...
func (e RevertSoil) Apply(m world.Mutator, _ world.Sink) {
	m.RevertSoil(e.Pos)
}

// Spawn spawns an item stack.
type Spawn struct {
	Pos   cube.Pos
	Stack item.Stack
}

// Apply ...
func (e Spawn) Apply(_ world.Mutator, s world.Sink) {
	s.Spawn(e.Pos, e.Stack)
}

// Effects is a queue of effects in the order they were caused.
type Effects struct {
	queue []Effect
}

// Add queues an effect.
func (fx *Effects) Add(e Effect) {
	fx.queue = append(fx.queue, e)
}

// All returns all queued effects.
func (fx *Effects) All() []Effect {
	return fx.queue
}

// Len returns the amount of queued effects.
func (fx *Effects) Len() int {
	return len(fx.queue)
}

// Flush applies all queued effects in order and empties the queue.
func (fx *Effects) Flush(m world.Mutator, s world.Sink) {
	for _, e := range fx.queue {
		e.Apply(m, s)
	}
	fx.queue = fx.queue[:0]
}
