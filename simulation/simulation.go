package simulation

import (
	"encoding/binary"
	"math"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/treefall/animation"
	"github.com/oomph-ac/treefall/entity"
	"github.com/oomph-ac/treefall/oerror"
	"github.com/oomph-ac/treefall/settings"
	"github.com/oomph-ac/treefall/world"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"
)

// Simulation steps all falling trees of a world. Fell, Tick and Run must be called from a single
// goroutine. Snapshot and Render may be called from any goroutine.
type Simulation struct {
	World    *world.World
	Registry *animation.Registry
	Settings settings.Settings
	Log      *logrus.Logger

	bodies *orderedmap.OrderedMap[uint64, *body]

	publishedMu deadlock.RWMutex
	published   map[uint64]*atomic.Pointer[Snapshot]
}

type body struct {
	tree    *entity.FallingTree
	handler animation.Handler
	digest  *xxh3.Hasher
	// buf is reused to encode the state written to digest.
	buf []byte
}

// New returns a Simulation over the world passed, with a physics handler and an instant handler
// registered.
func New(w *world.World, s settings.Settings, log *logrus.Logger) *Simulation {
	return NewWithRegistry(w, animation.NewRegistry(
		animation.NewPhysics(w, s.Simulation.WorldSeed, s.Physics, log),
		animation.Instant{},
	), s, log)
}

// NewWithRegistry returns a Simulation that dispatches falling trees to the handlers of the registry
// passed.
func NewWithRegistry(w *world.World, r *animation.Registry, s settings.Settings, log *logrus.Logger) *Simulation {
	return &Simulation{
		World:     w,
		Registry:  r,
		Settings:  s,
		Log:       log,
		bodies:    orderedmap.NewOrderedMap[uint64, *body](),
		published: make(map[uint64]*atomic.Pointer[Snapshot]),
	}
}

// Fell starts simulating the falling tree passed and returns the ID assigned to it. An error is returned
// if no handler is registered for the kind of the tree.
func (s *Simulation) Fell(t *entity.FallingTree) (uint64, error) {
	h, err := s.Registry.Handler(t.Kind)
	if err != nil {
		return 0, oerror.New("unable to fell tree at %v: %v", t.Destroy.CutPos, err)
	}
	t.ID = entity.NextID()

	fx := &animation.Effects{}
	h.InitMotion(t, fx)
	fx.Flush(s.World, s.World)

	b := &body{tree: t, handler: h, digest: xxh3.New()}
	b.record()
	s.bodies.Set(t.ID, b)

	ptr := atomic.NewPointer[Snapshot](nil)
	s.publishedMu.Lock()
	s.published[t.ID] = ptr
	s.publishedMu.Unlock()
	ptr.Store(b.snapshot())

	s.Log.WithFields(logrus.Fields{"id": t.ID, "kind": t.Kind, "cut": t.Destroy.CutPos}).Info("tree felled")
	return t.ID, nil
}

// Tick steps every falling tree by a single tick, in the order they were felled, and returns the result
// for each of them. Trees that die during the tick drop their payload and are removed.
func (s *Simulation) Tick() []Result {
	results := make([]Result, 0, s.bodies.Len())
	for el := s.bodies.Front(); el != nil; {
		b := el.Value
		el = el.Next()
		results = append(results, s.step(b))
	}
	return results
}

func (s *Simulation) step(b *body) Result {
	t, h := b.tree, b.handler
	fx := &animation.Effects{}

	t.Tick()
	h.HandleMotion(t, fx)
	fx.Flush(s.World, s.World)
	b.record()

	res := Result{ID: t.ID, Outcome: OutcomeFalling, Position: t.Pos, Age: t.Age, Digest: b.digest.Sum64()}
	if !h.ShouldDie(t, fx) {
		fx.Flush(s.World, s.World)
		s.publish(b)
		return res
	}
	h.DropPayload(t, fx)
	fx.Flush(s.World, s.World)

	switch {
	case t.Landed:
		res.Outcome = OutcomeLanded
	case t.Age > s.Settings.Physics.MaxAge:
		res.Outcome = OutcomeTimedOut
	default:
		res.Outcome = OutcomeRemoved
	}
	s.remove(t.ID)

	s.Log.WithFields(logrus.Fields{"id": t.ID, "outcome": res.Outcome, "pos": t.Pos, "age": t.Age}).Info("falling tree removed")
	return res
}

// Run ticks the simulation until no falling trees remain or maxTicks ticks passed. It returns the amount
// of ticks that passed and the results of all trees that were removed, in the order they were removed.
func (s *Simulation) Run(maxTicks int) (int, []Result) {
	var removed []Result
	ticks := 0
	for ; ticks < maxTicks && s.bodies.Len() > 0; ticks++ {
		for _, res := range s.Tick() {
			if res.Outcome.Dead() {
				removed = append(removed, res)
			}
		}
	}
	return ticks, removed
}

// Len returns the amount of trees that are currently falling.
func (s *Simulation) Len() int {
	return s.bodies.Len()
}

// Snapshot returns the last published snapshot of the falling tree with the ID passed.
func (s *Simulation) Snapshot(id uint64) (*Snapshot, bool) {
	s.publishedMu.RLock()
	ptr, ok := s.published[id]
	s.publishedMu.RUnlock()
	if !ok {
		return nil, false
	}
	return ptr.Load(), true
}

// Render returns the render transform of the falling tree with the ID passed, fraction of a tick after its
// last snapshot. False is returned if the tree does not exist or is not rendered.
func (s *Simulation) Render(id uint64, fraction float32) (animation.Transform, bool) {
	snap, ok := s.Snapshot(id)
	if !ok {
		return animation.Transform{}, false
	}
	h, err := s.Registry.Handler(snap.Kind)
	if err != nil || !h.ShouldRender(snap.View) {
		return animation.Transform{}, false
	}
	return h.RenderTransform(snap.View, fraction), true
}

// Digest returns the trajectory digest of the falling tree with the ID passed. Two trees felled with the
// same world seed, cut position and world have equal digests after every tick.
func (s *Simulation) Digest(id uint64) (uint64, bool) {
	snap, ok := s.Snapshot(id)
	if !ok {
		return 0, false
	}
	return snap.Digest, true
}

func (s *Simulation) publish(b *body) {
	s.publishedMu.RLock()
	ptr, ok := s.published[b.tree.ID]
	s.publishedMu.RUnlock()
	if ok {
		ptr.Store(b.snapshot())
	}
}

func (s *Simulation) remove(id uint64) {
	s.bodies.Delete(id)

	s.publishedMu.Lock()
	delete(s.published, id)
	s.publishedMu.Unlock()
}

// record writes the position and rotation of the tree to the digest of the body.
func (b *body) record() {
	t := b.tree
	b.buf = b.buf[:0]
	for _, f := range [...]float64{t.Pos[0], t.Pos[1], t.Pos[2], t.Rotation[0], t.Rotation[1]} {
		b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(f))
	}
	_, _ = b.digest.Write(b.buf)
}

func (b *body) snapshot() *Snapshot {
	t := b.tree
	return &Snapshot{
		ID:     t.ID,
		Kind:   t.Kind,
		Age:    t.Age,
		Landed: t.Landed,
		OnFire: t.OnFire,
		View:   animation.ViewOf(t),
		Digest: b.digest.Sum64(),
	}
}
