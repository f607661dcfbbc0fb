package animation

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/treefall/assert"
	"github.com/oomph-ac/treefall/entity"
	"github.com/oomph-ac/treefall/oerror"
)

// Registry holds the handler of every animation kind, in the order they were registered.
type Registry struct {
	handlers *orderedmap.OrderedMap[entity.AnimationKind, Handler]
}

// NewRegistry returns a registry holding the handlers passed.
func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{handlers: orderedmap.NewOrderedMap[entity.AnimationKind, Handler]()}
	for _, h := range handlers {
		r.Register(h)
	}
	return r
}

// Register registers a handler. Registering two handlers of the same kind panics.
func (r *Registry) Register(h Handler) {
	_, exists := r.handlers.Get(h.Kind())
	assert.IsTrue(!exists, "animation handler %v registered twice", h.Kind())
	r.handlers.Set(h.Kind(), h)
}

// Handler returns the handler of the kind passed.
func (r *Registry) Handler(kind entity.AnimationKind) (Handler, error) {
	h, ok := r.handlers.Get(kind)
	if !ok {
		return nil, oerror.New("no animation handler registered for %v", kind)
	}
	return h, nil
}

// Kinds returns the kinds of all registered handlers, in registration order.
func (r *Registry) Kinds() []entity.AnimationKind {
	return r.handlers.Keys()
}
