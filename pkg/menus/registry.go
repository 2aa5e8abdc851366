package menus

import (
	"fmt"
	"sync"
)

// ClickHandler is invoked when a bound slot is clicked.
type ClickHandler func(s *Surface, slot int)

// DragHandler is invoked when items are dragged across a surface; slots are
// the indices touched by the drag.
type DragHandler func(s *Surface, slots []int)

// CloseHandler is invoked when a surface is closed by its viewer.
type CloseHandler func(s *Surface)

type registryEntry struct {
	clicks map[int]ClickHandler
	drag   DragHandler
	close  CloseHandler
}

func (e *registryEntry) empty() bool {
	return len(e.clicks) == 0 && e.drag == nil && e.close == nil
}

// Registry maps surfaces to their bound interaction handlers. Surfaces are
// keyed by instance identity, so structurally identical surfaces keep
// independent handler sets.
//
// Entries live until Release is called for their surface. The registry has
// no way to observe a surface being discarded, so a host that opens surfaces
// must Release them when they close or the registry grows without bound.
//
// All methods are safe for concurrent use; registrations made before a
// surface is exposed to dispatch are visible to subsequent lookups.
type Registry struct {
	mu      sync.RWMutex
	entries map[*Surface]*registryEntry
}

// DefaultRegistry is the registry builders use unless one is supplied with
// Builder.WithRegistry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[*Surface]*registryEntry)}
}

// entry returns the existing entry for s, creating it when absent.
// Must be called under r.mu write lock.
func (r *Registry) entry(s *Surface) *registryEntry {
	e, ok := r.entries[s]
	if !ok {
		e = &registryEntry{clicks: make(map[int]ClickHandler)}
		r.entries[s] = e
	}
	return e
}

// SetClick binds handler to the given slots of s, or to every slot when none
// are given. Existing bindings for the touched slots are replaced. All slot
// indices are validated before any binding is made, so a failed call leaves
// the registry untouched.
func (r *Registry) SetClick(s *Surface, handler ClickHandler, slots ...int) error {
	size := s.Size()
	for _, slot := range slots {
		if slot < 0 || slot >= size {
			return fmt.Errorf("%w: slot %d, size %d", ErrSlotOutOfRange, slot, size)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.entry(s)
	if len(slots) > 0 {
		for _, slot := range slots {
			e.clicks[slot] = handler
		}
		return nil
	}
	for i := 0; i < size; i++ {
		e.clicks[i] = handler
	}
	return nil
}

// SetDrag binds the drag handler for s, replacing any previous one.
func (r *Registry) SetDrag(s *Surface, handler DragHandler) {
	r.mu.Lock()
	r.entry(s).drag = handler
	r.mu.Unlock()
}

// SetClose binds the close handler for s, replacing any previous one.
func (r *Registry) SetClose(s *Surface, handler CloseHandler) {
	r.mu.Lock()
	r.entry(s).close = handler
	r.mu.Unlock()
}

// ResolveClick returns the click handler bound to slot on s, or nil. An
// out-of-range slot resolves to nil, never an error: dispatch treats an
// empty resolution as a no-op.
func (r *Registry) ResolveClick(s *Surface, slot int) ClickHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[s]
	if !ok {
		return nil
	}
	return e.clicks[slot]
}

// ResolveDrag returns the drag handler bound to s, or nil.
func (r *Registry) ResolveDrag(s *Surface) DragHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[s]
	if !ok {
		return nil
	}
	return e.drag
}

// ResolveClose returns the close handler bound to s, or nil.
func (r *Registry) ResolveClose(s *Surface) CloseHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[s]
	if !ok {
		return nil
	}
	return e.close
}

// Release removes every handler bound to s. Idempotent; safe to call for a
// surface that was never registered.
func (r *Registry) Release(s *Surface) {
	r.mu.Lock()
	delete(r.entries, s)
	r.mu.Unlock()
}

// Registered reports whether s currently has an entry.
func (r *Registry) Registered(s *Surface) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[s]
	return ok && !e.empty()
}

// Len returns the number of surfaces with entries, for leak checks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
