package textmeasure

import "sync"

// Handle identifies a Paint owned by a Registry. The zero handle is
// never issued.
type Handle uint64

// Registry hands out opaque handles to Paint instances, for callers
// that route paints across an API boundary by id rather than by
// pointer. Handles are never reused within a Registry's lifetime.
//
// All methods are safe for concurrent use, though the Paints returned
// by Get follow the usual rule: do not mutate one while another
// goroutine measures with it.
type Registry struct {
	mu     sync.RWMutex
	next   Handle
	paints map[Handle]*Paint
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{paints: make(map[Handle]*Paint)}
}

// Create registers a new default Paint and returns its handle.
func (r *Registry) Create() Handle {
	return r.Register(NewPaint())
}

// Register adds an existing Paint and returns its handle.
func (r *Registry) Register(p *Paint) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.paints[r.next] = p
	return r.next
}

// Get returns the Paint for h, or nil if the handle is unknown or
// already destroyed.
func (r *Registry) Get(h Handle) *Paint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.paints[h]
}

// Destroy releases the Paint for h. Destroying an unknown handle is a
// no-op.
func (r *Registry) Destroy(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.paints, h)
}

// Len returns the number of live paints.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.paints)
}
