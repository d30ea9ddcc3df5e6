package service

import (
	"log"
	"sync"
)

// Subscription is the handle returned by AddListener.
type Subscription struct {
	id       uint64
	registry *listenerRegistry
	once     sync.Once
}

// Remove deregisters the listener. Calling it more than once is a no-op.
func (s *Subscription) Remove() {
	s.once.Do(func() {
		s.registry.remove(s.id)
	})
}

type listenerEntry struct {
	id uint64
	fn func()
}

// listenerRegistry keeps listeners in registration order. The same function may be
// registered several times and is then called once per registration.
type listenerRegistry struct {
	mu      sync.Mutex
	nextID  uint64
	entries []listenerEntry
}

func (r *listenerRegistry) add(fn func()) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.entries = append(r.entries, listenerEntry{id: r.nextID, fn: fn})
	return &Subscription{id: r.nextID, registry: r}
}

func (r *listenerRegistry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *listenerRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// notify calls every listener registered at the time of the call. A listener that
// panics is logged and skipped; the rest still run.
func (r *listenerRegistry) notify() {
	r.mu.Lock()
	entries := make([]listenerEntry, len(r.entries))
	copy(entries, r.entries)
	r.mu.Unlock()

	for _, e := range entries {
		if e.fn == nil {
			continue
		}
		invokeListener(e)
	}
}

func invokeListener(e listenerEntry) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("ERROR: store listener %d panicked: %v", e.id, rec)
		}
	}()
	e.fn()
}
