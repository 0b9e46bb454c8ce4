package results

import (
	"sync"
	"time"
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Registry maps session ids to their stores. Sessions idle for longer than
// the TTL are dropped by Sweep.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	maxRows  int
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry creates a registry whose stores apply maxRows per file. A ttl
// of zero or less keeps sessions until Reset.
func NewRegistry(maxRows int, ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		maxRows:  maxRows,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the store for id, creating an empty one on first use.
func (r *Registry) Get(id string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = &session{store: NewStore(r.maxRows)}
		r.sessions[id] = s
	}
	s.lastSeen = r.now()
	return s.store
}

// Lookup returns the store for id without creating one.
func (r *Registry) Lookup(id string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = r.now()
	return s.store, true
}

// Reset clears the store for id if one exists.
func (r *Registry) Reset(id string) {
	if s, ok := r.Lookup(id); ok {
		s.Reset()
	}
}

// Sweep drops every session idle for longer than the TTL and returns how
// many were dropped.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	dropped := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
