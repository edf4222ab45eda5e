package pager

import (
	"context"
	"sync"
	"time"
)

// Expirable is the registry's view of a live session.
type Expirable interface {
	ID() string
	ExpireIfIdle(ctx context.Context, now time.Time) bool
}

// Registry tracks live sessions so a background job can expire the idle ones.
// Sessions also expire themselves lazily on the next callback; the registry
// exists so abandoned sessions still get their final inert render.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]Expirable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Expirable)}
}

// Add registers a session.
func (r *Registry) Add(s Expirable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

// Remove drops a session without expiring it.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// ExpireIdle expires every session whose inactivity window has elapsed and
// drops finished sessions from the registry. It returns the number of
// sessions dropped.
func (r *Registry) ExpireIdle(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	snapshot := make([]Expirable, 0, len(r.sessions))
	for _, s := range r.sessions {
		snapshot = append(snapshot, s)
	}
	r.mu.Unlock()

	dropped := 0
	for _, s := range snapshot {
		if s.ExpireIfIdle(ctx, now) {
			r.Remove(s.ID())
			dropped++
		}
	}
	return dropped
}
