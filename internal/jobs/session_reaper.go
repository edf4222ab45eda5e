package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/forgo/muster/internal/pager"
)

// SessionReaper periodically expires idle pagination sessions so abandoned
// menus still get their final render with every control inert.
type SessionReaper struct {
	registry *pager.Registry
	interval time.Duration
	log      *slog.Logger
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewSessionReaper creates a new session reaper job.
func NewSessionReaper(registry *pager.Registry, interval time.Duration, log *slog.Logger) *SessionReaper {
	if interval == 0 {
		interval = 30 * time.Second
	}
	return &SessionReaper{
		registry: registry,
		interval: interval,
		log:      log,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the session reaper job.
func (r *SessionReaper) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run()
	r.log.Info("session reaper started", slog.Duration("interval", r.interval))
}

// Stop gracefully stops the session reaper job.
func (r *SessionReaper) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	r.wg.Wait()
	r.log.Info("session reaper stopped")
}

// run is the main loop
func (r *SessionReaper) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.reap()
		case <-r.stopCh:
			return
		}
	}
}

func (r *SessionReaper) reap() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if dropped := r.registry.ExpireIdle(ctx, time.Now()); dropped > 0 {
		r.log.Info("expired idle sessions", slog.Int("count", dropped))
	}
}
