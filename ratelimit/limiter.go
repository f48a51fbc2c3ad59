// Package ratelimit implements fixed-window request counting keyed by an
// arbitrary string (scope + client address). The counter store is an
// injected dependency so multiple server instances can share a backend
// instead of relying on process-local state.
package ratelimit

import (
	"sync"
	"time"
)

// Rule is one fixed window: at most MaxRequests per Window per key.
type Rule struct {
	Window      time.Duration
	MaxRequests int
}

// Result reports the outcome of one Allow call.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Window is a counter's state within the current window.
type Window struct {
	Count   int
	ResetAt time.Time
}

// CounterStore holds per-key window counters. Increment advances the
// counter for key, starting a fresh window at now+window when none is
// active, and returns the resulting state.
type CounterStore interface {
	Increment(key string, window time.Duration, now time.Time) Window
}

// Limiter applies a Rule against a CounterStore.
type Limiter struct {
	store CounterStore
	now   func() time.Time
}

// NewLimiter creates a limiter backed by the given store.
func NewLimiter(store CounterStore) *Limiter {
	return &Limiter{store: store, now: time.Now}
}

// Allow counts one request for key under the rule. The request identified
// by an exhausted window is rejected; the counter still reflects only
// admitted requests plus the first MaxRequests attempts.
func (l *Limiter) Allow(key string, rule Rule) Result {
	now := l.now()
	w := l.store.Increment(key, rule.Window, now)

	if w.Count > rule.MaxRequests {
		return Result{Allowed: false, Remaining: 0, ResetAt: w.ResetAt}
	}
	return Result{
		Allowed:   true,
		Remaining: rule.MaxRequests - w.Count,
		ResetAt:   w.ResetAt,
	}
}

// MemoryStore is the process-local CounterStore. Suitable for a single
// instance; replace with a shared backend when running more than one.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]Window
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]Window)}
}

// Increment advances the counter for key, expiring stale windows lazily.
func (s *MemoryStore) Increment(key string, window time.Duration, now time.Time) Window {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop expired windows so the map does not grow with dead keys.
	for k, w := range s.windows {
		if w.ResetAt.Before(now) {
			delete(s.windows, k)
		}
	}

	w, ok := s.windows[key]
	if !ok || w.ResetAt.Before(now) {
		w = Window{Count: 0, ResetAt: now.Add(window)}
	}
	w.Count++
	s.windows[key] = w
	return w
}
