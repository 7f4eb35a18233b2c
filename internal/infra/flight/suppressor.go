// Package flight implements in-process duplicate-call suppression.
package flight

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"authd/internal/domain/service"
)

// suppressor combines singleflight collapsing for concurrent identical calls
// with a cooldown map for rate-limited side effects like resend emails.
type suppressor struct {
	group singleflight.Group

	mu        sync.Mutex
	cooldowns map[string]time.Time // key -> moment the cooldown window ends

	now func() time.Time // injectable clock for tests
}

// NewSuppressor creates a process-local CallSuppressor.
func NewSuppressor() service.CallSuppressor {
	return &suppressor{
		cooldowns: make(map[string]time.Time),
		now:       time.Now,
	}
}

// Do runs fn once per key among concurrent callers. The key is forgotten as
// soon as fn returns so sequential calls each execute fn again.
func (s *suppressor) Do(key string, fn func() (any, error)) (any, error) {
	result, err, _ := s.group.Do(key, fn)
	s.group.Forget(key)

	return result, err
}

// Allow reports whether the keyed side effect may fire now. The first call
// for a key starts the cooldown window; calls within the window report false.
func (s *suppressor) Allow(key string, cooldown time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if until, ok := s.cooldowns[key]; ok && now.Before(until) {
		return false
	}

	s.cooldowns[key] = now.Add(cooldown)

	return true
}

// Sweep drops expired cooldown entries and returns how many were removed.
func (s *suppressor) Sweep(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, until := range s.cooldowns {
		if !now.Before(until) {
			delete(s.cooldowns, key)
			removed++
		}
	}

	return removed
}
