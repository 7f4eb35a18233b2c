package service

import (
	"context"
	"time"
)

// CallSuppressor collapses concurrent identical operations into one in-flight
// execution and rate-limits repeatable side effects with a cooldown window.
//
// Suppression is best-effort and process-local: it absorbs double-submits
// within one instance, while store-level uniqueness checks remain the actual
// safety net across instances.
type CallSuppressor interface {
	// Do runs fn once per key among concurrent callers; every caller sharing
	// the key receives the same result. The key is released as soon as fn
	// returns, success or failure.
	Do(key string, fn func() (any, error)) (any, error)

	// Allow reports whether the keyed side effect may fire now, and if so
	// starts its cooldown window. Within the window, subsequent calls report
	// false.
	Allow(key string, cooldown time.Duration) bool

	// Sweep drops expired cooldown entries; called by the maintenance worker
	// to keep the map bounded.
	Sweep(ctx context.Context) int
}
