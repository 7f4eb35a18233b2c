package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Auth lifecycle event types published to interested downstream consumers.
const (
	EventAccountRegistered = "account.registered"
	EventAccountVerified   = "account.verified"
	EventAccountDeleted    = "account.deleted"
	EventPasswordChanged   = "password.changed"
)

// AuthEvent describes one account-lifecycle transition.
type AuthEvent struct {
	Type       string    `json:"type"`
	AccountID  uuid.UUID `json:"account_id"`
	Email      string    `json:"email"`
	Provider   string    `json:"provider,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes auth lifecycle events. Like the Notifier, it is
// fire-and-forget: publish failures are logged and never propagated to the
// operation that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event *AuthEvent) error

	// Close releases the underlying transport.
	Close() error
}
