// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"authd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no usable session matches a lookup.
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository manages persisted refresh-token records. It supports
// multi-device login, refresh rotation, and remote logout.
type SessionRepository interface {
	// Create persists a new session for a freshly issued refresh token.
	Create(ctx context.Context, session *entity.Session) error

	// FindValidByHash retrieves the session for the given token hash only if
	// it is currently usable (not revoked and not expired). A revoked or
	// expired record yields ErrSessionNotFound, indistinguishable from a
	// missing one.
	FindValidByHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindByAccountID retrieves all currently valid sessions for an account,
	// newest first.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)

	// Revoke marks the single session with the given token hash inactive.
	// Missing sessions yield ErrSessionNotFound; callers treating logout as
	// idempotent ignore it.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllForAccount marks every active session of the account inactive.
	// Used after password changes and before account deletion.
	RevokeAllForAccount(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpiredOrRevoked physically removes dead session rows and returns
	// the number purged. Called by the periodic maintenance sweep.
	DeleteExpiredOrRevoked(ctx context.Context) (int64, error)
}
