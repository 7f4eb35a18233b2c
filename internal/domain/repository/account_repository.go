// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authd/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never on the concrete store.
//
// Lookups by email expect an already-normalized address (entity.NormalizeEmail);
// the orchestrator normalizes at its boundary so uniqueness is case-insensitive.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByVerificationToken retrieves the account holding the given pending
	// email-verification link token. Used to detect superseded tokens: a
	// signature-valid token whose backing record was replaced will not match.
	FindByVerificationToken(ctx context.Context, token string) (*entity.Account, error)

	// FindByEmailAndCode retrieves the account whose pending one-time code
	// matches and is unexpired. Expired or mismatched codes both yield
	// ErrAccountNotFound so callers cannot distinguish the two.
	FindByEmailAndCode(ctx context.Context, email, code string) (*entity.Account, error)

	// FindByResetToken retrieves the account holding the given pending
	// password-reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.Account, error)

	// FindByOAuthLink retrieves the account linked to the given provider
	// identity, the first step of OAuth resolution.
	FindByOAuthLink(ctx context.Context, provider entity.Provider, providerUserID string) (*entity.Account, error)

	// Create persists a new account. A unique-email violation surfaces as a
	// domain conflict error, which is the store-level safety net against
	// concurrent duplicate registrations.
	Create(ctx context.Context, account *entity.Account) error

	// Save performs a full-document update of an existing account, including
	// its OAuth links and pending verification/reset fields. Field clearing
	// and flag flips committed through one Save are atomic per record.
	Save(ctx context.Context, account *entity.Account) error

	// Delete hard-deletes the account by ID. Returns ErrAccountNotFound if no
	// row was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
