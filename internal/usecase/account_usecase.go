package usecase

import (
	"context"

	"authd/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the mutable profile fields. Nil pointers leave
// the corresponding field unchanged.
type UpdateProfileInput struct {
	AccountID    uuid.UUID
	FirstName    *string
	LastName     *string
	ProfileImage *string
}

// AccountUsecase defines the interface for account profile operations.
type AccountUsecase interface {
	// GetProfile retrieves the account for display.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// UpdateProfile applies the provided field changes and returns the
	// updated account.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.Account, error)

	// ListSessions returns the account's currently valid sessions, newest first.
	ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)
}
