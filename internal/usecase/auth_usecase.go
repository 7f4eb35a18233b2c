// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authd/internal/domain/entity"
	"authd/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new local account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthLoginInput carries a provider callback to resolve into an account.
type OAuthLoginInput struct {
	Provider entity.Provider
	Code     string
}

// VerifyEmailOTPInput identifies a pending verification by email and one-time code.
type VerifyEmailOTPInput struct {
	Email string
	Code  string
}

// ChangePasswordInput defines an authenticated password change.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ResetPasswordInput completes a forgot-password flow with the emailed token.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the account and, when the operation establishes a
// session, a freshly issued token pair.
type AuthOutput struct {
	Account *entity.Account
	Tokens  *service.TokenPair
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a local account, issues a first session, and sends the
	// verification email with both the one-time code and the link.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login authenticates by email and password. Inactive accounts and
	// password-less (pure OAuth) accounts fail with the same credentials
	// error as a wrong password.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Refresh rotates a refresh token: the presented token's session is
	// revoked and a new pair is issued. Reuse of an already-rotated token
	// fails and is logged as suspected replay.
	Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error)

	// Logout revokes the session behind the presented refresh token.
	// Idempotent: revoking an unknown or already-revoked token succeeds.
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAll revokes every active session of the account.
	LogoutAll(ctx context.Context, accountID uuid.UUID) error

	// VerifyEmail consumes a verification link token. Already-verified
	// accounts report a conflict; a session is issued on first success.
	VerifyEmail(ctx context.Context, token string) (*AuthOutput, error)

	// VerifyEmailOTP consumes a one-time verification code.
	VerifyEmailOTP(ctx context.Context, input VerifyEmailOTPInput) (*AuthOutput, error)

	// ResendVerification issues a new code and link, superseding any pending
	// pair. Always succeeds from the caller's view to avoid account probing.
	ResendVerification(ctx context.Context, email string) error

	// ChangePassword verifies the current password, stores the new hash, and
	// revokes all sessions.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	// ForgotPassword issues a reset token and emails it. Always succeeds from
	// the caller's view regardless of whether the account exists.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token, stores the new hash, and revokes
	// all sessions.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// OAuthLogin resolves a provider callback into an account: an existing
	// link logs in, a matching email links the identity, and otherwise a new
	// pre-verified account is created.
	OAuthLogin(ctx context.Context, input OAuthLoginInput) (*AuthOutput, error)

	// DeleteAccount verifies the password where one exists, revokes all
	// sessions, and removes the account.
	DeleteAccount(ctx context.Context, accountID uuid.UUID, password string) error
}
