package service

import (
	"time"

	"authd/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Audience restricts a token's valid use to one operation category.
// A token verified under one audience must never be accepted for another.
type Audience string

const (
	// AudienceAccess marks short-lived API access tokens.
	AudienceAccess Audience = "access"
	// AudienceRefresh marks long-lived refresh tokens backed by a session record.
	AudienceRefresh Audience = "refresh"
	// AudienceVerifyEmail marks email-verification link tokens.
	AudienceVerifyEmail Audience = "verify-email"
	// AudienceResetPassword marks password-reset link tokens.
	AudienceResetPassword Audience = "reset-password"
)

// Claims defines the custom claims carried by every token.
type Claims struct {
	AccountID uuid.UUID   `json:"aid"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenPair bundles a freshly issued access+refresh pair together with the
// absolute expiry of each, so callers never compute expiries themselves.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying signed,
// time-bound bearer tokens. This abstracts the JWT details from the use cases.
type TokenService interface {
	// GenerateTokens creates a paired access and refresh token for the account.
	GenerateTokens(account *entity.Account) (*TokenPair, error)

	// GenerateToken creates a single token under the given audience and TTL.
	// Used for email-verification and password-reset tokens.
	GenerateToken(account *entity.Account, audience Audience, ttl time.Duration) (string, error)

	// VerifyToken checks signature, expiry, issuer, and audience of a token.
	// Failures map to the domain taxonomy: ErrTokenExpired for expired tokens,
	// ErrInvalidToken for everything else (bad signature, wrong audience,
	// malformed claims), so callers can differentiate messaging safely.
	VerifyToken(tokenString string, audience Audience) (*Claims, error)

	// HashToken returns the hex-encoded SHA-256 digest used to store and look
	// up refresh tokens without persisting the raw value.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
