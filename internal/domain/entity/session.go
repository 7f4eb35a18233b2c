// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one issued refresh token, i.e. one authorized device.
// A new access token can be minted from it until it expires or is revoked.
type Session struct {
	ID        uuid.UUID  // The unique ID for this session record.
	AccountID uuid.UUID  // The account this session belongs to.
	TokenHash string     // SHA-256 hash of the raw refresh token; the raw token is never stored.
	ExpiresAt time.Time  // Absolute expiry; past this instant the session is dead regardless of flags.
	Revoked   bool       // Set on logout, rotation, password change, and account deletion.
	RevokedAt *time.Time // When the session was revoked, if it was.
	CreatedAt time.Time  // When the session was issued.
}

// Valid reports whether the session can still mint tokens at the given instant.
// Revocation is checked before expiry so a rotated-then-replayed token is
// reported as revoked, not merely expired.
func (s *Session) Valid(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
