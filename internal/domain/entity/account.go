// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is the canonical identity record. Exactly one account exists per
// normalized email address, regardless of how many login methods it carries.
type Account struct {
	ID              uuid.UUID  // The unique identifier for the account.
	Email           string     // Normalized (lowercased, trimmed) login email; unique across all accounts.
	PasswordHash    string     // Bcrypt hash of the password; empty for accounts created purely via OAuth.
	FirstName       string     // The account holder's given name.
	LastName        string     // The account holder's family name.
	Role            Role       // Authorization role, either "user" or "admin".
	IsActive        bool       // Soft switch: inactive accounts cannot authenticate.
	EmailVerified   bool       // Whether the email address has been proven via OTP or magic link.
	ProfileImage    string     // Optional URL of the profile picture.
	PrimaryProvider Provider   // The provider that created the account (local, google, github, facebook).
	OAuthLinks      []OAuthLink // Linked third-party identities, at most one per provider.

	// Pending email-verification state. A newly issued code/token always
	// supersedes the previous one; at most one unexpired pair exists.
	VerificationCode           string
	VerificationCodeExpiresAt  *time.Time
	VerificationToken          string
	VerificationTokenExpiresAt *time.Time

	// Pending password-reset state, same supersede semantics.
	ResetToken          string
	ResetTokenExpiresAt *time.Time

	LastLoginAt *time.Time // Timestamp of the most recent successful login.
	CreatedAt   time.Time  // Timestamp of account creation.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}

// OAuthLink associates an account with a third-party provider identity.
// The (Provider, ProviderUserID) pair is unique across all accounts.
type OAuthLink struct {
	Provider       Provider  // The OAuth provider this link belongs to.
	ProviderUserID string    // The provider-assigned user identifier (e.g. Google's 'sub' claim).
	Email          string    // Email asserted by the provider at link time.
	Name           string    // Display name snapshot from the provider.
	AvatarURL      string    // Avatar snapshot from the provider.
	LinkedAt       time.Time // When the link was established.
}

// NormalizeEmail canonicalizes an email for storage and lookup.
// Email uniqueness is case-insensitive, so every path through the system
// must normalize before touching the store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FullName returns the display name composed from the name pair.
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// HasPassword reports whether the account carries a local password credential.
// Pure-OAuth accounts have none and must not pass password checks.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}

// LinkFor returns the OAuth link for the given provider, or nil.
func (a *Account) LinkFor(provider Provider) *OAuthLink {
	for i := range a.OAuthLinks {
		if a.OAuthLinks[i].Provider == provider {
			return &a.OAuthLinks[i]
		}
	}

	return nil
}

// ClearVerification drops any pending verification code and link token.
// Callers must persist the account in the same store update that flips
// EmailVerified, so a code can never be consumed twice.
func (a *Account) ClearVerification() {
	a.VerificationCode = ""
	a.VerificationCodeExpiresAt = nil
	a.VerificationToken = ""
	a.VerificationTokenExpiresAt = nil
}

// ClearReset drops any pending password-reset token.
func (a *Account) ClearReset() {
	a.ResetToken = ""
	a.ResetTokenExpiresAt = nil
}

// VerificationCodeValid reports whether the given OTP matches the pending
// code and the code has not expired at the given instant.
func (a *Account) VerificationCodeValid(code string, now time.Time) bool {
	if a.VerificationCode == "" || a.VerificationCode != code {
		return false
	}

	return a.VerificationCodeExpiresAt != nil && now.Before(*a.VerificationCodeExpiresAt)
}

// ResetTokenValid reports whether the stored reset token matches and is unexpired.
func (a *Account) ResetTokenValid(token string, now time.Time) bool {
	if a.ResetToken == "" || a.ResetToken != token {
		return false
	}

	return a.ResetTokenExpiresAt != nil && now.Before(*a.ResetTokenExpiresAt)
}
