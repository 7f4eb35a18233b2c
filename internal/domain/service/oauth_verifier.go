package service

import (
	"context"

	"authd/internal/domain/entity"
)

// OAuthUser represents the identity a provider asserted during a callback.
type OAuthUser struct {
	ID            string          // Provider-specific user ID (e.g. Google's 'sub' claim).
	Email         string          // Email address asserted by the provider.
	Name          string          // Display name from the provider.
	Provider      entity.Provider // Which provider asserted this identity.
	AvatarURL     string          // URL of the provider-hosted avatar, if any.
	EmailVerified bool            // Whether the provider claims the email is verified.
}

// OAuthVerifier exchanges a provider callback code for a verified identity.
// One implementation exists per provider; the orchestrator selects by
// Provider() tag and never touches provider endpoints itself.
type OAuthVerifier interface {
	// Exchange trades the authorization code for the provider's user identity.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)

	// Provider returns the provider this verifier serves.
	Provider() entity.Provider
}
