// Package entity contains the core business objects of the project.
package entity

// Provider identifies an authentication provider, either the local
// password credential or a third-party OAuth identity source.
type Provider string

const (
	// ProviderLocal is the email/password credential managed by this service.
	ProviderLocal Provider = "local"
	// ProviderGoogle is Google Sign-In.
	ProviderGoogle Provider = "google"
	// ProviderGithub is GitHub OAuth.
	ProviderGithub Provider = "github"
	// ProviderFacebook is Facebook Login.
	ProviderFacebook Provider = "facebook"
)

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsOAuth reports whether the provider is a third-party OAuth source.
func (p Provider) IsOAuth() bool {
	switch p {
	case ProviderGoogle, ProviderGithub, ProviderFacebook:
		return true
	default:
		return false
	}
}

// IsValid checks if the Provider is a known value.
func (p Provider) IsValid() bool {
	return p == ProviderLocal || p.IsOAuth()
}
