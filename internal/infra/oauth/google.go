// Package oauth implements provider-specific OAuthVerifier adapters.
// Each adapter exchanges a callback authorization code for the provider's
// asserted identity; account resolution stays in the use case layer.
package oauth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"authd/config"
	"authd/internal/domain/entity"
	"authd/internal/domain/service"
	"authd/internal/errors"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// googleUserInfo mirrors the fields we read from Google's userinfo endpoint.
type googleUserInfo struct {
	Sub           string `json:"sub"`            // Subject (user ID)
	Email         string `json:"email"`          // User's email
	EmailVerified bool   `json:"email_verified"` // Email verification status
	Name          string `json:"name"`           // User's full name
	Picture       string `json:"picture"`        // User's profile picture
}

// GoogleVerifier exchanges Google authorization codes for verified identities.
type GoogleVerifier struct {
	oauth2Config *oauth2.Config
	logger       *slog.Logger
}

// NewGoogleVerifier creates a Google OAuthVerifier from configuration.
func NewGoogleVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	provider := &config.OAuthProviderConfig{}
	if cfg.OAuth != nil && cfg.OAuth.Google != nil {
		provider = cfg.OAuth.Google
	}

	return &GoogleVerifier{
		oauth2Config: &oauth2.Config{
			ClientID:     provider.ClientID,
			ClientSecret: provider.ClientSecret,
			RedirectURL:  provider.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

// Provider returns the provider this verifier serves.
func (v *GoogleVerifier) Provider() entity.Provider {
	return entity.ProviderGoogle
}

// Exchange trades the authorization code for Google's asserted identity.
func (v *GoogleVerifier) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := v.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange google authorization code")
	}

	info := new(googleUserInfo)
	if err := fetchJSON(ctx, v.oauth2Config.Client(ctx, token), googleUserInfoURL, info); err != nil {
		return nil, errors.Wrap(err, "fetch google userinfo")
	}

	if info.Sub == "" {
		return nil, errors.New("google userinfo missing subject")
	}

	v.logger.Debug("google identity verified",
		slog.String("providerUserID", info.Sub),
		slog.String("email", info.Email))

	return &service.OAuthUser{
		ID:            info.Sub,
		Email:         info.Email,
		Name:          info.Name,
		Provider:      entity.ProviderGoogle,
		AvatarURL:     info.Picture,
		EmailVerified: info.EmailVerified,
	}, nil
}

// fetchJSON performs a GET against an OAuth-authorized endpoint and decodes
// the JSON body into out. Shared by all provider adapters in this package.
func fetchJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build userinfo request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call userinfo endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode userinfo response")
	}

	return nil
}
