package oauth

import (
	"context"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"authd/config"
	"authd/internal/domain/entity"
	"authd/internal/domain/service"
	"authd/internal/errors"
)

const facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name,email,picture"

// facebookUserInfo mirrors the fields we read from the Graph API.
type facebookUserInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// FacebookVerifier exchanges Facebook authorization codes for verified identities.
type FacebookVerifier struct {
	oauth2Config *oauth2.Config
	logger       *slog.Logger
}

// NewFacebookVerifier creates a Facebook OAuthVerifier from configuration.
func NewFacebookVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	provider := &config.OAuthProviderConfig{}
	if cfg.OAuth != nil && cfg.OAuth.Facebook != nil {
		provider = cfg.OAuth.Facebook
	}

	return &FacebookVerifier{
		oauth2Config: &oauth2.Config{
			ClientID:     provider.ClientID,
			ClientSecret: provider.ClientSecret,
			RedirectURL:  provider.RedirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		logger: logger,
	}
}

// Provider returns the provider this verifier serves.
func (v *FacebookVerifier) Provider() entity.Provider {
	return entity.ProviderFacebook
}

// Exchange trades the authorization code for Facebook's asserted identity.
// Facebook only returns email for accounts that granted the email permission,
// so Email may be empty and the caller must handle identity-only resolution.
func (v *FacebookVerifier) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := v.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange facebook authorization code")
	}

	info := new(facebookUserInfo)
	if err := fetchJSON(ctx, v.oauth2Config.Client(ctx, token), facebookUserInfoURL, info); err != nil {
		return nil, errors.Wrap(err, "fetch facebook userinfo")
	}

	if info.ID == "" {
		return nil, errors.New("facebook userinfo missing id")
	}

	v.logger.Debug("facebook identity verified",
		slog.String("providerUserID", info.ID),
		slog.String("email", info.Email))

	return &service.OAuthUser{
		ID:            info.ID,
		Email:         info.Email,
		Name:          info.Name,
		Provider:      entity.ProviderFacebook,
		AvatarURL:     info.Picture.Data.URL,
		EmailVerified: info.Email != "", // Facebook only exposes confirmed addresses.
	}, nil
}
