package oauth

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"authd/config"
	"authd/internal/domain/entity"
	"authd/internal/domain/service"
	"authd/internal/errors"
)

const (
	githubUserURL   = "https://api.github.com/user"
	githubEmailsURL = "https://api.github.com/user/emails"
)

// githubUser mirrors the fields we read from GitHub's user endpoint.
type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// githubEmail mirrors one entry of GitHub's user/emails endpoint.
type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// GithubVerifier exchanges GitHub authorization codes for verified identities.
type GithubVerifier struct {
	oauth2Config *oauth2.Config
	logger       *slog.Logger
}

// NewGithubVerifier creates a GitHub OAuthVerifier from configuration.
func NewGithubVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	provider := &config.OAuthProviderConfig{}
	if cfg.OAuth != nil && cfg.OAuth.Github != nil {
		provider = cfg.OAuth.Github
	}

	return &GithubVerifier{
		oauth2Config: &oauth2.Config{
			ClientID:     provider.ClientID,
			ClientSecret: provider.ClientSecret,
			RedirectURL:  provider.RedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		logger: logger,
	}
}

// Provider returns the provider this verifier serves.
func (v *GithubVerifier) Provider() entity.Provider {
	return entity.ProviderGithub
}

// Exchange trades the authorization code for GitHub's asserted identity.
// GitHub may hide the email on the user endpoint, so the emails endpoint is
// consulted for the primary verified address when needed.
func (v *GithubVerifier) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := v.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange github authorization code")
	}

	client := v.oauth2Config.Client(ctx, token)

	user := new(githubUser)
	if err := fetchJSON(ctx, client, githubUserURL, user); err != nil {
		return nil, errors.Wrap(err, "fetch github user")
	}

	if user.ID == 0 {
		return nil, errors.New("github user missing id")
	}

	email := user.Email
	emailVerified := email != ""
	if email == "" {
		var emails []githubEmail
		if err := fetchJSON(ctx, client, githubEmailsURL, &emails); err != nil {
			return nil, errors.Wrap(err, "fetch github emails")
		}

		for _, candidate := range emails {
			if candidate.Primary && candidate.Verified {
				email = candidate.Email
				emailVerified = true

				break
			}
		}
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	v.logger.Debug("github identity verified",
		slog.Int64("providerUserID", user.ID),
		slog.String("email", email))

	return &service.OAuthUser{
		ID:            strconv.FormatInt(user.ID, 10),
		Email:         email,
		Name:          name,
		Provider:      entity.ProviderGithub,
		AvatarURL:     user.AvatarURL,
		EmailVerified: emailVerified,
	}, nil
}
