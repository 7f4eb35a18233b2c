package handler

import (
	"time"

	"authd/internal/domain/entity"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/google/uuid"
)

// accountView is the outward shape of an account. Credential hashes and
// pending verification state never leave the service.
type accountView struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name,omitempty"`
	LastName        string     `json:"last_name,omitempty"`
	Role            string     `json:"role"`
	EmailVerified   bool       `json:"email_verified"`
	ProfileImage    string     `json:"profile_image,omitempty"`
	PrimaryProvider string     `json:"primary_provider"`
	Providers       []string   `json:"providers,omitempty"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// tokenView is the outward shape of an issued token pair.
type tokenView struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	TokenType        string    `json:"token_type"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// authView pairs an account with its issued tokens.
type authView struct {
	Account *accountView `json:"account"`
	Tokens  *tokenView   `json:"tokens,omitempty"`
}

// sessionView is the outward shape of one logged-in device.
type sessionView struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newAccountView(account *entity.Account) *accountView {
	if account == nil {
		return nil
	}

	providers := make([]string, 0, len(account.OAuthLinks))
	for _, link := range account.OAuthLinks {
		providers = append(providers, link.Provider.String())
	}

	return &accountView{
		ID:              account.ID,
		Email:           account.Email,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		Role:            account.Role.String(),
		EmailVerified:   account.EmailVerified,
		ProfileImage:    account.ProfileImage,
		PrimaryProvider: account.PrimaryProvider.String(),
		Providers:       providers,
		LastLoginAt:     account.LastLoginAt,
		CreatedAt:       account.CreatedAt,
	}
}

func newTokenView(tokens *service.TokenPair) *tokenView {
	if tokens == nil {
		return nil
	}

	return &tokenView{
		AccessToken:      tokens.AccessToken,
		RefreshToken:     tokens.RefreshToken,
		TokenType:        "Bearer",
		AccessExpiresAt:  tokens.AccessExpiresAt,
		RefreshExpiresAt: tokens.RefreshExpiresAt,
	}
}

func newAuthView(output *usecase.AuthOutput) *authView {
	if output == nil {
		return nil
	}

	return &authView{
		Account: newAccountView(output.Account),
		Tokens:  newTokenView(output.Tokens),
	}
}

func newSessionViews(sessions []*entity.Session) []sessionView {
	views := make([]sessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, sessionView{
			ID:        session.ID,
			CreatedAt: session.CreatedAt,
			ExpiresAt: session.ExpiresAt,
		})
	}

	return views
}
