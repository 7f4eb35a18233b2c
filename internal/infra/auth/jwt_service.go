// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"authd/config"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/service"
	"authd/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret          []byte        // Shared HMAC signing key; audiences keep token kinds apart.
	issuer          string        // Issuer claim stamped on and required from every token.
	accessTTL       time.Duration // Time-to-live for access tokens.
	refreshTTL      time.Duration // Time-to-live for refresh tokens.
	verificationTTL time.Duration // Time-to-live for email verification link tokens.
	resetTTL        time.Duration // Time-to-live for password reset tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token == nil || cfg.Token.SecretKey == "" {
		return nil, errors.New("token secret key must be provided")
	}

	issuer := cfg.Token.Issuer
	if issuer == "" {
		issuer = cfg.Env.ServiceName
	}

	return &jwtService{
		secret:          []byte(cfg.Token.SecretKey),
		issuer:          issuer,
		accessTTL:       cfg.Token.AccessTTL,
		refreshTTL:      cfg.Token.RefreshTTL,
		verificationTTL: cfg.Token.VerificationTTL,
		resetTTL:        cfg.Token.ResetTTL,
	}, nil
}

// GenerateTokens creates a paired access and refresh token for the account.
func (s *jwtService) GenerateTokens(account *entity.Account) (*service.TokenPair, error) {
	now := time.Now()

	accessToken, err := s.signToken(account, service.AudienceAccess, now, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signToken(account, service.AudienceRefresh, now, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  now.Add(s.accessTTL),
		RefreshExpiresAt: now.Add(s.refreshTTL),
	}, nil
}

// GenerateToken creates a single token under the given audience and TTL.
func (s *jwtService) GenerateToken(account *entity.Account, audience service.Audience, ttl time.Duration) (string, error) {
	return s.signToken(account, audience, time.Now(), ttl)
}

// VerifyToken checks signature, expiry, issuer, and audience of a token string.
func (s *jwtService) VerifyToken(tokenString string, audience service.Audience) (*service.Claims, error) {
	claims := new(service.Claims)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(string(audience)),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrInvalidToken
	}

	if !token.Valid || claims.AccountID == uuid.Nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
// Refresh tokens are stored and looked up only by this digest.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// signToken creates a JWT carrying the account identity under one audience.
func (s *jwtService) signToken(account *entity.Account, audience service.Audience, now time.Time, ttl time.Duration) (string, error) {
	claims := service.Claims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{string(audience)},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(), // Unique per token so two tokens minted in the same second differ.
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
