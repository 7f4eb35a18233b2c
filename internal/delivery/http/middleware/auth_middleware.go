package middleware

import (
	"strings"

	"authd/internal/delivery/http/response"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	errMissingAuthHeader = errors.New("authorization header is missing")
	errNotBearerToken    = errors.New("invalid token format, must be Bearer token")
	errAccountUnusable   = errors.New("account is missing or deactivated")
)

// Context keys under which the authenticated identity is stored for handlers.
const (
	KeyAccountID     = "accountID"
	KeyAccount       = "account"
	KeyAccountRole   = "accountRole"
	KeyAccountEmail  = "accountEmail"
	KeyAccountClaims = "accountClaims"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accountRepo: accountRepo}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the request context. The account behind the token is loaded on
// every request, so tokens minted for deleted or deactivated accounts stop
// working immediately. Refresh and mail-link tokens carry a different
// audience and are rejected here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, account, err := m.identityFromRequest(c)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", err.Error())
		}

		setIdentity(c, claims, account)

		return next(c)
	}
}

// OptionalAuthenticate stores the identity when a valid bearer token backed
// by a live account is present but lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, account, err := m.identityFromRequest(c); err == nil {
			setIdentity(c, claims, account)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(KeyAccountRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// RequireVerified rejects callers whose email address is still unverified.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireVerified(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, ok := c.Get(KeyAccount).(*entity.Account)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "authentication required")
		}

		if !account.EmailVerified {
			return domainerrors.ErrEmailNotVerified
		}

		return next(c)
	}
}

// RequireOwnerOrAdmin lets a request through when the path parameter names
// the caller's own account, or when the caller is an admin.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireOwnerOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accountID, ok := AccountIDFromContext(c)
			if !ok {
				return response.Unauthorized(c, "INVALID_TOKEN", "authentication required")
			}

			if role, ok := c.Get(KeyAccountRole).(entity.Role); ok && role == entity.RoleAdmin {
				return next(c)
			}

			targetID, err := uuid.Parse(c.Param(param))
			if err != nil || targetID != accountID {
				return response.Forbidden(c, "FORBIDDEN", "not the resource owner")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) identityFromRequest(c echo.Context) (*service.Claims, *entity.Account, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil, errMissingAuthHeader
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, nil, errNotBearerToken
	}

	claims, err := m.tokenSvc.VerifyToken(tokenString, service.AudienceAccess)
	if err != nil {
		return nil, nil, err
	}

	account, err := m.accountRepo.FindByID(c.Request().Context(), claims.AccountID)
	if err != nil || !account.IsActive {
		return nil, nil, errAccountUnusable
	}

	return claims, account, nil
}

func setIdentity(c echo.Context, claims *service.Claims, account *entity.Account) {
	c.Set(KeyAccountID, claims.AccountID)
	c.Set(KeyAccount, account)
	c.Set(KeyAccountRole, claims.Role)
	c.Set(KeyAccountEmail, claims.Email)
	c.Set(KeyAccountClaims, claims)
}

// AccountIDFromContext returns the authenticated account ID set by Authenticate.
func AccountIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(KeyAccountID).(uuid.UUID)

	return id, ok
}
