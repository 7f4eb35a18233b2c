package handler

import (
	"log/slog"
	"net/http"

	"authd/internal/delivery/http/middleware"
	"authd/internal/delivery/http/response"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for profile handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,max=100"`
	LastName     *string `json:"last_name" validate:"omitempty,max=100"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,url"`
}

// GetProfile returns the authenticated account's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	account, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "")
}

// UpdateProfile applies partial profile changes.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		AccountID:    accountID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Profile updated")
}

// ListSessions returns the account's active sessions.
func (h *AccountHandler) ListSessions(c echo.Context) error {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	sessions, err := h.uc.ListSessions(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionViews(sessions), "")
}

// ListAccountSessions returns the sessions of the account named in the path.
// The owner-or-admin gate on the route decides who may ask.
func (h *AccountHandler) ListAccountSessions(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid account id")
	}

	sessions, err := h.uc.ListSessions(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionViews(sessions), "")
}

// GetAccount returns the profile of the account named in the path. Routed
// behind the admin role gate.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid account id")
	}

	account, err := h.uc.GetProfile(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "")
}
