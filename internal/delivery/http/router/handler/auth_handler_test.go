package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authd/internal/delivery/http/middleware"
	"authd/internal/delivery/http/validator"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/service"
	mockUsecase "authd/internal/mocks/usecase"
	"authd/internal/usecase"
)

func newHandlerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authOutputFixture() *usecase.AuthOutput {
	now := time.Now()

	return &usecase.AuthOutput{
		Account: &entity.Account{
			ID:              uuid.New(),
			Email:           "user@example.com",
			FirstName:       "Alex",
			LastName:        "Chen",
			Role:            entity.RoleUser,
			IsActive:        true,
			PrimaryProvider: entity.ProviderLocal,
		},
		Tokens: &service.TokenPair{
			AccessToken:      "access-token",
			RefreshToken:     "refresh-token",
			AccessExpiresAt:  now.Add(15 * time.Minute),
			RefreshExpiresAt: now.Add(7 * 24 * time.Hour),
		},
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	output := authOutputFixture()
	// Registration returns the account only; tokens come from verification.
	output.Tokens = nil

	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{
			Email:     "user@example.com",
			Password:  "Password123!",
			FirstName: "Alex",
			LastName:  "Chen",
		}).
		Return(output, nil)

	h := NewAuthHandler(uc, newDiscardLogger())
	c, rec := newHandlerContext(t, http.MethodPost, "/auth/register",
		`{"email":"user@example.com","password":"Password123!","first_name":"Alex","last_name":"Chen"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"user@example.com"`)
	assert.NotContains(t, rec.Body.String(), "access_token")
	// Credentials never leak into the response.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"password":"Password123!"}`},
		{name: "malformed email", body: `{"email":"not-an-email","password":"Password123!"}`},
		{name: "short password", body: `{"email":"user@example.com","password":"short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newHandlerContext(t, http.MethodPost, "/auth/register", tt.body)

			err := h.Register(c)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "user@example.com", Password: "Password123!"}).
		Return(authOutputFixture(), nil)

	h := NewAuthHandler(uc, newDiscardLogger())
	c, rec := newHandlerContext(t, http.MethodPost, "/auth/login",
		`{"email":"user@example.com","password":"Password123!"}`)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token_type":"Bearer"`)
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "user@example.com", Password: "wrong-pass"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	h := NewAuthHandler(uc, newDiscardLogger())
	c, _ := newHandlerContext(t, http.MethodPost, "/auth/login",
		`{"email":"user@example.com","password":"wrong-pass"}`)

	err := h.Login(c)

	// The error middleware renders the taxonomy; the handler only propagates.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		Refresh(mock.Anything, "refresh-token").
		Return(authOutputFixture().Tokens, nil)

	h := NewAuthHandler(uc, newDiscardLogger())
	c, rec := newHandlerContext(t, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"refresh-token"}`)

	err := h.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_VerifyEmail_QueryParam(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().VerifyEmail(mock.Anything, "link-token").Return(authOutputFixture(), nil)

	h := NewAuthHandler(uc, newDiscardLogger())
	c, rec := newHandlerContext(t, http.MethodGet, "/auth/verify-email?token=link-token", "")

	err := h.VerifyEmail(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_VerifyOTP_RejectsNonNumericCode(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	c, _ := newHandlerContext(t, http.MethodPost, "/auth/verify-otp",
		`{"email":"user@example.com","code":"abc123"}`)

	err := h.VerifyOTP(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_ChangePassword_UsesAuthenticatedAccount(t *testing.T) {
	accountID := uuid.New()
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		ChangePassword(mock.Anything, usecase.ChangePasswordInput{
			AccountID:       accountID,
			CurrentPassword: "OldPassword1",
			NewPassword:     "NewPassword1",
		}).
		Return(nil)

	h := NewAuthHandler(uc, newDiscardLogger())
	c, rec := newHandlerContext(t, http.MethodPost, "/auth/change-password",
		`{"current_password":"OldPassword1","new_password":"NewPassword1"}`)
	c.Set(middleware.KeyAccountID, accountID)

	err := h.ChangePassword(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_OAuthCallback_QueryCode(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().
		OAuthLogin(mock.Anything, usecase.OAuthLoginInput{Provider: entity.ProviderGoogle, Code: "auth-code"}).
		Return(authOutputFixture(), nil)

	h := NewAuthHandler(uc, newDiscardLogger())
	c, rec := newHandlerContext(t, http.MethodGet, "/oauth/google/callback?code=auth-code", "")
	c.SetParamNames("provider")
	c.SetParamValues("google")

	err := h.OAuthCallback(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_OAuthCallback_UnknownProvider(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	c, _ := newHandlerContext(t, http.MethodGet, "/oauth/twitter/callback?code=auth-code", "")
	c.SetParamNames("provider")
	c.SetParamValues("twitter")

	err := h.OAuthCallback(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
	uc.AssertNotCalled(t, "OAuthLogin", mock.Anything, mock.Anything)
}

func TestAuthHandler_DeleteAccount(t *testing.T) {
	accountID := uuid.New()
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.EXPECT().DeleteAccount(mock.Anything, accountID, "Password123!").Return(nil)

	h := NewAuthHandler(uc, newDiscardLogger())
	c, rec := newHandlerContext(t, http.MethodDelete, "/auth/account",
		`{"password":"Password123!"}`)
	c.Set(middleware.KeyAccountID, accountID)

	err := h.DeleteAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
