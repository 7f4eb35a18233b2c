// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"net/url"
	"time"

	"authd/config"
	deliverycontext "authd/internal/delivery/context"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const verificationCodeLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo     repository.AccountRepository
	sessionRepo     repository.SessionRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	notifier        service.Notifier
	publisher       service.EventPublisher
	suppressor      service.CallSuppressor
	verifiers       map[entity.Provider]service.OAuthVerifier
	linkBaseURL     string
	verificationTTL time.Duration
	resetTTL        time.Duration
	resendCooldown  time.Duration
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.Notifier
	Publisher    service.EventPublisher
	Suppressor   service.CallSuppressor
	Verifiers    []service.OAuthVerifier `group:"oauth_verifiers"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	verifiers := make(map[entity.Provider]service.OAuthVerifier, len(params.Verifiers))
	for _, verifier := range params.Verifiers {
		verifiers[verifier.Provider()] = verifier
	}

	linkBaseURL := ""
	if params.Config.Mail != nil {
		linkBaseURL = params.Config.Mail.LinkBaseURL
	}

	return &authService{
		accountRepo:     params.AccountRepo,
		sessionRepo:     params.SessionRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		notifier:        params.Notifier,
		publisher:       params.Publisher,
		suppressor:      params.Suppressor,
		verifiers:       verifiers,
		linkBaseURL:     linkBaseURL,
		verificationTTL: params.Config.Token.VerificationTTL,
		resetTTL:        params.Config.Token.ResetTTL,
		resendCooldown:  params.Config.Auth.ResendCooldown,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account in the unverified state and mails the
// one-time code and link. No session is issued until verification completes.
// Concurrent duplicate submissions for the same email collapse into one
// execution; the unique email index remains the cross-instance safety net.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	result, err := srv.suppressor.Do("register:"+email, func() (any, error) {
		return srv.register(ctx, email, input)
	})
	if err != nil {
		return nil, err
	}

	return result.(*usecase.AuthOutput), nil
}

func (srv *authService) register(ctx context.Context, email string, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.Account{
		Email:           email,
		PasswordHash:    hashedPassword,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Role:            entity.RoleUser,
		IsActive:        true,
		EmailVerified:   false,
		PrimaryProvider: entity.ProviderLocal,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	code, link, err := srv.issueVerification(ctx, account)
	if err != nil {
		return nil, err
	}
	srv.sendVerificationMail(ctx, account, code, link)

	srv.publish(ctx, service.EventAccountRegistered, account)
	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Account: account}, nil
}

// Login authenticates by email and password. All credential failures look
// identical to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// Pure OAuth accounts carry no password and must not pass this gate.
	if !account.HasPassword() || !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	// Deactivated accounts fail exactly like bad credentials.
	if !account.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.touchLastLogin(ctx, account)

	tokens, err := srv.issueSession(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Account: account, Tokens: tokens}, nil
}

// Refresh rotates a refresh token. The presented token's session is revoked
// before the replacement is created, so a crash between the two steps costs
// the caller a re-login rather than leaving two live tokens.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	// Every verification failure, expiry included, collapses into one answer.
	claims, err := srv.tokenService.VerifyToken(refreshToken, service.AudienceRefresh)
	if err != nil {
		return nil, domainerrors.ErrInvalidRefreshToken
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	session, err := srv.sessionRepo.FindValidByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			// A signature-valid token with no live session was already rotated
			// or revoked; treat it as a suspected replay.
			srv.log(ctx).Warn("Refresh token reuse detected",
				slog.Any("accountID", claims.AccountID))

			return nil, domainerrors.ErrInvalidRefreshToken
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	account, err := srv.accountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidRefreshToken
		}

		return nil, errors.Wrap(err, "failed to find account for session")
	}
	if !account.IsActive {
		return nil, domainerrors.ErrInvalidRefreshToken
	}

	if err := srv.sessionRepo.Revoke(ctx, tokenHash); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return nil, errors.Wrap(err, "failed to revoke rotated session")
	}

	tokens, err := srv.issueSession(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Any("accountID", account.ID))

	return tokens, nil
}

// Logout revokes the session behind the presented refresh token. Unknown and
// already-revoked tokens succeed, making repeated logouts harmless.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := srv.tokenService.HashToken(refreshToken)

	if err := srv.sessionRepo.Revoke(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// LogoutAll revokes every active session of the account.
func (srv *authService) LogoutAll(ctx context.Context, accountID uuid.UUID) error {
	if err := srv.sessionRepo.RevokeAllForAccount(ctx, accountID); err != nil {
		return errors.Wrap(err, "failed to revoke account sessions")
	}

	srv.log(ctx).Info("All sessions revoked", slog.Any("accountID", accountID))

	return nil
}

// VerifyEmail consumes a verification link token and issues a session.
// Concurrent submissions of the same link collapse into one execution.
func (srv *authService) VerifyEmail(ctx context.Context, token string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.VerifyToken(token, service.AudienceVerifyEmail)
	if err != nil {
		return nil, err
	}

	result, err := srv.suppressor.Do("verify-link:"+token, func() (any, error) {
		return srv.verifyEmail(ctx, token, claims)
	})
	if err != nil {
		return nil, err
	}

	return result.(*usecase.AuthOutput), nil
}

func (srv *authService) verifyEmail(ctx context.Context, token string, claims *service.Claims) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// The stored token was consumed on first use; a re-clicked link
			// still succeeds for the account it was minted for.
			return srv.verifiedAccountLogin(ctx, claims.AccountID)
		}

		return nil, errors.Wrap(err, "failed to find account by verification token")
	}

	// A signature-valid token whose backing record belongs to another account
	// was superseded and must not verify anything.
	if account.ID != claims.AccountID {
		return nil, domainerrors.ErrInvalidToken
	}

	return srv.completeVerification(ctx, account)
}

// verifiedAccountLogin backs the idempotent path: the pending token is gone,
// but if the decoded account is already verified the call still succeeds with
// a fresh session.
func (srv *authService) verifiedAccountLogin(ctx context.Context, accountID uuid.UUID) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "failed to find account for verification token")
	}
	if !account.EmailVerified {
		// The pending token was superseded by a newer one.
		return nil, domainerrors.ErrInvalidToken
	}

	return srv.completeVerification(ctx, account)
}

// VerifyEmailOTP consumes a one-time verification code and issues a session.
// Concurrent submissions of the same email and code collapse into one execution.
func (srv *authService) VerifyEmailOTP(ctx context.Context, input usecase.VerifyEmailOTPInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	result, err := srv.suppressor.Do("verify-otp:"+email+":"+input.Code, func() (any, error) {
		return srv.verifyEmailOTP(ctx, email, input.Code)
	})
	if err != nil {
		return nil, err
	}

	return result.(*usecase.AuthOutput), nil
}

func (srv *authService) verifyEmailOTP(ctx context.Context, email, code string) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindByEmailAndCode(ctx, email, code)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidOrExpiredCode
		}

		return nil, errors.Wrap(err, "failed to find account by verification code")
	}

	return srv.completeVerification(ctx, account)
}

// completeVerification flips the verified flag and clears the pending code and
// token in a single store update, so neither path can consume them twice.
// Both paths converge here, and both treat an already-verified account as a
// success that still logs the caller in.
func (srv *authService) completeVerification(ctx context.Context, account *entity.Account) (*usecase.AuthOutput, error) {
	if account.EmailVerified {
		tokens, err := srv.issueSession(ctx, account)
		if err != nil {
			return nil, err
		}

		return &usecase.AuthOutput{Account: account, Tokens: tokens}, nil
	}

	account.EmailVerified = true
	account.ClearVerification()

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to persist verification")
	}

	// One welcome mail per account even when both verification paths race.
	if srv.suppressor.Allow("welcome:"+account.ID.String(), 24*time.Hour) {
		if err := srv.notifier.SendWelcome(ctx, account.Email, account.FullName()); err != nil {
			srv.log(ctx).Warn("Failed to send welcome email",
				slog.Any("accountID", account.ID), slog.Any("error", err))
		}
	}

	srv.publish(ctx, service.EventAccountVerified, account)

	tokens, err := srv.issueSession(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Email verified", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Account: account, Tokens: tokens}, nil
}

// ResendVerification issues a fresh code and link, superseding the pending
// pair. Cooldown bounds how often a caller can trigger mail for one address.
func (srv *authService) ResendVerification(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find account by email")
	}
	if account.EmailVerified {
		return domainerrors.ErrAlreadyVerified
	}

	// The contract checks above still fire inside the cooldown window; only
	// the mail itself is throttled.
	if !srv.suppressor.Allow("resend-verification:"+email, srv.resendCooldown) {
		srv.log(ctx).Debug("Resend verification suppressed by cooldown", slog.String("email", email))

		return nil
	}

	code, link, err := srv.issueVerification(ctx, account)
	if err != nil {
		return err
	}
	srv.sendVerificationMail(ctx, account, code, link)

	return nil
}

// ChangePassword verifies the current password, stores the new hash, and
// revokes all sessions so stolen refresh tokens die with the old password.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find account")
	}

	if !account.HasPassword() || !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	account.PasswordHash = hashedPassword
	if err := srv.accountRepo.Save(ctx, account); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	if err := srv.sessionRepo.RevokeAllForAccount(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions after password change")
	}

	srv.publish(ctx, service.EventPasswordChanged, account)
	srv.log(ctx).Info("Password changed", slog.Any("accountID", account.ID))

	return nil
}

// ForgotPassword issues a reset token and emails it.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find account by email")
	}

	if !srv.suppressor.Allow("forgot-password:"+email, srv.resendCooldown) {
		srv.log(ctx).Debug("Forgot password suppressed by cooldown", slog.String("email", email))

		return nil
	}

	token, err := srv.tokenService.GenerateToken(account, service.AudienceResetPassword, srv.resetTTL)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	expiresAt := time.Now().Add(srv.resetTTL)
	account.ResetToken = token
	account.ResetTokenExpiresAt = &expiresAt

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		return errors.Wrap(err, "failed to persist reset token")
	}

	link := srv.buildLink("/reset-password", token)
	if err := srv.notifier.SendPasswordReset(ctx, account.Email, account.FullName(), link); err != nil {
		srv.log(ctx).Warn("Failed to send password reset email",
			slog.Any("accountID", account.ID), slog.Any("error", err))
	}

	return nil
}

// ResetPassword consumes a reset token, stores the new hash, and revokes all sessions.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if _, err := srv.tokenService.VerifyToken(input.Token, service.AudienceResetPassword); err != nil {
		return err
	}

	account, err := srv.accountRepo.FindByResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrInvalidToken
		}

		return errors.Wrap(err, "failed to find account by reset token")
	}

	if !account.ResetTokenValid(input.Token, time.Now()) {
		return domainerrors.ErrTokenExpired
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	// Clearing the token in the same update that stores the hash makes the
	// reset link single-use.
	account.PasswordHash = hashedPassword
	account.ClearReset()

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		return errors.Wrap(err, "failed to persist password reset")
	}

	if err := srv.sessionRepo.RevokeAllForAccount(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions after password reset")
	}

	srv.publish(ctx, service.EventPasswordChanged, account)
	srv.log(ctx).Info("Password reset completed", slog.Any("accountID", account.ID))

	return nil
}

// OAuthLogin resolves a provider callback into an account: an existing link
// logs in, a matching email gains a new link, and otherwise a pre-verified
// account is created.
func (srv *authService) OAuthLogin(ctx context.Context, input usecase.OAuthLoginInput) (*usecase.AuthOutput, error) {
	verifier, ok := srv.verifiers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider
	}

	oauthUser, err := verifier.Exchange(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth exchange failed",
			slog.String("provider", input.Provider.String()), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	// Double-submitted callbacks for the same provider identity collapse into
	// one resolution; the unique link index covers concurrent instances.
	result, err := srv.suppressor.Do("oauth:"+input.Provider.String()+":"+oauthUser.ID, func() (any, error) {
		return srv.resolveOAuthUser(ctx, oauthUser)
	})
	if err != nil {
		return nil, err
	}

	return result.(*usecase.AuthOutput), nil
}

func (srv *authService) resolveOAuthUser(ctx context.Context, oauthUser *service.OAuthUser) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindByOAuthLink(ctx, oauthUser.Provider, oauthUser.ID)
	if err == nil {
		return srv.finishOAuthLogin(ctx, account)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by oauth link")
	}

	email := entity.NormalizeEmail(oauthUser.Email)
	if email != "" {
		account, err = srv.accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return srv.linkAndLogin(ctx, account, oauthUser)
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to find account by email")
		}
	}

	return srv.createOAuthAccount(ctx, oauthUser, email)
}

// finishOAuthLogin completes login for an account already linked to the identity.
func (srv *authService) finishOAuthLogin(ctx context.Context, account *entity.Account) (*usecase.AuthOutput, error) {
	if !account.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	srv.touchLastLogin(ctx, account)

	tokens, err := srv.issueSession(ctx, account)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Account: account, Tokens: tokens}, nil
}

// linkAndLogin attaches the provider identity to an existing account matched
// by email, then logs in.
func (srv *authService) linkAndLogin(ctx context.Context, account *entity.Account, oauthUser *service.OAuthUser) (*usecase.AuthOutput, error) {
	if !account.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	// At most one link per provider. A second identity from the same provider
	// claiming this email does not attach and does not log in.
	if account.LinkFor(oauthUser.Provider) != nil {
		srv.log(ctx).Warn("OAuth link conflict for provider",
			slog.Any("accountID", account.ID),
			slog.String("provider", oauthUser.Provider.String()))

		return nil, domainerrors.ErrOAuthFailed
	}

	account.OAuthLinks = append(account.OAuthLinks, entity.OAuthLink{
		Provider:       oauthUser.Provider,
		ProviderUserID: oauthUser.ID,
		Email:          entity.NormalizeEmail(oauthUser.Email),
		Name:           oauthUser.Name,
		AvatarURL:      oauthUser.AvatarURL,
		LinkedAt:       time.Now(),
	})

	// The provider proved ownership of the same address, which settles any
	// still-pending verification.
	if !account.EmailVerified && oauthUser.EmailVerified {
		account.EmailVerified = true
		account.ClearVerification()
	}
	if account.ProfileImage == "" {
		account.ProfileImage = oauthUser.AvatarURL
	}

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to persist oauth link")
	}

	srv.log(ctx).Info("OAuth identity linked to existing account",
		slog.Any("accountID", account.ID),
		slog.String("provider", oauthUser.Provider.String()))

	return srv.finishOAuthLogin(ctx, account)
}

// createOAuthAccount registers a brand new account from the provider identity.
func (srv *authService) createOAuthAccount(ctx context.Context, oauthUser *service.OAuthUser, email string) (*usecase.AuthOutput, error) {
	firstName, lastName := splitName(oauthUser.Name)

	account := &entity.Account{
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		Role:            entity.RoleUser,
		IsActive:        true,
		EmailVerified:   oauthUser.EmailVerified,
		ProfileImage:    oauthUser.AvatarURL,
		PrimaryProvider: oauthUser.Provider,
		OAuthLinks: []entity.OAuthLink{{
			Provider:       oauthUser.Provider,
			ProviderUserID: oauthUser.ID,
			Email:          email,
			Name:           oauthUser.Name,
			AvatarURL:      oauthUser.AvatarURL,
			LinkedAt:       time.Now(),
		}},
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	srv.publish(ctx, service.EventAccountRegistered, account)
	srv.log(ctx).Info("Account created from OAuth identity",
		slog.Any("accountID", account.ID),
		slog.String("provider", oauthUser.Provider.String()))

	return srv.finishOAuthLogin(ctx, account)
}

// DeleteAccount verifies the password where one exists, revokes all sessions,
// and removes the account.
func (srv *authService) DeleteAccount(ctx context.Context, accountID uuid.UUID, password string) error {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find account")
	}

	if account.HasPassword() && !srv.hasher.Check(password, account.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	if err := srv.sessionRepo.RevokeAllForAccount(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions before deletion")
	}

	if err := srv.accountRepo.Delete(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.publish(ctx, service.EventAccountDeleted, account)
	srv.log(ctx).Info("Account deleted", slog.Any("accountID", account.ID))

	return nil
}

// --- Helpers ---

// issueSession mints a token pair and persists the refresh token's session record.
func (srv *authService) issueSession(ctx context.Context, account *entity.Account) (*service.TokenPair, error) {
	tokens, err := srv.tokenService.GenerateTokens(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.Session{
		AccountID: account.ID,
		TokenHash: srv.tokenService.HashToken(tokens.RefreshToken),
		ExpiresAt: tokens.RefreshExpiresAt,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return tokens, nil
}

// issueVerification generates and persists a fresh code and link token pair,
// superseding any pending one.
func (srv *authService) issueVerification(ctx context.Context, account *entity.Account) (code, link string, err error) {
	code, err = generateVerificationCode()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate verification code")
	}

	token, err := srv.tokenService.GenerateToken(account, service.AudienceVerifyEmail, srv.verificationTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate verification token")
	}

	expiresAt := time.Now().Add(srv.verificationTTL)
	account.VerificationCode = code
	account.VerificationCodeExpiresAt = &expiresAt
	account.VerificationToken = token
	account.VerificationTokenExpiresAt = &expiresAt

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		return "", "", errors.Wrap(err, "failed to persist verification state")
	}

	return code, srv.buildLink("/verify-email", token), nil
}

func (srv *authService) sendVerificationMail(ctx context.Context, account *entity.Account, code, link string) {
	if err := srv.notifier.SendVerification(ctx, account.Email, account.FullName(), code, link); err != nil {
		srv.log(ctx).Warn("Failed to send verification email",
			slog.Any("accountID", account.ID), slog.Any("error", err))
	}
}

// touchLastLogin records the login time; failures are logged, not propagated.
func (srv *authService) touchLastLogin(ctx context.Context, account *entity.Account) {
	now := time.Now()
	account.LastLoginAt = &now

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to record last login",
			slog.Any("accountID", account.ID), slog.Any("error", err))
	}
}

// publish emits a lifecycle event; failures are logged, not propagated.
func (srv *authService) publish(ctx context.Context, eventType string, account *entity.Account) {
	event := &service.AuthEvent{
		Type:       eventType,
		AccountID:  account.ID,
		Email:      account.Email,
		Provider:   account.PrimaryProvider.String(),
		OccurredAt: time.Now(),
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("eventType", eventType), slog.Any("error", err))
	}
}

func (srv *authService) buildLink(path, token string) string {
	return srv.linkBaseURL + path + "?token=" + url.QueryEscape(token)
}

// generateVerificationCode returns a zero-padded 6-digit one-time code drawn
// from crypto/rand.
func generateVerificationCode() (string, error) {
	limit := big.NewInt(1)
	for range verificationCodeLength {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", verificationCodeLength, n), nil
}

// splitName divides a display name into first and last parts at the first space.
func splitName(name string) (first, last string) {
	for i, r := range name {
		if r == ' ' {
			return name[:i], name[i+1:]
		}
	}

	return name, ""
}
