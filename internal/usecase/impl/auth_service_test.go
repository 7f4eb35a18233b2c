package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/infra/flight"
	mockRepo "authd/internal/mocks/repository"
	mockService "authd/internal/mocks/service"
	"authd/internal/usecase"
)

func TestAuthService_Register_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	ctx := context.Background()

	fixtures.passThroughSuppressor()
	fixtures.hasher.EXPECT().Hash("Password123!").Return("hashed-password", nil)
	fixtures.accountRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, "alex@example.com", account.Email)
			assert.Equal(t, "hashed-password", account.PasswordHash)
			assert.Equal(t, entity.RoleUser, account.Role)
			assert.True(t, account.IsActive)
			assert.False(t, account.EmailVerified)
			assert.Equal(t, entity.ProviderLocal, account.PrimaryProvider)
		}).
		Return(nil)
	fixtures.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("*entity.Account"), service.AudienceVerifyEmail, 24*time.Hour).
		Return("verify-token", nil)
	fixtures.accountRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Return(nil)
	fixtures.notifier.EXPECT().
		SendVerification(mock.Anything, "alex@example.com", "Alex Chen", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	output, err := svc.Register(ctx, usecase.RegisterInput{
		Email:     "  Alex@Example.COM ",
		Password:  "Password123!",
		FirstName: "Alex",
		LastName:  "Chen",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alex@example.com", output.Account.Email)
	assert.Len(t, output.Account.VerificationCode, 6)
	// No session until the address is verified.
	assert.Nil(t, output.Tokens)
	fixtures.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.passThroughSuppressor()
	fixtures.hasher.EXPECT().Hash("Password123!").Return("hashed-password", nil)
	fixtures.accountRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrEmailTaken)

	output, err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	assert.Nil(t, output)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	pair := testTokenPair()

	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)
	fixtures.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fixtures.accountRepo.EXPECT().Save(mock.Anything, account).Return(nil)
	fixtures.expectIssueSession(account, pair)

	output, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "User@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, account, output.Account)
	assert.Equal(t, pair, output.Tokens)
	assert.NotNil(t, account.LastLoginAt)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)
	fixtures.hasher.EXPECT().Check("wrong", account.PasswordHash).Return(false)

	output, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.accountRepo.EXPECT().
		FindByEmail(mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	// Unknown address and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_PureOAuthAccount(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.PasswordHash = ""
	account.PrimaryProvider = entity.ProviderGoogle

	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)

	output, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "anything",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.IsActive = false

	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)
	fixtures.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)

	output, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	// A deactivated account must look exactly like bad credentials.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	pair := testTokenPair()

	fixtures.tokenService.EXPECT().
		VerifyToken("old-refresh", service.AudienceRefresh).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.tokenService.EXPECT().HashToken("old-refresh").Return("hash-old")
	fixtures.sessionRepo.EXPECT().
		FindValidByHash(mock.Anything, "hash-old").
		Return(&entity.Session{AccountID: account.ID, TokenHash: "hash-old"}, nil)
	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fixtures.sessionRepo.EXPECT().Revoke(mock.Anything, "hash-old").Return(nil)
	fixtures.expectIssueSession(account, pair)

	tokens, err := svc.Refresh(context.Background(), "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, pair, tokens)
}

func TestAuthService_Refresh_ReuseDetected(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.tokenService.EXPECT().
		VerifyToken("rotated-refresh", service.AudienceRefresh).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.tokenService.EXPECT().HashToken("rotated-refresh").Return("hash-rotated")
	fixtures.sessionRepo.EXPECT().
		FindValidByHash(mock.Anything, "hash-rotated").
		Return(nil, repository.ErrSessionNotFound)

	tokens, err := svc.Refresh(context.Background(), "rotated-refresh")

	// A signature-valid token whose session is gone was already rotated or
	// revoked; it must be rejected, never honored.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	assert.Nil(t, tokens)
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.tokenService.EXPECT().
		VerifyToken("expired-refresh", service.AudienceRefresh).
		Return(nil, domainerrors.ErrTokenExpired)

	tokens, err := svc.Refresh(context.Background(), "expired-refresh")

	// Expiry is not distinguishable from any other refresh failure.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	assert.Nil(t, tokens)
}

func TestAuthService_Refresh_InactiveAccount(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.IsActive = false

	fixtures.tokenService.EXPECT().
		VerifyToken("live-refresh", service.AudienceRefresh).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.tokenService.EXPECT().HashToken("live-refresh").Return("hash-live")
	fixtures.sessionRepo.EXPECT().
		FindValidByHash(mock.Anything, "hash-live").
		Return(&entity.Session{AccountID: account.ID, TokenHash: "hash-live"}, nil)
	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	tokens, err := svc.Refresh(context.Background(), "live-refresh")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	assert.Nil(t, tokens)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.tokenService.EXPECT().
		VerifyToken("garbage", service.AudienceRefresh).
		Return(nil, domainerrors.ErrInvalidToken)

	tokens, err := svc.Refresh(context.Background(), "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	assert.Nil(t, tokens)
}

func TestAuthService_Logout_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.tokenService.EXPECT().HashToken("refresh-token").Return("hash-refresh")
	fixtures.sessionRepo.EXPECT().Revoke(mock.Anything, "hash-refresh").Return(nil)

	err := svc.Logout(context.Background(), "refresh-token")

	assert.NoError(t, err)
}

func TestAuthService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.tokenService.EXPECT().HashToken("unknown-token").Return("hash-unknown")
	fixtures.sessionRepo.EXPECT().
		Revoke(mock.Anything, "hash-unknown").
		Return(repository.ErrSessionNotFound)

	err := svc.Logout(context.Background(), "unknown-token")

	assert.NoError(t, err)
}

func TestAuthService_LogoutAll(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.sessionRepo.EXPECT().RevokeAllForAccount(mock.Anything, account.ID).Return(nil)

	err := svc.LogoutAll(context.Background(), account.ID)

	assert.NoError(t, err)
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.EmailVerified = false
	expiresAt := time.Now().Add(time.Hour)
	account.VerificationCode = "123456"
	account.VerificationCodeExpiresAt = &expiresAt
	account.VerificationToken = "verify-token"
	account.VerificationTokenExpiresAt = &expiresAt
	pair := testTokenPair()

	fixtures.suppressor.EXPECT().
		Do("verify-link:verify-token", mock.Anything).
		RunAndReturn(func(_ string, fn func() (any, error)) (any, error) {
			return fn()
		})
	fixtures.tokenService.EXPECT().
		VerifyToken("verify-token", service.AudienceVerifyEmail).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.accountRepo.EXPECT().
		FindByVerificationToken(mock.Anything, "verify-token").
		Return(account, nil)
	fixtures.accountRepo.EXPECT().
		Save(mock.Anything, account).
		Run(func(_ context.Context, saved *entity.Account) {
			// The flip and the clear must land in the same store update.
			assert.True(t, saved.EmailVerified)
			assert.Empty(t, saved.VerificationCode)
			assert.Empty(t, saved.VerificationToken)
		}).
		Return(nil)
	fixtures.suppressor.EXPECT().Allow("welcome:"+account.ID.String(), 24*time.Hour).Return(true)
	fixtures.notifier.EXPECT().SendWelcome(mock.Anything, account.Email, "Alex Chen").Return(nil)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)
	fixtures.expectIssueSession(account, pair)

	output, err := svc.VerifyEmail(context.Background(), "verify-token")

	require.NoError(t, err)
	assert.True(t, output.Account.EmailVerified)
	assert.Equal(t, pair, output.Tokens)
}

func TestAuthService_VerifyEmail_SupersededToken(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.EmailVerified = false
	account.VerificationToken = "newer-verify-token"

	fixtures.passThroughSuppressor()
	fixtures.tokenService.EXPECT().
		VerifyToken("old-verify-token", service.AudienceVerifyEmail).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.accountRepo.EXPECT().
		FindByVerificationToken(mock.Anything, "old-verify-token").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	output, err := svc.VerifyEmail(context.Background(), "old-verify-token")

	// Signature-valid but superseded by a newer pending token.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, output)
}

func TestAuthService_VerifyEmail_MismatchedClaims(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.EmailVerified = false

	fixtures.passThroughSuppressor()
	fixtures.tokenService.EXPECT().
		VerifyToken("verify-token", service.AudienceVerifyEmail).
		Return(&service.Claims{AccountID: uuid.New()}, nil)
	fixtures.accountRepo.EXPECT().
		FindByVerificationToken(mock.Anything, "verify-token").
		Return(account, nil)

	output, err := svc.VerifyEmail(context.Background(), "verify-token")

	// The stored record must belong to the account the token was minted for.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, output)
	fixtures.accountRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_VerifyEmail_ReclickedLinkStillLogsIn(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	pair := testTokenPair()

	// First use consumed the stored token, so the lookup misses; the decoded
	// account id shows the address is already verified.
	fixtures.passThroughSuppressor()
	fixtures.tokenService.EXPECT().
		VerifyToken("verify-token", service.AudienceVerifyEmail).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.accountRepo.EXPECT().
		FindByVerificationToken(mock.Anything, "verify-token").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fixtures.expectIssueSession(account, pair)

	output, err := svc.VerifyEmail(context.Background(), "verify-token")

	require.NoError(t, err)
	assert.Equal(t, pair, output.Tokens)
	// No second welcome mail and no store update on the idempotent path.
	fixtures.notifier.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
	fixtures.accountRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_VerifyEmail_AlreadyVerifiedIsIdempotent(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.VerificationToken = "verify-token"
	pair := testTokenPair()

	fixtures.passThroughSuppressor()
	fixtures.tokenService.EXPECT().
		VerifyToken("verify-token", service.AudienceVerifyEmail).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.accountRepo.EXPECT().
		FindByVerificationToken(mock.Anything, "verify-token").
		Return(account, nil)
	fixtures.expectIssueSession(account, pair)

	output, err := svc.VerifyEmail(context.Background(), "verify-token")

	require.NoError(t, err)
	assert.Equal(t, pair, output.Tokens)
	fixtures.notifier.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_VerifyEmailOTP_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.EmailVerified = false
	expiresAt := time.Now().Add(time.Hour)
	account.VerificationCode = "654321"
	account.VerificationCodeExpiresAt = &expiresAt
	pair := testTokenPair()

	fixtures.suppressor.EXPECT().
		Do("verify-otp:user@example.com:654321", mock.Anything).
		RunAndReturn(func(_ string, fn func() (any, error)) (any, error) {
			return fn()
		})
	fixtures.accountRepo.EXPECT().
		FindByEmailAndCode(mock.Anything, "user@example.com", "654321").
		Return(account, nil)
	fixtures.accountRepo.EXPECT().Save(mock.Anything, account).Return(nil)
	fixtures.suppressor.EXPECT().Allow("welcome:"+account.ID.String(), 24*time.Hour).Return(true)
	fixtures.notifier.EXPECT().SendWelcome(mock.Anything, account.Email, "Alex Chen").Return(nil)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)
	fixtures.expectIssueSession(account, pair)

	output, err := svc.VerifyEmailOTP(context.Background(), usecase.VerifyEmailOTPInput{
		Email: "User@example.com",
		Code:  "654321",
	})

	require.NoError(t, err)
	assert.True(t, output.Account.EmailVerified)
}

func TestAuthService_VerifyEmailOTP_WrongCode(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.passThroughSuppressor()
	fixtures.accountRepo.EXPECT().
		FindByEmailAndCode(mock.Anything, "user@example.com", "000000").
		Return(nil, repository.ErrAccountNotFound)

	output, err := svc.VerifyEmailOTP(context.Background(), usecase.VerifyEmailOTPInput{
		Email: "user@example.com",
		Code:  "000000",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredCode)
	assert.Nil(t, output)
}

func TestAuthService_VerifyEmailOTP_WelcomeMailSentOnce(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.EmailVerified = false
	pair := testTokenPair()

	fixtures.passThroughSuppressor()
	fixtures.accountRepo.EXPECT().
		FindByEmailAndCode(mock.Anything, "user@example.com", "654321").
		Return(account, nil)
	fixtures.accountRepo.EXPECT().Save(mock.Anything, account).Return(nil)
	// Cooldown already started by the racing verification path; no SendWelcome.
	fixtures.suppressor.EXPECT().Allow("welcome:"+account.ID.String(), 24*time.Hour).Return(false)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)
	fixtures.expectIssueSession(account, pair)

	_, err := svc.VerifyEmailOTP(context.Background(), usecase.VerifyEmailOTPInput{
		Email: "user@example.com",
		Code:  "654321",
	})

	require.NoError(t, err)
	fixtures.notifier.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_VerifyEmailOTP_ConcurrentDuplicatesCollapse(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	notifier := mockService.NewMockNotifier(t)
	publisher := mockService.NewMockEventPublisher(t)
	verifier := mockService.NewMockOAuthVerifier(t)
	verifier.EXPECT().Provider().Return(entity.ProviderGoogle)

	svc := NewAuthService(AuthServiceParams{
		AccountRepo:  accountRepo,
		SessionRepo:  sessionRepo,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: tokenService,
		Notifier:     notifier,
		Publisher:    publisher,
		Suppressor:   flight.NewSuppressor(),
		Verifiers:    []service.OAuthVerifier{verifier},
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	account := testAccount()
	account.EmailVerified = false
	pair := testTokenPair()

	entered := make(chan struct{})
	release := make(chan struct{})
	var lookups atomic.Int32
	accountRepo.EXPECT().
		FindByEmailAndCode(mock.Anything, "user@example.com", "654321").
		RunAndReturn(func(context.Context, string, string) (*entity.Account, error) {
			if lookups.Add(1) == 1 {
				close(entered)
			}
			<-release

			return account, nil
		})
	accountRepo.EXPECT().Save(mock.Anything, account).Return(nil)
	notifier.EXPECT().SendWelcome(mock.Anything, account.Email, "Alex Chen").Return(nil)
	publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)
	tokenService.EXPECT().GenerateTokens(account).Return(pair, nil)
	tokenService.EXPECT().HashToken(pair.RefreshToken).Return("hash-refresh")
	sessionRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			output, err := svc.VerifyEmailOTP(context.Background(), usecase.VerifyEmailOTPInput{
				Email: "user@example.com",
				Code:  "654321",
			})
			assert.NoError(t, err)
			assert.NotNil(t, output)
		}()
	}

	<-entered
	// Let the second submission join the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, lookups.Load())
}

func TestAuthService_ResendVerification_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.EmailVerified = false

	fixtures.suppressor.EXPECT().Allow("resend-verification:user@example.com", time.Minute).Return(true)
	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)
	fixtures.tokenService.EXPECT().
		GenerateToken(account, service.AudienceVerifyEmail, 24*time.Hour).
		Return("fresh-verify-token", nil)
	fixtures.accountRepo.EXPECT().
		Save(mock.Anything, account).
		Run(func(_ context.Context, saved *entity.Account) {
			assert.Len(t, saved.VerificationCode, 6)
			assert.Equal(t, "fresh-verify-token", saved.VerificationToken)
		}).
		Return(nil)
	fixtures.notifier.EXPECT().
		SendVerification(mock.Anything, account.Email, "Alex Chen", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	err := svc.ResendVerification(context.Background(), "user@example.com")

	assert.NoError(t, err)
}

func TestAuthService_ResendVerification_Cooldown(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.EmailVerified = false

	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)
	fixtures.suppressor.EXPECT().Allow("resend-verification:user@example.com", time.Minute).Return(false)

	err := svc.ResendVerification(context.Background(), "user@example.com")

	// Only the mail is throttled; the call itself still succeeds.
	assert.NoError(t, err)
	fixtures.notifier.AssertNotCalled(t, "SendVerification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResendVerification_CooldownDoesNotMaskContract(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.accountRepo.EXPECT().
		FindByEmail(mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	// Inside or outside the cooldown window, an unknown address reports
	// not-found rather than success.
	err := svc.ResendVerification(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	fixtures.suppressor.AssertNotCalled(t, "Allow", mock.Anything, mock.Anything)
}

func TestAuthService_ResendVerification_AlreadyVerified(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)

	err := svc.ResendVerification(context.Background(), "user@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	fixtures.notifier.AssertNotCalled(t, "SendVerification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fixtures.hasher.EXPECT().Check("OldPassword1", "$2a$10$stored-hash").Return(true)
	fixtures.hasher.EXPECT().Hash("NewPassword1").Return("new-hash", nil)
	fixtures.accountRepo.EXPECT().
		Save(mock.Anything, account).
		Run(func(_ context.Context, saved *entity.Account) {
			assert.Equal(t, "new-hash", saved.PasswordHash)
		}).
		Return(nil)
	fixtures.sessionRepo.EXPECT().RevokeAllForAccount(mock.Anything, account.ID).Return(nil)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	err := svc.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "OldPassword1",
		NewPassword:     "NewPassword1",
	})

	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fixtures.hasher.EXPECT().Check("wrong", "$2a$10$stored-hash").Return(false)

	err := svc.ChangePassword(context.Background(), usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fixtures.sessionRepo.AssertNotCalled(t, "RevokeAllForAccount", mock.Anything, mock.Anything)
}

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.suppressor.EXPECT().Allow("forgot-password:user@example.com", time.Minute).Return(true)
	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)
	fixtures.tokenService.EXPECT().
		GenerateToken(account, service.AudienceResetPassword, time.Hour).
		Return("reset-token", nil)
	fixtures.accountRepo.EXPECT().
		Save(mock.Anything, account).
		Run(func(_ context.Context, saved *entity.Account) {
			assert.Equal(t, "reset-token", saved.ResetToken)
			require.NotNil(t, saved.ResetTokenExpiresAt)
		}).
		Return(nil)
	fixtures.notifier.EXPECT().
		SendPasswordReset(mock.Anything, account.Email, "Alex Chen", "https://app.example.com/reset-password?token=reset-token").
		Return(nil)

	err := svc.ForgotPassword(context.Background(), "user@example.com")

	assert.NoError(t, err)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.accountRepo.EXPECT().
		FindByEmail(mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	fixtures.notifier.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ForgotPassword_Cooldown(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)
	fixtures.suppressor.EXPECT().Allow("forgot-password:user@example.com", time.Minute).Return(false)

	err := svc.ForgotPassword(context.Background(), "user@example.com")

	assert.NoError(t, err)
	fixtures.notifier.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	expiresAt := time.Now().Add(30 * time.Minute)
	account.ResetToken = "reset-token"
	account.ResetTokenExpiresAt = &expiresAt

	fixtures.tokenService.EXPECT().
		VerifyToken("reset-token", service.AudienceResetPassword).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.accountRepo.EXPECT().FindByResetToken(mock.Anything, "reset-token").Return(account, nil)
	fixtures.hasher.EXPECT().Hash("NewPassword1").Return("new-hash", nil)
	fixtures.accountRepo.EXPECT().
		Save(mock.Anything, account).
		Run(func(_ context.Context, saved *entity.Account) {
			// The hash and the token clear must land in one store update so
			// the link cannot be used twice.
			assert.Equal(t, "new-hash", saved.PasswordHash)
			assert.Empty(t, saved.ResetToken)
			assert.Nil(t, saved.ResetTokenExpiresAt)
		}).
		Return(nil)
	fixtures.sessionRepo.EXPECT().RevokeAllForAccount(mock.Anything, account.ID).Return(nil)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	err := svc.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "NewPassword1",
	})

	assert.NoError(t, err)
}

func TestAuthService_ResetPassword_ConsumedToken(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.tokenService.EXPECT().
		VerifyToken("reset-token", service.AudienceResetPassword).
		Return(&service.Claims{}, nil)
	fixtures.accountRepo.EXPECT().
		FindByResetToken(mock.Anything, "reset-token").
		Return(nil, repository.ErrAccountNotFound)

	err := svc.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "NewPassword1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_ResetPassword_StaleStoredToken(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	expiresAt := time.Now().Add(-time.Minute)
	account.ResetToken = "reset-token"
	account.ResetTokenExpiresAt = &expiresAt

	fixtures.tokenService.EXPECT().
		VerifyToken("reset-token", service.AudienceResetPassword).
		Return(&service.Claims{AccountID: account.ID}, nil)
	fixtures.accountRepo.EXPECT().FindByResetToken(mock.Anything, "reset-token").Return(account, nil)

	err := svc.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "NewPassword1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthService_OAuthLogin_ExistingLink(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.PrimaryProvider = entity.ProviderGoogle
	pair := testTokenPair()

	fixtures.verifier.EXPECT().
		Exchange(mock.Anything, "auth-code").
		Return(&service.OAuthUser{
			ID:            "google-sub-1",
			Email:         "user@example.com",
			Name:          "Alex Chen",
			Provider:      entity.ProviderGoogle,
			EmailVerified: true,
		}, nil)
	fixtures.passThroughSuppressor()
	fixtures.accountRepo.EXPECT().
		FindByOAuthLink(mock.Anything, entity.ProviderGoogle, "google-sub-1").
		Return(account, nil)
	fixtures.accountRepo.EXPECT().Save(mock.Anything, account).Return(nil)
	fixtures.expectIssueSession(account, pair)

	output, err := svc.OAuthLogin(context.Background(), usecase.OAuthLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "auth-code",
	})

	require.NoError(t, err)
	assert.Equal(t, account, output.Account)
	assert.Equal(t, pair, output.Tokens)
}

func TestAuthService_OAuthLogin_LinksByEmail(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.EmailVerified = false
	pair := testTokenPair()

	fixtures.verifier.EXPECT().
		Exchange(mock.Anything, "auth-code").
		Return(&service.OAuthUser{
			ID:            "google-sub-2",
			Email:         "User@Example.com",
			Name:          "Alex Chen",
			Provider:      entity.ProviderGoogle,
			AvatarURL:     "https://lh3.example.com/avatar",
			EmailVerified: true,
		}, nil)
	fixtures.passThroughSuppressor()
	fixtures.accountRepo.EXPECT().
		FindByOAuthLink(mock.Anything, entity.ProviderGoogle, "google-sub-2").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)
	fixtures.accountRepo.EXPECT().Save(mock.Anything, account).Return(nil)
	fixtures.expectIssueSession(account, pair)

	output, err := svc.OAuthLogin(context.Background(), usecase.OAuthLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "auth-code",
	})

	require.NoError(t, err)
	require.NotNil(t, account.LinkFor(entity.ProviderGoogle))
	assert.Equal(t, "google-sub-2", account.LinkFor(entity.ProviderGoogle).ProviderUserID)
	// The provider proved ownership of the address.
	assert.True(t, account.EmailVerified)
	assert.Equal(t, account, output.Account)
}

func TestAuthService_OAuthLogin_CreatesAccount(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	pair := testTokenPair()

	fixtures.verifier.EXPECT().
		Exchange(mock.Anything, "auth-code").
		Return(&service.OAuthUser{
			ID:            "google-sub-3",
			Email:         "new@example.com",
			Name:          "Morgan Lee",
			Provider:      entity.ProviderGoogle,
			EmailVerified: true,
		}, nil)
	fixtures.passThroughSuppressor()
	fixtures.accountRepo.EXPECT().
		FindByOAuthLink(mock.Anything, entity.ProviderGoogle, "google-sub-3").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.EXPECT().
		FindByEmail(mock.Anything, "new@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, created *entity.Account) {
			assert.Equal(t, "new@example.com", created.Email)
			assert.Equal(t, "Morgan", created.FirstName)
			assert.Equal(t, "Lee", created.LastName)
			assert.True(t, created.EmailVerified)
			assert.False(t, created.HasPassword())
			assert.Equal(t, entity.ProviderGoogle, created.PrimaryProvider)
		}).
		Return(nil)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)
	fixtures.accountRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Account")).Return(nil)
	fixtures.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("*entity.Account")).Return(pair, nil)
	fixtures.tokenService.EXPECT().HashToken(pair.RefreshToken).Return("hash-refresh")
	fixtures.sessionRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	output, err := svc.OAuthLogin(context.Background(), usecase.OAuthLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "auth-code",
	})

	require.NoError(t, err)
	assert.True(t, output.Account.EmailVerified)
	assert.Equal(t, pair, output.Tokens)
}

func TestAuthService_OAuthLogin_SecondLinkForProviderRejected(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.OAuthLinks = []entity.OAuthLink{{
		Provider:       entity.ProviderGoogle,
		ProviderUserID: "google-sub-original",
		Email:          account.Email,
	}}

	fixtures.verifier.EXPECT().
		Exchange(mock.Anything, "auth-code").
		Return(&service.OAuthUser{
			ID:            "google-sub-other",
			Email:         "user@example.com",
			Name:          "Alex Chen",
			Provider:      entity.ProviderGoogle,
			EmailVerified: true,
		}, nil)
	fixtures.passThroughSuppressor()
	fixtures.accountRepo.EXPECT().
		FindByOAuthLink(mock.Anything, entity.ProviderGoogle, "google-sub-other").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.EXPECT().FindByEmail(mock.Anything, "user@example.com").Return(account, nil)

	output, err := svc.OAuthLogin(context.Background(), usecase.OAuthLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "auth-code",
	})

	// The account already holds a google link for a different identity; a
	// second link for the same provider is never attached.
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
	assert.Nil(t, output)
	assert.Len(t, account.OAuthLinks, 1)
	fixtures.accountRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_OAuthLogin_UnsupportedProvider(t *testing.T) {
	svc, _ := createTestAuthService(t)

	output, err := svc.OAuthLogin(context.Background(), usecase.OAuthLoginInput{
		Provider: entity.ProviderFacebook,
		Code:     "auth-code",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
	assert.Nil(t, output)
}

func TestAuthService_OAuthLogin_ExchangeFails(t *testing.T) {
	svc, fixtures := createTestAuthService(t)

	fixtures.verifier.EXPECT().
		Exchange(mock.Anything, "bad-code").
		Return(nil, errors.New("provider rejected the code"))

	output, err := svc.OAuthLogin(context.Background(), usecase.OAuthLoginInput{
		Provider: entity.ProviderGoogle,
		Code:     "bad-code",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
	assert.Nil(t, output)
}

func TestAuthService_DeleteAccount_Success(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fixtures.hasher.EXPECT().Check("Password123!", "$2a$10$stored-hash").Return(true)
	fixtures.sessionRepo.EXPECT().RevokeAllForAccount(mock.Anything, account.ID).Return(nil)
	fixtures.accountRepo.EXPECT().Delete(mock.Anything, account.ID).Return(nil)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	err := svc.DeleteAccount(context.Background(), account.ID, "Password123!")

	assert.NoError(t, err)
}

func TestAuthService_DeleteAccount_WrongPassword(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()

	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fixtures.hasher.EXPECT().Check("wrong", "$2a$10$stored-hash").Return(false)

	err := svc.DeleteAccount(context.Background(), account.ID, "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fixtures.accountRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAuthService_DeleteAccount_PasswordlessAccount(t *testing.T) {
	svc, fixtures := createTestAuthService(t)
	account := testAccount()
	account.PasswordHash = ""
	account.PrimaryProvider = entity.ProviderGoogle

	fixtures.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fixtures.sessionRepo.EXPECT().RevokeAllForAccount(mock.Anything, account.ID).Return(nil)
	fixtures.accountRepo.EXPECT().Delete(mock.Anything, account.ID).Return(nil)
	fixtures.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.AuthEvent")).Return(nil)

	err := svc.DeleteAccount(context.Background(), account.ID, "")

	assert.NoError(t, err)
}
