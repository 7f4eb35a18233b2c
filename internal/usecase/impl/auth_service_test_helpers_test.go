package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"authd/config"
	"authd/internal/domain/entity"
	"authd/internal/domain/service"
	mockRepo "authd/internal/mocks/repository"
	mockService "authd/internal/mocks/service"
	"authd/internal/usecase"
)

// authServiceFixtures bundles every mocked dependency of authService so tests
// can set expectations on exactly the collaborators they touch.
type authServiceFixtures struct {
	accountRepo  *mockRepo.MockAccountRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	notifier     *mockService.MockNotifier
	publisher    *mockService.MockEventPublisher
	suppressor   *mockService.MockCallSuppressor
	verifier     *mockService.MockOAuthVerifier
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Token: &config.TokenConfig{
			SecretKey:       "test-secret",
			Issuer:          "authd-test",
			AccessTTL:       15 * time.Minute,
			RefreshTTL:      7 * 24 * time.Hour,
			VerificationTTL: 24 * time.Hour,
			ResetTTL:        time.Hour,
		},
		Auth: &config.AuthConfig{
			BcryptCost:     10,
			ResendCooldown: time.Minute,
		},
		Mail: &config.MailConfig{
			Provider:    "log",
			LinkBaseURL: "https://app.example.com",
		},
	}
}

// createTestAuthService builds an authService with all collaborators mocked.
// The single registered verifier serves the google provider.
func createTestAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceFixtures) {
	t.Helper()

	fixtures := &authServiceFixtures{
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		notifier:     mockService.NewMockNotifier(t),
		publisher:    mockService.NewMockEventPublisher(t),
		suppressor:   mockService.NewMockCallSuppressor(t),
		verifier:     mockService.NewMockOAuthVerifier(t),
	}

	// The constructor indexes verifiers by provider tag.
	fixtures.verifier.EXPECT().Provider().Return(entity.ProviderGoogle)

	svc := NewAuthService(AuthServiceParams{
		AccountRepo:  fixtures.accountRepo,
		SessionRepo:  fixtures.sessionRepo,
		Hasher:       fixtures.hasher,
		TokenService: fixtures.tokenService,
		Notifier:     fixtures.notifier,
		Publisher:    fixtures.publisher,
		Suppressor:   fixtures.suppressor,
		Verifiers:    []service.OAuthVerifier{fixtures.verifier},
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return svc, fixtures
}

// passThroughSuppressor makes Do execute the wrapped function directly, the
// behavior of the real suppressor for an uncontended key.
func (f *authServiceFixtures) passThroughSuppressor() {
	f.suppressor.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(_ string, fn func() (any, error)) (any, error) {
			return fn()
		})
}

// expectIssueSession wires the token mint and session persistence that every
// successful authentication ends with.
func (f *authServiceFixtures) expectIssueSession(account *entity.Account, pair *service.TokenPair) {
	f.tokenService.EXPECT().GenerateTokens(account).Return(pair, nil)
	f.tokenService.EXPECT().HashToken(pair.RefreshToken).Return("hash-" + pair.RefreshToken)
	f.sessionRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:              uuid.New(),
		Email:           "user@example.com",
		PasswordHash:    "$2a$10$stored-hash",
		FirstName:       "Alex",
		LastName:        "Chen",
		Role:            entity.RoleUser,
		IsActive:        true,
		EmailVerified:   true,
		PrimaryProvider: entity.ProviderLocal,
	}
}

func testTokenPair() *service.TokenPair {
	now := time.Now()

	return &service.TokenPair{
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshExpiresAt: now.Add(7 * 24 * time.Hour),
	}
}
