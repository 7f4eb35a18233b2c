package postgres

import (
	"context"
	"time"

	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	accountM := new(model.AccountModel)

	err := repo.db.WithContext(ctx).
		Preload("OAuthLinks").
		Where("id = ?", id).
		First(accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(accountM), nil
}

// FindByEmail retrieves a single account by its normalized email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	accountM := new(model.AccountModel)

	err := repo.db.WithContext(ctx).
		Preload("OAuthLinks").
		Where("email = ?", email).
		First(accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(accountM), nil
}

// FindByVerificationToken retrieves the account holding the given pending
// email-verification link token. Superseded tokens no longer match any row.
func (repo *accountRepository) FindByVerificationToken(ctx context.Context, token string) (*entity.Account, error) {
	accountM := new(model.AccountModel)

	err := repo.db.WithContext(ctx).
		Preload("OAuthLinks").
		Where("verification_token = ?", token).
		First(accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(accountM), nil
}

// FindByEmailAndCode retrieves the account whose pending one-time code matches
// and is unexpired. Expired and mismatched codes are indistinguishable.
func (repo *accountRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*entity.Account, error) {
	accountM := new(model.AccountModel)

	err := repo.db.WithContext(ctx).
		Preload("OAuthLinks").
		Where("email = ? AND verification_code = ? AND verification_code_expires_at > ?", email, code, time.Now()).
		First(accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(accountM), nil
}

// FindByResetToken retrieves the account holding the given pending password-reset token.
func (repo *accountRepository) FindByResetToken(ctx context.Context, token string) (*entity.Account, error) {
	accountM := new(model.AccountModel)

	err := repo.db.WithContext(ctx).
		Preload("OAuthLinks").
		Where("reset_token = ?", token).
		First(accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(accountM), nil
}

// FindByOAuthLink retrieves the account linked to the given provider identity.
func (repo *accountRepository) FindByOAuthLink(ctx context.Context, provider entity.Provider, providerUserID string) (*entity.Account, error) {
	linkM := new(model.OAuthLinkModel)

	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider.String(), providerUserID).
		First(linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return repo.FindByID(ctx, linkM.AccountID)
}

// Create persists a new account together with its OAuth links.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Save performs a full-record update of an existing account, replacing its
// OAuth links so new provider identities linked in memory are persisted.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	db := repo.db.WithContext(ctx)

	// Select("*") forces zero values (cleared codes, flipped flags) to be
	// written in the same UPDATE, keeping consume-and-flip atomic per row.
	if err := db.Model(&model.AccountModel{}).
		Where("id = ?", accountM.ID).
		Select("*").
		Omit("id", "created_at", "OAuthLinks", "Sessions").
		Updates(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	// Reconcile links: delete-and-insert is acceptable at this cardinality
	// (a handful of providers per account).
	if err := db.Where("account_id = ?", accountM.ID).Delete(&model.OAuthLinkModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear oauth links")
	}
	if len(accountM.OAuthLinks) > 0 {
		if err := db.Create(&accountM.OAuthLinks).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrConflict.WrapMessage("provider identity already linked")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save oauth links")
		}
	}

	return nil
}

// Delete hard-deletes the account by ID.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the account was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	links := make([]entity.OAuthLink, 0, len(data.OAuthLinks))
	for _, linkM := range data.OAuthLinks {
		links = append(links, entity.OAuthLink{
			Provider:       entity.Provider(linkM.Provider),
			ProviderUserID: linkM.ProviderUserID,
			Email:          linkM.Email,
			Name:           linkM.Name,
			AvatarURL:      linkM.AvatarURL,
			LinkedAt:       linkM.LinkedAt,
		})
	}

	return &entity.Account{
		ID:              data.ID,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Role:            entity.Role(data.Role),
		IsActive:        data.IsActive,
		EmailVerified:   data.EmailVerified,
		ProfileImage:    data.ProfileImage,
		PrimaryProvider: entity.Provider(data.PrimaryProvider),
		OAuthLinks:      links,

		VerificationCode:           data.VerificationCode,
		VerificationCodeExpiresAt:  data.VerificationCodeExpiresAt,
		VerificationToken:          data.VerificationToken,
		VerificationTokenExpiresAt: data.VerificationTokenExpiresAt,
		ResetToken:                 data.ResetToken,
		ResetTokenExpiresAt:        data.ResetTokenExpiresAt,

		LastLoginAt: data.LastLoginAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	links := make([]model.OAuthLinkModel, 0, len(data.OAuthLinks))
	for _, link := range data.OAuthLinks {
		links = append(links, model.OAuthLinkModel{
			AccountID:      data.ID,
			Provider:       link.Provider.String(),
			ProviderUserID: link.ProviderUserID,
			Email:          link.Email,
			Name:           link.Name,
			AvatarURL:      link.AvatarURL,
			LinkedAt:       link.LinkedAt,
		})
	}

	return &model.AccountModel{
		ID:              data.ID,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Role:            data.Role.String(),
		IsActive:        data.IsActive,
		EmailVerified:   data.EmailVerified,
		ProfileImage:    data.ProfileImage,
		PrimaryProvider: data.PrimaryProvider.String(),
		OAuthLinks:      links,

		VerificationCode:           data.VerificationCode,
		VerificationCodeExpiresAt:  data.VerificationCodeExpiresAt,
		VerificationToken:          data.VerificationToken,
		VerificationTokenExpiresAt: data.VerificationTokenExpiresAt,
		ResetToken:                 data.ResetToken,
		ResetTokenExpiresAt:        data.ResetTokenExpiresAt,

		LastLoginAt: data.LastLoginAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
