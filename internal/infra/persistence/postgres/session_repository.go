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

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session, representing one logged-in device.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("session already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindValidByHash retrieves the session for the given token hash only if it is
// currently usable. Revoked and expired rows look exactly like missing ones.
func (repo *sessionRepository) FindValidByHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	sessionM := new(model.SessionModel)

	err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = false AND expires_at > ?", tokenHash, time.Now()).
		First(sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toSessionDomain(sessionM), nil
}

// FindByAccountID retrieves all currently valid sessions for an account, newest first.
func (repo *sessionRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND revoked = false AND expires_at > ?", accountID, time.Now()).
		Order("created_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// Revoke marks the single session with the given token hash inactive.
func (repo *sessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token_hash = ? AND revoked = false", tokenHash).
		Updates(map[string]any{
			"revoked":    true,
			"revoked_at": time.Now(),
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, the session was already gone or revoked.
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// RevokeAllForAccount marks every active session of the account inactive.
func (repo *sessionRepository) RevokeAllForAccount(ctx context.Context, accountID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("account_id = ? AND revoked = false", accountID).
		Updates(map[string]any{
			"revoked":    true,
			"revoked_at": time.Now(),
		}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteExpiredOrRevoked physically removes dead session rows.
func (repo *sessionRepository) DeleteExpiredOrRevoked(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("revoked = true OR expires_at < ?", time.Now()).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
		RevokedAt: data.RevokedAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
		RevokedAt: data.RevokedAt,
		CreatedAt: data.CreatedAt,
	}
}
