// Package model contains the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash    string    `gorm:"type:varchar(255)"`
	FirstName       string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	Role            string    `gorm:"type:varchar(50);not null;default:'user'"`
	IsActive        bool      `gorm:"not null;default:true"`
	EmailVerified   bool      `gorm:"not null;default:false"`
	ProfileImage    string    `gorm:"type:text"`
	PrimaryProvider string    `gorm:"type:varchar(50);not null;default:'local'"`

	VerificationCode           string     `gorm:"type:varchar(16)"`
	VerificationCodeExpiresAt  *time.Time
	VerificationToken          string     `gorm:"type:varchar(512);index"`
	VerificationTokenExpiresAt *time.Time
	ResetToken                 string     `gorm:"type:varchar(512);index"`
	ResetTokenExpiresAt        *time.Time

	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	OAuthLinks []OAuthLinkModel `gorm:"foreignKey:AccountID"`
	Sessions   []SessionModel   `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// OAuthLinkModel mirrors the 'oauth_links' table. The provider + provider user
// ID pair is unique across all accounts.
type OAuthLinkModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_oauth_provider_provider_user_id"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_oauth_provider_provider_user_id"`
	Email          string    `gorm:"type:varchar(255)"`
	Name           string    `gorm:"type:varchar(255)"`
	AvatarURL      string    `gorm:"type:text"`
	LinkedAt       time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OAuthLinkModel) TableName() string {
	return "oauth_links"
}
