package repository

import (
	"context"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"gorm.io/gorm"
)

// SubAccountRepository implements domain.SubAccountRepository
type SubAccountRepository struct {
	db *gorm.DB
}

// NewSubAccountRepository creates a new sub-account repository
func NewSubAccountRepository(db *gorm.DB) domain.SubAccountRepository {
	return &SubAccountRepository{db: db}
}

// GetByUsername retrieves a sub-account by username
func (r *SubAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.SubAccount, error) {
	var account domain.SubAccount
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	return notFound(&account, err)
}

// List returns sub-accounts whose username contains filter.Username
func (r *SubAccountRepository) List(ctx context.Context, filter domain.SubAccountFilter) ([]*domain.SubAccount, error) {
	query := r.db.WithContext(ctx)
	if filter.Username != "" {
		query = query.Where("LOWER(username) LIKE ? ESCAPE '\\'", containsPattern(filter.Username))
	}

	var accounts []*domain.SubAccount
	if err := query.Order("created_at DESC").Order("id DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Create creates a new sub-account
func (r *SubAccountRepository) Create(ctx context.Context, account *domain.SubAccount) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	return translateError(r.db.WithContext(ctx).Create(account).Error)
}
