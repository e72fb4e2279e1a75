package repository

import (
	"context"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"gorm.io/gorm"
)

// GameAccountRepository implements domain.GameAccountRepository
type GameAccountRepository struct {
	db *gorm.DB
}

// NewGameAccountRepository creates a new game account repository
func NewGameAccountRepository(db *gorm.DB) domain.GameAccountRepository {
	return &GameAccountRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *GameAccountRepository) WithTransaction(tx *gorm.DB) domain.GameAccountRepository {
	return &GameAccountRepository{db: tx}
}

// Create inserts a game account. A taken GameAccountID yields domain.ErrDuplicateKey.
func (r *GameAccountRepository) Create(ctx context.Context, account *domain.GameAccount) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	return translateError(r.db.WithContext(ctx).Omit("Game").Create(account).Error)
}

// ListByUserID returns the user's accounts with their games, oldest first
func (r *GameAccountRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.GameAccount, error) {
	var accounts []*domain.GameAccount
	err := r.db.WithContext(ctx).
		Preload("Game").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
