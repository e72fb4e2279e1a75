package repository

import (
	"context"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *GameRepository) WithTransaction(tx *gorm.DB) domain.GameRepository {
	return &GameRepository{db: tx}
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(ctx context.Context, id int64) (*domain.Game, error) {
	var game domain.Game
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&game).Error
	return notFound(&game, err)
}

// GetByCode retrieves a game by its platform code
func (r *GameRepository) GetByCode(ctx context.Context, code string) (*domain.Game, error) {
	var game domain.Game
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&game).Error
	return notFound(&game, err)
}

// List returns the catalog ordered by name
func (r *GameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	var games []*domain.Game
	if err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// Create creates a new game
func (r *GameRepository) Create(ctx context.Context, game *domain.Game) error {
	now := time.Now().UTC()
	game.CreatedAt = now
	game.UpdatedAt = now
	if game.RobotStatus == "" {
		game.RobotStatus = domain.RobotStatusDisabled
	}
	return translateError(r.db.WithContext(ctx).Create(game).Error)
}

// UpdateBalance stores a new balance for the game
func (r *GameRepository) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	updates := map[string]interface{}{
		"balance":    balance,
		"updated_at": time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Model(&domain.Game{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
