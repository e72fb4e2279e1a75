package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RobotStatus controls whether automated balance sync is active for a game
type RobotStatus string

const (
	RobotStatusEnabled  RobotStatus = "enabled"
	RobotStatusDisabled RobotStatus = "disabled"
)

// Game is a provisionable catalog entry. ID is the stable surrogate key used by
// every API; Code is the human readable short code known to the game platform.
type Game struct {
	ID          int64           `json:"game_id" gorm:"primaryKey;column:id;autoIncrement"`
	Code        string          `json:"code" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Name        string          `json:"name" gorm:"not null;type:varchar(255)"`
	DisplayName string          `json:"display_name" gorm:"type:varchar(255)"`
	Balance     decimal.Decimal `json:"balance" gorm:"type:numeric(15,2);not null;default:0"`
	AndroidURL  string          `json:"android_url,omitempty" gorm:"type:text"`
	IOSURL      string          `json:"ios_url,omitempty" gorm:"column:ios_url;type:text"`
	RobotStatus RobotStatus     `json:"robot_status" gorm:"type:varchar(16);not null;default:'disabled'"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// GameAccount is a provisioned per-(user, game) external identifier
type GameAccount struct {
	ID            int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	UserID        int64     `json:"user_id" gorm:"index;not null"`
	GameID        int64     `json:"game_id" gorm:"index;not null"`
	GameAccountID string    `json:"game_account_id" gorm:"uniqueIndex;not null;type:varchar(32)"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`

	Game Game `json:"-" gorm:"foreignKey:GameID"`
}

// TableName specifies the table name for GameAccount
func (a GameAccount) TableName() string {
	return "user_game_accounts"
}

// GameRepository defines the interface for game catalog data
type GameRepository interface {
	GetByID(ctx context.Context, id int64) (*Game, error)
	GetByCode(ctx context.Context, code string) (*Game, error)
	List(ctx context.Context) ([]*Game, error)
	Create(ctx context.Context, game *Game) error
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	WithTransaction(tx *gorm.DB) GameRepository
}

// GameAccountRepository defines the interface for provisioned accounts
type GameAccountRepository interface {
	// Create returns an error wrapping ErrDuplicateKey when GameAccountID is taken.
	Create(ctx context.Context, account *GameAccount) error
	ListByUserID(ctx context.Context, userID int64) ([]*GameAccount, error)
	WithTransaction(tx *gorm.DB) GameAccountRepository
}

// PlatformService is the external game platform holding the authoritative game balances
type PlatformService interface {
	GetBalance(ctx context.Context, gameCode string) (decimal.Decimal, error)
}

// PlatformServiceError represents a non-success answer from the game platform
type PlatformServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *PlatformServiceError) Error() string {
	return e.Message
}

// Is4xxError checks if the error is a 4xx client error
func (e *PlatformServiceError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// GameUseCase defines catalog reads and balance sync
type GameUseCase interface {
	ListGames(ctx context.Context) ([]*Game, error)
	GetGame(ctx context.Context, gameID int64) (*Game, error)
	SyncBalance(ctx context.Context, gameID int64, actor Actor) (*Game, error)
}
