package domain

import (
	"context"
	"time"
)

// SkipReason explains why one requested game produced no account
type SkipReason string

const (
	SkipReasonGameNotFound        SkipReason = "GAME_NOT_FOUND"
	SkipReasonIdentifierCollision SkipReason = "IDENTIFIER_COLLISION"
	SkipReasonDuplicateGameID     SkipReason = "DUPLICATE_GAME_ID"
)

// OperationCreateGameAccounts is the activity log operation of a provisioning batch
const OperationCreateGameAccounts = "Create Game Accounts"

// CreatedAccount is one entry of the provisioning manifest
type CreatedAccount struct {
	GameID            int64  `json:"game_id"`
	GameName          string `json:"game_name"`
	ExternalAccountID string `json:"game_account_id"`
}

// SkippedItem is a per-item provisioning failure
type SkippedItem struct {
	GameID int64      `json:"game_id"`
	Reason SkipReason `json:"reason"`
}

// ProvisioningResult is the outcome of a committed provisioning batch
type ProvisioningResult struct {
	Created []CreatedAccount `json:"created"`
	Skipped []SkippedItem    `json:"skipped"`
}

// ProvisioningUseCase creates game accounts for a user in one all-or-nothing batch
type ProvisioningUseCase interface {
	ProvisionGameAccounts(ctx context.Context, actor Actor, userID int64, gameIDs []int64) (*ProvisioningResult, error)
}

// AccountView is a game account joined with its game, as shown on the dashboard
type AccountView struct {
	GameID        int64     `json:"game_id"`
	GameName      string    `json:"game_name"`
	GameAccountID string    `json:"game_account_id"`
	Balance       string    `json:"balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserAccounts is the dashboard search result
type UserAccounts struct {
	UserID   int64         `json:"user_id"`
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Accounts []AccountView `json:"accounts"`
}

// DashboardUseCase defines the dashboard lookups
type DashboardUseCase interface {
	SearchUser(ctx context.Context, username string) (*UserAccounts, error)
	ListUserAccounts(ctx context.Context, userID int64) ([]AccountView, error)
}
