package domain

import (
	"context"
	"time"
)

// SubAccount is an operator-level delegated login, separate from User
type SubAccount struct {
	ID        int64      `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Username  string     `json:"username" gorm:"uniqueIndex;not null;type:varchar(255)"`
	Password  string     `json:"-" gorm:"column:password_hash;not null;type:varchar(255)"`
	Status    UserStatus `json:"status" gorm:"type:varchar(16);not null;default:'active'"`
	LoginTime *time.Time `json:"login_time"`
	IPAddress string     `json:"ip_address" gorm:"type:varchar(45)"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for SubAccount
func (s SubAccount) TableName() string {
	return "sub_accounts"
}

// SubAccountFilter narrows a sub-account listing
type SubAccountFilter struct {
	Username string
}

// SubAccountRepository defines the interface for sub-account data
type SubAccountRepository interface {
	GetByUsername(ctx context.Context, username string) (*SubAccount, error)
	List(ctx context.Context, filter SubAccountFilter) ([]*SubAccount, error)
	Create(ctx context.Context, account *SubAccount) error
}

// CreateSubAccountInput carries the fields needed to create a sub-account
type CreateSubAccountInput struct {
	Username string
	Password string
	Status   UserStatus
}

// SubAccountUseCase manages sub-accounts
type SubAccountUseCase interface {
	ListSubAccounts(ctx context.Context, filter SubAccountFilter) ([]*SubAccount, error)
	CreateSubAccount(ctx context.Context, in CreateSubAccountInput, actor Actor) (*SubAccount, error)
}
