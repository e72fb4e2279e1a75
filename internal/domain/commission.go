package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Commission is an accounting record produced by the commission batch
type Commission struct {
	ID            int64           `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	AgentUsername string          `json:"agent_username" gorm:"index;not null;type:varchar(255)"`
	GameName      string          `json:"game_name" gorm:"type:varchar(255)"`
	Turnover      decimal.Decimal `json:"turnover" gorm:"type:numeric(15,2);not null;default:0"`
	Rate          decimal.Decimal `json:"commission_rate" gorm:"column:commission_rate;type:numeric(5,4);not null;default:0"`
	Amount        decimal.Decimal `json:"commission_amount" gorm:"column:commission_amount;type:numeric(15,2);not null;default:0"`
	Date          time.Time       `json:"date" gorm:"index;not null"`
}

// TableName specifies the table name for Commission
func (c Commission) TableName() string {
	return "commissions"
}

// CommissionFilter narrows a commission listing
type CommissionFilter struct {
	AgentUsername string
	DateRange
}

// CommissionRepository defines the interface for commission data
type CommissionRepository interface {
	List(ctx context.Context, filter CommissionFilter) ([]*Commission, error)
	Create(ctx context.Context, commission *Commission) error
}

// CommissionUseCase lists commissions
type CommissionUseCase interface {
	ListCommissions(ctx context.Context, filter CommissionFilter) ([]*Commission, error)
}
