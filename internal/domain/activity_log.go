package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ActivityLog is an append-only audit entry
type ActivityLog struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Agent     string    `json:"agent" gorm:"index;not null;type:varchar(255)"`
	IPAddress string    `json:"ip_address" gorm:"type:varchar(45)"`
	Browser   string    `json:"browser" gorm:"type:varchar(255)"`
	Device    string    `json:"device" gorm:"type:varchar(255)"`
	Operation string    `json:"operation" gorm:"type:varchar(255)"`
	Details   string    `json:"details" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;index;not null"`
}

// TableName specifies the table name for ActivityLog
func (a ActivityLog) TableName() string {
	return "activity_logs"
}

// Actor identifies who triggered a mutation and from where
type Actor struct {
	UserID    int64
	Username  string
	Role      string
	IPAddress string
	UserAgent string
}

// ActivityLogFilter narrows an activity log listing. Empty fields are ignored.
type ActivityLogFilter struct {
	Username string
	IP       string
	DateRange
}

// ActivityLogRepository defines the interface for the audit trail
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *ActivityLog) error
	List(ctx context.Context, filter ActivityLogFilter) ([]*ActivityLog, error)
	WithTransaction(tx *gorm.DB) ActivityLogRepository
}

// ActivityUseCase records and lists audit entries
type ActivityUseCase interface {
	Record(ctx context.Context, actor Actor, operation, details string)
	// RecordTx appends the entry inside tx so it commits or rolls back with it.
	RecordTx(ctx context.Context, tx *gorm.DB, actor Actor, operation, details string) error
	List(ctx context.Context, filter ActivityLogFilter) ([]*ActivityLog, error)
}
