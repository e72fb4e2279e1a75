package repository

import (
	"context"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityLogRepository implements domain.ActivityLogRepository
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) domain.ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *ActivityLogRepository) WithTransaction(tx *gorm.DB) domain.ActivityLogRepository {
	return &ActivityLogRepository{db: tx}
}

// Create appends an entry to the audit trail
func (r *ActivityLogRepository) Create(ctx context.Context, entry *domain.ActivityLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns entries matching filter, newest first.
// Username and IP match case-insensitively as substrings.
func (r *ActivityLogRepository) List(ctx context.Context, filter domain.ActivityLogFilter) ([]*domain.ActivityLog, error) {
	query := r.db.WithContext(ctx).Model(&domain.ActivityLog{})

	if filter.Username != "" {
		query = query.Where("LOWER(agent) LIKE ? ESCAPE '\\'", containsPattern(filter.Username))
	}
	if filter.IP != "" {
		query = query.Where("ip_address LIKE ? ESCAPE '\\'", containsPattern(filter.IP))
	}
	query = applyDateRange(query, "timestamp", filter.DateRange)

	var entries []*domain.ActivityLog
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
