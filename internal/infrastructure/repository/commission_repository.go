package repository

import (
	"context"

	"github.com/saradorri/backoffice/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommissionRepository implements domain.CommissionRepository
type CommissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new commission repository
func NewCommissionRepository(db *gorm.DB) domain.CommissionRepository {
	return &CommissionRepository{db: db}
}

// List returns commissions matching filter, newest first
func (r *CommissionRepository) List(ctx context.Context, filter domain.CommissionFilter) ([]*domain.Commission, error) {
	query := r.db.WithContext(ctx).Model(&domain.Commission{})

	if filter.AgentUsername != "" {
		query = query.Where("LOWER(agent_username) LIKE ? ESCAPE '\\'", containsPattern(filter.AgentUsername))
	}
	query = applyDateRange(query, "date", filter.DateRange)

	var commissions []*domain.Commission
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Order("id DESC").
		Find(&commissions).Error
	if err != nil {
		return nil, err
	}
	return commissions, nil
}

// Create stores a commission record
func (r *CommissionRepository) Create(ctx context.Context, commission *domain.Commission) error {
	return r.db.WithContext(ctx).Create(commission).Error
}

// applyDateRange adds inclusive bounds on column
func applyDateRange(query *gorm.DB, column string, rng domain.DateRange) *gorm.DB {
	if rng.Start != nil {
		query = query.Where(clause.Gte{Column: clause.Column{Name: column}, Value: *rng.Start})
	}
	if rng.End != nil {
		query = query.Where(clause.Lte{Column: clause.Column{Name: column}, Value: *rng.End})
	}
	return query
}
