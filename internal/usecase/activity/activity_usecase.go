package activity

import (
	"context"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityUseCase implements domain.ActivityUseCase
type ActivityUseCase struct {
	repo   domain.ActivityLogRepository
	logger *logger.Logger
	now    func() time.Time
}

// NewActivityUseCase creates a new activity use case
func NewActivityUseCase(repo domain.ActivityLogRepository, logger *logger.Logger) domain.ActivityUseCase {
	return &ActivityUseCase{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Record appends an audit entry. A failed write is logged and never fails the caller.
func (uc *ActivityUseCase) Record(ctx context.Context, actor domain.Actor, operation, details string) {
	if err := uc.repo.Create(ctx, uc.entry(actor, operation, details)); err != nil {
		uc.logger.WithContext(ctx).Warn("Failed to record activity",
			zap.String("agent", actor.Username),
			zap.String("operation", operation),
			zap.Error(err))
	}
}

// RecordTx appends an audit entry inside tx
func (uc *ActivityUseCase) RecordTx(ctx context.Context, tx *gorm.DB, actor domain.Actor, operation, details string) error {
	return uc.repo.WithTransaction(tx).Create(ctx, uc.entry(actor, operation, details))
}

// List returns entries matching filter, newest first
func (uc *ActivityUseCase) List(ctx context.Context, filter domain.ActivityLogFilter) ([]*domain.ActivityLog, error) {
	if !filter.DateRange.Valid() {
		return nil, domain.NewValidationError("end_date", "must not be before start_date")
	}

	entries, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list activity logs", zap.Error(err))
		return nil, domain.NewDatabaseError("list activity logs", err)
	}
	return entries, nil
}

func (uc *ActivityUseCase) entry(actor domain.Actor, operation, details string) *domain.ActivityLog {
	browser, device := ParseUserAgent(actor.UserAgent)
	return &domain.ActivityLog{
		Agent:     actor.Username,
		IPAddress: actor.IPAddress,
		Browser:   browser,
		Device:    device,
		Operation: operation,
		Details:   details,
		Timestamp: uc.now(),
	}
}
