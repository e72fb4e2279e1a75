package catalog

import (
	"context"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CommissionUseCase implements domain.CommissionUseCase
type CommissionUseCase struct {
	repo   domain.CommissionRepository
	logger *logger.Logger
}

// NewCommissionUseCase creates a new commission use case
func NewCommissionUseCase(repo domain.CommissionRepository, logger *logger.Logger) domain.CommissionUseCase {
	return &CommissionUseCase{repo: repo, logger: logger}
}

// ListCommissions returns commissions matching filter, newest first
func (uc *CommissionUseCase) ListCommissions(ctx context.Context, filter domain.CommissionFilter) ([]*domain.Commission, error) {
	if !filter.DateRange.Valid() {
		return nil, domain.NewValidationError("end_date", "must not be before start_date")
	}

	commissions, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list commissions",
			zap.String("agent", filter.AgentUsername),
			zap.Error(err))
		return nil, domain.NewDatabaseError("list commissions", err)
	}
	return commissions, nil
}
