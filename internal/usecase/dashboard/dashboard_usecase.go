package dashboard

import (
	"context"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DashboardUseCase implements domain.DashboardUseCase
type DashboardUseCase struct {
	userRepo    domain.UserRepository
	accountRepo domain.GameAccountRepository
	logger      *logger.Logger
}

// NewDashboardUseCase creates a new dashboard use case
func NewDashboardUseCase(
	userRepo domain.UserRepository,
	accountRepo domain.GameAccountRepository,
	logger *logger.Logger,
) domain.DashboardUseCase {
	return &DashboardUseCase{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// SearchUser finds a user by exact username and lists its game accounts
func (uc *DashboardUseCase) SearchUser(ctx context.Context, username string) (*domain.UserAccounts, error) {
	log := uc.logger.WithContext(ctx)

	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Error("Failed to search user", zap.String("username", username), zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, userNotFound()
	}

	accounts, err := uc.accounts(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.UserAccounts{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Accounts: accounts,
	}, nil
}

// ListUserAccounts returns the game accounts of userID, oldest first
func (uc *DashboardUseCase) ListUserAccounts(ctx context.Context, userID int64) ([]domain.AccountView, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, userNotFound()
	}
	return uc.accounts(ctx, userID)
}

func (uc *DashboardUseCase) accounts(ctx context.Context, userID int64) ([]domain.AccountView, error) {
	rows, err := uc.accountRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list game accounts",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewDatabaseError("list game accounts", err)
	}

	views := make([]domain.AccountView, 0, len(rows))
	for _, a := range rows {
		views = append(views, domain.AccountView{
			GameID:        a.GameID,
			GameName:      a.Game.Name,
			GameAccountID: a.GameAccountID,
			Balance:       a.Game.Balance.StringFixed(2),
			CreatedAt:     a.CreatedAt,
		})
	}
	return views, nil
}

func userNotFound() *domain.AppError {
	return domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
}
