package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const operationCreateSubAccount = "Create Sub Account"

// SubAccountUseCase implements domain.SubAccountUseCase
type SubAccountUseCase struct {
	repo     domain.SubAccountRepository
	hasher   auth.PasswordHasher
	activity domain.ActivityUseCase
	logger   *logger.Logger
}

// NewSubAccountUseCase creates a new sub-account use case
func NewSubAccountUseCase(
	repo domain.SubAccountRepository,
	hasher auth.PasswordHasher,
	activity domain.ActivityUseCase,
	logger *logger.Logger,
) domain.SubAccountUseCase {
	return &SubAccountUseCase{
		repo:     repo,
		hasher:   hasher,
		activity: activity,
		logger:   logger,
	}
}

// ListSubAccounts returns sub-accounts matching filter, newest first
func (uc *SubAccountUseCase) ListSubAccounts(ctx context.Context, filter domain.SubAccountFilter) ([]*domain.SubAccount, error) {
	accounts, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list sub-accounts", zap.Error(err))
		return nil, domain.NewDatabaseError("list sub-accounts", err)
	}
	return accounts, nil
}

// CreateSubAccount stores a new sub-account with a hashed password
func (uc *SubAccountUseCase) CreateSubAccount(ctx context.Context, in domain.CreateSubAccountInput, actor domain.Actor) (*domain.SubAccount, error) {
	log := uc.logger.WithContext(ctx)

	if in.Username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}
	if in.Status == "" {
		in.Status = domain.UserStatusActive
	}
	if !in.Status.Valid() {
		return nil, domain.NewValidationError("status", "must be active or inactive")
	}

	existing, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		log.Error("Failed to check sub-account username", zap.String("username", in.Username), zap.Error(err))
		return nil, domain.NewDatabaseError("get sub-account", err)
	}
	if existing != nil {
		return nil, subAccountTaken()
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	account := &domain.SubAccount{
		Username:  in.Username,
		Password:  hash,
		Status:    in.Status,
		IPAddress: actor.IPAddress,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, subAccountTaken()
		}
		log.Error("Failed to create sub-account", zap.String("username", in.Username), zap.Error(err))
		return nil, domain.NewDatabaseError("create sub-account", err)
	}

	uc.activity.Record(ctx, actor, operationCreateSubAccount, fmt.Sprintf("Created sub-account %s", account.Username))
	log.Info("Sub-account created",
		zap.Int64("sub_account_id", account.ID),
		zap.String("created_by", actor.Username))

	return account, nil
}

func subAccountTaken() *domain.AppError {
	return domain.NewConflictError(domain.ErrCodeUsernameTaken, "Sub-account username already exists")
}
