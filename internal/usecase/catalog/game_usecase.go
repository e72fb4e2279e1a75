package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const operationSyncBalance = "Sync Game Balance"

// GameUseCase implements domain.GameUseCase
type GameUseCase struct {
	gameRepo    domain.GameRepository
	platformSvc domain.PlatformService
	activity    domain.ActivityUseCase
	logger      *logger.Logger
}

// NewGameUseCase creates a new game use case
func NewGameUseCase(
	gameRepo domain.GameRepository,
	platformSvc domain.PlatformService,
	activity domain.ActivityUseCase,
	logger *logger.Logger,
) domain.GameUseCase {
	return &GameUseCase{
		gameRepo:    gameRepo,
		platformSvc: platformSvc,
		activity:    activity,
		logger:      logger,
	}
}

// ListGames returns the catalog ordered by name
func (uc *GameUseCase) ListGames(ctx context.Context) ([]*domain.Game, error) {
	games, err := uc.gameRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list games", zap.Error(err))
		return nil, domain.NewDatabaseError("list games", err)
	}
	return games, nil
}

// GetGame returns one game by its surrogate id
func (uc *GameUseCase) GetGame(ctx context.Context, gameID int64) (*domain.Game, error) {
	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get game", zap.Int64("game_id", gameID), zap.Error(err))
		return nil, domain.NewDatabaseError("get game", err)
	}
	if game == nil {
		return nil, gameNotFound()
	}
	return game, nil
}

// SyncBalance pulls the current balance of an enabled game from the platform and stores it
func (uc *GameUseCase) SyncBalance(ctx context.Context, gameID int64, actor domain.Actor) (*domain.Game, error) {
	log := uc.logger.WithContext(ctx)

	game, err := uc.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.RobotStatus != domain.RobotStatusEnabled {
		log.Warn("Balance sync refused for disabled robot", zap.String("code", game.Code))
		return nil, domain.NewConflictError(domain.ErrCodeRobotDisabled, "Robot is disabled for this game")
	}

	balance, err := uc.platformSvc.GetBalance(ctx, game.Code)
	if err != nil {
		log.Error("Failed to fetch balance from game platform",
			zap.String("code", game.Code),
			zap.Error(err))

		var platformErr *domain.PlatformServiceError
		if errors.As(err, &platformErr) && platformErr.Is4xxError() {
			return nil, domain.NewAppError(domain.ErrCodeExternalService,
				fmt.Sprintf("Game platform rejected balance request: %s", platformErr.Message),
				http.StatusBadGateway, err)
		}
		return nil, domain.NewExternalServiceError("platform", "get balance", err)
	}

	if err := uc.gameRepo.UpdateBalance(ctx, game.ID, balance); err != nil {
		log.Error("Failed to store synced balance", zap.Int64("game_id", game.ID), zap.Error(err))
		return nil, domain.NewDatabaseError("update balance", err)
	}
	previous := game.Balance
	game.Balance = balance

	uc.activity.Record(ctx, actor, operationSyncBalance,
		fmt.Sprintf("%s balance %s -> %s", game.Code, previous.StringFixed(2), balance.StringFixed(2)))
	log.Info("Game balance synced",
		zap.String("code", game.Code),
		zap.String("balance", balance.String()))

	return game, nil
}

func gameNotFound() *domain.AppError {
	return domain.NewNotFoundError(domain.ErrCodeGameNotFound, "Game")
}
