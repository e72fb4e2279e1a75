package provisioning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/saradorri/backoffice/internal/config"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const prefixLength = 3

// errIdentifierCollision marks an item whose every generated identifier was taken
var errIdentifierCollision = errors.New("identifier collision")

// Recorder receives batch outcomes for metrics
type Recorder interface {
	ObserveProvisioning(result *domain.ProvisioningResult)
	ObserveProvisioningFailure()
}

// ProvisioningUseCase implements domain.ProvisioningUseCase
type ProvisioningUseCase struct {
	userRepo    domain.UserRepository
	gameRepo    domain.GameRepository
	accountRepo domain.GameAccountRepository
	activity    domain.ActivityUseCase
	recorder    Recorder
	db          *gorm.DB
	cfg         config.ProvisioningConfig
	logger      *logger.Logger

	suffix func() int
	now    func() time.Time
}

// NewProvisioningUseCase creates a new provisioning use case
func NewProvisioningUseCase(
	userRepo domain.UserRepository,
	gameRepo domain.GameRepository,
	accountRepo domain.GameAccountRepository,
	activity domain.ActivityUseCase,
	recorder Recorder,
	db *gorm.DB,
	cfg config.ProvisioningConfig,
	logger *logger.Logger,
) domain.ProvisioningUseCase {
	cfg = cfg.WithDefaults()
	return &ProvisioningUseCase{
		userRepo:    userRepo,
		gameRepo:    gameRepo,
		accountRepo: accountRepo,
		activity:    activity,
		recorder:    recorder,
		db:          db,
		cfg:         cfg,
		logger:      logger,
		suffix: func() int {
			return cfg.SuffixMin + rand.Intn(cfg.SuffixMax-cfg.SuffixMin+1)
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// ProvisionGameAccounts creates one account per resolvable game in a single transaction.
// Unknown games, repeated ids and exhausted identifier retries are reported in Skipped;
// any other store failure rolls the whole batch back.
func (uc *ProvisioningUseCase) ProvisionGameAccounts(ctx context.Context, actor domain.Actor, userID int64, gameIDs []int64) (*domain.ProvisioningResult, error) {
	log := uc.logger.WithContext(ctx)
	log.Info("Starting game account provisioning",
		zap.Int64("user_id", userID),
		zap.Int("requested", len(gameIDs)))

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, uc.fail(ctx, log, "get user", err)
	}
	if user == nil {
		log.Warn("Provisioning target user not found", zap.Int64("user_id", userID))
		return nil, domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
	}

	tx := uc.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, uc.fail(ctx, log, "begin transaction", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	result, err := uc.provision(ctx, tx, log, userID, gameIDs)
	if err != nil {
		tx.Rollback()
		return nil, uc.fail(ctx, log, "create game accounts", err)
	}

	details, err := json.Marshal(result)
	if err != nil {
		tx.Rollback()
		return nil, uc.fail(ctx, log, "encode manifest", err)
	}

	if err := uc.activity.RecordTx(ctx, tx, actor, domain.OperationCreateGameAccounts, string(details)); err != nil {
		tx.Rollback()
		return nil, uc.fail(ctx, log, "record activity", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, uc.fail(ctx, log, "commit transaction", err)
	}

	uc.recorder.ObserveProvisioning(result)
	log.Info("Game account provisioning committed",
		zap.Int64("user_id", userID),
		zap.Int("created", len(result.Created)),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

func (uc *ProvisioningUseCase) provision(ctx context.Context, tx *gorm.DB, log *logger.Logger, userID int64, gameIDs []int64) (*domain.ProvisioningResult, error) {
	gameRepo := uc.gameRepo.WithTransaction(tx)
	accountRepo := uc.accountRepo.WithTransaction(tx)

	result := &domain.ProvisioningResult{
		Created: []domain.CreatedAccount{},
		Skipped: []domain.SkippedItem{},
	}
	seen := make(map[int64]struct{}, len(gameIDs))

	for _, gameID := range gameIDs {
		if _, dup := seen[gameID]; dup {
			result.Skipped = append(result.Skipped, domain.SkippedItem{GameID: gameID, Reason: domain.SkipReasonDuplicateGameID})
			continue
		}
		seen[gameID] = struct{}{}

		game, err := gameRepo.GetByID(ctx, gameID)
		if err != nil {
			return nil, fmt.Errorf("get game %d: %w", gameID, err)
		}
		if game == nil {
			log.Debug("Skipping unknown game", zap.Int64("game_id", gameID))
			result.Skipped = append(result.Skipped, domain.SkippedItem{GameID: gameID, Reason: domain.SkipReasonGameNotFound})
			continue
		}

		account, err := uc.createAccount(ctx, tx, accountRepo, log, userID, game)
		if errors.Is(err, errIdentifierCollision) {
			result.Skipped = append(result.Skipped, domain.SkippedItem{GameID: gameID, Reason: domain.SkipReasonIdentifierCollision})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create account for game %d: %w", gameID, err)
		}

		result.Created = append(result.Created, domain.CreatedAccount{
			GameID:            game.ID,
			GameName:          game.Name,
			ExternalAccountID: account.GameAccountID,
		})
	}

	return result, nil
}

// createAccount inserts inside a savepoint so a unique violation leaves the outer transaction usable
func (uc *ProvisioningUseCase) createAccount(ctx context.Context, tx *gorm.DB, repo domain.GameAccountRepository, log *logger.Logger, userID int64, game *domain.Game) (*domain.GameAccount, error) {
	for attempt := 1; attempt <= uc.cfg.MaxAttempts; attempt++ {
		account := &domain.GameAccount{
			UserID:        userID,
			GameID:        game.ID,
			GameAccountID: uc.newAccountID(game.Name),
			CreatedAt:     uc.now(),
		}

		err := tx.Transaction(func(sp *gorm.DB) error {
			return repo.WithTransaction(sp).Create(ctx, account)
		})
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return nil, err
		}

		log.Warn("Generated game account id already taken",
			zap.Int64("game_id", game.ID),
			zap.String("game_account_id", account.GameAccountID),
			zap.Int("attempt", attempt))
	}
	return nil, errIdentifierCollision
}

func (uc *ProvisioningUseCase) newAccountID(gameName string) string {
	return fmt.Sprintf("%s%05d", AccountPrefix(gameName), uc.suffix())
}

// AccountPrefix is the upper-cased first three characters of a game name
func AccountPrefix(gameName string) string {
	runes := []rune(strings.ToUpper(strings.TrimSpace(gameName)))
	if len(runes) > prefixLength {
		runes = runes[:prefixLength]
	}
	return string(runes)
}

func (uc *ProvisioningUseCase) fail(ctx context.Context, log *logger.Logger, operation string, err error) error {
	uc.recorder.ObserveProvisioningFailure()

	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Error("Game account provisioning timed out",
			zap.String("operation", operation),
			zap.Duration("timeout", uc.cfg.Timeout),
			zap.Error(err))
		return domain.NewProvisioningFailedError(fmt.Errorf("%s: %w", operation, ctxErr))
	}

	log.Error("Game account provisioning rolled back",
		zap.String("operation", operation),
		zap.Error(err))
	return domain.NewProvisioningFailedError(fmt.Errorf("%s: %w", operation, err))
}
