package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/domain/mocks"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func assertCode(t *testing.T, err error, code string, status int) {
	t.Helper()
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.HTTPStatus)
}

type gameDeps struct {
	games    *mocks.MockGameRepository
	platform *mocks.MockPlatformService
	activity *mocks.MockActivityUseCase
}

func newGameUseCase(t *testing.T) (domain.GameUseCase, gameDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := gameDeps{
		games:    mocks.NewMockGameRepository(ctrl),
		platform: mocks.NewMockPlatformService(ctrl),
		activity: mocks.NewMockActivityUseCase(ctrl),
	}
	return NewGameUseCase(deps.games, deps.platform, deps.activity, logger.NewNop()), deps
}

func TestGetGame_NotFound(t *testing.T) {
	uc, deps := newGameUseCase(t)
	deps.games.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

	_, err := uc.GetGame(context.Background(), 42)
	assertCode(t, err, domain.ErrCodeGameNotFound, 404)
}

func TestListGames_StoreFailure(t *testing.T) {
	uc, deps := newGameUseCase(t)
	deps.games.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := uc.ListGames(context.Background())
	assertCode(t, err, domain.ErrCodeDatabaseQuery, 500)
}

func TestSyncBalance(t *testing.T) {
	enabled := func() *domain.Game {
		return &domain.Game{ID: 1, Code: "MEGA88", Name: "Mega888", RobotStatus: domain.RobotStatusEnabled, Balance: decimal.NewFromInt(100)}
	}
	actor := domain.Actor{Username: "admin"}

	t.Run("stores platform balance", func(t *testing.T) {
		uc, deps := newGameUseCase(t)
		balance := decimal.RequireFromString("2500.75")
		deps.games.EXPECT().GetByID(gomock.Any(), int64(1)).Return(enabled(), nil)
		deps.platform.EXPECT().GetBalance(gomock.Any(), "MEGA88").Return(balance, nil)
		deps.games.EXPECT().UpdateBalance(gomock.Any(), int64(1), balance).Return(nil)
		deps.activity.EXPECT().Record(gomock.Any(), actor, "Sync Game Balance", "MEGA88 balance 100.00 -> 2500.75")

		game, err := uc.SyncBalance(context.Background(), 1, actor)
		require.NoError(t, err)
		assert.True(t, balance.Equal(game.Balance))
	})

	t.Run("disabled robot", func(t *testing.T) {
		uc, deps := newGameUseCase(t)
		game := enabled()
		game.RobotStatus = domain.RobotStatusDisabled
		deps.games.EXPECT().GetByID(gomock.Any(), int64(1)).Return(game, nil)

		_, err := uc.SyncBalance(context.Background(), 1, actor)
		assertCode(t, err, domain.ErrCodeRobotDisabled, 409)
	})

	t.Run("platform rejects", func(t *testing.T) {
		uc, deps := newGameUseCase(t)
		deps.games.EXPECT().GetByID(gomock.Any(), int64(1)).Return(enabled(), nil)
		deps.platform.EXPECT().GetBalance(gomock.Any(), "MEGA88").
			Return(decimal.Zero, &domain.PlatformServiceError{StatusCode: 404, Code: "GAME_UNKNOWN", Message: "unknown game"})

		_, err := uc.SyncBalance(context.Background(), 1, actor)
		assertCode(t, err, domain.ErrCodeExternalService, 502)
	})

	t.Run("platform unavailable", func(t *testing.T) {
		uc, deps := newGameUseCase(t)
		deps.games.EXPECT().GetByID(gomock.Any(), int64(1)).Return(enabled(), nil)
		deps.platform.EXPECT().GetBalance(gomock.Any(), "MEGA88").Return(decimal.Zero, errors.New("giving up after 4 attempts"))

		_, err := uc.SyncBalance(context.Background(), 1, actor)
		assertCode(t, err, domain.ErrCodeExternalService, 503)
	})
}

func TestListCommissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCommissionRepository(ctrl)
	uc := NewCommissionUseCase(repo, logger.NewNop())

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, err := uc.ListCommissions(context.Background(), domain.CommissionFilter{DateRange: domain.DateRange{Start: &start, End: &end}})
	assertCode(t, err, domain.ErrCodeValidation, 400)

	filter := domain.CommissionFilter{AgentUsername: "agent"}
	want := []*domain.Commission{{ID: 1, AgentUsername: "agent_one"}}
	repo.EXPECT().List(gomock.Any(), filter).Return(want, nil)

	got, err := uc.ListCommissions(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreateSubAccount(t *testing.T) {
	newUseCase := func(t *testing.T) (domain.SubAccountUseCase, *mocks.MockSubAccountRepository, *mocks.MockActivityUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		repo := mocks.NewMockSubAccountRepository(ctrl)
		activity := mocks.NewMockActivityUseCase(ctrl)
		return NewSubAccountUseCase(repo, auth.NewPasswordHasher(bcrypt.MinCost), activity, logger.NewNop()), repo, activity
	}
	actor := domain.Actor{Username: "agent_one", IPAddress: "10.0.0.8"}

	t.Run("success", func(t *testing.T) {
		uc, repo, activity := newUseCase(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "cashier").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		activity.EXPECT().Record(gomock.Any(), actor, "Create Sub Account", "Created sub-account cashier")

		account, err := uc.CreateSubAccount(context.Background(),
			domain.CreateSubAccountInput{Username: "cashier", Password: "pass1234"}, actor)
		require.NoError(t, err)
		assert.Equal(t, domain.UserStatusActive, account.Status)
		assert.Equal(t, "10.0.0.8", account.IPAddress)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("pass1234")))
	})

	t.Run("duplicate username", func(t *testing.T) {
		uc, repo, _ := newUseCase(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "cashier").Return(&domain.SubAccount{ID: 1}, nil)

		_, err := uc.CreateSubAccount(context.Background(),
			domain.CreateSubAccountInput{Username: "cashier", Password: "pass1234"}, actor)
		assertCode(t, err, domain.ErrCodeUsernameTaken, 409)
	})

	t.Run("lost race on unique index", func(t *testing.T) {
		uc, repo, _ := newUseCase(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "cashier").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateKey)

		_, err := uc.CreateSubAccount(context.Background(),
			domain.CreateSubAccountInput{Username: "cashier", Password: "pass1234"}, actor)
		assertCode(t, err, domain.ErrCodeUsernameTaken, 409)
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _, _ := newUseCase(t)
		_, err := uc.CreateSubAccount(context.Background(),
			domain.CreateSubAccountInput{Username: "cashier", Password: "pass1234", Status: "banned"}, actor)
		assertCode(t, err, domain.ErrCodeValidation, 400)
	})
}
