package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isDuplicateKey(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)")))
	assert.False(t, isDuplicateKey(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isDuplicateKey(errors.New("connection reset")))
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%ali\_ce\%%`, containsPattern("ALI_CE%"))
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	roles := testutil.SeedRoles(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := &domain.User{Username: "alice", Password: "h", RoleID: roles[domain.RolePlayer].ID, Status: domain.UserStatusActive}
	require.NoError(t, repo.Create(ctx, alice))
	assert.NotZero(t, alice.ID)

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{Username: "alice", Password: "h", RoleID: roles[domain.RolePlayer].ID, Status: domain.UserStatusActive})
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	})

	t.Run("get by username preloads role", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.RolePlayer, got.Role.Name)
	})

	t.Run("missing user is nil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update last login and password", func(t *testing.T) {
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, repo.UpdateLastLogin(ctx, alice.ID, at))
		require.NoError(t, repo.UpdatePassword(ctx, alice.ID, "h2"))

		got, err := repo.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastLoginAt)
		assert.True(t, at.Equal(*got.LastLoginAt))
		assert.Equal(t, "h2", got.Password)
	})

	t.Run("list by role", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &domain.User{Username: "zed", Password: "h", RoleID: roles[domain.RoleAgentManager].ID, Status: domain.UserStatusActive}))
		require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", Password: "h", RoleID: roles[domain.RolePlayer].ID, Status: domain.UserStatusActive}))

		players, err := repo.ListByRole(ctx, domain.RolePlayer)
		require.NoError(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, "alice", players[0].Username)
		assert.Equal(t, "bob", players[1].Username)
		assert.Equal(t, domain.RolePlayer, players[0].Role.Name)
	})
}

func TestGameAccountRepository_DuplicateExternalID(t *testing.T) {
	db := testutil.NewTestDB(t)
	game := &domain.Game{Code: "MEGA88", Name: "Mega888", Balance: decimal.Zero}
	testutil.MustCreate(t, db, game)
	repo := NewGameAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.GameAccount{UserID: 1, GameID: game.ID, GameAccountID: "MEG12345"}))
	err := repo.Create(ctx, &domain.GameAccount{UserID: 2, GameID: game.ID, GameAccountID: "MEG12345"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	// the same user may hold several accounts for one game
	require.NoError(t, repo.Create(ctx, &domain.GameAccount{UserID: 1, GameID: game.ID, GameAccountID: "MEG54321"}))

	accounts, err := repo.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Mega888", accounts[0].Game.Name)
}

func TestGameRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Pussy888", "918Kiss", "Mega888"} {
		require.NoError(t, repo.Create(ctx, &domain.Game{Code: name, Name: name}))
	}

	games, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "918Kiss", games[0].Name)
	assert.Equal(t, domain.RobotStatusDisabled, games[0].RobotStatus)

	require.NoError(t, repo.UpdateBalance(ctx, games[0].ID, decimal.RequireFromString("150.25")))
	got, err := repo.GetByCode(ctx, "918Kiss")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("150.25").Equal(got.Balance))

	assert.ErrorIs(t, repo.UpdateBalance(ctx, 404, decimal.Zero), gorm.ErrRecordNotFound)
}

func TestCommissionRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	for i, agent := range []string{"agent_one", "agent_two", "agent_one"} {
		require.NoError(t, repo.Create(ctx, &domain.Commission{
			AgentUsername: agent,
			GameName:      "Mega888",
			Turnover:      decimal.NewFromInt(1000),
			Rate:          decimal.RequireFromString("0.05"),
			Amount:        decimal.NewFromInt(50),
			Date:          day(i + 1),
		}))
	}

	all, err := repo.List(ctx, domain.CommissionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, day(3).Equal(all[0].Date))

	start, end := day(2), day(3)
	filtered, err := repo.List(ctx, domain.CommissionFilter{
		AgentUsername: "ONE",
		DateRange:     domain.DateRange{Start: &start, End: &end},
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "agent_one", filtered[0].AgentUsername)
}

func TestSubAccountRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSubAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.SubAccount{Username: "ops_north", Password: "h", Status: domain.UserStatusActive}))
	require.NoError(t, repo.Create(ctx, &domain.SubAccount{Username: "ops_south", Password: "h", Status: domain.UserStatusActive}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.SubAccount{Username: "ops_north", Password: "h"}), domain.ErrDuplicateKey)

	got, err := repo.List(ctx, domain.SubAccountFilter{Username: "NORTH"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ops_north", got[0].Username)

	missing, err := repo.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestActivityLogRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewActivityLogRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, agent := range []string{"Alice", "bob", "alice_two"} {
		require.NoError(t, repo.Create(ctx, &domain.ActivityLog{
			Agent:     agent,
			IPAddress: fmt.Sprintf("10.0.0.%d", i+1),
			Operation: "Login",
			Timestamp: base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}

	t.Run("username is case insensitive substring", func(t *testing.T) {
		entries, err := repo.List(ctx, domain.ActivityLogFilter{Username: "ALICE"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "alice_two", entries[0].Agent)
	})

	t.Run("ip substring", func(t *testing.T) {
		entries, err := repo.List(ctx, domain.ActivityLogFilter{IP: "0.0.2"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "bob", entries[0].Agent)
	})

	t.Run("inclusive date range", func(t *testing.T) {
		start := base
		end := base.Add(24 * time.Hour)
		entries, err := repo.List(ctx, domain.ActivityLogFilter{DateRange: domain.DateRange{Start: &start, End: &end}})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("transaction rollback discards entry", func(t *testing.T) {
		tx := db.Begin()
		require.NoError(t, repo.WithTransaction(tx).Create(ctx, &domain.ActivityLog{Agent: "ghost", Timestamp: base}))
		require.NoError(t, tx.Rollback().Error)

		entries, err := repo.List(ctx, domain.ActivityLogFilter{Username: "ghost"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
