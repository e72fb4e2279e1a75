package provisioning

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/saradorri/backoffice/internal/config"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/repository"
	"github.com/saradorri/backoffice/internal/testutil"
	"github.com/saradorri/backoffice/internal/usecase/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecorder struct {
	batches  []*domain.ProvisioningResult
	failures int
}

func (r *fakeRecorder) ObserveProvisioning(result *domain.ProvisioningResult) {
	r.batches = append(r.batches, result)
}

func (r *fakeRecorder) ObserveProvisioningFailure() {
	r.failures++
}

type fixture struct {
	db       *gorm.DB
	uc       *ProvisioningUseCase
	recorder *fakeRecorder
	user     *domain.User
	games    map[string]*domain.Game
	actor    domain.Actor
}

func newFixture(t *testing.T, cfg config.ProvisioningConfig) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	roles := testutil.SeedRoles(t, db)

	user := &domain.User{ID: 7, Username: "alice", Name: "Alice", Password: "x", RoleID: roles[domain.RolePlayer].ID, Status: domain.UserStatusActive}
	testutil.MustCreate(t, db, user)

	games := map[string]*domain.Game{}
	for _, g := range []struct{ code, name string }{
		{"918KISS", "918Kiss"},
		{"MEGA88", "Mega888"},
		{"PUSSY888", "Pussy888"},
	} {
		game := &domain.Game{Code: g.code, Name: g.name}
		testutil.MustCreate(t, db, game)
		games[g.code] = game
	}

	recorder := &fakeRecorder{}
	log := logger.NewNop()
	uc := NewProvisioningUseCase(
		repository.NewUserRepository(db),
		repository.NewGameRepository(db),
		repository.NewGameAccountRepository(db),
		activity.NewActivityUseCase(repository.NewActivityLogRepository(db), log),
		recorder,
		db,
		cfg,
		log,
	).(*ProvisioningUseCase)

	return &fixture{
		db:       db,
		uc:       uc,
		recorder: recorder,
		user:     user,
		games:    games,
		actor:    domain.Actor{UserID: 2, Username: "agent_one", IPAddress: "10.0.0.5"},
	}
}

func (f *fixture) accounts(t *testing.T) []*domain.GameAccount {
	t.Helper()
	accounts, err := repository.NewGameAccountRepository(f.db).ListByUserID(context.Background(), f.user.ID)
	require.NoError(t, err)
	return accounts
}

func (f *fixture) activityLogs(t *testing.T) []*domain.ActivityLog {
	t.Helper()
	var entries []*domain.ActivityLog
	require.NoError(t, f.db.Find(&entries).Error)
	return entries
}

// sequence returns the given values in order, then keeps repeating the last one
func sequence(values ...int) func() int {
	i := 0
	return func() int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func requireAppError(t *testing.T, err error, code string) *domain.AppError {
	t.Helper()
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestProvisionGameAccounts_CreatesOnePerGame(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})
	kiss, mega := f.games["918KISS"], f.games["MEGA88"]

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{kiss.ID, mega.ID})
	require.NoError(t, err)

	require.Len(t, result.Created, 2)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, "918Kiss", result.Created[0].GameName)
	assert.Regexp(t, regexp.MustCompile(`^918\d{5}$`), result.Created[0].ExternalAccountID)
	assert.Equal(t, "Mega888", result.Created[1].GameName)
	assert.Regexp(t, regexp.MustCompile(`^MEG\d{5}$`), result.Created[1].ExternalAccountID)

	assert.Len(t, f.accounts(t), 2)
	require.Len(t, f.recorder.batches, 1)
	assert.Zero(t, f.recorder.failures)
}

func TestProvisionGameAccounts_UnknownGameDoesNotBlockOthers(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})
	kiss, mega := f.games["918KISS"], f.games["MEGA88"]

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{kiss.ID, 999, mega.ID})
	require.NoError(t, err)

	require.Len(t, result.Created, 2)
	assert.Equal(t, kiss.ID, result.Created[0].GameID)
	assert.Equal(t, mega.ID, result.Created[1].GameID)
	assert.Equal(t, []domain.SkippedItem{{GameID: 999, Reason: domain.SkipReasonGameNotFound}}, result.Skipped)
	assert.Len(t, f.accounts(t), 2)
}

func TestProvisionGameAccounts_EmptyAndAllUnknownCommitEmptyManifest(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Skipped)

	result, err = f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{404, 405})
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Equal(t, []domain.SkippedItem{
		{GameID: 404, Reason: domain.SkipReasonGameNotFound},
		{GameID: 405, Reason: domain.SkipReasonGameNotFound},
	}, result.Skipped)

	assert.Empty(t, f.accounts(t))
	assert.Len(t, f.activityLogs(t), 2)
}

func TestProvisionGameAccounts_UnknownUserFailsBeforeAnyWrite(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, 12345, []int64{f.games["MEGA88"].ID})

	assert.Nil(t, result)
	appErr := requireAppError(t, err, domain.ErrCodeUserNotFound)
	assert.Equal(t, 404, appErr.HTTPStatus)

	var count int64
	require.NoError(t, f.db.Model(&domain.GameAccount{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, f.activityLogs(t))
}

func TestProvisionGameAccounts_RoundTrip(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})
	mega := f.games["MEGA88"]

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, 7, []int64{mega.ID})
	require.NoError(t, err)
	require.Len(t, result.Created, 1)

	accounts := f.accounts(t)
	require.Len(t, accounts, 1)
	assert.Equal(t, int64(7), accounts[0].UserID)
	assert.Equal(t, mega.ID, accounts[0].GameID)
	assert.Equal(t, "Mega888", accounts[0].Game.Name)
	assert.Equal(t, result.Created[0].ExternalAccountID, accounts[0].GameAccountID)
}

func TestProvisionGameAccounts_DuplicateIDsCreateOneRow(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})
	mega := f.games["MEGA88"]

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{mega.ID, mega.ID})
	require.NoError(t, err)

	assert.Len(t, result.Created, 1)
	assert.Equal(t, []domain.SkippedItem{{GameID: mega.ID, Reason: domain.SkipReasonDuplicateGameID}}, result.Skipped)
	assert.Len(t, f.accounts(t), 1)
}

func TestProvisionGameAccounts_SameGameAcrossBatchesYieldsTwoAccounts(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})
	mega := f.games["MEGA88"]
	f.uc.suffix = sequence(11111, 22222)

	_, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{mega.ID})
	require.NoError(t, err)
	_, err = f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{mega.ID})
	require.NoError(t, err)

	accounts := f.accounts(t)
	require.Len(t, accounts, 2)
	assert.Equal(t, "MEG11111", accounts[0].GameAccountID)
	assert.Equal(t, "MEG22222", accounts[1].GameAccountID)
}

func TestProvisionGameAccounts_RetriesCollidingIdentifier(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})
	mega := f.games["MEGA88"]
	testutil.MustCreate(t, f.db, &domain.GameAccount{UserID: 99, GameID: mega.ID, GameAccountID: "MEG12345"})
	f.uc.suffix = sequence(12345, 23456)

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{mega.ID})
	require.NoError(t, err)

	require.Len(t, result.Created, 1)
	assert.Equal(t, "MEG23456", result.Created[0].ExternalAccountID)
	assert.Empty(t, result.Skipped)
}

func TestProvisionGameAccounts_ExhaustedRetriesSkipOnlyThatGame(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{MaxAttempts: 2})
	kiss, mega := f.games["918KISS"], f.games["MEGA88"]
	testutil.MustCreate(t, f.db, &domain.GameAccount{UserID: 99, GameID: mega.ID, GameAccountID: "MEG12345"})
	f.uc.suffix = sequence(12345)

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{mega.ID, kiss.ID})
	require.NoError(t, err)

	assert.Equal(t, []domain.SkippedItem{{GameID: mega.ID, Reason: domain.SkipReasonIdentifierCollision}}, result.Skipped)
	require.Len(t, result.Created, 1)
	assert.Equal(t, "91812345", result.Created[0].ExternalAccountID)
	assert.Len(t, f.accounts(t), 1)
}

func TestProvisionGameAccounts_RecordsManifestInActivityLog(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{})
	f.actor.UserAgent = "curl/8.4.0"
	pussy := f.games["PUSSY888"]

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{pussy.ID, 404})
	require.NoError(t, err)

	entries := f.activityLogs(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "agent_one", entries[0].Agent)
	assert.Equal(t, "10.0.0.5", entries[0].IPAddress)
	assert.Equal(t, "curl", entries[0].Browser)
	assert.Equal(t, domain.OperationCreateGameAccounts, entries[0].Operation)

	var manifest domain.ProvisioningResult
	require.NoError(t, json.Unmarshal([]byte(entries[0].Details), &manifest))
	assert.Equal(t, *result, manifest)
}

func TestProvisionGameAccounts_TimeoutIsProvisioningFailed(t *testing.T) {
	f := newFixture(t, config.ProvisioningConfig{Timeout: time.Nanosecond})

	result, err := f.uc.ProvisionGameAccounts(context.Background(), f.actor, f.user.ID, []int64{f.games["MEGA88"].ID})

	assert.Nil(t, result)
	requireAppError(t, err, domain.ErrCodeProvisioningFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, f.accounts(t))
	assert.Equal(t, 1, f.recorder.failures)
}

func TestAccountPrefix(t *testing.T) {
	assert.Equal(t, "MEG", AccountPrefix("Mega888"))
	assert.Equal(t, "918", AccountPrefix("918Kiss"))
	assert.Equal(t, "LIV", AccountPrefix(" Live22 "))
	assert.Equal(t, "JO", AccountPrefix("jo"))
	assert.Equal(t, "ÉLA", AccountPrefix("élan"))
}

func TestNewAccountID_PadsSuffix(t *testing.T) {
	uc := &ProvisioningUseCase{suffix: sequence(42)}
	assert.Equal(t, "ROL00042", uc.newAccountID("Rollex"))
}
